// Package ttlcache implementa una caché de un solo slot con expiración por
// tiempo (TTL). Get devuelve el valor cacheado si no expiró; si expiró o no
// existe, ejecuta fetch, guarda el resultado y lo devuelve. El mutex
// serializa los rellenados concurrentes al expirar: el rellenado es
// idempotente, así que el lock solo evita lecturas duplicadas al backend.
package ttlcache

import (
	"sync"
	"time"
)

// Cache caché de un valor con TTL fijo.
type Cache[T any] struct {
	ttl time.Duration

	mu        sync.Mutex
	value     T
	expiresAt time.Time

	now func() time.Time // reemplazable en tests
}

// New construye la caché. ttl <= 0 desactiva el cacheo (todo Get consulta
// el backend).
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl, now: time.Now}
}

// Get devuelve el valor vigente o lo repuebla con fetch.
// Si fetch falla no se cachea nada y el error se propaga al caller.
func (c *Cache[T]) Get(fetch func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.now().Before(c.expiresAt) {
		return c.value, nil
	}

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = value
	c.expiresAt = c.now().Add(c.ttl)
	return value, nil
}

// Invalidate descarta el valor cacheado; el próximo Get consulta el backend.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt = time.Time{}
}
