package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/memory"
)

func TestCategoryList_UsaCacheDentroDelTTL(t *testing.T) {
	repo := memory.NewCategoryRepository()
	uc := usecase.NewCategoryUseCase(repo, time.Hour)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	first, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	callsAfterFirst := repo.ListCalls

	// Lecturas repetidas dentro del TTL no vuelven al backend.
	for i := 0; i < 5; i++ {
		out, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	}
	assert.Equal(t, callsAfterFirst, repo.ListCalls, "el listado debe servirse desde la caché")
}

func TestCategoryCreate_InvalidaLaCache(t *testing.T) {
	repo := memory.NewCategoryRepository()
	uc := usecase.NewCategoryUseCase(repo, time.Hour)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	out, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)

	// Crear otra categoría debe invalidar la caché: el siguiente listado
	// la incluye de inmediato, sin esperar el TTL.
	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Office Supplies"})
	require.NoError(t, err)

	out, err = uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Electronics", out[0].Name)
	assert.Equal(t, "Office Supplies", out[1].Name)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryRepository(), time.Hour)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(memory.NewCategoryRepository(), time.Hour)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Toys & Games"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Toys & Games"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
