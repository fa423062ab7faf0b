package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// DefaultMovementLimit tope de filas del listado salvo que el cliente pida
// showAll.
const DefaultMovementLimit = 100

const dateLayout = "2006-01-02"

// ListMovementsUseCase consulta el ledger con filtros tipados. Si la tabla
// de movimientos aún no existe, degrada a un listado vacío en lugar de
// fallar la respuesta completa.
type ListMovementsUseCase struct {
	movRepo repository.StockMovementRepository
	log     *logger.Logger
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.StockMovementRepository, log *logger.Logger) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo, log: log}
}

// List valida y normaliza la query, consulta el ledger y arma la
// respuesta del más reciente al más antiguo.
func (uc *ListMovementsUseCase) List(ctx context.Context, q dto.MovementQuery) (*dto.MovementListResponse, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}

	limit := DefaultMovementLimit
	if q.ShowAll {
		limit = 0
	}

	movements, err := uc.movRepo.List(ctx, filter, limit)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			uc.log.Warn().Err(err).Msg("ledger no disponible; listado degradado a vacío")
			movements = nil
		} else {
			return nil, err
		}
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// buildFilter convierte la query HTTP en el filtro tipado del repositorio.
// EndDate es inclusivo: el límite superior se corre al último instante de
// ese día calendario.
func buildFilter(q dto.MovementQuery) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{ProductID: q.ProductID}

	if q.Type != "" {
		if !entity.ValidMovementType(q.Type) {
			return repository.MovementFilter{}, fmt.Errorf("type %q: %w", q.Type, domain.ErrInvalidInput)
		}
		filter.Type = q.Type
	}

	if q.StartDate != "" {
		from, err := time.ParseInLocation(dateLayout, q.StartDate, time.Local)
		if err != nil {
			return repository.MovementFilter{}, fmt.Errorf("startDate %q: %w", q.StartDate, domain.ErrInvalidInput)
		}
		filter.From = &from
	}

	if q.EndDate != "" {
		day, err := time.ParseInLocation(dateLayout, q.EndDate, time.Local)
		if err != nil {
			return repository.MovementFilter{}, fmt.Errorf("endDate %q: %w", q.EndDate, domain.ErrInvalidInput)
		}
		to := endOfDay(day)
		filter.To = &to
	}

	return filter, nil
}

// endOfDay devuelve el último instante del día calendario de t.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
