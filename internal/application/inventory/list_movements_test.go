package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/inventory"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

func newListFixture(t *testing.T) (*movementFixture, *inventory.ListMovementsUseCase) {
	t.Helper()
	f := newMovementFixture(t, 1000)
	uc := inventory.NewListMovementsUseCase(f.movements, logger.Nop())
	return f, uc
}

func (f *movementFixture) appendMovement(t *testing.T, movType string, qty int64, createdAt time.Time) {
	t.Helper()
	err := f.movements.Create(context.Background(), &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: f.productID,
		Type:      movType,
		Quantity:  qty,
		Reason:    "test",
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
}

func TestListMovements_MasRecientePrimero(t *testing.T) {
	f, uc := newListFixture(t)
	now := time.Now()

	f.appendMovement(t, entity.MovementTypeIN, 1, now.Add(-2*time.Hour))
	f.appendMovement(t, entity.MovementTypeOUT, 2, now.Add(-1*time.Hour))
	f.appendMovement(t, entity.MovementTypeIN, 3, now)

	out, err := uc.List(context.Background(), dto.MovementQuery{})
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)
	assert.EqualValues(t, 3, out.Items[0].Quantity)
	assert.EqualValues(t, 2, out.Items[1].Quantity)
	assert.EqualValues(t, 1, out.Items[2].Quantity)

	// La referencia al producto viene embebida.
	require.NotNil(t, out.Items[0].Product)
	assert.Equal(t, "ELEC-TEST001", out.Items[0].Product.SKU)
}

func TestListMovements_TopeDe100SalvoShowAll(t *testing.T) {
	f, uc := newListFixture(t)
	now := time.Now()

	for i := 0; i < 130; i++ {
		f.appendMovement(t, entity.MovementTypeIN, 1, now.Add(-time.Duration(i)*time.Minute))
	}

	capped, err := uc.List(context.Background(), dto.MovementQuery{})
	require.NoError(t, err)
	assert.Equal(t, 100, capped.Total)

	all, err := uc.List(context.Background(), dto.MovementQuery{ShowAll: true})
	require.NoError(t, err)
	assert.Equal(t, 130, all.Total)
}

func TestListMovements_FiltroPorTipo(t *testing.T) {
	f, uc := newListFixture(t)
	now := time.Now()

	f.appendMovement(t, entity.MovementTypeIN, 1, now)
	f.appendMovement(t, entity.MovementTypeOUT, 2, now)
	f.appendMovement(t, entity.MovementTypeOUT, 3, now)

	out, err := uc.List(context.Background(), dto.MovementQuery{Type: entity.MovementTypeOUT})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	for _, m := range out.Items {
		assert.Equal(t, entity.MovementTypeOUT, m.Type)
	}
}

// endDate es inclusivo: un movimiento a las 23:59 de ese día entra, uno a
// las 00:00:01 del día siguiente queda fuera.
func TestListMovements_EndDateInclusivo(t *testing.T) {
	f, uc := newListFixture(t)

	endDay := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	lateSameDay := endDay.Add(23*time.Hour + 59*time.Minute)
	nextDay := endDay.AddDate(0, 0, 1).Add(time.Second)

	f.appendMovement(t, entity.MovementTypeIN, 1, lateSameDay)
	f.appendMovement(t, entity.MovementTypeIN, 2, nextDay)

	out, err := uc.List(context.Background(), dto.MovementQuery{
		EndDate: endDay.Format("2006-01-02"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.EqualValues(t, 1, out.Items[0].Quantity)
}

func TestListMovements_RangoDeFechas(t *testing.T) {
	f, uc := newListFixture(t)

	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 12, 0, 0, 0, time.Local)
	}
	f.appendMovement(t, entity.MovementTypeIN, 1, day(10))
	f.appendMovement(t, entity.MovementTypeIN, 2, day(15))
	f.appendMovement(t, entity.MovementTypeIN, 3, day(20))

	out, err := uc.List(context.Background(), dto.MovementQuery{
		StartDate: "2026-08-12",
		EndDate:   "2026-08-18",
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.EqualValues(t, 2, out.Items[0].Quantity)
}

func TestListMovements_FiltrosInvalidos(t *testing.T) {
	_, uc := newListFixture(t)
	ctx := context.Background()

	cases := []dto.MovementQuery{
		{Type: "TRANSFER"},
		{StartDate: "20-08-2026"},
		{EndDate: "no-es-fecha"},
	}
	for i, q := range cases {
		t.Run(fmt.Sprintf("caso_%d", i), func(t *testing.T) {
			_, err := uc.List(ctx, q)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Sin tabla de movimientos el listado degrada a vacío en vez de fallar.
func TestListMovements_DegradaSinLedger(t *testing.T) {
	f, uc := newListFixture(t)
	f.movements.SetUnavailable(true)

	out, err := uc.List(context.Background(), dto.MovementQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Empty(t, out.Items)
}
