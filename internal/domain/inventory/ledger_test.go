package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

func mov(typ string, qty int64) *entity.StockMovement {
	return &entity.StockMovement{Type: typ, Quantity: qty}
}

func TestDeriveStock(t *testing.T) {
	cases := []struct {
		name      string
		initial   int64
		movements []*entity.StockMovement
		want      int64
	}{
		{
			name:    "sin movimientos devuelve el stock inicial",
			initial: 20,
			want:    20,
		},
		{
			name:    "entradas y salidas se netean",
			initial: 20,
			movements: []*entity.StockMovement{
				mov(entity.MovementTypeIN, 5),
				mov(entity.MovementTypeOUT, 3),
				mov(entity.MovementTypeOUT, 2),
			},
			want: 20,
		},
		{
			name:    "solo entradas",
			initial: 0,
			movements: []*entity.StockMovement{
				mov(entity.MovementTypeIN, 7),
				mov(entity.MovementTypeIN, 3),
			},
			want: 10,
		},
		{
			name:    "el ledger puede derivar por debajo de cero",
			initial: 1,
			movements: []*entity.StockMovement{
				mov(entity.MovementTypeOUT, 4),
			},
			want: -3,
		},
		{
			name:    "tipos desconocidos se ignoran",
			initial: 8,
			movements: []*entity.StockMovement{
				mov("ADJUST", 99),
				mov(entity.MovementTypeOUT, 3),
			},
			want: 5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStock(tc.initial, tc.movements))
		})
	}
}
