package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos del ledger de forma
// transaccional: bloquea la fila del producto (SELECT FOR UPDATE), ajusta
// el contador de stock y agrega el movimiento en la misma transacción.
// Así el contador y la suma del ledger no pueden divergir por esta vía.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // positivo
	Reason    string
}

// RegisterMovement valida la entrada, verifica que el producto exista e
// inicia la transacción. Una salida que dejaría el stock negativo falla
// con ErrInsufficientStock y no escribe nada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(input.Type) || input.Quantity <= 0 || input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Pre-chequeo fuera de la tx para responder 404 sin abrir transacción.
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		locked, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		stock := locked.Stock
		switch input.Type {
		case entity.MovementTypeIN:
			stock += input.Quantity
		case entity.MovementTypeOUT:
			if stock < input.Quantity {
				return domain.ErrInsufficientStock
			}
			stock -= input.Quantity
		}

		if err := productRepo.UpdateStock(ctx, input.ProductID, stock, now); err != nil {
			return err
		}
		return movRepo.Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	return toMovementResponse(movement), nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	out := &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
	if m.Product != nil {
		out.Product = &dto.MovementProductRef{SKU: m.Product.SKU, Name: m.Product.Name}
	}
	return out
}
