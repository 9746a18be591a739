package impl

import (
	"context"

	"optika/internal/domain/entity"
	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/repository"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
	}
}

// AddItem adds qty units of a product, incrementing an existing line. The
// combined quantity is checked against available stock; the stock itself is
// only decremented when an order is materialized.
func (s *cartService) AddItem(ctx context.Context, visitorID string, productID uuid.UUID, qty int) (*entity.CartItem, error) {
	if qty <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	newQty := qty
	existing, err := s.cartRepo.FindLine(ctx, visitorID, productID)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	if existing != nil {
		newQty += existing.Quantity
	}

	if newQty > product.Stock {
		return nil, domainerrors.ErrInsufficientStock
	}

	item := &entity.CartItem{
		VisitorID: visitorID,
		ProductID: productID,
		Quantity:  newQty,
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	item.Product = product

	return item, nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, visitorID string, productID uuid.UUID, qty int) (*entity.CartItem, error) {
	if qty <= 0 {
		if err := s.RemoveItem(ctx, visitorID, productID); err != nil {
			return nil, err
		}

		return nil, nil
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if _, err := s.cartRepo.FindLine(ctx, visitorID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if qty > product.Stock {
		return nil, domainerrors.ErrInsufficientStock
	}

	item := &entity.CartItem{
		VisitorID: visitorID,
		ProductID: productID,
		Quantity:  qty,
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	item.Product = product

	return item, nil
}

// RemoveItem deletes the visitor's line for a product.
func (s *cartService) RemoveItem(ctx context.Context, visitorID string, productID uuid.UUID) error {
	if err := s.cartRepo.DeleteLine(ctx, visitorID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return nil
}

// ListItems retrieves the visitor's cart with products and line totals.
func (s *cartService) ListItems(ctx context.Context, visitorID string) (*usecase.CartView, error) {
	items, err := s.cartRepo.ListByVisitor(ctx, visitorID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	return &usecase.CartView{
		Items: items,
		Total: total,
	}, nil
}

// Clear removes every line in the visitor's cart.
func (s *cartService) Clear(ctx context.Context, visitorID string) error {
	if err := s.cartRepo.ClearVisitor(ctx, visitorID); err != nil {
		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return nil
}
