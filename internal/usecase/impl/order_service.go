package impl

import (
	"context"
	"log/slog"
	"time"

	"optika/config"
	"optika/internal/domain/entity"
	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/repository"
	"optika/internal/domain/service"
	"optika/internal/usecase"
	"optika/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	mailer      service.Mailer
	publisher   service.EventPublisher
	config      *config.Config
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Mailer      service.Mailer
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		mailer:      params.Mailer,
		publisher:   params.Publisher,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// Checkout materializes an order from the input.
func (s *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	return s.materialize(ctx, nil, input)
}

// CreateOrderForInvoice materializes at most one order per external invoice.
// The unique invoice column arbitrates the webhook/poller race: the losing
// writer re-reads and returns the order the winner created.
func (s *orderService) CreateOrderForInvoice(ctx context.Context, invoiceID string, input usecase.CheckoutInput) (*entity.Order, error) {
	existing, err := s.orderRepo.FindByInvoiceID(ctx, invoiceID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	order, err := s.materialize(ctx, &invoiceID, input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.ErrorCode() == domainerrors.ErrConflict.ErrorCode() {
			// Lost the race: the order exists now.
			return s.findByInvoice(ctx, invoiceID)
		}

		return nil, err
	}

	return order, nil
}

// materialize runs the checkout pipeline: validate, snapshot prices, upsert
// the customer, then create the order graph, decrement stock and clear the
// visitor cart inside one transaction.
func (s *orderService) materialize(ctx context.Context, invoiceID *string, input usecase.CheckoutInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order has no items")
	}
	if err := s.checkDeliveryZone(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	items, total, err := s.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	user, err := s.upsertUser(ctx, input)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          user.ID,
		Total:           total,
		Status:          input.Status.Coerce(),
		Paid:            input.Paid,
		ShippingAddress: input.Address,
		Phone:           util.NormalizePhone(input.Phone),
		Email:           input.Email,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Lens:            input.Lens,
		QPayInvoiceID:   invoiceID,
		Items:           items,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
			return err
		}

		productRepo := factory.NewProductRepository()
		for _, item := range order.Items {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if input.VisitorID != "" {
			if err := factory.NewCartRepository().ClearVisitor(ctx, input.VisitorID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, domainerrors.ErrInsufficientStock
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrDuplicateInvoice):
			return nil, domainerrors.ErrConflict.WithDetails("order already exists for invoice")
		default:
			return nil, domainerrors.ErrOrderCreationFailed.WithDetails(err.Error())
		}
	}

	created, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Order created",
		slog.String("orderId", created.ID.String()),
		slog.String("total", created.Total.String()),
		slog.String("status", string(created.Status)),
	)

	s.notifyCreated(ctx, created)

	return created, nil
}

// snapshotItems reads each product once and freezes its current price into
// the order line. The order total is the sum of these snapshots; later price
// changes never touch it.
func (s *orderService) snapshotItems(ctx context.Context, requested []usecase.CheckoutItem) ([]*entity.OrderItem, decimal.Decimal, error) {
	total := decimal.Zero
	items := make([]*entity.OrderItem, 0, len(requested))
	for _, req := range requested {
		if req.Quantity <= 0 {
			return nil, decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}

		product, err := s.productRepo.FindByID(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, decimal.Zero, domainerrors.ErrProductNotFound
			}

			return nil, decimal.Zero, domainerrors.ErrInternalError.WithDetails(err.Error())
		}
		if product.Stock < req.Quantity {
			return nil, decimal.Zero, domainerrors.ErrInsufficientStock
		}

		items = append(items, &entity.OrderItem{
			ProductID: product.ID,
			Quantity:  req.Quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(req.Quantity))))
	}

	return items, total, nil
}

// upsertUser finds or creates the customer record keyed by email, refreshing
// contact details on every order.
func (s *orderService) upsertUser(ctx context.Context, input usecase.CheckoutInput) (*entity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
		}

		user = &entity.User{
			Email:   input.Email,
			Name:    input.Name,
			Phone:   util.NormalizePhone(input.Phone),
			Address: input.Address,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
		}

		return user, nil
	}

	user.Name = input.Name
	user.Phone = util.NormalizePhone(input.Phone)
	user.Address = input.Address
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return user, nil
}

// checkDeliveryZone validates the drop-off point against the configured
// store radius. Orders without coordinates skip the check.
func (s *orderService) checkDeliveryZone(lat, lng *float64) error {
	if lat == nil || lng == nil {
		return nil
	}
	cfg := s.config.Delivery
	if cfg == nil || cfg.MaxRadiusKm <= 0 {
		return nil
	}

	store := orb.Point{cfg.StoreLongitude, cfg.StoreLatitude}
	dropoff := orb.Point{*lng, *lat}
	if geo.Distance(store, dropoff) > cfg.MaxRadiusKm*1000 {
		return domainerrors.ErrOutsideDeliveryZone
	}

	return nil
}

// notifyCreated fires the post-order side effects. Both are best-effort and
// never fail the order.
func (s *orderService) notifyCreated(ctx context.Context, order *entity.Order) {
	if err := s.mailer.SendOrderConfirmation(ctx, order); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Order confirmation mail failed",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	event := &service.OrderEvent{
		EventType:  service.OrderEventCreated,
		OrderID:    order.ID.String(),
		Status:     string(order.Status),
		Total:      order.Total.String(),
		Email:      order.Email,
		OccurredAt: time.Now().UTC(),
	}
	if order.QPayInvoiceID != nil {
		event.InvoiceID = *order.QPayInvoiceID
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Order event publish failed",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// GetOrder retrieves an order with its full item graph.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return order, nil
}

// ListOrders retrieves all orders, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return orders, nil
}

// UpdateOrderStatus moves an order to a new status. Any move is accepted by
// default; the strict transition table only applies when configured, which
// keeps manual support overrides possible.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + string(status))
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}

	if s.config.Orders != nil && s.config.Orders.StrictTransitions {
		if !entity.CanTransition(order.Status, status) {
			return nil, domainerrors.ErrInvalidStatusTransition.
				WithDetails(string(order.Status) + " -> " + string(status))
		}
	}

	paid := order.Paid || status == entity.OrderStatusPaid
	if err := s.orderRepo.UpdateStatus(ctx, id, status, paid); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if status == entity.OrderStatusPaid && !order.Paid {
		event := &service.OrderEvent{
			EventType:  service.OrderEventPaid,
			OrderID:    order.ID.String(),
			Status:     string(status),
			Total:      order.Total.String(),
			Email:      order.Email,
			OccurredAt: time.Now().UTC(),
		}
		if order.QPayInvoiceID != nil {
			event.InvoiceID = *order.QPayInvoiceID
		}
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Order event publish failed",
				slog.String("orderId", order.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return s.GetOrder(ctx, id)
}

// DeleteOrder removes an order; its items cascade.
func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return nil
}

func (s *orderService) findByInvoice(ctx context.Context, invoiceID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return order, nil
}
