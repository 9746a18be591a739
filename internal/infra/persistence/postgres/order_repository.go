package postgres

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/repository"
	"optika/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"optika/internal/infra/persistence/model"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new instance of orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with its items in one insert. GORM
// creates the item rows through the association, so the whole graph lands
// atomically when the caller runs inside a transaction.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := toOrderModel(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateInvoice
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	for i, itemModel := range orderModel.Items {
		order.Items[i].ID = itemModel.ID
		order.Items[i].OrderID = itemModel.OrderID
		order.Items[i].CreatedAt = itemModel.CreatedAt
	}

	return nil
}

// FindByID retrieves an order with its full graph preloaded.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		First(&orderModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderEntity(&orderModel), nil
}

// FindByInvoiceID retrieves the order materialized for an external invoice.
func (r *orderRepository) FindByInvoiceID(ctx context.Context, invoiceID string) (*entity.Order, error) {
	var orderModel model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&orderModel, "q_pay_invoice_id = ?", invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by invoice id")
	}

	return toOrderEntity(&orderModel), nil
}

// List retrieves all orders with their graphs, newest first.
func (r *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderModel := range orderModels {
		orders = append(orders, toOrderEntity(orderModel))
	}

	return orders, nil
}

// UpdateStatus sets the order status and paid flag.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, paid bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": string(status),
			"paid":   paid,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order; items cascade at the database level.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderEntity(orderModel *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:              orderModel.ID,
		UserID:          orderModel.UserID,
		Total:           orderModel.Total,
		Status:          entity.OrderStatus(orderModel.Status),
		Paid:            orderModel.Paid,
		ShippingAddress: orderModel.ShippingAddress,
		Phone:           orderModel.Phone,
		Email:           orderModel.Email,
		Latitude:        orderModel.Latitude,
		Longitude:       orderModel.Longitude,
		QPayInvoiceID:   orderModel.QPayInvoiceID,
		CreatedAt:       orderModel.CreatedAt,
		UpdatedAt:       orderModel.UpdatedAt,
	}
	if orderModel.PupillaryDistance != nil || orderModel.LeftEye != "" || orderModel.RightEye != "" || orderModel.LensNotes != "" {
		lens := &entity.LensInfo{
			LeftEye:  orderModel.LeftEye,
			RightEye: orderModel.RightEye,
			Notes:    orderModel.LensNotes,
		}
		if orderModel.PupillaryDistance != nil {
			lens.PupillaryDistance = *orderModel.PupillaryDistance
		}
		order.Lens = lens
	}
	if orderModel.User != nil {
		order.User = &entity.User{
			ID:        orderModel.User.ID,
			Email:     orderModel.User.Email,
			Name:      orderModel.User.Name,
			Phone:     orderModel.User.Phone,
			Address:   orderModel.User.Address,
			CreatedAt: orderModel.User.CreatedAt,
			UpdatedAt: orderModel.User.UpdatedAt,
		}
	}
	for _, itemModel := range orderModel.Items {
		item := &entity.OrderItem{
			ID:        itemModel.ID,
			OrderID:   itemModel.OrderID,
			ProductID: itemModel.ProductID,
			Quantity:  itemModel.Quantity,
			UnitPrice: itemModel.UnitPrice,
			CreatedAt: itemModel.CreatedAt,
		}
		if itemModel.Product != nil {
			item.Product = toProductEntity(itemModel.Product)
		}
		order.Items = append(order.Items, item)
	}

	return order
}

func toOrderModel(order *entity.Order) *model.OrderModel {
	orderModel := &model.OrderModel{
		ID:              order.ID,
		UserID:          order.UserID,
		Total:           order.Total,
		Status:          string(order.Status),
		Paid:            order.Paid,
		ShippingAddress: order.ShippingAddress,
		Phone:           order.Phone,
		Email:           order.Email,
		Latitude:        order.Latitude,
		Longitude:       order.Longitude,
		QPayInvoiceID:   order.QPayInvoiceID,
	}
	if order.Lens != nil {
		if order.Lens.PupillaryDistance > 0 {
			pd := order.Lens.PupillaryDistance
			orderModel.PupillaryDistance = &pd
		}
		orderModel.LeftEye = order.Lens.LeftEye
		orderModel.RightEye = order.Lens.RightEye
		orderModel.LensNotes = order.Lens.Notes
	}
	for _, item := range order.Items {
		orderModel.Items = append(orderModel.Items, &model.OrderItemModel{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return orderModel
}
