package impl

import (
	"log/slog"
	"testing"

	"optika/config"
	"optika/internal/mocks"
	"optika/internal/usecase"
)

// orderServiceFixture wires an order service against shared mocks. The fake
// transaction manager hands the same mocks back through the factory, so both
// the read path and the transactional path are observed by one set of
// expectations.
type orderServiceFixture struct {
	productRepo *mocks.ProductRepository
	orderRepo   *mocks.OrderRepository
	cartRepo    *mocks.CartRepository
	userRepo    *mocks.UserRepository
	mailer      *mocks.Mailer
	publisher   *mocks.EventPublisher
	svc         usecase.OrderUsecase
}

func newOrderServiceFixture(t *testing.T, cfg *config.Config) *orderServiceFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	f := &orderServiceFixture{
		productRepo: mocks.NewProductRepository(t),
		orderRepo:   mocks.NewOrderRepository(t),
		cartRepo:    mocks.NewCartRepository(t),
		userRepo:    mocks.NewUserRepository(t),
		mailer:      mocks.NewMailer(t),
		publisher:   mocks.NewEventPublisher(t),
	}

	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{
			ProductRepo: f.productRepo,
			OrderRepo:   f.orderRepo,
			CartRepo:    f.cartRepo,
			UserRepo:    f.userRepo,
		},
	}

	f.svc = NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   f.orderRepo,
		ProductRepo: f.productRepo,
		UserRepo:    f.userRepo,
		Mailer:      f.mailer,
		Publisher:   f.publisher,
		Config:      cfg,
		Logger:      slog.New(slog.DiscardHandler),
	})

	return f
}
