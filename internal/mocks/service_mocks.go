package mocks

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PaymentGateway is a mock implementation of service.PaymentGateway.
type PaymentGateway struct {
	mock.Mock
}

// NewPaymentGateway creates a new mock and registers expectation checks.
func NewPaymentGateway(t mockConstructorTestingT) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *PaymentGateway) Authenticate(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *PaymentGateway) CreateInvoice(ctx context.Context, input service.CreateInvoiceInput) (*service.CreatedInvoice, error) {
	ret := _m.Called(ctx, input)

	var r0 *service.CreatedInvoice
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.CreatedInvoice)
	}

	return r0, ret.Error(1)
}

func (_m *PaymentGateway) CheckPayment(ctx context.Context, invoiceID string) (*service.PaymentRecord, error) {
	ret := _m.Called(ctx, invoiceID)

	var r0 *service.PaymentRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.PaymentRecord)
	}

	return r0, ret.Error(1)
}

// EXPECT returns a helper for setting expectations.
func (_m *PaymentGateway) EXPECT() *PaymentGatewayExpecter {
	return &PaymentGatewayExpecter{mock: &_m.Mock}
}

type PaymentGatewayExpecter struct {
	mock *mock.Mock
}

func (_e *PaymentGatewayExpecter) Authenticate(ctx any) *mock.Call {
	return _e.mock.On("Authenticate", ctx)
}

func (_e *PaymentGatewayExpecter) CreateInvoice(ctx, input any) *mock.Call {
	return _e.mock.On("CreateInvoice", ctx, input)
}

func (_e *PaymentGatewayExpecter) CheckPayment(ctx, invoiceID any) *mock.Call {
	return _e.mock.On("CheckPayment", ctx, invoiceID)
}

// QRCodeService is a mock implementation of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

// NewQRCodeService creates a new mock and registers expectation checks.
func NewQRCodeService(t mockConstructorTestingT) *QRCodeService {
	m := &QRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *QRCodeService) GenerateInvoiceQR(invoiceID string) ([]byte, error) {
	ret := _m.Called(invoiceID)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// EXPECT returns a helper for setting expectations.
func (_m *QRCodeService) EXPECT() *QRCodeServiceExpecter {
	return &QRCodeServiceExpecter{mock: &_m.Mock}
}

type QRCodeServiceExpecter struct {
	mock *mock.Mock
}

func (_e *QRCodeServiceExpecter) GenerateInvoiceQR(invoiceID any) *mock.Call {
	return _e.mock.On("GenerateInvoiceQR", invoiceID)
}

// Mailer is a mock implementation of service.Mailer.
type Mailer struct {
	mock.Mock
}

// NewMailer creates a new mock and registers expectation checks.
func NewMailer(t mockConstructorTestingT) *Mailer {
	m := &Mailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *Mailer) SendOrderConfirmation(ctx context.Context, order *entity.Order) error {
	return _m.Called(ctx, order).Error(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *Mailer) EXPECT() *MailerExpecter {
	return &MailerExpecter{mock: &_m.Mock}
}

type MailerExpecter struct {
	mock *mock.Mock
}

func (_e *MailerExpecter) SendOrderConfirmation(ctx, order any) *mock.Call {
	return _e.mock.On("SendOrderConfirmation", ctx, order)
}

// EventPublisher is a mock implementation of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

// NewEventPublisher creates a new mock and registers expectation checks.
func NewEventPublisher(t mockConstructorTestingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *EventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func (_m *EventPublisher) Close() error {
	return _m.Called().Error(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *EventPublisher) EXPECT() *EventPublisherExpecter {
	return &EventPublisherExpecter{mock: &_m.Mock}
}

type EventPublisherExpecter struct {
	mock *mock.Mock
}

func (_e *EventPublisherExpecter) PublishOrderEvent(ctx, event any) *mock.Call {
	return _e.mock.On("PublishOrderEvent", ctx, event)
}

func (_e *EventPublisherExpecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

// NewTokenService creates a new mock and registers expectation checks.
func NewTokenService(t mockConstructorTestingT) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *TokenService) GenerateOperatorToken() (string, error) {
	ret := _m.Called()

	return ret.String(0), ret.Error(1)
}

func (_m *TokenService) ValidateToken(tokenString string) (*jwt.Token, error) {
	ret := _m.Called(tokenString)

	var r0 *jwt.Token
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*jwt.Token)
	}

	return r0, ret.Error(1)
}

// EXPECT returns a helper for setting expectations.
func (_m *TokenService) EXPECT() *TokenServiceExpecter {
	return &TokenServiceExpecter{mock: &_m.Mock}
}

type TokenServiceExpecter struct {
	mock *mock.Mock
}

func (_e *TokenServiceExpecter) GenerateOperatorToken() *mock.Call {
	return _e.mock.On("GenerateOperatorToken")
}

func (_e *TokenServiceExpecter) ValidateToken(tokenString any) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString)
}

// CredentialVerifier is a mock implementation of service.CredentialVerifier.
type CredentialVerifier struct {
	mock.Mock
}

// NewCredentialVerifier creates a new mock and registers expectation checks.
func NewCredentialVerifier(t mockConstructorTestingT) *CredentialVerifier {
	m := &CredentialVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *CredentialVerifier) Verify(password string) bool {
	return _m.Called(password).Bool(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *CredentialVerifier) EXPECT() *CredentialVerifierExpecter {
	return &CredentialVerifierExpecter{mock: &_m.Mock}
}

type CredentialVerifierExpecter struct {
	mock *mock.Mock
}

func (_e *CredentialVerifierExpecter) Verify(password any) *mock.Call {
	return _e.mock.On("Verify", password)
}

// ObjectStore is a mock implementation of service.ObjectStore.
type ObjectStore struct {
	mock.Mock
}

// NewObjectStore creates a new mock and registers expectation checks.
func NewObjectStore(t mockConstructorTestingT) *ObjectStore {
	m := &ObjectStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *ObjectStore) SaveProductImage(ctx context.Context, productID uuid.UUID, contentType string, data []byte) (string, error) {
	ret := _m.Called(ctx, productID, contentType, data)

	return ret.String(0), ret.Error(1)
}

// EXPECT returns a helper for setting expectations.
func (_m *ObjectStore) EXPECT() *ObjectStoreExpecter {
	return &ObjectStoreExpecter{mock: &_m.Mock}
}

type ObjectStoreExpecter struct {
	mock *mock.Mock
}

func (_e *ObjectStoreExpecter) SaveProductImage(ctx, productID, contentType, data any) *mock.Call {
	return _e.mock.On("SaveProductImage", ctx, productID, contentType, data)
}
