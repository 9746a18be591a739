// Package errors defines the application error taxonomy. User-facing
// messages are in Mongolian, the storefront's audience language; the
// business code and details stay machine readable for the admin console.
package errors

import (
	"net/http"

	"optika/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Бүтээгдэхүүн олдсонгүй",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Ангилал олдсонгүй",
		"",
	)

	ErrCategoryNameTaken = NewBaseError(
		http.StatusConflict,
		"CATEGORY_NAME_TAKEN",
		"Ийм нэртэй ангилал аль хэдийн бүртгэлтэй байна",
		"",
	)

	ErrCategoryInUse = NewBaseError(
		http.StatusConflict,
		"CATEGORY_IN_USE",
		"Энэ ангилалд бүтээгдэхүүн бүртгэлтэй тул устгах боломжгүй",
		"",
	)

	// Cart and stock errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Сагсанд ийм бараа алга байна",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Барааны үлдэгдэл хүрэлцэхгүй байна",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Захиалга олдсонгүй",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Захиалга үүсгэхэд алдаа гарлаа",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Захиалгын төлөвийг энэ төлөв рүү шилжүүлэх боломжгүй",
		"",
	)

	ErrOutsideDeliveryZone = NewBaseError(
		http.StatusBadRequest,
		"OUTSIDE_DELIVERY_ZONE",
		"Хүргэлтийн бүсээс гадуур хаяг байна",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Хэрэглэгч олдсонгүй",
		"",
	)

	// Payment errors
	ErrPaymentAuthFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_AUTH_FAILED",
		"Төлбөрийн системд нэвтрэхэд алдаа гарлаа",
		"",
	)

	ErrPaymentUpstream = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_UPSTREAM_ERROR",
		"Төлбөрийн системээс алдаа буцлаа",
		"",
	)

	ErrInvoiceNotFound = NewBaseError(
		http.StatusNotFound,
		"INVOICE_NOT_FOUND",
		"Нэхэмжлэх олдсонгүй",
		"",
	)

	// Admin auth errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Нууц үг буруу байна",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Оруулсан мэдээлэл буруу байна",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Өгөгдлийн сангийн гүйлгээ амжилтгүй боллоо",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Системийн алдаа гарлаа",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Олдсонгүй",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Нөөц зөрчилдөж байна",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Өгөгдлийн сан дээр алдаа гарлаа"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
