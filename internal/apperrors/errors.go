package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrConflict indicates the operation lost a concurrency race (row lock or
// serialization conflict) and may be safely retried.
var ErrConflict = errors.New("concurrency conflict, retry the operation")

// ErrInvalidTransition indicates a sale status transition that the state
// machine does not allow (e.g. voiding an already cancelled sale).
var ErrInvalidTransition = errors.New("invalid sale status transition")

// ErrInsufficientStock indicates a medicine does not have enough stock on
// hand to satisfy the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError carries per-medicine detail about a failed stock
// commit. It wraps ErrInsufficientStock so callers can match with errors.Is.
type InsufficientStockError struct {
	MedicineID string
	Requested  int64
	Available  int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for medicine %s: requested %d, available %d", e.MedicineID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// AppError wraps a lower-level error with a status code and a human readable
// message. Repositories use it to report infrastructure failures without
// leaking driver details to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
