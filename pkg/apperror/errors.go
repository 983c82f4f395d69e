package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Request Validation (VAL) ----

// Validation returns a client-visible bad-request error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidMonth(month string) *AppError {
	return New("VAL_002", fmt.Sprintf("Invalid month %q, expected format YYYY-MM", month), http.StatusBadRequest)
}

// ---- Imports & Jobs (IMP) ----

func ErrImportNotFound(id string) *AppError {
	return New("IMP_001", fmt.Sprintf("Import %s not found", id), http.StatusNotFound)
}

// ErrImportQueueFull signals backpressure: the worker pool queue rejected the run.
func ErrImportQueueFull() *AppError {
	return New("IMP_002", "Import queue is full, retry later", http.StatusTooManyRequests)
}

func ErrUnreadablePayload(err error) *AppError {
	return Wrap("IMP_003", "Cannot read uploaded file", http.StatusBadRequest, err)
}

// ---- Cryptography (CRY) ----

// ErrEncryptionFailure covers every cryptographic failure: encrypt, decrypt,
// blind index. The wrapped cause stays server-side.
func ErrEncryptionFailure(err error) *AppError {
	return Wrap("CRY_001", "Encryption service failure", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
