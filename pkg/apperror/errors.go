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

// ---- Wallet Lifecycle (WAL) ----

func ErrInvalidSeedPhrase() *AppError {
	return New("WAL_001", "Invalid seed phrase", http.StatusBadRequest)
}

func ErrAddressInUse() *AppError {
	return New("WAL_002", "This wallet address is already in use", http.StatusConflict)
}

func ErrWalletInUse() *AppError {
	return New("WAL_003", "Wallet is currently in use by another account", http.StatusConflict)
}

func ErrWalletNotFound() *AppError {
	return New("WAL_004", "Wallet not found", http.StatusNotFound)
}

func ErrNotWalletOwner() *AppError {
	return New("WAL_005", "You do not have permission to manage this wallet", http.StatusForbidden)
}

func ErrChallengeFailed() *AppError {
	return New("WAL_006", "Seed phrase verification failed", http.StatusBadRequest)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidToken() *AppError {
	return New("SEC_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ErrSeedAuthenticationFailed signals an AEAD tag mismatch on the stored
// encrypted seed: the record is corrupt or the supplied phrase does not
// match the one the record was sealed with.
func ErrSeedAuthenticationFailed(err error) *AppError {
	return Wrap("SEC_002", "Encrypted seed integrity check failed", http.StatusConflict, err)
}

func ErrInvalidPin() *AppError {
	return New("SEC_003", "Invalid PIN", http.StatusUnauthorized)
}

// ---- Market Data (MKT) ----

func ErrBalancesNotFound() *AppError {
	return New("MKT_001", "Crypto wallet not found", http.StatusNotFound)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
