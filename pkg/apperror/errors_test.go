package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_001", "Invalid seed phrase", http.StatusBadRequest),
			expected: "[WAL_001] Invalid seed phrase",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestWalletErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidSeedPhrase", ErrInvalidSeedPhrase(), "WAL_001", 400},
		{"AddressInUse", ErrAddressInUse(), "WAL_002", 409},
		{"WalletInUse", ErrWalletInUse(), "WAL_003", 409},
		{"WalletNotFound", ErrWalletNotFound(), "WAL_004", 404},
		{"NotWalletOwner", ErrNotWalletOwner(), "WAL_005", 403},
		{"ChallengeFailed", ErrChallengeFailed(), "WAL_006", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSecurityErrors(t *testing.T) {
	assert.Equal(t, "SEC_001", ErrInvalidToken().Code)
	assert.Equal(t, 401, ErrInvalidToken().HTTPStatus)

	inner := fmt.Errorf("cipher: message authentication failed")
	authErr := ErrSeedAuthenticationFailed(inner)
	assert.Equal(t, "SEC_002", authErr.Code)
	assert.Equal(t, 409, authErr.HTTPStatus)
	assert.True(t, errors.Is(authErr, inner))

	assert.Equal(t, "SEC_003", ErrInvalidPin().Code)
	assert.Equal(t, 401, ErrInvalidPin().HTTPStatus)
}

func TestMarketErrors(t *testing.T) {
	err := ErrBalancesNotFound()
	assert.Equal(t, "MKT_001", err.Code)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_002", encErr.Code)
	assert.Equal(t, 500, encErr.HTTPStatus)
}

func TestValidation(t *testing.T) {
	err := Validation("seed_phrase is required")
	assert.Equal(t, "VAL_001", err.Code)
	assert.Equal(t, 400, err.HTTPStatus)
	assert.Contains(t, err.Message, "seed_phrase")
}
