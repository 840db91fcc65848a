package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ANAVHEOBA/trustwallet/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := testContext()
	OK(c, map[string]string{"wallet_address": "0xabc"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "0xabc", resp.Data.(map[string]interface{})["wallet_address"])
}

func TestCreated(t *testing.T) {
	c, w := testContext()
	Created(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMessage(t *testing.T) {
	c, w := testContext()
	Message(c, "Wallet logged out successfully")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Wallet logged out successfully", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestError_AppError(t *testing.T) {
	c, w := testContext()
	Error(c, apperror.ErrAddressInUse())

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "WAL_002", resp.ErrorCode)
}

func TestError_WrappedAppError(t *testing.T) {
	c, w := testContext()
	inner := apperror.ErrWalletNotFound()
	Error(c, fmt.Errorf("lookup: %w", inner))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WAL_004", resp.ErrorCode)
}

func TestError_UnknownError(t *testing.T) {
	c, w := testContext()
	Error(c, fmt.Errorf("something broke"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_000", resp.ErrorCode)
	assert.NotContains(t, resp.Error, "something broke", "internal details must not leak")
}
