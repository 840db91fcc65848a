package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ANAVHEOBA/trustwallet/internal/adapter/http/dto"
	"github.com/ANAVHEOBA/trustwallet/internal/core/ports"
	"github.com/ANAVHEOBA/trustwallet/pkg/apperror"
	"github.com/ANAVHEOBA/trustwallet/pkg/response"
)

// CryptoHandler handles market data and balance endpoints.
type CryptoHandler struct {
	marketSvc ports.MarketService
}

// NewCryptoHandler creates a new CryptoHandler.
func NewCryptoHandler(marketSvc ports.MarketService) *CryptoHandler {
	return &CryptoHandler{marketSvc: marketSvc}
}

// Prices handles GET /api/v1/crypto/prices. Failed fetches show up as
// zeroed metrics rather than an error.
func (h *CryptoHandler) Prices(c *gin.Context) {
	metrics := h.marketSvc.FetchAll(c.Request.Context())

	response.OK(c, dto.PricesResponse{
		Prices:    metrics,
		Timestamp: time.Now(),
	})
}

// Balances handles GET /api/v1/crypto/:walletAddress/balances.
func (h *CryptoHandler) Balances(c *gin.Context) {
	address := c.Param("walletAddress")
	if !dto.ValidWalletAddress(address) {
		response.Error(c, apperror.Validation("invalid wallet address"))
		return
	}

	wallet, err := h.marketSvc.GetWalletBalances(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToWalletBalancesResponse(wallet))
}

// UpdatePrices handles POST /api/v1/crypto/update-prices, the cron
// entry point for the balance refresh sweep.
func (h *CryptoHandler) UpdatePrices(c *gin.Context) {
	if err := h.marketSvc.RefreshAllWallets(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Balance refresh completed")
}
