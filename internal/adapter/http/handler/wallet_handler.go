package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ANAVHEOBA/trustwallet/internal/adapter/http/dto"
	"github.com/ANAVHEOBA/trustwallet/internal/adapter/http/middleware"
	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
	"github.com/ANAVHEOBA/trustwallet/internal/core/ports"
	"github.com/ANAVHEOBA/trustwallet/pkg/apperror"
	"github.com/ANAVHEOBA/trustwallet/pkg/response"
)

// WalletHandler handles wallet lifecycle endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
	tokenSvc  ports.TokenService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, tokenSvc ports.TokenService) *WalletHandler {
	return &WalletHandler{
		walletSvc: walletSvc,
		tokenSvc:  tokenSvc,
	}
}

// Generate handles POST /api/v1/wallet/generate. The phrase is returned
// once and nothing is persisted.
func (h *WalletHandler) Generate(c *gin.Context) {
	gen, err := h.walletSvc.GenerateNewWallet()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.GenerateWalletResponse{
		SeedPhrase:    gen.SeedPhrase,
		WalletAddress: gen.Address,
		Message:       gen.Message,
	})
}

// Verify handles POST /api/v1/wallet/verify. It creates (or reclaims) a
// wallet from the phrase, mints a fresh owner id, and issues a session
// token bound to both.
func (h *WalletHandler) Verify(c *gin.Context) {
	var req dto.VerifyWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	userID := uuid.New()
	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), userID, req.SeedPhrase, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate(wallet.UserID, wallet.Address, "user")
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Created(c, dto.VerifyWalletResponse{
		Wallet: dto.ToWalletResponse(wallet),
		Token:  token,
		Expiry: expiresAt.Unix(),
	})
}

// Challenge handles POST /api/v1/wallet/challenge.
func (h *WalletHandler) Challenge(c *gin.Context) {
	var req dto.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	challenge, err := h.walletSvc.BuildChallenge(req.SeedPhrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ChallengeResponse{
		Indices: challenge.Indices,
		Options: challenge.Options,
	})
}

// ChallengeVerify handles POST /api/v1/wallet/challenge/verify.
func (h *WalletHandler) ChallengeVerify(c *gin.Context) {
	var req dto.ChallengeVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	selections := make([]domain.WordSelection, 0, len(req.Selections))
	for _, s := range req.Selections {
		selections = append(selections, domain.WordSelection{Index: s.Index, Word: s.Word})
	}

	ok, err := h.walletSvc.VerifyChallenge(c.Request.Context(), req.SeedPhrase, selections)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.Error(c, apperror.ErrChallengeFailed())
		return
	}

	response.OK(c, dto.ChallengeVerifyResponse{Verified: true})
}

// Import handles POST /api/v1/wallet/import.
func (h *WalletHandler) Import(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ImportWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletSvc.ImportWallet(c.Request.Context(), userID, req.SeedPhrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToWalletResponse(wallet))
}

// List handles GET /api/v1/wallet.
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallets, err := h.walletSvc.ListWallets(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	views := make([]dto.WalletResponse, 0, len(wallets))
	for i := range wallets {
		views = append(views, dto.ToWalletResponse(&wallets[i]))
	}

	response.OK(c, dto.WalletListResponse{Wallets: views, Count: len(views)})
}

// Logout handles POST /api/v1/wallet/:walletAddress/logout.
func (h *WalletHandler) Logout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	address := c.Param("walletAddress")
	if !dto.ValidWalletAddress(address) {
		response.Error(c, apperror.Validation("invalid wallet address"))
		return
	}

	if err := h.walletSvc.LogoutWallet(c.Request.Context(), userID, address); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Wallet logged out successfully")
}

// supportContact is where concierge transfer requests are routed.
const supportContact = "support@trustwallet.example"

// Transfer handles POST /api/v1/wallet/transfer. Transfers are handled
// by support staff; nothing is broadcast on-chain.
func (h *WalletHandler) Transfer(c *gin.Context) {
	if _, ok := middleware.UserID(c); !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	response.OK(c, dto.TransferResponse{
		Status:  "pending",
		Message: "Transfer requests are processed manually. Contact support with your request reference to complete it.",
		Contact: supportContact,
	})
}
