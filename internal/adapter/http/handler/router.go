package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ANAVHEOBA/trustwallet/internal/adapter/http/middleware"
	"github.com/ANAVHEOBA/trustwallet/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	MarketSvc      ports.MarketService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	v1 := r.Group("/api/v1")

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.TokenSvc)
	cryptoHandler := NewCryptoHandler(deps.MarketSvc)

	// --- Wallet lifecycle ---
	wallet := v1.Group("/wallet")
	{
		// Public: the phrase itself is the credential on these routes.
		wallet.POST("/generate", walletHandler.Generate)
		wallet.POST("/verify", walletHandler.Verify)
		wallet.POST("/challenge", walletHandler.Challenge)
		wallet.POST("/challenge/verify", walletHandler.ChallengeVerify)

		// Session-bound
		wallet.GET("", jwtAuth, walletHandler.List)
		wallet.POST("/import", jwtAuth, walletHandler.Import)
		wallet.POST("/:walletAddress/logout", jwtAuth, walletHandler.Logout)
		wallet.POST("/transfer", jwtAuth, walletHandler.Transfer)
	}

	// --- Market data & balances ---
	crypto := v1.Group("/crypto")
	{
		crypto.GET("/prices", cryptoHandler.Prices)
		crypto.GET("/:walletAddress/balances", jwtAuth, cryptoHandler.Balances)
		crypto.POST("/update-prices", jwtAuth, cryptoHandler.UpdatePrices)
	}

	return r
}
