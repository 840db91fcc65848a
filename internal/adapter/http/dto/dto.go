package dto

import (
	"time"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
)

// GenerateWalletResponse is the response for wallet generation. The
// phrase is shown exactly once and never persisted in the clear.
type GenerateWalletResponse struct {
	SeedPhrase    string `json:"seedPhrase"`
	WalletAddress string `json:"walletAddress"`
	Message       string `json:"message"`
}

// VerifyWalletRequest is the request body for wallet creation from a
// seed phrase.
type VerifyWalletRequest struct {
	SeedPhrase string  `json:"seedPhrase" binding:"required"`
	Pin        *string `json:"pin,omitempty" binding:"omitempty,numeric,min=4,max=12"`
}

// WalletResponse is the sanitized wallet view. Seed material and PIN
// hashes never leave the service layer.
type WalletResponse struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	Name          string    `json:"name"`
	IsDefault     bool      `json:"isDefault"`
	IsVerified    bool      `json:"isVerified"`
	HasPin        bool      `json:"hasPin"`
	CreatedAt     time.Time `json:"createdAt"`
}

// VerifyWalletResponse is the response for wallet creation: the
// sanitized wallet plus a fresh session token.
type VerifyWalletResponse struct {
	Wallet WalletResponse `json:"wallet"`
	Token  string         `json:"token"`
	Expiry int64          `json:"expiry"` // Unix timestamp
}

// ChallengeRequest is the request body for building a recall challenge.
type ChallengeRequest struct {
	SeedPhrase string `json:"seedPhrase" binding:"required"`
}

// ChallengeResponse carries the challenged word positions and the
// flattened option pools (4 options per position, in index order).
type ChallengeResponse struct {
	Indices []int    `json:"indices"`
	Options []string `json:"options"`
}

// WordSelection is one submitted (position, word) answer.
type WordSelection struct {
	Index int    `json:"index" binding:"min=0"`
	Word  string `json:"word" binding:"required"`
}

// ChallengeVerifyRequest is the request body for answering a challenge.
type ChallengeVerifyRequest struct {
	SeedPhrase string          `json:"seedPhrase" binding:"required"`
	Selections []WordSelection `json:"selections" binding:"required,min=1,dive"`
}

// ChallengeVerifyResponse is the verification outcome.
type ChallengeVerifyResponse struct {
	Verified      bool   `json:"verified"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

// ImportWalletRequest is the request body for importing an existing
// wallet into the authenticated account.
type ImportWalletRequest struct {
	SeedPhrase string `json:"seedPhrase" binding:"required"`
}

// WalletListResponse wraps the owner's active wallets.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
	Count   int              `json:"count"`
}

// TransferRequest is the request body for a concierge transfer. No
// on-chain transaction is broadcast; the request is handed to support.
type TransferRequest struct {
	Symbol    string  `json:"symbol" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	ToAddress string  `json:"toAddress" binding:"required,wallet_addr"`
}

// TransferResponse acknowledges a concierge transfer request.
type TransferResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Contact string `json:"contact"`
}

// BalanceResponse is one symbol's holding with its market snapshot.
type BalanceResponse struct {
	Symbol         string    `json:"symbol"`
	Amount         float64   `json:"amount"`
	PriceUSD       float64   `json:"priceUsd"`
	Value          float64   `json:"value"`
	LastUpdated    time.Time `json:"lastUpdated"`
	MarketCap      float64   `json:"marketCap"`
	Volume24h      float64   `json:"volume24h"`
	PriceChange24h float64   `json:"priceChange24h"`
	Liquidity      float64   `json:"liquidity"`
}

// WalletBalancesResponse is a wallet's full priced ledger.
type WalletBalancesResponse struct {
	WalletAddress string            `json:"walletAddress"`
	Balances      []BalanceResponse `json:"balances"`
	TotalValue    float64           `json:"totalValue"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// PricesResponse is the current market snapshot for every tracked
// symbol.
type PricesResponse struct {
	Prices    map[string]domain.MarketMetrics `json:"prices"`
	Timestamp time.Time                       `json:"timestamp"`
}

// ToWalletResponse maps a domain wallet to its sanitized view.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:            w.ID.String(),
		WalletAddress: w.Address,
		Name:          w.Name,
		IsDefault:     w.IsDefault,
		IsVerified:    w.IsVerified,
		HasPin:        w.Security.HasPin,
		CreatedAt:     w.CreatedAt,
	}
}

// ToWalletBalancesResponse maps a priced ledger to its response shape.
func ToWalletBalancesResponse(w *domain.CryptoWallet) WalletBalancesResponse {
	balances := make([]BalanceResponse, 0, len(w.Balances))
	for _, b := range w.Balances {
		balances = append(balances, BalanceResponse{
			Symbol:         b.Symbol,
			Amount:         b.Amount,
			PriceUSD:       b.PriceUSD,
			Value:          b.Value,
			LastUpdated:    b.LastUpdated,
			MarketCap:      b.Metrics.MarketCap,
			Volume24h:      b.Metrics.Volume24h,
			PriceChange24h: b.Metrics.PriceChange24h,
			Liquidity:      b.Metrics.Liquidity,
		})
	}
	return WalletBalancesResponse{
		WalletAddress: w.Address,
		Balances:      balances,
		TotalValue:    w.TotalValue(),
		UpdatedAt:     w.UpdatedAt,
	}
}
