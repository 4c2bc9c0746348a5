package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wallet_monitor/internal/service"
)

// defaultTransactionLimit bounds the transaction list when the query
// parameter is absent or unusable.
const defaultTransactionLimit = 10

// WalletHandler serves the wallet aggregation endpoints. Every endpoint
// answers 200: provider failures surface as status-field degradation inside
// the envelope, never as HTTP errors.
type WalletHandler struct {
	walletService service.WalletAggregator
	logger        *zap.Logger
}

// NewWalletHandler creates a new instance of WalletHandler.
func NewWalletHandler(ws service.WalletAggregator, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{walletService: ws, logger: logger.Named("WalletHandler")}
}

// RegisterWalletRoutes registers the wallet route group under /api/v1.
func RegisterWalletRoutes(router *gin.Engine, ws service.WalletAggregator, logger *zap.Logger) {
	h := NewWalletHandler(ws, logger)

	wallet := router.Group("/api/v1/wallet")
	{
		wallet.GET("/balance", h.BalanceHandler)
		wallet.GET("/tokens", h.TokensHandler)
		wallet.GET("/nfts", h.NFTsHandler)
		wallet.GET("/transactions", h.TransactionsHandler)
		wallet.GET("/monitor", h.MonitorHandler)
		wallet.GET("/value", h.ValueHandler)
		wallet.GET("/profit", h.ProfitHandler)
		wallet.GET("/status", h.StatusHandler)
		wallet.GET("/history", h.HistoryHandler)
	}
}

// BalanceHandler returns the wallet balance envelope.
func (h *WalletHandler) BalanceHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletService.Balance(c.Request.Context()))
}

// TokensHandler returns the token holdings envelope.
func (h *WalletHandler) TokensHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletService.Tokens(c.Request.Context()))
}

// NFTsHandler returns the NFT holdings envelope.
func (h *WalletHandler) NFTsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletService.NFTs(c.Request.Context()))
}

// TransactionsHandler returns the recent transactions envelope. The limit
// query parameter is optional; garbage values fall back to the default.
func (h *WalletHandler) TransactionsHandler(c *gin.Context) {
	limit := defaultTransactionLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	c.JSON(http.StatusOK, h.walletService.Transactions(c.Request.Context(), limit))
}

// MonitorHandler runs one monitoring pass and returns the snapshot.
func (h *WalletHandler) MonitorHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletService.Monitor(c.Request.Context()))
}

// ValueHandler returns the wallet value summary.
func (h *WalletHandler) ValueHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletService.WalletValue(c.Request.Context()))
}

// ProfitHandler returns the accumulated profit report.
func (h *WalletHandler) ProfitHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletService.TrackProfit())
}

// StatusHandler returns the aggregator's in-memory state.
func (h *WalletHandler) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.walletService.Status())
}

// HistoryHandler returns the balance history ring buffer, oldest first.
func (h *WalletHandler) HistoryHandler(c *gin.Context) {
	history := h.walletService.History()
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"history":   history,
		"count":     len(history),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
