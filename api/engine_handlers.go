package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wallet_monitor/internal/engine"
)

// EngineHandler serves the trade analysis and execution endpoints.
type EngineHandler struct {
	engine *engine.Engine
	logger *zap.Logger
}

// NewEngineHandler creates a new instance of EngineHandler.
func NewEngineHandler(eng *engine.Engine, logger *zap.Logger) *EngineHandler {
	return &EngineHandler{engine: eng, logger: logger.Named("EngineHandler")}
}

// RegisterEngineRoutes registers the trade and engine route groups under
// /api/v1.
func RegisterEngineRoutes(router *gin.Engine, eng *engine.Engine, logger *zap.Logger) {
	h := NewEngineHandler(eng, logger)

	v1 := router.Group("/api/v1")

	trade := v1.Group("/trade")
	{
		trade.POST("/analyze", h.AnalyzeHandler)
		trade.POST("/execute", h.ExecuteHandler)
		trade.GET("/profit/:entry/:exit/:amount", h.ProfitHandler)
	}

	v1.GET("/engine/status", h.StatusHandler)
}

// AnalyzeRequest is the body for an opportunity analysis.
type AnalyzeRequest struct {
	Asset  string  `json:"asset"`
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

// AnalyzeHandler scores a trading opportunity.
func (h *EngineHandler) AnalyzeHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "analysis", h.engine.AnalyzeOpportunity(req.Asset, req.Price, req.Volume))
}

// ExecuteRequest is the body for a trade execution.
type ExecuteRequest struct {
	Asset  string  `json:"asset"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
}

// ExecuteHandler records a trade.
func (h *EngineHandler) ExecuteHandler(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "trade", h.engine.ExecuteTrade(req.Asset, req.Amount, req.Price))
}

// ProfitHandler computes realized profit for a closed position.
func (h *EngineHandler) ProfitHandler(c *gin.Context) {
	entry, ok := paramFloat(c, "entry")
	if !ok {
		return
	}
	exit, ok := paramFloat(c, "exit")
	if !ok {
		return
	}
	amount, ok := paramFloat(c, "amount")
	if !ok {
		return
	}
	respond(c, "profit", h.engine.Profit(entry, exit, amount))
}

// StatusHandler reports the engine's in-memory totals.
func (h *EngineHandler) StatusHandler(c *gin.Context) {
	respond(c, "engine", h.engine.Status())
}
