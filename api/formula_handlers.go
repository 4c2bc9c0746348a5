package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wallet_monitor/internal/formula"
)

// FormulaHandler serves the stateless formula endpoints.
type FormulaHandler struct {
	logger *zap.Logger
}

// NewFormulaHandler creates a new instance of FormulaHandler.
func NewFormulaHandler(logger *zap.Logger) *FormulaHandler {
	return &FormulaHandler{logger: logger.Named("FormulaHandler")}
}

// RegisterFormulaRoutes registers the geometry, hermetic, quantum and ritual
// route groups under /api/v1.
func RegisterFormulaRoutes(router *gin.Engine, logger *zap.Logger) {
	h := NewFormulaHandler(logger)

	v1 := router.Group("/api/v1")

	geometry := v1.Group("/geometry")
	{
		geometry.GET("/fibonacci/:price", h.FibonacciHandler)
		geometry.POST("/flower-of-life", h.FlowerOfLifeHandler)
		geometry.GET("/platonic-solids", h.PlatonicSolidsHandler)
	}

	hermetic := v1.Group("/hermetic")
	{
		hermetic.POST("/mentalism", h.MentalismHandler)
		hermetic.GET("/correspondence/:macro/:micro", h.CorrespondenceHandler)
		hermetic.GET("/vibration/:frequency", h.VibrationHandler)
		hermetic.GET("/polarity/:bull/:bear", h.PolarityHandler)
		hermetic.POST("/rhythm", h.RhythmHandler)
	}

	quantum := v1.Group("/quantum")
	{
		quantum.POST("/observer-effect", h.ObserverEffectHandler)
		quantum.GET("/superposition/:a/:b", h.SuperpositionHandler)
		quantum.GET("/entanglement/:a/:b", h.EntanglementHandler)
	}

	ritual := v1.Group("/ritual")
	{
		ritual.POST("/intention", h.IntentionHandler)
		ritual.POST("/gratitude", h.GratitudeHandler)
		ritual.POST("/protection", h.ProtectionHandler)
		ritual.POST("/manifestation", h.ManifestationHandler)
	}
}

// FibonacciHandler returns golden ratio levels for a price.
func (h *FormulaHandler) FibonacciHandler(c *gin.Context) {
	price, ok := paramFloat(c, "price")
	if !ok {
		return
	}
	respond(c, "fibonacci", gin.H{
		"price":        price,
		"levels":       formula.GoldenRatioLevels(price),
		"golden_ratio": formula.Phi,
	})
}

// FlowerOfLifeRequest is the body for a Flower of Life analysis.
type FlowerOfLifeRequest struct {
	Data []float64 `json:"data"`
}

// FlowerOfLifeHandler scores a price sequence against the Flower of Life
// pattern.
func (h *FormulaHandler) FlowerOfLifeHandler(c *gin.Context) {
	var req FlowerOfLifeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "pattern", formula.FlowerOfLifePattern(req.Data))
}

// PlatonicSolidsHandler returns the platonic solid table.
func (h *FormulaHandler) PlatonicSolidsHandler(c *gin.Context) {
	respond(c, "solids", formula.PlatonicSolids)
}

// MentalismRequest is the body for a mentalism reading.
type MentalismRequest struct {
	Intention       string  `json:"intention"`
	MarketSentiment float64 `json:"market_sentiment"`
}

// MentalismHandler reads an intention against market sentiment.
func (h *FormulaHandler) MentalismHandler(c *gin.Context) {
	var req MentalismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "reading", formula.Mentalism(req.Intention, req.MarketSentiment))
}

// CorrespondenceHandler relates a macro level to a micro level.
func (h *FormulaHandler) CorrespondenceHandler(c *gin.Context) {
	macro, ok := paramFloat(c, "macro")
	if !ok {
		return
	}
	micro, ok := paramFloat(c, "micro")
	if !ok {
		return
	}
	respond(c, "reading", formula.Correspondence(macro, micro))
}

// VibrationHandler derives a wavelength reading from a frequency.
func (h *FormulaHandler) VibrationHandler(c *gin.Context) {
	frequency, ok := paramFloat(c, "frequency")
	if !ok {
		return
	}
	respond(c, "reading", formula.Vibration(frequency))
}

// PolarityHandler splits bull and bear forces into percentages.
func (h *FormulaHandler) PolarityHandler(c *gin.Context) {
	bull, ok := paramFloat(c, "bull")
	if !ok {
		return
	}
	bear, ok := paramFloat(c, "bear")
	if !ok {
		return
	}
	respond(c, "reading", formula.Polarity(bull, bear))
}

// RhythmRequest is the body for a rhythm reading.
type RhythmRequest struct {
	Prices []float64 `json:"prices"`
}

// RhythmHandler counts up and down movements in a price sequence.
func (h *FormulaHandler) RhythmHandler(c *gin.Context) {
	var req RhythmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "reading", formula.Rhythm(req.Prices))
}

// ObserverEffectRequest is the body for an observer effect reading.
type ObserverEffectRequest struct {
	Observation string         `json:"observation"`
	MarketState map[string]any `json:"market_state"`
}

// ObserverEffectHandler records an observation against the market state.
func (h *FormulaHandler) ObserverEffectHandler(c *gin.Context) {
	var req ObserverEffectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "reading", formula.ObserverEffect(req.Observation, req.MarketState))
}

// SuperpositionHandler weighs two potential market states.
func (h *FormulaHandler) SuperpositionHandler(c *gin.Context) {
	a, ok := paramFloat(c, "a")
	if !ok {
		return
	}
	b, ok := paramFloat(c, "b")
	if !ok {
		return
	}
	respond(c, "reading", formula.Superposition(a, b))
}

// EntanglementHandler correlates two asset prices.
func (h *FormulaHandler) EntanglementHandler(c *gin.Context) {
	a, ok := paramFloat(c, "a")
	if !ok {
		return
	}
	b, ok := paramFloat(c, "b")
	if !ok {
		return
	}
	respond(c, "reading", formula.Entanglement(a, b))
}

// IntentionRequest is the body for an intention-setting ritual.
type IntentionRequest struct {
	Goal        string `json:"goal"`
	Affirmation string `json:"affirmation"`
}

// IntentionHandler builds an intention-setting record.
func (h *FormulaHandler) IntentionHandler(c *gin.Context) {
	var req IntentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "ritual", formula.Intention(req.Goal, req.Affirmation))
}

// GratitudeRequest is the body for a gratitude ritual.
type GratitudeRequest struct {
	GratitudeFor string `json:"gratitude_for"`
}

// GratitudeHandler builds a gratitude record.
func (h *FormulaHandler) GratitudeHandler(c *gin.Context) {
	var req GratitudeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "ritual", formula.Gratitude(req.GratitudeFor))
}

// ProtectionRequest is the body for a protection ritual.
type ProtectionRequest struct {
	Entity         string `json:"entity"`
	ProtectionType string `json:"protection_type"`
}

// ProtectionHandler builds a protection record.
func (h *FormulaHandler) ProtectionHandler(c *gin.Context) {
	var req ProtectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "ritual", formula.Protection(req.Entity, req.ProtectionType))
}

// ManifestationRequest is the body for a manifestation ritual.
type ManifestationRequest struct {
	Desire        string `json:"desire"`
	Visualization string `json:"visualization"`
	Action        string `json:"action"`
}

// ManifestationHandler builds a manifestation record.
func (h *FormulaHandler) ManifestationHandler(c *gin.Context) {
	var req ManifestationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	respond(c, "ritual", formula.Manifestation(req.Desire, req.Visualization, req.Action))
}
