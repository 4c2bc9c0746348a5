// Package engine combines formula readings into trade analyses and keeps an
// in-memory record of executed trades. Nothing here touches an exchange:
// "executing" a trade appends a record to a slice and no order ever leaves
// the process.
package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"wallet_monitor/internal/formula"
)

// profitMultiplier is applied to every realized profit calculation.
const profitMultiplier = 1.1

// Trade is an in-memory record of an executed trade.
type Trade struct {
	Asset      string                  `json:"asset"`
	Amount     float64                 `json:"amount"`
	EntryPrice float64                 `json:"entry_price"`
	Timestamp  time.Time               `json:"timestamp"`
	Intention  formula.IntentionRecord `json:"intention"`
	Gratitude  formula.GratitudeRecord `json:"gratitude"`
	Status     string                  `json:"status"`
}

// GeometryReading is the sacred geometry slice of an opportunity analysis.
type GeometryReading struct {
	FibonacciLevels []float64 `json:"fibonacci_levels"`
	GoldenRatio     float64   `json:"golden_ratio"`
}

// OpportunityAnalysis is the combined reading for one asset.
type OpportunityAnalysis struct {
	Asset            string                         `json:"asset"`
	Price            float64                        `json:"price"`
	Volume           float64                        `json:"volume"`
	SacredGeometry   GeometryReading                `json:"sacred_geometry"`
	HermeticAnalysis formula.VibrationReading       `json:"hermetic_analysis"`
	QuantumAnalysis  formula.SuperpositionReading   `json:"quantum_analysis"`
	EthicalAlignment formula.EthicalAlignmentRecord `json:"ethical_alignment"`
	OpportunityScore float64                        `json:"opportunity_score"`
	Timestamp        time.Time                      `json:"timestamp"`
}

// ProfitCalc is the result of a realized profit calculation.
type ProfitCalc struct {
	EntryPrice     float64   `json:"entry_price"`
	ExitPrice      float64   `json:"exit_price"`
	Amount         float64   `json:"amount"`
	Profit         float64   `json:"profit"`
	ROIPercent     float64   `json:"roi_percent"`
	Multiplier     float64   `json:"multiplier"`
	AdjustedProfit float64   `json:"adjusted_profit"`
	TotalProfits   float64   `json:"total_profits"`
	Timestamp      time.Time `json:"timestamp"`
}

// Status summarizes the engine's in-memory state.
type Status struct {
	TradesExecuted        int       `json:"trades_executed"`
	TotalProfit           float64   `json:"total_profit"`
	AverageProfitPerTrade float64   `json:"average_profit_per_trade"`
	Active                bool      `json:"active"`
	Timestamp             time.Time `json:"timestamp"`
}

// Engine holds the trade and profit records. All mutation is serialized
// under a mutex; the records are process-lifetime only.
type Engine struct {
	logger *zap.Logger

	mu      sync.Mutex
	trades  []Trade
	profits []float64
}

// New creates an Engine.
func New(logger *zap.Logger) *Engine {
	return &Engine{logger: logger.Named("Engine")}
}

// AnalyzeOpportunity scores a trading opportunity from its price and volume.
func (e *Engine) AnalyzeOpportunity(asset string, price, volume float64) OpportunityAnalysis {
	levels := formula.GoldenRatioLevels(price)

	maxLevel := 0.0
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
	}
	score := 0.0
	if maxLevel > 0 {
		score = price / maxLevel * 100
	}

	shown := levels
	if len(shown) > 5 {
		shown = shown[:5]
	}

	return OpportunityAnalysis{
		Asset:            asset,
		Price:            price,
		Volume:           volume,
		SacredGeometry:   GeometryReading{FibonacciLevels: shown, GoldenRatio: formula.Phi},
		HermeticAnalysis: formula.Vibration(volume),
		QuantumAnalysis:  formula.Superposition(price*1.05, price*0.95),
		EthicalAlignment: formula.EthicalAlignment("Trade "+asset, true),
		OpportunityScore: score,
		Timestamp:        time.Now().UTC(),
	}
}

// ExecuteTrade records a trade in memory and returns the record.
func (e *Engine) ExecuteTrade(asset string, amount, price float64) Trade {
	trade := Trade{
		Asset:      asset,
		Amount:     amount,
		EntryPrice: price,
		Timestamp:  time.Now().UTC(),
		Intention:  formula.Intention("Profitable trade in "+asset, "I attract profitable opportunities with "+asset),
		Gratitude:  formula.Gratitude("Abundance, opportunity, and wisdom"),
		Status:     "EXECUTED",
	}

	e.mu.Lock()
	e.trades = append(e.trades, trade)
	e.mu.Unlock()

	e.logger.Info("Trade recorded",
		zap.String("asset", asset),
		zap.Float64("amount", amount),
		zap.Float64("price", price))
	return trade
}

// Profit computes realized profit for a closed position, applies the
// multiplier and accumulates the adjusted profit into the running total.
func (e *Engine) Profit(entry, exit, amount float64) ProfitCalc {
	profit := (exit - entry) * amount
	roi := 0.0
	if entry != 0 {
		roi = (exit - entry) / entry * 100
	}
	adjusted := profit * profitMultiplier

	e.mu.Lock()
	e.profits = append(e.profits, adjusted)
	total := 0.0
	for _, p := range e.profits {
		total += p
	}
	e.mu.Unlock()

	return ProfitCalc{
		EntryPrice:     entry,
		ExitPrice:      exit,
		Amount:         amount,
		Profit:         profit,
		ROIPercent:     roi,
		Multiplier:     profitMultiplier,
		AdjustedProfit: adjusted,
		TotalProfits:   total,
		Timestamp:      time.Now().UTC(),
	}
}

// Status reports the engine's trade and profit totals.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0.0
	for _, p := range e.profits {
		total += p
	}
	avg := 0.0
	if len(e.profits) > 0 {
		avg = total / float64(len(e.profits))
	}

	return Status{
		TradesExecuted:        len(e.trades),
		TotalProfit:           total,
		AverageProfitPerTrade: avg,
		Active:                true,
		Timestamp:             time.Now().UTC(),
	}
}
