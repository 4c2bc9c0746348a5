package engine

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestProfit(t *testing.T) {
	e := New(zap.NewNop())

	calc := e.Profit(100, 110, 2)
	if calc.Profit != 20 {
		t.Errorf("Profit = %v, want 20", calc.Profit)
	}
	if calc.ROIPercent != 10 {
		t.Errorf("ROIPercent = %v, want 10", calc.ROIPercent)
	}
	if math.Abs(calc.AdjustedProfit-22) > 1e-9 {
		t.Errorf("AdjustedProfit = %v, want 22", calc.AdjustedProfit)
	}
	if calc.Multiplier != profitMultiplier {
		t.Errorf("Multiplier = %v, want %v", calc.Multiplier, profitMultiplier)
	}

	calc = e.Profit(100, 90, 1)
	if math.Abs(calc.AdjustedProfit - -11) > 1e-9 {
		t.Errorf("AdjustedProfit = %v, want -11", calc.AdjustedProfit)
	}
	if math.Abs(calc.TotalProfits-11) > 1e-9 {
		t.Errorf("TotalProfits = %v, want 11", calc.TotalProfits)
	}
}

func TestProfitZeroEntry(t *testing.T) {
	e := New(zap.NewNop())
	calc := e.Profit(0, 10, 1)
	if calc.ROIPercent != 0 {
		t.Errorf("ROIPercent with zero entry = %v, want 0", calc.ROIPercent)
	}
}

func TestExecuteTradeRecords(t *testing.T) {
	e := New(zap.NewNop())

	trade := e.ExecuteTrade("SOL", 2, 150)
	if trade.Status != "EXECUTED" {
		t.Errorf("Status = %q, want EXECUTED", trade.Status)
	}
	if trade.Intention.Practice != "intention_setting" {
		t.Errorf("Intention.Practice = %q", trade.Intention.Practice)
	}

	e.ExecuteTrade("BONK", 1000, 0.00002)
	status := e.Status()
	if status.TradesExecuted != 2 {
		t.Errorf("TradesExecuted = %d, want 2", status.TradesExecuted)
	}
	if !status.Active {
		t.Error("Active = false, want true")
	}
}

func TestAnalyzeOpportunity(t *testing.T) {
	e := New(zap.NewNop())

	analysis := e.AnalyzeOpportunity("SOL", 100, 5000)
	if analysis.OpportunityScore <= 0 || analysis.OpportunityScore > 100 {
		t.Errorf("OpportunityScore = %v, want in (0, 100]", analysis.OpportunityScore)
	}
	if len(analysis.SacredGeometry.FibonacciLevels) != 5 {
		t.Errorf("FibonacciLevels = %d entries, want 5", len(analysis.SacredGeometry.FibonacciLevels))
	}
	if analysis.EthicalAlignment.Alignment != "ALIGNED" {
		t.Errorf("Alignment = %q, want ALIGNED", analysis.EthicalAlignment.Alignment)
	}

	total := analysis.QuantumAnalysis.ProbabilityA + analysis.QuantumAnalysis.ProbabilityB
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", total)
	}
}

func TestStatusEmpty(t *testing.T) {
	e := New(zap.NewNop())
	status := e.Status()
	if status.TradesExecuted != 0 || status.TotalProfit != 0 || status.AverageProfitPerTrade != 0 {
		t.Errorf("fresh engine status = %+v, want zeros", status)
	}
}
