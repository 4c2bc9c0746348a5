package formula

import "math"

// ObserverEffectReading records that observation itself shifts the system.
type ObserverEffectReading struct {
	Principle           string         `json:"principle"`
	Observation         string         `json:"observation"`
	MarketStateBefore   map[string]any `json:"market_state_before"`
	ConsciousnessImpact string         `json:"consciousness_impact"`
	Action              string         `json:"action"`
}

// SuperpositionReading weighs two potential market states.
type SuperpositionReading struct {
	Principle      string  `json:"principle"`
	OptionA        float64 `json:"option_a"`
	OptionB        float64 `json:"option_b"`
	ProbabilityA   float64 `json:"probability_a"`
	ProbabilityB   float64 `json:"probability_b"`
	Interpretation string  `json:"interpretation"`
}

// EntanglementReading correlates two asset prices.
type EntanglementReading struct {
	Principle      string  `json:"principle"`
	Asset1         float64 `json:"asset1"`
	Asset2         float64 `json:"asset2"`
	Correlation    float64 `json:"correlation"`
	Interpretation string  `json:"interpretation"`
}

// ObserverEffect reads an observation against the market state it was made in.
func ObserverEffect(observation string, marketState map[string]any) ObserverEffectReading {
	return ObserverEffectReading{
		Principle:           "observer_effect",
		Observation:         observation,
		MarketStateBefore:   marketState,
		ConsciousnessImpact: "Positive intention creates positive outcomes",
		Action:              "Maintain positive, focused consciousness",
	}
}

// Superposition assigns probabilities to two candidate states in proportion
// to their weights. A non-positive total collapses to an even 0.5/0.5.
func Superposition(optionA, optionB float64) SuperpositionReading {
	probA, probB := 0.5, 0.5
	if total := optionA + optionB; total > 0 {
		probA = optionA / total
		probB = optionB / total
	}
	return SuperpositionReading{
		Principle:      "superposition",
		OptionA:        optionA,
		OptionB:        optionB,
		ProbabilityA:   probA,
		ProbabilityB:   probB,
		Interpretation: "Market exists in multiple states until observation",
	}
}

// Entanglement scores how tightly two asset prices track each other:
// 1 - |p1-p2|/max(p1,p2). Equal prices, including two zeros, correlate
// perfectly at 1.
func Entanglement(asset1, asset2 float64) EntanglementReading {
	correlation := 1.0
	if m := math.Max(asset1, asset2); m != 0 {
		correlation = 1 - math.Abs(asset1-asset2)/m
	}
	return EntanglementReading{
		Principle:      "entanglement",
		Asset1:         asset1,
		Asset2:         asset2,
		Correlation:    correlation,
		Interpretation: "Assets are entangled - movements affect each other",
	}
}
