package formula

// The seven hermetic principles, each a pure reading over explicit inputs.

// MentalismReading is the principle of mentalism: all is mind.
type MentalismReading struct {
	Principle       string  `json:"principle"`
	Intention       string  `json:"intention"`
	Focus           string  `json:"focus"`
	MarketAlignment float64 `json:"market_alignment"`
	Action          string  `json:"action"`
}

// CorrespondenceReading is the principle of correspondence: as above, so below.
type CorrespondenceReading struct {
	Principle      string  `json:"principle"`
	MacroLevel     float64 `json:"macro_level"`
	MicroLevel     float64 `json:"micro_level"`
	Ratio          float64 `json:"correspondence_ratio"`
	Interpretation string  `json:"interpretation"`
}

// VibrationReading is the principle of vibration: everything vibrates.
type VibrationReading struct {
	Principle  string  `json:"principle"`
	Frequency  float64 `json:"frequency"`
	Wavelength float64 `json:"wavelength"`
	Resonance  string  `json:"resonance"`
	Action     string  `json:"action"`
}

// PolarityReading is the principle of polarity: everything has poles.
type PolarityReading struct {
	Principle    string  `json:"principle"`
	BullForce    float64 `json:"bull_force"`
	BearForce    float64 `json:"bear_force"`
	BalancePoint float64 `json:"balance_point"`
	MarketState  string  `json:"market_state"`
}

// RhythmReading is the principle of rhythm: everything moves in cycles.
type RhythmReading struct {
	Principle        string  `json:"principle"`
	UpMovements      int     `json:"up_movements,omitempty"`
	DownMovements    int     `json:"down_movements,omitempty"`
	CycleRatio       float64 `json:"cycle_ratio,omitempty"`
	Rhythm           string  `json:"rhythm,omitempty"`
	InsufficientData bool    `json:"insufficient_data,omitempty"`
}

// CauseEffectReading is the principle of cause and effect.
type CauseEffectReading struct {
	Principle     string  `json:"principle"`
	Cause         string  `json:"cause"`
	Effect        float64 `json:"effect"`
	Understanding string  `json:"understanding"`
	Action        string  `json:"action"`
}

// GenderReading is the principle of gender: active and receptive phases.
type GenderReading struct {
	Principle         string  `json:"principle"`
	MasculineActive   float64 `json:"masculine_active"`
	FeminineReceptive float64 `json:"feminine_receptive"`
	Balance           string  `json:"balance"`
	MarketState       string  `json:"market_state"`
}

// Mentalism reads an intention against current market sentiment.
func Mentalism(intention string, sentiment float64) MentalismReading {
	return MentalismReading{
		Principle:       "mentalism",
		Intention:       intention,
		Focus:           "Mental clarity and positive intention",
		MarketAlignment: sentiment,
		Action:          "Set clear intention before trading",
	}
}

// Correspondence relates a macro-scale level to a micro-scale one. A zero
// micro level yields a neutral ratio of 0.
func Correspondence(macro, micro float64) CorrespondenceReading {
	ratio := 0.0
	if micro != 0 {
		ratio = macro / micro
	}
	return CorrespondenceReading{
		Principle:      "correspondence",
		MacroLevel:     macro,
		MicroLevel:     micro,
		Ratio:          ratio,
		Interpretation: "Pattern repeats across scales",
	}
}

// Vibration derives a wavelength from a frequency. Zero frequency yields a
// zero wavelength.
func Vibration(frequency float64) VibrationReading {
	wavelength := 0.0
	if frequency != 0 {
		wavelength = 1 / frequency
	}
	return VibrationReading{
		Principle:  "vibration",
		Frequency:  frequency,
		Wavelength: wavelength,
		Resonance:  "Align with market frequency",
		Action:     "Trade with market rhythm, not against it",
	}
}

// Polarity splits bull and bear forces into percentages. When both are zero
// the split defaults to 50/50.
func Polarity(bull, bear float64) PolarityReading {
	bullPercent, bearPercent := 50.0, 50.0
	if total := bull + bear; total != 0 {
		bullPercent = bull / total * 100
		bearPercent = bear / total * 100
	}

	state := "bearish"
	if bullPercent > 50 {
		state = "bullish"
	}

	return PolarityReading{
		Principle:    "polarity",
		BullForce:    bullPercent,
		BearForce:    bearPercent,
		BalancePoint: 50,
		MarketState:  state,
	}
}

// Rhythm counts up and down movements in a price sequence. Fewer than two
// prices is insufficient to observe a movement.
func Rhythm(prices []float64) RhythmReading {
	if len(prices) < 2 {
		return RhythmReading{Principle: "rhythm", InsufficientData: true}
	}

	ups, downs := 0, 0
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			ups++
		} else if change < 0 {
			downs++
		}
	}

	denom := downs
	if denom < 1 {
		denom = 1
	}

	return RhythmReading{
		Principle:     "rhythm",
		UpMovements:   ups,
		DownMovements: downs,
		CycleRatio:    float64(ups) / float64(denom),
		Rhythm:        "Market oscillates between up and down",
	}
}

// CauseEffect records an observed effect against its stated cause.
func CauseEffect(cause string, effect float64) CauseEffectReading {
	return CauseEffectReading{
		Principle:     "cause_and_effect",
		Cause:         cause,
		Effect:        effect,
		Understanding: "Understand root causes of market movements",
		Action:        "Research fundamentals before trading",
	}
}

// Gender splits active and receptive forces into percentages, 50/50 when
// both are zero.
func Gender(masculine, feminine float64) GenderReading {
	mPercent, fPercent := 50.0, 50.0
	if total := masculine + feminine; total != 0 {
		mPercent = masculine / total * 100
		fPercent = feminine / total * 100
	}

	state := "receptive"
	if mPercent > 50 {
		state = "active"
	}

	return GenderReading{
		Principle:         "gender",
		MasculineActive:   mPercent,
		FeminineReceptive: fPercent,
		Balance:           "Optimal balance is 50/50",
		MarketState:       state,
	}
}
