// Package formula is a stateless collection of market-reading formulas drawn
// from sacred geometry, the seven hermetic principles and quantum metaphors.
// Every function is pure: identical inputs yield identical outputs, nothing
// is retained between calls. Inputs that would divide by zero produce a
// neutral default instead of an error; sequences shorter than a formula's
// minimum produce an insufficient-data sentinel.
package formula

import "math"

// Phi is the golden ratio, (1+sqrt(5))/2.
var Phi = (1 + math.Sqrt(5)) / 2

// Fibonacci is the fixed table used for golden ratio level generation.
var Fibonacci = []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987}

// PlatonicSolids maps each solid to its face count.
var PlatonicSolids = map[string]int{
	"tetrahedron":  4,  // fire, initiation
	"cube":         6,  // earth, stability
	"octahedron":   8,  // air, balance
	"icosahedron":  20, // water, flow
	"dodecahedron": 12, // universe, wholeness
}

// PatternInsufficientData marks a sequence too short to analyze.
const PatternInsufficientData = "insufficient_data"

// flowerCircles is the number of circles in the Flower of Life pattern;
// sequences are analyzed in segments of this width.
const flowerCircles = 19

// FlowerPattern is the result of a Flower of Life analysis.
type FlowerPattern struct {
	Pattern        string  `json:"pattern"`
	HarmonyScore   float64 `json:"harmony_score,omitempty"`
	Interpretation string  `json:"interpretation,omitempty"`
}

// GoldenRatioLevels returns one support/resistance level per Fibonacci table
// entry: price scaled by Phi^(fib/10).
func GoldenRatioLevels(price float64) []float64 {
	levels := make([]float64, 0, len(Fibonacci))
	for _, fib := range Fibonacci {
		levels = append(levels, price*math.Pow(Phi, float64(fib)/10))
	}
	return levels
}

// FlowerOfLifePattern scores a sequence against the 19-circle Flower of Life
// pattern. Each full 19-sample segment contributes a harmony term 1-(std/mean)
// when its deviation is positive; a flat segment contributes nothing through
// the std>0 guard rather than dividing by zero.
func FlowerOfLifePattern(data []float64) FlowerPattern {
	if len(data) < 6 {
		return FlowerPattern{Pattern: PatternInsufficientData}
	}

	patternScore := 0.0
	for i := 0; i+flowerCircles <= len(data); i += flowerCircles {
		segment := data[i : i+flowerCircles]
		m := mean(segment)
		std := stddev(segment)
		if std > 0 && m != 0 {
			harmony := 1 - std/m
			if harmony > 0 {
				patternScore += harmony
			}
		}
	}

	segments := float64(len(data)-flowerCircles) / flowerCircles
	if segments < 1 {
		segments = 1
	}

	return FlowerPattern{
		Pattern:        "flower_of_life",
		HarmonyScore:   patternScore / segments,
		Interpretation: "Sacred pattern alignment",
	}
}

// VesicaPiscisRatio measures how far the ratio of two values sits from the
// Vesica Piscis constant sqrt(3)/2. Returns 0 when either value is zero.
func VesicaPiscisRatio(value1, value2 float64) float64 {
	if value1 == 0 || value2 == 0 {
		return 0
	}
	vesica := math.Sqrt(3) / 2
	return math.Abs(value1/value2 - vesica)
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// stddev is the population standard deviation.
func stddev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	m := mean(data)
	sumSq := 0.0
	for _, v := range data {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(data)))
}
