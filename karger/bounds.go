package karger

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// SuccessProbability is the lower bound 1/C(n,2) on the chance that a single
// contraction trial on an n-vertex graph returns a minimum cut.
// It is 1 for n <= 2.
func SuccessProbability(n int) float64 {
	if n <= 2 {
		return 1
	}

	return 1 / float64(combin.Binomial(n, 2))
}

// FailureProbability bounds the chance that none of trials independent trials
// finds a minimum cut: (1 - 1/C(n,2))^trials. It is 0 for n <= 2 and 1 for
// trials <= 0.
func FailureProbability(n, trials int) float64 {
	if trials <= 0 {
		return 1
	}
	p := SuccessProbability(n)
	if p >= 1 {
		return 0
	}

	return math.Exp(float64(trials) * math.Log1p(-p))
}

// RecommendedTrials returns the smallest t such that
// FailureProbability(n, t) <= 1 - confidence.
//
// Errors:
//   - ErrInvalidConfidence if confidence is not in (0,1).
//   - ErrTooFewVertices if n < 2.
func RecommendedTrials(n int, confidence float64) (int, error) {
	if !(confidence > 0 && confidence < 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfidence, confidence)
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	p := SuccessProbability(n)
	if p >= 1 {
		return 1, nil
	}
	// (1-p)^t <= 1-c  ⇔  t >= ln(1-c) / ln(1-p)
	t := int(math.Ceil(math.Log1p(-confidence) / math.Log1p(-p)))
	// guard against rounding at the boundary
	for t > 1 && FailureProbability(n, t-1) <= 1-confidence {
		t--
	}
	for FailureProbability(n, t) > 1-confidence {
		t++
	}

	return max(t, 1), nil
}
