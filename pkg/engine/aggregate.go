package engine

import (
	"fmt"
	"math"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

// Verdict is the combined fraud assessment for one message. It is produced
// once, after every scorer slot for the message has resolved, and is
// immutable thereafter.
type Verdict struct {
	IsFraudulent   bool     `json:"is_fraudulent"`
	Confidence     float64  `json:"confidence"`
	TotalRiskScore float64  `json:"total_risk_score"`
	Reasons        []string `json:"reasons,omitempty"`
}

// Aggregate reduces per-scorer results into a single verdict. It is a pure
// one-shot reduction: the average score is compared against the threshold
// (inclusive), and reasons are concatenated in input order, each prefixed
// with the originating scorer's name. An empty input yields the zero,
// non-fraudulent verdict.
func Aggregate(results []message.ScoreResult, threshold float64) Verdict {
	if len(results) == 0 {
		return Verdict{}
	}

	var total float64
	var reasons []string
	for _, r := range results {
		total += r.Score
		for _, reason := range r.Reasons {
			reasons = append(reasons, fmt.Sprintf("[%s] %s", r.Scorer, reason))
		}
	}
	avg := total / float64(len(results))

	return Verdict{
		IsFraudulent:   avg >= threshold,
		Confidence:     round(avg*100, 2),
		TotalRiskScore: round(avg, 3),
		Reasons:        reasons,
	}
}

func round(v float64, places int) float64 {
	f := math.Pow10(places)
	return math.Round(v*f) / f
}
