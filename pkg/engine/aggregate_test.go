package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

func TestAggregate_Empty(t *testing.T) {
	v := Aggregate(nil, 0.5)

	assert.False(t, v.IsFraudulent)
	assert.Zero(t, v.Confidence)
	assert.Zero(t, v.TotalRiskScore)
	assert.Empty(t, v.Reasons)
}

func TestAggregate_MeanAndThreshold(t *testing.T) {
	tests := []struct {
		name       string
		scores     []float64
		fraudulent bool
		confidence float64
		total      float64
	}{
		{"below threshold", []float64{0.3, 0.3, 0.3}, false, 30.0, 0.3},
		{"at threshold is inclusive", []float64{0.5, 0.5}, true, 50.0, 0.5},
		{"above threshold", []float64{0.9, 0.7, 0.8}, true, 80.0, 0.8},
		{"single result", []float64{0.4}, false, 40.0, 0.4},
		{"zero slot lowers average", []float64{0.9, 0.0}, false, 45.0, 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []message.ScoreResult
			for _, s := range tt.scores {
				results = append(results, message.ScoreResult{Scorer: "stub", Score: s})
			}

			v := Aggregate(results, 0.5)
			assert.Equal(t, tt.fraudulent, v.IsFraudulent)
			assert.InDelta(t, tt.confidence, v.Confidence, 1e-9)
			assert.InDelta(t, tt.total, v.TotalRiskScore, 1e-9)
		})
	}
}

func TestAggregate_Rounding(t *testing.T) {
	results := []message.ScoreResult{
		{Scorer: "a", Score: 0.1234},
		{Scorer: "b", Score: 0.2},
		{Scorer: "c", Score: 0.3},
	}
	// mean = 0.2078
	v := Aggregate(results, 0.5)

	assert.InDelta(t, 20.78, v.Confidence, 1e-9)
	assert.InDelta(t, 0.208, v.TotalRiskScore, 1e-9)
}

func TestAggregate_ReasonOrderAndPrefix(t *testing.T) {
	results := []message.ScoreResult{
		{Scorer: "amount", Score: 0.5, Reasons: []string{"first", "second"}},
		{Scorer: "pattern", Score: 0.2},
		{Scorer: "geographic", Score: 0.1, Reasons: []string{"third"}},
	}

	v := Aggregate(results, 0.5)

	require.Len(t, v.Reasons, 3)
	assert.Equal(t, "[amount] first", v.Reasons[0])
	assert.Equal(t, "[amount] second", v.Reasons[1])
	assert.Equal(t, "[geographic] third", v.Reasons[2])
}

func TestAggregate_CustomThreshold(t *testing.T) {
	results := []message.ScoreResult{{Scorer: "stub", Score: 0.4}}

	assert.False(t, Aggregate(results, 0.5).IsFraudulent)
	assert.True(t, Aggregate(results, 0.3).IsFraudulent)
}

func TestAggregate_Deterministic(t *testing.T) {
	results := []message.ScoreResult{
		{Scorer: "a", Score: 0.31, Reasons: []string{"x"}},
		{Scorer: "b", Score: 0.77, Reasons: []string{"y", "z"}},
	}

	first := Aggregate(results, 0.5)
	second := Aggregate(results, 0.5)
	assert.Equal(t, first, second)
}
