package scorer

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

var (
	highAmount      = decimal.NewFromInt(10000)
	roundAmountStep = decimal.NewFromInt(1000)
	largeAmount     = decimal.NewFromInt(100000)
)

// Amount flags suspicious transaction magnitudes. Rules are additive and
// independently triggerable; the running total is clamped at the end.
type Amount struct{}

// NewAmount creates the amount risk scorer.
func NewAmount() *Amount {
	return &Amount{}
}

func (a *Amount) Name() string {
	return "amount"
}

func (a *Amount) Analyze(msg *message.Message) message.ScoreResult {
	res := message.ScoreResult{Scorer: a.Name()}

	amt, err := message.ParseAmount(msg.Amount)
	if err != nil {
		// Unparseable amounts degrade silently to a zero score.
		slog.Debug("amount not parseable", "message", msg.ID, "amount", msg.Amount, "error", err)
		return res
	}

	if amt.GreaterThan(highAmount) {
		res.Score += 0.3
		res.Reasons = append(res.Reasons, fmt.Sprintf("High amount transaction: %s", amt))
	}

	if amt.IsPositive() && amt.Mod(roundAmountStep).IsZero() {
		res.Score += 0.2
		res.Reasons = append(res.Reasons, fmt.Sprintf("Suspiciously round amount: %s", amt))
	}

	if amt.GreaterThan(largeAmount) && !amt.Equal(amt.Truncate(0)) {
		res.Score += 0.1
		res.Reasons = append(res.Reasons, "Large amount with unusual decimal precision")
	}

	res.Score = clamp(res.Score)
	return res
}
