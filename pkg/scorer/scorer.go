// Package scorer implements rule-based fraud risk scorers for SWIFT-style
// messages. Every scorer is a pure function of the message fields: no shared
// mutable state, no I/O, and no error surfaced to the caller. Scores are
// always clamped to [0, 1]; a message a scorer cannot read contributes a
// zero score rather than a failure.
package scorer

import "github.com/swiftwatch/swiftwatch/pkg/message"

// Scorer is the contract every risk scorer satisfies. New scorers are added
// by implementing the interface and appending to the coordinator's
// registration list.
type Scorer interface {
	// Name identifies the scorer in results and aggregated reasons.
	Name() string
	// Analyze scores a single message. Implementations must not panic and
	// must not retain the message.
	Analyze(msg *message.Message) message.ScoreResult
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
