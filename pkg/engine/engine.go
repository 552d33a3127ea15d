// Package engine runs registered risk scorers against message batches and
// aggregates their results into per-message fraud verdicts.
package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/swiftwatch/swiftwatch/pkg/message"
	"github.com/swiftwatch/swiftwatch/pkg/scorer"
)

const (
	// WorkersDefault bounds the shared scoring pool.
	WorkersDefault = 8
	// TimeoutDefault bounds each individual scorer invocation.
	TimeoutDefault = 5 * time.Second
	// ThresholdDefault is the average risk score at or above which a
	// message is marked fraudulent.
	ThresholdDefault = 0.5
)

// Options configures a Coordinator. The zero value of any field selects its
// default; a deliberate zero Threshold (flag everything) is kept by setting
// ThresholdSet.
type Options struct {
	Workers   int
	Timeout   time.Duration
	Threshold float64
	// ThresholdSet marks Threshold as explicitly configured, keeping a
	// configured zero distinct from unset.
	ThresholdSet bool
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = WorkersDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = TimeoutDefault
	}
	if o.Threshold == 0 && !o.ThresholdSet {
		o.Threshold = ThresholdDefault
	}
	return o
}

// Coordinator fans a batch of messages out to all registered scorers and
// fans the results back in per message. Scorers run on one shared bounded
// pool where the unit of work is a (message, scorer) pair; there is no
// nested pool per message.
type Coordinator struct {
	scorers []scorer.Scorer
	opts    Options
}

// NewCoordinator creates a coordinator over the given scorer registration
// list. The list order determines the order of per-scorer results and of
// aggregated reasons.
func NewCoordinator(scorers []scorer.Scorer, opts Options) *Coordinator {
	return &Coordinator{
		scorers: scorers,
		opts:    opts.withDefaults(),
	}
}

// DefaultScorers returns the standard registration list: amount, pattern,
// geographic.
func DefaultScorers() []scorer.Scorer {
	return []scorer.Scorer{
		scorer.NewAmount(),
		scorer.NewPattern(nil, nil),
		scorer.NewGeographic(nil, nil),
	}
}

// ProcessBatch scores every message with every registered scorer and
// annotates each message with its aggregated verdict. The returned slice
// preserves the input order regardless of task completion order, and an
// annotated message is produced for every input message: scorer failures
// and timeouts degrade to zero-score slots, never to missing records.
func (c *Coordinator) ProcessBatch(ctx context.Context, msgs []*message.Message) []*message.Message {
	start := time.Now()
	slog.Debug("scoring batch", "messages", len(msgs), "scorers", len(c.scorers), "workers", c.opts.Workers)

	// One result slot per (message, scorer) pair. Each task writes only its
	// own slot, so no locking is needed around the collected results.
	slots := make([][]message.ScoreResult, len(msgs))
	for i := range msgs {
		slots[i] = make([]message.ScoreResult, len(c.scorers))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i := range msgs {
		for j := range c.scorers {
			i, j := i, j
			g.Go(func() error {
				slots[i][j] = c.score(ctx, msgs[i], c.scorers[j])
				return nil
			})
		}
	}
	// Tasks never return errors; failures are isolated to their slot.
	_ = g.Wait()

	fraudulent := 0
	for i, msg := range msgs {
		c.annotate(msg, slots[i])
		if msg.FraudStatus == message.FraudFraudulent {
			fraudulent++
		}
	}

	slog.Info("batch scored",
		"messages", len(msgs),
		"fraudulent", fraudulent,
		"duration", time.Since(start).Round(time.Millisecond).String())
	return msgs
}

// score runs one scorer against one message with a bounded wait. A slot that
// does not resolve within the timeout yields a synthetic zero-score result;
// the abandoned invocation may still finish in the background but its result
// is discarded. Scorers are pure and message-scoped, so a late writer cannot
// corrupt any other slot. A scorer that panics degrades to the same synthetic
// zero-score slot instead of taking down the batch.
func (c *Coordinator) score(ctx context.Context, msg *message.Message, s scorer.Scorer) message.ScoreResult {
	done := make(chan message.ScoreResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Warn("scorer panicked", "scorer", s.Name(), "message", msg.ID, "panic", r)
				done <- message.ScoreResult{Scorer: s.Name()}
			}
		}()
		done <- s.Analyze(msg)
	}()

	timer := time.NewTimer(c.opts.Timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		return res
	case <-timer.C:
		slog.Warn("scorer timed out", "scorer", s.Name(), "message", msg.ID, "timeout", c.opts.Timeout)
		return message.ScoreResult{Scorer: s.Name()}
	case <-ctx.Done():
		slog.Warn("scoring canceled", "scorer", s.Name(), "message", msg.ID)
		return message.ScoreResult{Scorer: s.Name()}
	}
}

func (c *Coordinator) annotate(msg *message.Message, results []message.ScoreResult) {
	verdict := Aggregate(results, c.opts.Threshold)

	msg.FraudStatus = message.FraudClean
	if verdict.IsFraudulent {
		msg.FraudStatus = message.FraudFraudulent
	}
	msg.FraudScore = verdict.Confidence
	msg.FraudReasons = verdict.Reasons
	msg.FraudAnalysis = results
}
