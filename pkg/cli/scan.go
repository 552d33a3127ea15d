package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/swiftwatch/swiftwatch/pkg/config"
	"github.com/swiftwatch/swiftwatch/pkg/engine"
	"github.com/swiftwatch/swiftwatch/pkg/message"
	"github.com/swiftwatch/swiftwatch/pkg/report"
	"github.com/swiftwatch/swiftwatch/pkg/scorer"
	"github.com/swiftwatch/swiftwatch/pkg/validate"
)

var (
	fileFlag = &cli.StringFlag{
		Name:  "file",
		Usage: "Path to a JSON batch file (omit to generate a batch inline)",
	}

	annotatedOutFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Path to write the annotated batch JSON (optional)",
	}

	reportDirFlag = &cli.StringFlag{
		Name:  "reports",
		Usage: "Directory to write the text reports into (optional)",
	}

	scanCmd = &cli.Command{
		Name:    "scan",
		Aliases: []string{"s"},
		Usage:   "Validate and fraud-score a batch of messages",
		UsageText: `swiftwatch scan --file batch.json --out annotated.json
   swiftwatch scan --reports ./out       # generate, score, and report inline`,
		Action: cmdScan,
		Flags: []cli.Flag{
			fileFlag,
			annotatedOutFlag,
			reportDirFlag,
		},
	}
)

// ScanResult is the machine-readable output of the scan command.
type ScanResult struct {
	Stats    report.Stats `json:"stats"`
	Duration string       `json:"duration"`
	Batch    string       `json:"batch,omitempty"`
	Reports  []string     `json:"reports,omitempty"`
}

func cmdScan(c *cli.Context) error {
	start := time.Now()
	cfg := getConfig(c)

	msgs, err := loadBatch(c, cfg.Conf)
	if err != nil {
		return err
	}

	valid := validate.Batch(msgs)
	slog.Debug("batch validated", "valid", valid, "total", len(msgs))

	coord := engine.NewCoordinator(newScorers(cfg.Conf), engine.Options{
		Workers:      cfg.Conf.Engine.Workers,
		Timeout:      cfg.Conf.Engine.Timeout(),
		Threshold:    cfg.Conf.Engine.Threshold,
		ThresholdSet: true,
	})
	msgs = coord.ProcessBatch(c.Context, msgs)

	res := &ScanResult{
		Stats:    report.Summarize(msgs),
		Duration: time.Since(start).Round(time.Millisecond).String(),
		Batch:    c.String(fileFlag.Name),
	}

	if out := c.String(annotatedOutFlag.Name); out != "" {
		if err := message.WriteFile(out, msgs); err != nil {
			return err
		}
	}

	if dir := c.String(reportDirFlag.Name); dir != "" {
		paths, err := writeReports(dir, msgs, cfg.Conf)
		if err != nil {
			return err
		}
		res.Reports = paths
	}

	report.PrintSummary(os.Stdout, msgs, cfg.Conf.Report.TopN)
	return encode(res)
}

func loadBatch(c *cli.Context, conf *config.Config) ([]*message.Message, error) {
	if path := c.String(fileFlag.Name); path != "" {
		return message.ReadFile(path)
	}
	gen := message.NewGenerator(nil, conf.Generator.Seed)
	return gen.Generate(conf.Generator.Count), nil
}

// newScorers builds the scorer registration list from config. Order matters:
// aggregated reasons follow it.
func newScorers(conf *config.Config) []scorer.Scorer {
	return []scorer.Scorer{
		scorer.NewAmount(),
		scorer.NewPattern(conf.Scorers.FlaggedPatterns, conf.Scorers.SuspiciousKeywords),
		scorer.NewGeographic(conf.Scorers.HighRiskCountries, conf.Scorers.MediumRiskCountries),
	}
}

func writeReports(dir string, msgs []*message.Message, conf *config.Config) ([]string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating report dir %s: %w", dir, err)
	}

	all := filepath.Join(dir, "all_transactions_report.txt")
	if err := report.WriteAllTransactions(all, msgs); err != nil {
		return nil, err
	}

	high := filepath.Join(dir, "high_value_transactions_report.txt")
	if err := report.WriteHighValue(high, msgs, conf.Report.HighValueThreshold); err != nil {
		return nil, err
	}

	slog.Info("reports written", "dir", dir)
	return []string{all, high}, nil
}
