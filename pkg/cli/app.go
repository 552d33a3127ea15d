// Package cli wires the message pipeline into a command line application:
// generate a batch, validate it, score it, and write the reports.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/swiftwatch/swiftwatch/pkg/config"
	"github.com/swiftwatch/swiftwatch/pkg/logging"
)

const (
	appName      = "swiftwatch"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	configDirFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the config directory (optional, defaults to $HOME/.swiftwatch)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	ConfigDir string
	Debug     bool
	Conf      *config.Config
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for fraud scoring of SWIFT-style transaction batches",
		Flags: []cli.Flag{
			debugFlag,
			configDirFlag,
			formatFlag,
		},
		Commands: []*cli.Command{
			generateCmd,
			scanCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			}

			f := c.String(formatFlag.Name)
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			dir := c.String(configDirFlag.Name)
			if dir == "" {
				dir = config.HomeDir(appName)
			}

			conf, err := config.ReadOrCreate(dir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				ConfigDir: dir,
				Debug:     c.Bool(debugFlag.Name),
				Conf:      conf,
			}
			return nil
		},
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
