package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftwatch/swiftwatch/pkg/logging"
	"github.com/swiftwatch/swiftwatch/pkg/message"
)

func TestMain(m *testing.M) {
	logging.SetDefaultCLILogger("error")
	os.Exit(m.Run())
}

func TestNewApp(t *testing.T) {
	app := newApp()

	require.NotNil(t, app)
	assert.Equal(t, appName, app.Name)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "scan")
}

func TestAppRun_GenerateAndScan(t *testing.T) {
	tmp := t.TempDir()
	batchFile := filepath.Join(tmp, "batch.json")
	annotatedFile := filepath.Join(tmp, "annotated.json")
	reportDir := filepath.Join(tmp, "reports")

	app := newApp()
	err := app.Run([]string{appName, "--config", tmp,
		"generate", "--out", batchFile, "--count", "12", "--seed", "42"})
	require.NoError(t, err)

	msgs, err := message.ReadFile(batchFile)
	require.NoError(t, err)
	assert.Len(t, msgs, 12)

	app = newApp()
	err = app.Run([]string{appName, "--config", tmp,
		"scan", "--file", batchFile, "--out", annotatedFile, "--reports", reportDir})
	require.NoError(t, err)

	annotated, err := message.ReadFile(annotatedFile)
	require.NoError(t, err)
	require.Len(t, annotated, 12)
	for _, m := range annotated {
		assert.NotEmpty(t, m.FraudStatus)
		assert.NotEmpty(t, m.ValidationStatus)
		assert.Len(t, m.FraudAnalysis, 3)
	}

	for _, name := range []string{"all_transactions_report.txt", "high_value_transactions_report.txt"} {
		_, err := os.Stat(filepath.Join(reportDir, name))
		assert.NoError(t, err, name)
	}
}

func TestAppRun_ScanMissingFile(t *testing.T) {
	tmp := t.TempDir()

	app := newApp()
	err := app.Run([]string{appName, "--config", tmp,
		"scan", "--file", filepath.Join(tmp, "nope.json")})
	assert.Error(t, err)
}
