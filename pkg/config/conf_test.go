package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOrCreate_CreatesDefaults(t *testing.T) {
	dir := t.TempDir()

	c, err := ReadOrCreate(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, c.Engine.Workers)
	assert.Equal(t, 5*time.Second, c.Engine.Timeout())
	assert.Equal(t, 0.5, c.Engine.Threshold)
	assert.Equal(t, 10, c.Generator.Count)
	assert.Equal(t, float64(50000), c.Report.HighValueThreshold)

	_, err = os.Stat(filepath.Join(dir, configFileName))
	assert.NoError(t, err)
}

func TestReadOrCreate_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	c := Default()
	c.Engine.Workers = 3
	c.Engine.TimeoutSeconds = 1
	c.Engine.Threshold = 0.75
	c.Scorers.HighRiskCountries = []string{"XX", "YY"}
	require.NoError(t, Save(dir, c))

	got, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Engine.Workers)
	assert.Equal(t, time.Second, got.Engine.Timeout())
	assert.Equal(t, 0.75, got.Engine.Threshold)
	assert.Equal(t, []string{"XX", "YY"}, got.Scorers.HighRiskCountries)
}

func TestReadOrCreate_MissingDirCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "conf")

	_, err := ReadOrCreate(dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestReadOrCreate_EmptyDir(t *testing.T) {
	_, err := ReadOrCreate("")
	assert.Error(t, err)
}

func TestReadOrCreate_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("engine: ["), 0600))

	_, err := ReadOrCreate(dir)
	assert.Error(t, err)
}

func TestSave_NilConfig(t *testing.T) {
	assert.Error(t, Save(t.TempDir(), nil))
	assert.Error(t, Save("", Default()))
}
