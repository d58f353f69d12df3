package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/finboard/forecast/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with an isolated settings path and returns stdout and stderr.
func run(t *testing.T, settingsPath string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("FORECAST_LOG_LEVEL", "")
	if settingsPath == "" {
		settingsPath = filepath.Join(t.TempDir(), "missing.toml")
	}
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--settings", settingsPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, _, err := run(t, "", "example", path)
	require.NoError(t, err)
	require.Contains(t, out, "Example snapshot written")
	return path
}

func TestProject_ExampleCSV(t *testing.T) {
	path := writeExample(t)
	out, _, err := run(t, "", "project", path, "--as-of", "2026-10", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Household,2026-10,24,")
}

func TestProject_MinimalDetailed(t *testing.T) {
	out, _, err := run(t, "", "project", "testdata/minimal.yaml", "--as-of", "2026-10-17", "--months", "3", "--format", "csv-monthly")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	// month 0 carries the starting balance with no change
	assert.True(t, strings.HasPrefix(lines[1], "0,2026-10,5000.00,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "1,2026-11,6600.00,"), lines[2])
	// the dated trip lands two months after the as-of month
	assert.True(t, strings.HasPrefix(lines[3], "2,2026-12,7300.00,3100.00,2400.00,700.00,"), lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "3,2027-01,8900.00,"), lines[4])
}

func TestProject_DefaultMonthsFromSettings(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(settings, []byte("[projection]\ndefault_months = 6\n\n[output]\nformat = \"csv\"\n"), 0o600))

	out, _, err := run(t, settings, "project", "testdata/minimal.yaml", "--as-of", "2026-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Minimal,2026-10,6,")
}

func TestProject_RejectsLongHorizon(t *testing.T) {
	_, _, err := run(t, "", "project", "testdata/minimal.yaml", "--months", "361")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 360")
}

func TestProject_UnsupportedFormat(t *testing.T) {
	_, _, err := run(t, "", "project", "testdata/minimal.yaml", "--format", "pdf")
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestProject_BadAsOf(t *testing.T) {
	_, _, err := run(t, "", "project", "testdata/minimal.yaml", "--as-of", "October")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --as-of")
}

func TestProject_OutDir(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "", "project", "testdata/minimal.yaml", "--as-of", "2026-10", "--format", "json", "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written: ")

	matches, err := filepath.Glob(filepath.Join(dir, "projection_json_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestProject_LogsAtRequestedLevel(t *testing.T) {
	_, stderr, err := run(t, "", "project", "testdata/minimal.yaml", "--as-of", "2026-10", "--months", "2", "--format", "summary", "--log-level", "debug", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[Minimal] month 1:")
	assert.Contains(t, stderr, "projected 2 months")
}

func TestFormatsCommand(t *testing.T) {
	out, _, err := run(t, "", "formats")
	require.NoError(t, err)
	for _, name := range output.AvailableFormatterNames() {
		assert.Contains(t, out, "  "+name+"\n")
	}
	assert.Contains(t, out, "csv-monthly -> detailed-csv")
}

func TestSettingsInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forecast", "settings.toml")

	out, _, err := run(t, path, "settings", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings written")

	_, _, err = run(t, path, "settings", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, _, err = run(t, path, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_months = 12")
	assert.Contains(t, out, `format = "console"`)
}

func TestProject_DefaultsToCurrentMonth(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2027, 2, 14, 18, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	out, _, err := run(t, "", "project", "testdata/minimal.yaml", "--months", "2", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Minimal,2027-02,2,")
}
