package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/domain"
)

const scenariosFile = "../../examples/scenarios.yaml"

// execute runs the root command with args and returns what it wrote.
// Package-level flag variables are reset first since cobra keeps them
// between executions.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	outputFormat = "console"
	debugMode = false
	saveReport = false
	fersSSAt62, fersInflation = 0, 2.5
	fersSurvivor, fersPath = string(domain.SurvivorNone), string(domain.PathStandard)
	sweepScenario = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "retirecalc", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{"calculate", "validate", "formulas", "version", "fers", "calpers", "barista", "fatfire", "sweep", "serve", "tui"} {
		assert.True(t, registered[name], "missing command %s", name)
	}
}

func TestCalculate_Console(t *testing.T) {
	out, err := execute(t, "calculate", scenariosFile)
	require.NoError(t, err)

	assert.Contains(t, out, "SCENARIO 1: FERS at 62 with full survivor")
	assert.Contains(t, out, "CalPERS classic at 55")
	assert.Contains(t, out, "$4,167")
	assert.Contains(t, out, "KEY ASSUMPTIONS:")
}

func TestCalculate_JSON(t *testing.T) {
	out, err := execute(t, "calculate", scenariosFile, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Reports []struct {
			Title      string `json:"title"`
			Calculator string `json:"calculator"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Reports, 7)
	assert.Equal(t, "fat_fire", doc.Reports[6].Calculator)
}

func TestCalculate_FailedScenario(t *testing.T) {
	out, err := execute(t, "calculate", "../../internal/config/testdata/calpers_too_young.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 scenarios failed")
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "SCENARIO 2: ok")
}

func TestCalculate_UnknownFormat(t *testing.T) {
	_, err := execute(t, "calculate", scenariosFile, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "pdf"`)
}

func TestCalculate_MissingFile(t *testing.T) {
	_, err := execute(t, "calculate", "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", scenariosFile)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (7 scenarios)")
}

func TestFERSCommand(t *testing.T) {
	out, err := execute(t, "fers", "--salary", "100000", "--service", "20", "--age", "62", "--survivor", "full")
	require.NoError(t, err)
	assert.Contains(t, out, "$19,800")
	assert.Contains(t, out, "$1,650")
}

func TestFERSCommand_InvalidSurvivor(t *testing.T) {
	_, err := execute(t, "fers", "--salary", "100000", "--service", "20", "--survivor", "most")
	require.Error(t, err)
	assert.True(t, calculation.IsValidationError(err))
}

func TestCalPERSCommand(t *testing.T) {
	out, err := execute(t, "calpers", "--compensation", "100000", "--service", "25", "--age", "55", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# CalPERS pension")
	assert.Contains(t, out, "$4,167")
}

func TestCalPERSCommand_BelowMinimumAge(t *testing.T) {
	_, err := execute(t, "calpers", "--compensation", "100000", "--service", "25", "--age", "49")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrBelowMinimumAge)
}

func TestBaristaCommand(t *testing.T) {
	out, err := execute(t, "barista", "--savings", "10000", "--expenses", "3000", "--part-time", "3500")
	require.NoError(t, err)
	assert.Contains(t, out, "Already there")
}

func TestFatFireCommand(t *testing.T) {
	out, err := execute(t, "fatfire",
		"--spending", "200000", "--savings", "500000", "--age", "40", "--target-age", "45",
		"--income", "400000", "--savings-rate", "25", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Fat FIRE number,\"$5,000,000\"")
	assert.Contains(t, out, "Year-by-year projection")
}

func TestFatFireCommand_TargetAgeOutOfRange(t *testing.T) {
	_, err := execute(t, "fatfire", "--spending", "200000", "--age", "40", "--target-age", "200000")
	require.Error(t, err)
	assert.True(t, calculation.IsValidationError(err))
	assert.Contains(t, err.Error(), "target_age")
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", scenariosFile,
		"--scenario", "CalPERS classic at 55", "--parameter", "retirement_age",
		"--min", "50", "--max", "55", "--steps", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "sensitivity to retirement age")
	assert.Contains(t, out, "Highest monthly benefit")
	assert.Contains(t, out, "$4,167")
}

func TestSweepCommand_UnknownScenario(t *testing.T) {
	_, err := execute(t, "sweep", scenariosFile, "--scenario", "nope", "--parameter", "retirement_age", "--min", "50", "--max", "55")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "nope" not found`)
}

func TestFormulasCommand(t *testing.T) {
	out, err := execute(t, "formulas")
	require.NoError(t, err)
	assert.Contains(t, out, "pepra_2_at_62")
	assert.Contains(t, out, "63+")
	assert.Contains(t, out, "2.418%")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "retirecalc dev")
}

func TestSaveWritesReportFile(t *testing.T) {
	chdirForTest(t, t.TempDir())

	_, err := execute(t, "calpers", "--compensation", "100000", "--service", "25", "--age", "55", "--format", "json", "--save")
	require.NoError(t, err)

	matches, err := filepath.Glob("retirement_report_*.json")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

// chdirForTest changes the working directory for the duration of the test
// and restores it on cleanup (equivalent to testing.T.Chdir, Go 1.24+).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
