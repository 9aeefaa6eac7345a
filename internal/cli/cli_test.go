package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/euromillions-csv/internal/convert"
	"github.com/pfrederiksen/euromillions-csv/internal/draw"
	"github.com/pfrederiksen/euromillions-csv/internal/extract/extracttest"
	"github.com/pfrederiksen/euromillions-csv/internal/stats"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func snapshotDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	page := extracttest.SourcePage(
		extracttest.SourceSection([]string{"1", "2", "3", "4", "5"}, []string{"1", "2"}),
		extracttest.SourceSection([]string{"10", "20", "30", "40", "50"}, []string{"11", "12"}),
	)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-01-02.html"), []byte(page), 0644))
	return dir
}

func TestConvertCommand(t *testing.T) {
	input := snapshotDir(t)
	output := filepath.Join(t.TempDir(), "results.csv")

	stdout, stderr, err := run(t, "--input-dir", input, "--output", output)
	require.NoError(t, err)

	assert.Equal(t, "Wrote 2 draws from 1 files to "+output+"\n", stdout)
	assert.Contains(t, stderr, "Processing file")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Date,Ball 1,Ball 2,Ball 3,Ball 4,Ball 5,Lucky Star 1,Lucky Star 2\n"+
		"2024-01-02,10,20,30,40,50,11,12\n"+
		"2024-01-02,1,2,3,4,5,1,2\n", string(data))
}

func TestConvertCommand_JSON(t *testing.T) {
	input := snapshotDir(t)
	output := filepath.Join(t.TempDir(), "results.csv")

	stdout, _, err := run(t, "--input-dir", input, "-o", output, "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	var summary convert.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 2, summary.Draws)
	assert.Equal(t, 2, summary.Sections)
	assert.Equal(t, output, summary.Output)
}

func TestConvertCommand_ConfigFile(t *testing.T) {
	input := snapshotDir(t)
	output := filepath.Join(t.TempDir(), "from-config.csv")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "input_dir: " + input + "\noutput: " + output + "\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	_, stderr, err := run(t, "--config", cfgPath)
	require.NoError(t, err)

	assert.FileExists(t, output)
	assert.NotContains(t, stderr, "Processing file")
}

func TestConvertCommand_NoSortOverridesConfigFile(t *testing.T) {
	input := snapshotDir(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "input_dir: " + input + "\nsort: true\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	_, stderr, err := run(t, "--config", cfgPath, "-o", filepath.Join(t.TempDir(), "a.csv"), "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"sort":true`)

	_, stderr, err = run(t, "--config", cfgPath, "-o", filepath.Join(t.TempDir(), "b.csv"), "--verbose", "--no-sort")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"sort":false`)
	assert.NotContains(t, stderr, `"sort":true`)
}

func TestConvertCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"--format", "xml"}, "invalid format"},
		{"html summary", []string{"--format", "html"}, "invalid format"},
		{"bad matcher", []string{"--matcher", "xpath"}, "unknown matcher"},
		{"missing input", []string{"--input-dir", filepath.Join(os.TempDir(), "does-not-exist-euromillions")}, "opening input directory"},
		{"unexpected argument", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append(tt.args, "--output", filepath.Join(t.TempDir(), "out.csv"))...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStatsCommand(t *testing.T) {
	input := snapshotDir(t)
	output := filepath.Join(t.TempDir(), "results.csv")
	_, _, err := run(t, "--input-dir", input, "--output", output, "--log-level", "error")
	require.NoError(t, err)

	stdout, _, err := run(t, "stats", "--input", output, "--top", "3")
	require.NoError(t, err)

	assert.Contains(t, stdout, "BASIC STATISTICS")
	assert.Contains(t, stdout, "Draws analyzed: 2")
	assert.Contains(t, stdout, "HOT/COLD (last 2 draws)")
	assert.Contains(t, stdout, "Consecutive pairs: 1 (50.0%)")

	stdout, _, err = run(t, "stats", "-i", output, "--format", "json", "--recent", "1")
	require.NoError(t, err)

	var report stats.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 2, report.Draws)
	assert.Equal(t, 1, report.HotCold.Window)
}

func TestStatsCommand_HTML(t *testing.T) {
	input := snapshotDir(t)
	output := filepath.Join(t.TempDir(), "results.csv")
	_, _, err := run(t, "--input-dir", input, "--output", output, "--log-level", "error")
	require.NoError(t, err)

	stdout, _, err := run(t, "stats", "--input", output, "--format", "HTML", "--top", "3")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "<!DOCTYPE html>"))
	assert.Contains(t, stdout, "<p>Draws analyzed: 2</p>")
	assert.Contains(t, stdout, "<h2>Hot/cold (last 2 draws)</h2>")
	assert.Contains(t, stdout, "<tr><td>Consecutive pairs</td><td>1</td><td>50.0%</td></tr>")
	assert.Contains(t, stdout, "<tr><td>Within three decades</td><td>1</td><td>50.0%</td></tr>")
	assert.Contains(t, stdout, "<tr><td>Sum 0-24</td><td>1</td><td>50.0%</td></tr>")
	assert.Equal(t, 8, strings.Count(stdout, "<caption>"))
}

func TestStatsCommand_UsesConfiguredOutput(t *testing.T) {
	input := snapshotDir(t)
	output := filepath.Join(t.TempDir(), "results.csv")
	t.Setenv("EUROMILLIONS_OUTPUT", output)

	_, _, err := run(t, "--input-dir", input, "--log-level", "error")
	require.NoError(t, err)

	stdout, _, err := run(t, "stats")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "\nBASIC STATISTICS"))
}

func TestStatsCommand_MissingFile(t *testing.T) {
	_, _, err := run(t, "stats", "--input", filepath.Join(t.TempDir(), "missing.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening results")
}

func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	report, err := stats.Analyze(nil, 10)
	require.NoError(t, err)

	require.NoError(t, WriteReport(&buf, report, FormatText, 10))
	assert.Equal(t, "No draws found.\n", buf.String())
}

func TestWriteReport_HTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	report, err := stats.Analyze(nil, 10)
	require.NoError(t, err)

	require.NoError(t, WriteReport(&buf, report, FormatHTML, 10))
	assert.Contains(t, buf.String(), "<p>No draws found.</p>")
	assert.NotContains(t, buf.String(), "<table>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), "</html>"))
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	draws := []draw.Draw{
		{Date: "a", Main: [draw.MainCount]string{"40", "41", "44", "47", "49"}},
		{Date: "b", Main: [draw.MainCount]string{"5", "15", "25", "35", "45"}},
	}
	report, err := stats.Analyze(draws, 0)
	require.NoError(t, err)

	require.NoError(t, WriteReport(&buf, report, FormatText, 3))
	assert.Contains(t, buf.String(), "  Within three decades: 1 (50.0%)\n")
}

func TestWriteSummary_Unreadable(t *testing.T) {
	var buf bytes.Buffer

	err := WriteSummary(&buf, &convert.Summary{Output: "out.csv", Files: 3, Unreadable: 1, Draws: 4}, FormatText)

	require.NoError(t, err)
	assert.Equal(t, "Wrote 4 draws from 3 files to out.csv\nSkipped 1 unreadable files\n", buf.String())
}

func TestHeadTail(t *testing.T) {
	items := []int{1, 2, 3, 4}

	assert.Equal(t, []int{1, 2}, head(items, 2))
	assert.Equal(t, []int{3, 4}, tail(items, 2))
	assert.Equal(t, items, head(items, 10))
	assert.Equal(t, items, tail(items, -1))
	assert.Equal(t, 75, rangeStart("75-99"))
}
