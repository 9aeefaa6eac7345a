package cli

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/euromillions-csv/internal/csvio"
	"github.com/pfrederiksen/euromillions-csv/internal/logger"
	"github.com/pfrederiksen/euromillions-csv/internal/stats"
	"github.com/spf13/cobra"
)

var (
	flagStatsInput string
	flagRecent     int
	flagTop        int
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Analyze a generated results CSV",
		Long: `Reads a CSV written by euromillions-csv and reports number frequencies,
overdue numbers, hot and cold numbers over recent draws, and draw patterns.`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	cmd.Flags().StringVarP(&flagStatsInput, "input", "i", "", "CSV file to analyze (defaults to the configured output)")
	cmd.Flags().IntVar(&flagRecent, "recent", 50, "Number of recent draws for hot/cold analysis (0 = all)")
	cmd.Flags().IntVar(&flagTop, "top", 10, "Number of entries to list per ranking in text output")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat, FormatHTML)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := flagStatsInput
	if path == "" {
		path = cfg.Output
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening results: %w", err)
	}
	defer f.Close()

	draws, err := csvio.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading results %s: %w", path, err)
	}
	logger.Info("Loaded draws", logger.Fields{"file": path, "draws": len(draws)})

	report, err := stats.Analyze(draws, flagRecent)
	if err != nil {
		return fmt.Errorf("analyzing results: %w", err)
	}

	return WriteReport(cmd.OutOrStdout(), report, format, flagTop)
}
