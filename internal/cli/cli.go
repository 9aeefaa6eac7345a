package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pfrederiksen/euromillions-csv/internal/config"
	"github.com/pfrederiksen/euromillions-csv/internal/convert"
	"github.com/pfrederiksen/euromillions-csv/internal/extract"
	"github.com/pfrederiksen/euromillions-csv/internal/logger"
	"github.com/spf13/cobra"
)

const ExitError = 1

var (
	flagConfig     string
	flagInputDir   string
	flagOutput     string
	flagExtensions []string
	flagMatcher    string
	flagNoSort     bool
	flagFormat     string
	flagLogLevel   string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "euromillions-csv",
		Short: "Convert saved EuroMillions result pages to CSV",
		Long: `A CLI tool to extract EuroMillions draw results from saved result pages.
Reads every .html/.htm snapshot in the input directory and writes one CSV file
with the date, five balls and two lucky stars of each draw.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvert,
	}

	// Shared flags
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json (stats also accepts html)")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Conversion flags
	cmd.Flags().StringVar(&flagInputDir, "input-dir", config.DefaultInputDir, "Directory of saved result pages")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", config.DefaultOutput, "CSV file to write")
	cmd.Flags().StringSliceVar(&flagExtensions, "ext", config.DefaultExtensions, "File extensions to read")
	cmd.Flags().StringVar(&flagMatcher, "matcher", config.DefaultMatcher, "Page format: source (view-source snapshot) or dom (plain page)")
	cmd.Flags().BoolVar(&flagNoSort, "no-sort", false, "Process files in directory order instead of by name")

	cmd.AddCommand(newStatsCmd())

	return cmd
}

// loadConfig merges defaults, the config file, the environment and any
// flags set on cmd, then configures the default logger
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir = flagInputDir
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("ext") {
		cfg.Extensions = flagExtensions
	}
	if flags.Changed("matcher") {
		cfg.Matcher = flagMatcher
	}
	if flags.Changed("no-sort") {
		cfg.Sort = !flagNoSort
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flagVerbose {
		cfg.LogLevel = string(logger.LevelDebug)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	return cfg, nil
}

// parseFormat accepts text, json and any extra formats the command supports
func parseFormat(s string, extra ...OutputFormat) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	allowed := append([]OutputFormat{FormatText, FormatJSON}, extra...)
	if !slices.Contains(allowed, format) {
		names := make([]string, len(allowed))
		for i, f := range allowed {
			names[i] = string(f)
		}
		return "", fmt.Errorf("invalid format: %s (must be one of %s)", s, strings.Join(names, ", "))
	}
	return format, nil
}

// runConvert is the main command logic
func runConvert(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	matcher, err := extract.MatcherFor(cfg.Matcher)
	if err != nil {
		return err
	}

	logger.Debug("Starting conversion", logger.Fields{
		"input_dir":  cfg.InputDir,
		"output":     cfg.Output,
		"extensions": cfg.Extensions,
		"matcher":    cfg.Matcher,
		"sort":       cfg.Sort,
	})

	summary, err := convert.Run(convert.Options{
		InputDir:   cfg.InputDir,
		Output:     cfg.Output,
		Extensions: cfg.Extensions,
		Sort:       cfg.Sort,
		Matcher:    matcher,
		Log:        logger.Default(),
	})
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	return WriteSummary(cmd.OutOrStdout(), summary, format)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
