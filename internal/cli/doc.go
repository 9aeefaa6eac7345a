// Package cli implements the command-line interface for euromillions-csv.
//
// The cli package provides the Cobra-based CLI. The root command converts a
// directory of saved result pages into lottery_results.csv; the stats command
// analyzes a generated CSV. Settings come from package config and can be
// overridden per run with flags. Output is text or JSON.
package cli
