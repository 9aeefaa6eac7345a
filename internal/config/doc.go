// Package config loads converter settings.
//
// Settings start from built-in defaults that reproduce the classic behaviour
// (read ./results, write ./lottery_results.csv), are overridden by an optional
// YAML file, then by EUROMILLIONS_* environment variables. A .env file in the
// working directory is loaded into the environment first if present.
// Command-line flags are applied last by package cli.
package config
