// Package convert drives a batch conversion of result snapshots to CSV.
//
// Run lists the snapshot files of an input directory, extracts the draws of
// each file in turn, and writes all of them to a single CSV file. Unreadable
// files are logged and skipped. Failing to create or write the output aborts
// the run with an *OutputError.
package convert
