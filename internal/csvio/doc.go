// Package csvio reads and writes draw results as CSV.
//
// Rows follow the fixed header from package draw, one row per draw, using the
// standard quoting rules of encoding/csv so the file opens cleanly in
// spreadsheet tools.
package csvio
