// Package stats analyzes a history of EuroMillions draws.
//
// Draws are taken in file order, which is treated as chronological. The
// analysis covers how often each number was drawn, how many draws ago each
// number last appeared, hot and cold numbers over a recent window, and simple
// shape patterns of the main numbers (consecutive runs, odd/even balance and
// sum buckets). Main numbers range over 1-50 and lucky stars over 1-12;
// values outside those ranges are ignored.
package stats
