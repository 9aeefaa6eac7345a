// Package draw provides the record type for a single EuroMillions draw result.
//
// A Draw always carries exactly five main-ball slots and two lucky-star slots.
// Missing numbers are kept as empty strings so every draw maps to a CSV row
// of the same width. The date label is taken verbatim from the source file name
// and is never parsed.
package draw
