// Package extract finds EuroMillions draw results in saved result pages.
//
// The default SourceMatcher works on browser "view-source" snapshots, where the
// page markup is rendered as HTML-escaped text wrapped in highlighting spans
// (for example `&lt;/ul&gt;`). DOMMatcher handles plain result pages through
// goquery. Both plug into Extractor, which owns the record rules: a section
// needs at least five main balls, only the first five balls and first two
// lucky stars are kept, and the draws of a file are returned last section first.
package extract
