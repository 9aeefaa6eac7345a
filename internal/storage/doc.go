// Package storage provides filesystem access for result snapshots and CSV output.
//
// The storage package enumerates saved result pages in an input directory,
// filtering by extension, and reads them for extraction. It also creates the
// output file, making its parent directory if needed. The default input
// location is ./results.
package storage
