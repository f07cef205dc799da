// Package report serializes annotation results. It provides delimited
// writers (TSV and CSV) for the result table itself and a markdown writer
// for the run summary.
package report
