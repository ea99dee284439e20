// Package extractor rebuilds an exported project on disk. A run loads the
// export document, prints a summary, writes every file record under the
// output directory and reports totals and next steps. Missing or malformed
// exports abort the run; a record that cannot be written is counted and
// skipped.
package extractor
