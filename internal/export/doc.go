// Package export models the JSON project export consumed by the extractor:
// a document with project metadata and an ordered list of file records.
// It loads documents from disk, classifies failures as NotFoundError or
// ParseError, and can inspect a document against the embedded JSON Schema.
package export
