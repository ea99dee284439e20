package export

import (
	"fmt"
	"math"
	"time"
)

// Record kinds. An empty Type is treated as RecordFile.
const (
	RecordFile      = "file"
	RecordDirectory = "directory"
)

// Document is the top-level export object.
type Document struct {
	Project    string       `json:"project"`
	ExportDate string       `json:"exportDate"`
	TotalFiles int          `json:"totalFiles"`
	TotalSize  int64        `json:"totalSize"`
	Files      []FileRecord `json:"files"`
}

// FileRecord is one file (or directory) captured in the export.
type FileRecord struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Size    int64  `json:"size"`
	Type    string `json:"type,omitempty"`
}

// IsDirectory reports whether the record describes a directory rather than a file.
func (r FileRecord) IsDirectory() bool {
	return r.Type == RecordDirectory
}

// dateLayouts are tried in order. RFC 3339 covers both "Z" and numeric offsets.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ExportedAt parses ExportDate. The returned time keeps the offset written in
// the document; "Z" yields UTC.
func (d *Document) ExportedAt() (time.Time, error) {
	return ParseTimestamp(d.ExportDate)
}

// ParseTimestamp parses an ISO-8601 timestamp as written by the exporter.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// DisplayLayout is the format used when printing the export date.
const DisplayLayout = "2006-01-02 15:04:05"

// KB converts a byte count to kilobytes rounded to the nearest integer,
// halves rounding up.
func KB(bytes int64) int64 {
	return int64(math.Floor(float64(bytes)/1024 + 0.5))
}
