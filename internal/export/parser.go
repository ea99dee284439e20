package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads and decodes the export document at path.
//
// A missing file yields *NotFoundError. Content that is not JSON, or JSON
// that cannot be mapped onto Document (for example a top-level array or a
// string where a number belongs), yields *ParseError. Other read failures
// are returned wrapped.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// Decode parses raw export bytes. A leading UTF-8 byte order mark is ignored.
func Decode(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
