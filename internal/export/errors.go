package export

import "fmt"

// NotFoundError is returned when the export file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("export file %s does not exist", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError is returned when the export file is not a well-formed export
// document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing export %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
