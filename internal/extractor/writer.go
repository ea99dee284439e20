package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Permissions for extracted files and directories.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// WriteError records a file record that could not be materialised.
type WriteError struct {
	Path string // path as written in the export
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

var (
	errEmptyPath    = errors.New("empty path")
	errUnsafePath   = errors.New("path is absolute or leaves the output directory")
	errRootFilePath = errors.New("path resolves to the output directory itself")
)

// resolvePath joins a record path onto root. Export paths use forward
// slashes; the result uses the OS separator.
func resolvePath(root, recordPath string) (string, error) {
	if recordPath == "" {
		return "", errEmptyPath
	}

	local := filepath.FromSlash(recordPath)
	if !filepath.IsLocal(local) {
		return "", errUnsafePath
	}
	return filepath.Join(root, local), nil
}

// writeFile writes content to dst, creating parent directories and
// replacing any existing file.
func writeFile(root, dst, content string) error {
	if filepath.Clean(dst) == filepath.Clean(root) {
		return errRootFilePath
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(dst, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// makeDir creates dst and any missing parents.
func makeDir(dst string) error {
	if err := os.MkdirAll(dst, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}
	return nil
}
