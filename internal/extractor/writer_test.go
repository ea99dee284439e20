package extractor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	root := filepath.Join("out", "root")

	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"a/b.txt", filepath.Join(root, "a", "b.txt"), nil},
		{"./a/../c.txt", filepath.Join(root, "c.txt"), nil},
		{"src/", filepath.Join(root, "src"), nil},
		{"", "", errEmptyPath},
		{"../escape.txt", "", errUnsafePath},
		{"a/../../escape.txt", "", errUnsafePath},
		{"/etc/passwd", "", errUnsafePath},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := resolvePath(root, tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolvePath(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolvePath(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("resolvePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	root := t.TempDir()
	dst := filepath.Join(root, "deep", "nested", "file.txt")

	if err := writeFile(root, dst, "content"); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q, want %q", data, "content")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	root := t.TempDir()
	dst := filepath.Join(root, "file.txt")

	if err := writeFile(root, dst, "a much longer first version"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := writeFile(root, dst, "v2"); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v2" {
		t.Errorf("content = %q, want %q", data, "v2")
	}
}

func TestWriteFileRejectsRoot(t *testing.T) {
	root := t.TempDir()
	if err := writeFile(root, root, "x"); !errors.Is(err, errRootFilePath) {
		t.Errorf("error = %v, want %v", err, errRootFilePath)
	}
}

func TestWriteFileParentIsFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "blocker"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeFile(root, filepath.Join(root, "blocker", "child.txt"), "x"); err == nil {
		t.Fatal("expected error when a parent path is a regular file")
	}
}

func TestWriteErrorUnwrap(t *testing.T) {
	werr := &WriteError{Path: "a.txt", Err: os.ErrPermission}
	if !errors.Is(werr, os.ErrPermission) {
		t.Error("WriteError should unwrap to its cause")
	}
}
