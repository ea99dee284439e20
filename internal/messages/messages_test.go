package messages

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNewPrinter_Languages(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-US", language.English},
		{"bg", language.Bulgarian},
		{"bg-BG", language.Bulgarian},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			p, err := NewPrinter(tt.lang)
			if err != nil {
				t.Fatalf("NewPrinter(%q) error: %v", tt.lang, err)
			}
			base, _ := p.Language().Base()
			wantBase, _ := tt.want.Base()
			if base != wantBase {
				t.Errorf("Language() = %v, want %v", p.Language(), tt.want)
			}
		})
	}
}

func TestNewPrinter_Unsupported(t *testing.T) {
	if _, err := NewPrinter("ja"); err == nil {
		t.Fatal("expected error for unsupported language, got nil")
	}
	if _, err := NewPrinter("not a tag!"); err == nil {
		t.Fatal("expected error for malformed tag, got nil")
	}
}

func TestSprintf(t *testing.T) {
	en, err := NewPrinter("en")
	if err != nil {
		t.Fatal(err)
	}
	bg, err := NewPrinter("bg")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		p    *Printer
		key  string
		args []any
		want string
	}{
		{en, Project, []any{"Demo"}, "Project: Demo"},
		{en, Succeeded, []any{"1"}, "Succeeded: 1 files"},
		{en, FileWritten, []any{"a/b.txt", "0"}, "a/b.txt (0KB)"},
		{bg, Project, []any{"Demo"}, "Проект: Demo"},
		{bg, Succeeded, []any{"3"}, "Успешно: 3 файла"},
		{bg, NextSteps, nil, "Следващи стъпки:"},
	}

	for _, tt := range tests {
		if got := tt.p.Sprintf(tt.key, tt.args...); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCatalogCoversEveryKey(t *testing.T) {
	keys := []string{
		Title, FileMissing, ParseFailed, ReadFailed, Reading, Project, ExportedAt,
		Files, Size, FileWritten, DirectoryCreated, FileFailed, Succeeded, Failed,
		ExtractedTo, NextSteps, Step, Warning, Done,
	}
	for _, key := range keys {
		if _, ok := bulgarian[key]; !ok {
			t.Errorf("missing Bulgarian translation for %q", key)
		}
	}
}
