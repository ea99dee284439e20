// Package messages holds the console strings printed by the extractor and
// resolves them for the configured language through golang.org/x/text.
// English is the default; Bulgarian matches the wording of the AIRIS
// exporter UI.
package messages

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English format strings. Counts and sizes take
// pre-formatted decimal strings so no locale digit grouping is applied.
const (
	Title            = "AIRIS Project Extractor"
	FileMissing      = "File %q does not exist!"
	ParseFailed      = "Error parsing JSON: %v"
	ReadFailed       = "Error reading %s: %v"
	Reading          = "Reading: %s"
	Project          = "Project: %s"
	ExportedAt       = "Exported at: %s"
	Files            = "Files: %s"
	Size             = "Size: %sKB"
	FileWritten      = "%s (%sKB)"
	DirectoryCreated = "%s/ (directory)"
	FileFailed       = "Error at %s: %v"
	Succeeded        = "Succeeded: %s files"
	Failed           = "Errors: %s files"
	ExtractedTo      = "Extracted to: %s/"
	NextSteps        = "Next steps:"
	Step             = "   %d. %s"
	Warning          = "Warning: %s"
	Done             = "Done! The app will start at %s"
)

var bulgarian = map[string]string{
	Title:            "AIRIS Project Extractor",
	FileMissing:      "Файлът %q не съществува!",
	ParseFailed:      "Грешка при парсване на JSON: %v",
	ReadFailed:       "Грешка при четене на %s: %v",
	Reading:          "Четене на: %s",
	Project:          "Проект: %s",
	ExportedAt:       "Експортиран на: %s",
	Files:            "Файлове: %s",
	Size:             "Размер: %sKB",
	FileWritten:      "%s (%sKB)",
	DirectoryCreated: "%s/ (директория)",
	FileFailed:       "Грешка при %s: %v",
	Succeeded:        "Успешно: %s файла",
	Failed:           "Грешки: %s файла",
	ExtractedTo:      "Извлечено в: %s/",
	NextSteps:        "Следващи стъпки:",
	Step:             "   %d. %s",
	Warning:          "Внимание: %s",
	Done:             "Готово! Приложението ще стартира на %s",
}

var (
	supported = []language.Tag{language.English, language.Bulgarian}
	matcher   = language.NewMatcher(supported)
	cat       = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, bg := range bulgarian {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.Bulgarian, key, bg)
	}
	return b
}

// Printer formats messages for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a printer for lang (e.g. "en", "bg", "bg-BG").
// An empty string selects English.
func NewPrinter(lang string) (*Printer, error) {
	tag := language.English
	if strings.TrimSpace(lang) != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parsing language %q: %w", lang, err)
		}
		_, idx, conf := matcher.Match(parsed)
		if conf == language.No {
			return nil, fmt.Errorf("unsupported language %q (supported: %s)", lang, Supported())
		}
		tag = supported[idx]
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}, nil
}

// Language returns the resolved language tag.
func (p *Printer) Language() language.Tag { return p.tag }

// Sprintf formats the message identified by key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Supported lists the supported language codes.
func Supported() string {
	codes := make([]string, len(supported))
	for i, t := range supported {
		codes[i] = t.String()
	}
	return strings.Join(codes, ", ")
}
