package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/export.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Inspection is the outcome of checking an export document.
type Inspection struct {
	// Valid is false when the document violates the export schema.
	Valid  bool
	Issues []Issue
	// Warnings are advisory mismatches between the declared sizes and
	// counts and the actual records. They never make a document invalid.
	Warnings []string
}

// Issue is a single schema violation.
type Issue struct {
	Path    string // Instance location (e.g., "/files/3/path")
	Message string
	Keyword string // Schema keyword that failed
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		c.AssertFormat()
		if err := c.AddResource("export.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("export.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Inspect checks raw export bytes against the export schema and compares
// declared counts and sizes with the records. Malformed JSON is returned as
// an error; schema violations are reported in the Inspection.
func Inspect(data []byte) (*Inspection, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	result := &Inspection{Valid: true}
	if err := schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		result.Valid = false
		result.Issues = extractIssues(ve)
	}

	// Size checks need the typed document; skip them when it can't be decoded.
	if doc, err := Decode(data); err == nil {
		result.Warnings = sizeWarnings(doc)
	}

	return result, nil
}

// sizeWarnings compares the advisory metadata with the actual content.
func sizeWarnings(doc *Document) []string {
	var warnings []string

	files := 0
	var total int64
	for i, rec := range doc.Files {
		if rec.IsDirectory() {
			continue
		}
		files++
		actual := int64(len(rec.Content))
		total += actual
		if rec.Size != actual {
			warnings = append(warnings, fmt.Sprintf("files[%d] %s: declared size %d, content is %d bytes", i, rec.Path, rec.Size, actual))
		}
	}

	if doc.TotalFiles != files {
		warnings = append(warnings, fmt.Sprintf("totalFiles is %d, export contains %d file records", doc.TotalFiles, files))
	}
	if doc.TotalSize != total {
		warnings = append(warnings, fmt.Sprintf("totalSize is %d, file contents add up to %d bytes", doc.TotalSize, total))
	}

	return warnings
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container keywords only say that a subschema failed.
		if keyword == "allOf" || keyword == "$ref" || keyword == "if" || keyword == "" {
			return
		}

		*issues = append(*issues, Issue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

// deduplicateIssues removes issues with the same path, keyword and message.
func deduplicateIssues(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var result []Issue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
