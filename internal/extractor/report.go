package extractor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/airis-labs/airis-extract/internal/export"
	"github.com/airis-labs/airis-extract/internal/messages"
	"github.com/airis-labs/airis-extract/internal/nextsteps"
	"github.com/fatih/color"
)

var separator = strings.Repeat("═", 50)

// Reporter prints the console report of a run.
type Reporter struct {
	w    io.Writer
	p    *messages.Printer
	ok   *color.Color
	fail *color.Color
	warn *color.Color
}

// NewReporter returns a Reporter writing to w. With colorize false no ANSI
// escapes are emitted; otherwise fatih/color decides based on the terminal.
func NewReporter(w io.Writer, p *messages.Printer, colorize bool) *Reporter {
	r := &Reporter{
		w:    w,
		p:    p,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
	}
	if !colorize {
		r.ok.DisableColor()
		r.fail.DisableColor()
		r.warn.DisableColor()
	}
	return r
}

func (r *Reporter) line(emoji, key string, args ...any) {
	fmt.Fprintln(r.w, emoji+" "+r.p.Sprintf(key, args...))
}

func (r *Reporter) colored(c *color.Color, emoji, key string, args ...any) {
	fmt.Fprintln(r.w, c.Sprint(emoji+" "+r.p.Sprintf(key, args...)))
}

// Separator prints the horizontal rule between report sections.
func (r *Reporter) Separator() {
	fmt.Fprintln(r.w, separator)
}

// Header prints the title banner.
func (r *Reporter) Header() {
	r.line("🚀", messages.Title)
	r.Separator()
}

// Reading announces the input file.
func (r *Reporter) Reading(path string) {
	r.line("📂", messages.Reading, path)
}

// FileMissing reports a missing input file.
func (r *Reporter) FileMissing(path string) {
	r.colored(r.fail, "❌", messages.FileMissing, path)
}

// ParseFailed reports an input file that is not a valid export.
func (r *Reporter) ParseFailed(err error) {
	r.colored(r.fail, "❌", messages.ParseFailed, err)
}

// ReadFailed reports any other failure to read the input file.
func (r *Reporter) ReadFailed(path string, err error) {
	r.colored(r.fail, "❌", messages.ReadFailed, path, err)
}

// Summary prints the export metadata.
func (r *Reporter) Summary(doc *export.Document) {
	r.line("📦", messages.Project, doc.Project)
	r.line("📅", messages.ExportedAt, formatExportDate(doc.ExportDate))
	r.line("📊", messages.Files, strconv.Itoa(doc.TotalFiles))
	r.line("💾", messages.Size, kb(doc.TotalSize))
	r.Separator()
}

// kb renders a byte count as whole kilobytes without digit grouping.
func kb(bytes int64) string {
	return strconv.FormatInt(export.KB(bytes), 10)
}

// formatExportDate renders the export timestamp, falling back to the raw
// value when it cannot be parsed.
func formatExportDate(raw string) string {
	t, err := export.ParseTimestamp(raw)
	if err != nil {
		return raw
	}
	return t.Format(export.DisplayLayout)
}

// FileWritten confirms one extracted file.
func (r *Reporter) FileWritten(rec export.FileRecord) {
	r.colored(r.ok, "✅", messages.FileWritten, rec.Path, kb(rec.Size))
}

// DirectoryCreated confirms one directory record.
func (r *Reporter) DirectoryCreated(rec export.FileRecord) {
	r.colored(r.ok, "📁", messages.DirectoryCreated, strings.TrimSuffix(rec.Path, "/"))
}

// FileFailed reports a record that could not be written.
func (r *Reporter) FileFailed(werr *WriteError) {
	r.colored(r.fail, "❌", messages.FileFailed, werr.Path, werr.Err)
}

// Totals prints the success and error counts and the output location.
func (r *Reporter) Totals(res *Result, outputDir string) {
	r.Separator()
	r.colored(r.ok, "✅", messages.Succeeded, strconv.Itoa(res.Succeeded))
	if res.Failed > 0 {
		r.colored(r.fail, "❌", messages.Failed, strconv.Itoa(res.Failed))
	}
	r.line("📁", messages.ExtractedTo, outputDir)
	r.Separator()
}

// NextSteps prints the follow-up instructions.
func (r *Reporter) NextSteps(plan *nextsteps.Plan) {
	fmt.Fprintln(r.w)
	r.line("📝", messages.NextSteps)
	for i, step := range plan.Steps {
		fmt.Fprintln(r.w, r.p.Sprintf(messages.Step, i+1, step))
	}
	for _, w := range plan.Warnings {
		r.colored(r.warn, "⚠️ ", messages.Warning, w)
	}
	fmt.Fprintln(r.w)
	r.line("🚀", messages.Done, plan.URL)
}
