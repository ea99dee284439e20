package extractor

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/airis-labs/airis-extract/internal/export"
	"github.com/airis-labs/airis-extract/internal/nextsteps"
)

// Stage is a step of an extraction run.
type Stage int

const (
	StageLoading Stage = iota
	StageSummarizing
	StageWriting
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageSummarizing:
		return "summarizing"
	case StageWriting:
		return "writing"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result is the outcome of a completed run.
type Result struct {
	Succeeded   int
	Failed      int
	Directories int
	Errors      []*WriteError
}

// Extractor writes export documents to OutputDir.
type Extractor struct {
	OutputDir string
	Reporter  *Reporter
	Planner   *nextsteps.Planner
	Logger    *slog.Logger
}

// New returns an Extractor. A nil logger uses slog.Default.
func New(outputDir string, reporter *Reporter, planner *nextsteps.Planner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		OutputDir: filepath.Clean(outputDir),
		Reporter:  reporter,
		Planner:   planner,
		Logger:    logger,
	}
}

func (e *Extractor) enter(s Stage) {
	e.Logger.Debug("extraction stage", slog.String("stage", s.String()))
}

// Run extracts the export at path.
//
// It returns *export.NotFoundError or *export.ParseError (after printing a
// message) when the export cannot be loaded; nothing is written in that case.
// Per-record write failures do not fail the run; they are counted in the
// Result.
func (e *Extractor) Run(path string) (*Result, error) {
	r := e.Reporter

	e.enter(StageLoading)
	r.Header()
	doc, err := export.Load(path)
	if err != nil {
		var nf *export.NotFoundError
		var pe *export.ParseError
		switch {
		case errors.As(err, &nf):
			r.FileMissing(path)
		case errors.As(err, &pe):
			r.Reading(path)
			r.ParseFailed(pe.Err)
		default:
			r.ReadFailed(path, err)
		}
		return nil, err
	}
	r.Reading(path)

	e.enter(StageSummarizing)
	r.Summary(doc)

	e.enter(StageWriting)
	if err := makeDir(e.OutputDir); err != nil {
		// Every record will fail on its own and be counted.
		e.Logger.Warn("output directory unavailable", slog.String("dir", e.OutputDir), slog.Any("error", err))
	}

	res := &Result{}
	for _, rec := range doc.Files {
		if err := e.extract(rec); err != nil {
			werr := &WriteError{Path: rec.Path, Err: err}
			res.Failed++
			res.Errors = append(res.Errors, werr)
			r.FileFailed(werr)
			e.Logger.Debug("record failed", slog.String("path", rec.Path), slog.Any("error", err))
			continue
		}
		if rec.IsDirectory() {
			res.Directories++
			r.DirectoryCreated(rec)
			continue
		}
		res.Succeeded++
		r.FileWritten(rec)
	}

	e.enter(StageDone)
	r.Totals(res, e.OutputDir)
	r.NextSteps(e.plan())

	return res, nil
}

// extract materialises a single record under the output directory.
func (e *Extractor) extract(rec export.FileRecord) error {
	dst, err := resolvePath(e.OutputDir, rec.Path)
	if err != nil {
		return err
	}

	if rec.IsDirectory() {
		e.Logger.Debug("creating directory", slog.String("dst", dst))
		return makeDir(dst)
	}

	e.Logger.Debug("writing file", slog.String("dst", dst), slog.Int("bytes", len(rec.Content)))
	return writeFile(e.OutputDir, dst, rec.Content)
}

func (e *Extractor) plan() *nextsteps.Plan {
	if e.Planner == nil {
		return (&nextsteps.Planner{Logger: e.Logger}).Plan(e.OutputDir)
	}
	return e.Planner.Plan(e.OutputDir)
}
