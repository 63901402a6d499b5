// Package generator orchestrates the full pipeline: scan source files,
// parse documentation blocks, build entities, resolve associations, and
// render every routed output unit.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/diag"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/entity"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/metrics"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/render"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/resolve"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/router"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/scanner"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/tagparse"
)

// Options configures one generation run. Project must be a local
// directory; remote sources are cloned by the caller first.
type Options struct {
	Project    string
	Output     string
	Templates  *render.Set
	Extensions []string
	Recorder   metrics.Recorder
	Workers    int
}

// Run executes a full generation run. Input-data problems never fail the
// run; they end up as warnings in the report. The returned error is
// non-nil only for collaborator failures (unreadable project, output
// units that could not be written) and is returned after every buildable
// output has been attempted.
func Run(ctx context.Context, opts Options) (*Report, error) {
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Project:   opts.Project,
		StartedAt: time.Now(),
	}
	warn := diag.NewCollector()

	slog.Info("Starting generation run",
		logfields.RunID(report.RunID),
		logfields.Path(opts.Project))

	files, err := scanner.ListFiles(opts.Project, opts.Extensions)
	if err != nil {
		return report, err
	}
	report.FilesScanned = len(files)
	rec.IncFilesScanned(len(files))

	perFile, blocks := scanFiles(ctx, opts, files, warn, rec)
	if err := ctx.Err(); err != nil {
		return report, err
	}
	report.Blocks = blocks

	// Constant aggregation is a global reduction; it must only run after
	// every per-file result has been merged, in file order, by this
	// single goroutine.
	project := resolve.Resolve(perFile, warn)
	report.countEntities(project)

	if err := render.CleanOutputRoot(opts.Output); err != nil {
		return report, err
	}

	renderAll(ctx, opts, project, report, rec)

	report.Warnings = warn.Warnings()
	report.Duration = time.Since(report.StartedAt)
	rec.IncWarnings(len(report.Warnings))
	rec.ObserveRunDuration(report.Duration)

	slog.Info("Generation run finished",
		logfields.RunID(report.RunID),
		slog.Int("files", report.FilesScanned),
		slog.Int("blocks", report.Blocks),
		slog.Int("outputs", report.Outputs),
		slog.Int("warnings", len(report.Warnings)),
		slog.Int("failures", report.Failures))

	if report.Failures > 0 {
		return report, fmt.Errorf("%d output unit(s) failed", report.Failures)
	}
	return report, nil
}

// scanFiles runs the per-file stages (locate, parse, build) with a
// bounded worker pool. These stages are pure functions of one file's
// text, so files can be processed concurrently; results are stored by
// file index to keep the merged order deterministic.
func scanFiles(ctx context.Context, opts Options, files []string, warn *diag.Collector, rec metrics.Recorder) ([]resolve.FileEntities, int) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]resolve.FileEntities, len(files))
	var blockCount int
	var mu sync.Mutex

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, rel := range files {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, rel string) {
			defer wg.Done()
			defer func() { <-sem }()

			fe, n := scanOneFile(opts.Project, rel, warn, rec)
			mu.Lock()
			results[idx] = fe
			blockCount += n
			mu.Unlock()
		}(i, rel)
	}
	wg.Wait()

	return results, blockCount
}

// scanOneFile extracts and builds all entities from a single source file.
func scanOneFile(root, rel string, warn *diag.Collector, rec metrics.Recorder) (resolve.FileEntities, int) {
	fe := resolve.FileEntities{File: rel}

	text, err := scanner.ReadFileText(filepath.Join(root, rel))
	if err != nil {
		warn.Warnf(rel, 0, "unreadable source file: %v", err)
		return fe, 0
	}

	blocks := 0
	for block := range scanner.Blocks(rel, text, warn) {
		blocks++
		parsed := tagparse.Parse(block.Kind, block.Body)

		e, err := entity.Build(parsed, block.File, block.Line)
		if err != nil {
			warn.Warnf(block.File, block.Line, "dropping %s block: %v", block.Kind, err)
			rec.IncBlocks(block.Kind, metrics.ResultSkipped)
			continue
		}
		rec.IncBlocks(block.Kind, metrics.ResultBuilt)
		fe.Entities = append(fe.Entities, e)
	}
	return fe, blocks
}

// renderAll routes and renders every output unit. A failing unit is
// logged and counted; the remaining units still render.
func renderAll(ctx context.Context, opts Options, project *resolve.Project, report *Report, rec metrics.Recorder) {
	emit := func(target router.Target, data any) {
		if ctx.Err() != nil {
			return
		}
		content, err := opts.Templates.Render(target.Template, data)
		if err != nil {
			slog.Error("Render failed", logfields.Template(target.Template), logfields.Path(target.Path), logfields.Error(err))
			report.Failures++
			rec.IncOutputFailures()
			return
		}
		if _, err := render.WriteOutput(opts.Output, target.Path, content); err != nil {
			slog.Error("Write failed", logfields.Path(target.Path), logfields.Error(err))
			report.Failures++
			rec.IncOutputFailures()
			return
		}
		report.Outputs++
		rec.IncOutputs(target.Template)
	}

	for _, c := range project.Classes {
		emit(router.ForClass(c), render.ViewOfClass(c))
	}
	for _, e := range project.Functions {
		target, err := router.ForEntity(e)
		if err != nil {
			continue
		}
		emit(target, render.ViewOf(e))
	}
	for _, e := range project.Events {
		target, err := router.ForEntity(e)
		if err != nil {
			continue
		}
		emit(target, render.ViewOf(e))
	}
	for _, e := range project.Globals {
		target, err := router.ForEntity(e)
		if err != nil {
			continue
		}
		emit(target, render.ViewOf(e))
	}
	for _, g := range project.ConstGroups {
		emit(router.ForGroup(g), render.ViewOfGroup(g))
	}
}
