package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/config"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/generator"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/gitsource"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/history"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/render"
)

func runGenerate(cfg *config.Config) error {
	applyGenerateFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	projectDir := cfg.Project
	if config.IsGitURL(cfg.Project) {
		dir, cleanup, err := gitsource.Clone(ctx, cfg.Project, cfg.Branch)
		if err != nil {
			return err
		}
		defer cleanup()
		projectDir = dir
	}

	templates, cleanup, err := render.Load(cfg.Templates)
	if err != nil {
		return err
	}
	defer cleanup()

	report, runErr := generator.Run(ctx, generator.Options{
		Project:    projectDir,
		Output:     cfg.Output,
		Templates:  templates,
		Extensions: cfg.Extensions,
	})

	recordRun(ctx, cfg, report)
	printSummary(report)
	return runErr
}

func applyGenerateFlags(cfg *config.Config) {
	if CLI.Generate.Project != "" {
		cfg.Project = CLI.Generate.Project
	}
	if CLI.Generate.Out != "" {
		cfg.Output = CLI.Generate.Out
	}
	if CLI.Generate.Templates != "" {
		cfg.Templates = CLI.Generate.Templates
	}
	if CLI.Generate.Branch != "" {
		cfg.Branch = CLI.Generate.Branch
	}
	if CLI.Generate.HistoryDB != "" {
		cfg.HistoryDB = CLI.Generate.HistoryDB
	}
	if exts, err := config.ParseExtensions(CLI.Generate.Ext); err != nil {
		slog.Warn("Ignoring invalid --ext value", logfields.Error(err))
	} else if exts != nil {
		cfg.Extensions = exts
	}
}

// recordRun persists the run when history is configured. A history
// failure never fails the generation itself.
func recordRun(ctx context.Context, cfg *config.Config, report *generator.Report) {
	if cfg.HistoryDB == "" || report == nil {
		return
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		slog.Warn("Run history unavailable", logfields.Error(err))
		return
	}
	defer func() { _ = store.Close() }()

	run := history.Run{
		ID:           report.RunID,
		Project:      report.Project,
		StartedAt:    report.StartedAt,
		Duration:     report.Duration,
		FilesScanned: report.FilesScanned,
		Blocks:       report.Blocks,
		Entities:     report.Entities,
		Outputs:      report.Outputs,
		Warnings:     len(report.Warnings),
		Failures:     report.Failures,
	}
	if err := store.RecordRun(ctx, run, report.WarningLines()); err != nil {
		slog.Warn("Failed to record run history", logfields.RunID(report.RunID), logfields.Error(err))
	}
}

func printSummary(report *generator.Report) {
	if report == nil {
		return
	}
	fmt.Printf("Done. Parsed %d blocks from %d files.\n", report.Blocks, report.FilesScanned)
	fmt.Printf("Classes: %d | Functions: %d | Events: %d | Globals: %d | Const categories: %d\n",
		report.Classes, report.Functions, report.Events, report.Globals, report.ConstGroups)
	fmt.Printf("Outputs: %d | Warnings: %d | Failures: %d\n",
		report.Outputs, len(report.Warnings), report.Failures)
}
