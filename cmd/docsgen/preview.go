package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/config"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/generator"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/metrics"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/notify"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/preview"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/render"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/watch"
)

func runPreview(cfg *config.Config) error {
	applyPreviewFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if config.IsGitURL(cfg.Project) {
		return errors.New("preview watches a local project directory; clone the repository first")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	templates, cleanup, err := render.Load(cfg.Templates)
	if err != nil {
		return err
	}
	defer cleanup()

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)

	var notifier *notify.Notifier
	if cfg.Preview.NATSURL != "" {
		notifier, err = notify.New(cfg.Preview.NATSURL, cfg.Preview.NATSSubject)
		if err != nil {
			return err
		}
		defer notifier.Close()
	}

	rebuild := func() {
		report, err := generator.Run(ctx, generator.Options{
			Project:    cfg.Project,
			Output:     cfg.Output,
			Templates:  templates,
			Extensions: cfg.Extensions,
			Recorder:   recorder,
		})
		if err != nil {
			slog.Error("Rebuild failed", logfields.Error(err))
		}
		recordRun(ctx, cfg, report)
		if notifier != nil && report != nil {
			if err := notifier.PublishRun(report); err != nil {
				slog.Warn("Failed to publish run event", logfields.Error(err))
			}
		}
	}

	rebuild()

	debouncer := watch.NewDebouncer(cfg.Preview.Debounce, cfg.Preview.MaxDelay)
	go debouncer.Run(ctx)

	watcher, err := watch.NewWatcher(cfg.Project, cfg.Extensions, debouncer)
	if err != nil {
		return err
	}
	go watcher.Run(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-debouncer.Triggers():
				slog.Info("Source changes settled, rebuilding")
				rebuild()
			}
		}
	}()

	if cfg.Preview.RebuildEvery > 0 {
		scheduler, err := watch.SchedulePeriodic(cfg.Preview.RebuildEvery, debouncer.Request)
		if err != nil {
			return err
		}
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				slog.Warn("Scheduler shutdown failed", logfields.Error(err))
			}
		}()
	}

	server := preview.NewServer(cfg.Output, registry)
	return server.ListenAndServe(ctx, cfg.Preview.Port)
}

func applyPreviewFlags(cfg *config.Config) {
	if CLI.Preview.Project != "" {
		cfg.Project = CLI.Preview.Project
	}
	if CLI.Preview.Out != "" {
		cfg.Output = CLI.Preview.Out
	}
	if CLI.Preview.Templates != "" {
		cfg.Templates = CLI.Preview.Templates
	}
	if CLI.Preview.HistoryDB != "" {
		cfg.HistoryDB = CLI.Preview.HistoryDB
	}
	if CLI.Preview.Port != 0 {
		cfg.Preview.Port = CLI.Preview.Port
	}
	if CLI.Preview.NatsURL != "" {
		cfg.Preview.NATSURL = CLI.Preview.NatsURL
	}
	if CLI.Preview.NatsSubject != "" {
		cfg.Preview.NATSSubject = CLI.Preview.NatsSubject
	}
	if exts, err := config.ParseExtensions(CLI.Preview.Ext); err != nil {
		slog.Warn("Ignoring invalid --ext value", logfields.Error(err))
	} else if exts != nil {
		cfg.Extensions = exts
	}

	setDuration := func(raw, name string, dst *time.Duration) {
		if raw == "" {
			return
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			slog.Warn("Ignoring invalid duration flag", logfields.Name(name), logfields.Error(err))
			return
		}
		*dst = d
	}
	setDuration(CLI.Preview.Debounce, "debounce", &cfg.Preview.Debounce)
	setDuration(CLI.Preview.MaxDelay, "max-delay", &cfg.Preview.MaxDelay)
	setDuration(CLI.Preview.RebuildEvery, "rebuild-every", &cfg.Preview.RebuildEvery)
}
