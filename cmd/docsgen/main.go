package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/config"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docsgen.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Project   string `short:"p" help:"Source project directory or git URL to scan"`
		Out       string `short:"o" help:"Output docs root directory"`
		Templates string `short:"t" help:"Templates directory or zip archive"`
		Ext       string `help:"Comma-separated file extensions to scan (default: .cpp,.hpp,.h)"`
		Branch    string `help:"Branch to clone when the project is a git URL"`
		HistoryDB string `name:"history-db" help:"SQLite database recording run history"`
	} `cmd:"" help:"Generate Markdown docs from luagmp comment blocks"`

	Preview struct {
		Project      string `short:"p" help:"Source project directory to scan and watch"`
		Out          string `short:"o" help:"Output docs root directory"`
		Templates    string `short:"t" help:"Templates directory or zip archive"`
		Ext          string `help:"Comma-separated file extensions to scan"`
		HistoryDB    string `name:"history-db" help:"SQLite database recording run history"`
		Port         int    `help:"Preview server port (default 8080)"`
		Debounce     string `help:"Quiet window before a rebuild (e.g. 2s)"`
		MaxDelay     string `name:"max-delay" help:"Upper bound on rebuild postponement (e.g. 30s)"`
		RebuildEvery string `name:"rebuild-every" help:"Force a full rebuild on this interval (e.g. 10m)"`
		NatsURL      string `name:"nats-url" help:"Publish run events to this NATS server"`
		NatsSubject  string `name:"nats-subject" help:"NATS subject for run events"`
	} `cmd:"" help:"Serve rendered docs locally and rebuild on source changes"`

	History struct {
		HistoryDB string `name:"history-db" help:"SQLite database recording run history" default:"docsgen-history.db"`
		Limit     int    `help:"Number of runs to show" default:"20"`
		Warnings  bool   `help:"Also print the warnings of each listed run"`
	} `cmd:"" help:"List recent generation runs"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "generate":
		if err := runGenerate(cfg); err != nil {
			slog.Error("Generation failed", "error", err)
			os.Exit(1)
		}
	case "preview":
		if err := runPreview(cfg); err != nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}
	case "history":
		if err := runHistory(); err != nil {
			slog.Error("History failed", "error", err)
			os.Exit(1)
		}
	}
}
