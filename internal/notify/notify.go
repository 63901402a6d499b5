// Package notify publishes run-completed events to NATS so other tooling
// (site deployers, chat hooks) can react to fresh docs.
package notify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/generator"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
)

// Notifier holds a NATS connection and the subject runs are published on.
type Notifier struct {
	conn    *nats.Conn
	subject string
}

// runEvent is the published payload.
type runEvent struct {
	RunID     string    `json:"run_id"`
	Project   string    `json:"project"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
	Files     int       `json:"files"`
	Blocks    int       `json:"blocks"`
	Entities  int       `json:"entities"`
	Outputs   int       `json:"outputs"`
	Warnings  int       `json:"warnings"`
	Failures  int       `json:"failures"`
}

// New connects to NATS. subject must be non-empty.
func New(url, subject string) (*Notifier, error) {
	if subject == "" {
		return nil, fmt.Errorf("notify subject is required")
	}
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS %s: %w", url, err)
	}
	slog.Info("NATS notifier connected", slog.String("url", url), slog.String("subject", subject))
	return &Notifier{conn: conn, subject: subject}, nil
}

// PublishRun publishes a completed run report.
func (n *Notifier) PublishRun(report *generator.Report) error {
	payload, err := json.Marshal(runEvent{
		RunID:     report.RunID,
		Project:   report.Project,
		StartedAt: report.StartedAt,
		Duration:  report.Duration.String(),
		Files:     report.FilesScanned,
		Blocks:    report.Blocks,
		Entities:  report.Entities,
		Outputs:   report.Outputs,
		Warnings:  len(report.Warnings),
		Failures:  report.Failures,
	})
	if err != nil {
		return fmt.Errorf("marshal run event: %w", err)
	}
	if err := n.conn.Publish(n.subject, payload); err != nil {
		return fmt.Errorf("publish run event: %w", err)
	}
	slog.Debug("Run event published", logfields.RunID(report.RunID), slog.String("subject", n.subject))
	return nil
}

// Close drains the connection so in-flight publishes are flushed, then
// closes it. Drain failures fall back to an immediate close.
func (n *Notifier) Close() {
	if n.conn == nil {
		return
	}
	if err := n.conn.Drain(); err != nil {
		slog.Warn("NATS drain failed, closing", logfields.Error(err))
		n.conn.Close()
	}
}
