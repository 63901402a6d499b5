// Package diag collects recoverable input warnings emitted while scanning
// and building entities. Input problems never abort a run; they are logged
// and retained so the final report can account for them.
package diag

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
)

// Warning describes one recoverable problem tied to a source location.
type Warning struct {
	File    string
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.File == "" {
		return w.Message
	}
	return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Message)
}

// Collector accumulates warnings and mirrors them to slog.
// Safe for concurrent use by per-file workers.
type Collector struct {
	mu       sync.Mutex
	warnings []Warning
}

func NewCollector() *Collector { return &Collector{} }

// Warnf records a warning and logs it.
func (c *Collector) Warnf(file string, line int, format string, args ...any) {
	w := Warning{File: file, Line: line, Message: fmt.Sprintf(format, args...)}

	slog.Warn(w.Message, logfields.File(file), logfields.Line(line))

	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

// Warnings returns a copy of the collected warnings in emission order.
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Count returns the number of collected warnings.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}
