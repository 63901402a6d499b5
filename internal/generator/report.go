package generator

import (
	"time"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/diag"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/resolve"
)

// Report summarizes one generation run.
type Report struct {
	RunID     string
	Project   string
	StartedAt time.Time
	Duration  time.Duration

	FilesScanned int
	Blocks       int
	Entities     int

	Classes     int
	Functions   int
	Events      int
	Globals     int
	ConstGroups int

	Outputs  int
	Failures int
	Warnings []diag.Warning
}

func (r *Report) countEntities(p *resolve.Project) {
	r.Classes = len(p.Classes)
	r.Functions = len(p.Functions)
	r.Events = len(p.Events)
	r.Globals = len(p.Globals)
	r.ConstGroups = len(p.ConstGroups)

	total := len(p.Functions) + len(p.Events) + len(p.Globals)
	for _, c := range p.Classes {
		total += 1 + len(c.Constructors) + len(c.Properties) + len(c.Methods) + len(c.Callbacks)
	}
	for _, g := range p.ConstGroups {
		total += len(g.Constants)
	}
	r.Entities = total
}

// WarningLines renders the warnings as plain strings, for persistence.
func (r *Report) WarningLines() []string {
	lines := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		lines = append(lines, w.String())
	}
	return lines
}
