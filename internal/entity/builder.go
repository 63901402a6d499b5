package entity

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/tagparse"
)

// ErrMissingName marks a block that cannot become an entity because it
// carries no @name. Callers warn and drop the block; they never abort.
var ErrMissingName = errors.New("block has no @name tag")

// ErrUnknownKind marks a kind token outside the supported set.
var ErrUnknownKind = errors.New("unsupported entity kind")

// Build converts a parsed block into one Entity of the declared kind.
//
// @name is the only universally required tag. Missing optional tags become
// zero values with documented defaults: side "shared", category
// "Uncategorized", empty notes. A missing @declaration stays empty; no
// placeholder is synthesized. Unknown tags in the block are ignored here.
func Build(pb *tagparse.ParsedBlock, file string, line int) (*Entity, error) {
	kind, ok := ParseKind(pb.Kind)
	if !ok {
		return nil, ErrUnknownKind
	}

	for _, t := range pb.Tags {
		if !tagparse.Known(t.Name) {
			slog.Debug("Ignoring unknown tag",
				logfields.File(file), logfields.Line(line), logfields.Name(t.Name))
		}
	}

	e := &Entity{
		Kind:        kind,
		Side:        DefaultSide,
		Category:    DefaultCategory,
		Description: pb.Description,
		File:        file,
		Line:        line,
	}

	if t, ok := pb.First("name"); ok && strings.TrimSpace(t.Value) != "" {
		e.Name = strings.TrimSpace(t.Value)
	} else {
		return nil, ErrMissingName
	}

	if t, ok := pb.First("side"); ok {
		if v := strings.ToLower(strings.TrimSpace(t.Value)); v != "" {
			e.Side = v
		}
	}
	if t, ok := pb.First("category"); ok {
		if v := strings.TrimSpace(t.Value); v != "" {
			e.Category = v
		}
	}
	if t, ok := pb.First("version"); ok {
		e.Version = strings.TrimSpace(t.Value)
	}
	if t, ok := pb.First("deprecated"); ok {
		e.Deprecated = strings.TrimSpace(t.Value)
		if e.Deprecated == "" {
			e.Deprecated = "deprecated"
		}
	}
	if t, ok := pb.First("extends"); ok {
		e.Extends = strings.TrimSpace(t.Value)
	}
	if t, ok := pb.First("declaration"); ok {
		e.Declaration = t.Value
	}
	if t, ok := pb.First("example"); ok {
		e.Example = t.Value
	}

	for _, t := range pb.All("note", "notes") {
		if v := strings.TrimSpace(t.Value); v != "" {
			e.Notes = append(e.Notes, v)
		}
	}

	for _, t := range pb.All("param") {
		typ, name, desc, ok := tagparse.SplitParam(t.Value)
		if !ok {
			continue
		}
		if typ == "" {
			typ = UntypedParam
		}
		e.Params = append(e.Params, Param{Type: typ, Name: name, Description: desc})
	}

	if t, ok := pb.First("return", "returns"); ok {
		typ, desc := tagparse.SplitReturn(t.Value)
		e.Returns = &Return{Type: typ, Description: desc}
	}

	if t, ok := pb.First("cancellable"); ok {
		e.Cancellable = tagparse.TruthyFlag(t.Value)
	}
	if t, ok := pb.First("static"); ok {
		e.Static = tagparse.TruthyFlag(t.Value)
	}
	if t, ok := pb.First("readonly", "read_only"); ok {
		e.ReadOnly = tagparse.TruthyFlag(t.Value)
	}

	return e, nil
}
