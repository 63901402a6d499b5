// Package router maps finished entities and constant groups to their
// output location and template. Routing is a pure function of
// (kind, side, category, name), so repeated runs on unchanged input land
// on identical paths.
package router

import (
	"fmt"
	"path/filepath"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/entity"
)

// Template names the render collaborator must provide.
const (
	TemplateClass    = "class.md"
	TemplateFunction = "function.md"
	TemplateEvent    = "event.md"
	TemplateConst    = "const.md"
	TemplateGlobal   = "global.md"
)

// RequiredTemplates lists every template a usable template set contains.
var RequiredTemplates = []string{
	TemplateClass, TemplateFunction, TemplateEvent, TemplateConst, TemplateGlobal,
}

// Target is one routed output unit: a template name and a path relative
// to the output root.
type Target struct {
	Template string
	Path     string
}

// ForClass routes a class (with its attached members) to
// <side>-classes/<category-slug>/<Name>.md.
func ForClass(c *entity.Class) Target {
	d := c.Definition
	return Target{
		Template: TemplateClass,
		Path:     filepath.Join(d.Side+"-classes", Slug(d.Category), d.Name+".md"),
	}
}

// ForEntity routes a standalone function, event or global. Class members
// and constants have no individual output target.
func ForEntity(e *entity.Entity) (Target, error) {
	switch e.Kind {
	case entity.KindFunc:
		return Target{
			Template: TemplateFunction,
			Path:     filepath.Join(e.Side+"-functions", Slug(e.Category), e.Name+".md"),
		}, nil
	case entity.KindEvent:
		return Target{
			Template: TemplateEvent,
			Path:     filepath.Join(e.Side+"-events", Slug(e.Category), e.Name+".md"),
		}, nil
	case entity.KindGlobal:
		return Target{
			Template: TemplateGlobal,
			Path:     filepath.Join(e.Side+"-globals", Slug(e.Category), e.Name+".md"),
		}, nil
	default:
		return Target{}, fmt.Errorf("kind %q has no direct output target", e.Kind)
	}
}

// ForGroup routes an aggregated constant category to
// <side>-constants/<category-slug>/<Category>.md. The file name keeps the
// category as written; only the directory segment is slugified.
func ForGroup(g *entity.CategoryGroup) Target {
	return Target{
		Template: TemplateConst,
		Path:     filepath.Join(g.Side+"-constants", Slug(g.Category), g.Category+".md"),
	}
}
