// Package resolve links built entities together: class members attach to
// the nearest preceding class in their file, and constants aggregate into
// per-(side, category) groups across the whole project.
package resolve

import (
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/diag"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/entity"
)

// FileEntities is the per-file output of the scan/parse/build stages,
// entities in block discovery order.
type FileEntities struct {
	File     string
	Entities []*entity.Entity
}

// Project is the fully associated model, ready for routing. Slices keep
// discovery order (file order, then block order within each file);
// ConstGroups keep first-discovery order of each (side, category) pair.
type Project struct {
	Classes     []*entity.Class
	Functions   []*entity.Entity
	Events      []*entity.Entity
	Globals     []*entity.Entity
	ConstGroups []*entity.CategoryGroup
}

type groupKey struct {
	side     string
	category string
}

// Resolve runs class attachment per file and constant aggregation across
// all files. It must only be called after every per-file result has been
// collected; constant grouping is a global reduction.
func Resolve(files []FileEntities, warn *diag.Collector) *Project {
	p := &Project{}
	groups := make(map[groupKey]*entity.CategoryGroup)

	for _, f := range files {
		// Current attachment context. A new class block replaces it;
		// it never carries over into the next file.
		var current *entity.Class

		for _, e := range f.Entities {
			switch e.Kind {
			case entity.KindClass:
				current = &entity.Class{Definition: e}
				p.Classes = append(p.Classes, current)

			case entity.KindConstructor, entity.KindMethod, entity.KindProperty, entity.KindCallback:
				if current == nil {
					if warn != nil {
						warn.Warnf(e.File, e.Line, "orphaned %s %q: no class declared earlier in this file", e.Kind, e.Name)
					}
					continue
				}
				attach(current, e)

			case entity.KindFunc:
				p.Functions = append(p.Functions, e)

			case entity.KindEvent:
				p.Events = append(p.Events, e)

			case entity.KindGlobal:
				p.Globals = append(p.Globals, e)

			case entity.KindConst:
				key := groupKey{side: e.Side, category: e.Category}
				g, ok := groups[key]
				if !ok {
					g = &entity.CategoryGroup{Side: e.Side, Category: e.Category}
					groups[key] = g
					p.ConstGroups = append(p.ConstGroups, g)
				}
				g.Constants = append(g.Constants, e)
			}
		}
	}

	return p
}

func attach(c *entity.Class, e *entity.Entity) {
	switch e.Kind {
	case entity.KindConstructor:
		c.Constructors = append(c.Constructors, e)
	case entity.KindMethod:
		c.Methods = append(c.Methods, e)
	case entity.KindProperty:
		c.Properties = append(c.Properties, e)
	case entity.KindCallback:
		c.Callbacks = append(c.Callbacks, e)
	}
}
