package render

import (
	"bytes"
	"fmt"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/entity"
)

// EntityView is the flattened model handed to templates for a single
// entity. Version is blanked when the entity is deprecated so templates
// never display both; deprecation is authoritative.
type EntityView struct {
	Kind        string
	Name        string
	Side        string
	Category    string
	Version     string
	Deprecated  string
	Description string
	Notes       []string
	Declaration string
	Example     string
	Extends     string
	Params      []entity.Param
	Returns     *entity.Return
	Cancellable bool
	Static      bool
	ReadOnly    bool
}

// ClassView is the template model for class.md: the definition plus the
// members attached to it.
type ClassView struct {
	Definition   EntityView
	Constructors []EntityView
	Properties   []EntityView
	Methods      []EntityView
	Callbacks    []EntityView
}

// ConstView is one constant inside a category page.
type ConstView struct {
	Name        string
	Description string
	Notes       []string
	Version     string
	Deprecated  string
}

// GroupView is the template model for const.md.
type GroupView struct {
	Side      string
	Category  string
	Constants []ConstView
}

// ViewOf converts an entity into its template model.
func ViewOf(e *entity.Entity) EntityView {
	v := EntityView{
		Kind:        string(e.Kind),
		Name:        e.Name,
		Side:        e.Side,
		Category:    e.Category,
		Version:     e.Version,
		Deprecated:  e.Deprecated,
		Description: e.Description,
		Notes:       e.Notes,
		Declaration: e.Declaration,
		Example:     e.Example,
		Extends:     e.Extends,
		Params:      e.Params,
		Returns:     e.Returns,
		Cancellable: e.Cancellable,
		Static:      e.Static,
		ReadOnly:    e.ReadOnly,
	}
	if v.Deprecated != "" {
		v.Version = ""
	}
	return v
}

// ViewOfClass converts a class aggregate into its template model.
func ViewOfClass(c *entity.Class) ClassView {
	cv := ClassView{Definition: ViewOf(c.Definition)}
	for _, e := range c.Constructors {
		cv.Constructors = append(cv.Constructors, ViewOf(e))
	}
	for _, e := range c.Properties {
		cv.Properties = append(cv.Properties, ViewOf(e))
	}
	for _, e := range c.Methods {
		cv.Methods = append(cv.Methods, ViewOf(e))
	}
	for _, e := range c.Callbacks {
		cv.Callbacks = append(cv.Callbacks, ViewOf(e))
	}
	return cv
}

// ViewOfGroup converts a constant category group into its template model.
func ViewOfGroup(g *entity.CategoryGroup) GroupView {
	gv := GroupView{Side: g.Side, Category: g.Category}
	for _, e := range g.Constants {
		c := ConstView{
			Name:        e.Name,
			Description: e.Description,
			Notes:       e.Notes,
			Version:     e.Version,
			Deprecated:  e.Deprecated,
		}
		if c.Deprecated != "" {
			c.Version = ""
		}
		gv.Constants = append(gv.Constants, c)
	}
	return gv
}

// Render executes the named template with the given view model.
func (s *Set) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
