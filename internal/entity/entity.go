// Package entity defines the typed documentation model extracted from
// luagmp comment blocks and the builder that converts parsed tag sequences
// into it. The kind set is closed; every switch over Kind enumerates all
// nine values.
package entity

// Kind discriminates the documentation entity variants.
type Kind string

const (
	KindClass       Kind = "class"
	KindConstructor Kind = "constructor"
	KindMethod      Kind = "method"
	KindProperty    Kind = "property"
	KindCallback    Kind = "callback"
	KindFunc        Kind = "func"
	KindEvent       Kind = "event"
	KindConst       Kind = "const"
	KindGlobal      Kind = "global"
)

var kinds = map[Kind]struct{}{
	KindClass: {}, KindConstructor: {}, KindMethod: {}, KindProperty: {},
	KindCallback: {}, KindFunc: {}, KindEvent: {}, KindConst: {}, KindGlobal: {},
}

// ParseKind validates a kind token. Matching is case-sensitive.
func ParseKind(token string) (Kind, bool) {
	k := Kind(token)
	_, ok := kinds[k]
	return k, ok
}

// IsClassMember reports whether entities of this kind attach to a
// preceding class instead of being routed on their own.
func (k Kind) IsClassMember() bool {
	switch k {
	case KindConstructor, KindMethod, KindProperty, KindCallback:
		return true
	}
	return false
}

// Side values. Anything else found in a @side tag is kept verbatim.
const (
	SideClient = "client"
	SideServer = "server"
	SideShared = "shared"
)

// Defaults applied by the builder when a tag is absent.
const (
	DefaultSide     = SideShared
	DefaultCategory = "Uncategorized"

	// UntypedParam stands in for a @param without a parenthesized type.
	UntypedParam = "any"
)

// Param is one ordered @param entry.
type Param struct {
	Type        string
	Name        string
	Description string
}

// Return describes a declared return value. A nil *Return means the
// entity declares none.
type Return struct {
	Type        string
	Description string
}

// Entity is the closed tagged-variant documentation record. Common fields
// are always meaningful; kind-specific fields are zero for other kinds.
// Entities are treated as immutable once the builder returns them.
type Entity struct {
	Kind Kind

	Name        string
	Side        string
	Category    string
	Version     string
	Deprecated  string
	Description string
	Notes       []string
	Declaration string
	Example     string

	// Class only.
	Extends string

	// Constructor, method, callback, func, event.
	Params  []Param
	Returns *Return

	// Event only.
	Cancellable bool

	// Method and callback.
	Static bool

	// Property only.
	ReadOnly bool

	// Source position, for warnings and deterministic ordering.
	File string
	Line int
}

// Class aggregates a class definition with the members discovered after it
// in the same file. The class exclusively owns its member entities.
type Class struct {
	Definition   *Entity
	Constructors []*Entity
	Properties   []*Entity
	Methods      []*Entity
	Callbacks    []*Entity
}

// CategoryGroup is the per-(side, category) aggregation of constants.
// Constants are only ever rendered through a group, never individually.
// Member order is discovery order across the whole scanned project.
type CategoryGroup struct {
	Side      string
	Category  string
	Constants []*Entity
}
