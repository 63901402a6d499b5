package tagparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_DescriptionBeforeFirstTag(t *testing.T) {
	body := `
 * This class exposes the Discord integration.
 * Spans two lines.
 * @name Discord
 * @side client
`
	pb := Parse("class", body)

	require.Equal(t, "class", pb.Kind)
	require.Equal(t, "This class exposes the Discord integration.\nSpans two lines.", pb.Description)
	require.Len(t, pb.Tags, 2)
	require.Equal(t, "name", pb.Tags[0].Name)
	require.Equal(t, "Discord", pb.Tags[0].Value)
	require.Equal(t, "side", pb.Tags[1].Name)
	require.Equal(t, "client", pb.Tags[1].Value)
}

func TestParse_RepeatedTagsKeepOrderAndIndex(t *testing.T) {
	body := `
 * @name setPosition
 * @param (int) x X position
 * @param (int) y Y position
 * @notes first note
 * @notes second note
`
	pb := Parse("method", body)

	params := pb.All("param")
	require.Len(t, params, 2)
	require.Equal(t, 0, params[0].Index)
	require.Equal(t, 1, params[1].Index)
	require.Equal(t, "(int) x X position", params[0].Value)
	require.Equal(t, "(int) y Y position", params[1].Value)

	notes := pb.All("notes")
	require.Len(t, notes, 2)
	require.Equal(t, "first note", notes[0].Value)
	require.Equal(t, "second note", notes[1].Value)
}

func TestParse_MultiLineValuePreservesInteriorBlankLines(t *testing.T) {
	body := `
 * @name OnRender
 * @example
 * local x = 1
 *
 * print(x)
 * @side client
`
	pb := Parse("callback", body)

	example, ok := pb.First("example")
	require.True(t, ok)
	require.Equal(t, "local x = 1\n\nprint(x)", example.Value)

	side, ok := pb.First("side")
	require.True(t, ok)
	require.Equal(t, "client", side.Value)
}

func TestParse_MultiLineDeclarationKeepsIndentation(t *testing.T) {
	body := `
 * @name setPosition
 * @declaration
 * void setPosition(
 *     int x,
 *     int y);
`
	pb := Parse("method", body)

	decl, ok := pb.First("declaration")
	require.True(t, ok)
	require.Equal(t, "void setPosition(\n    int x,\n    int y);", decl.Value)
}

func TestParse_UnknownTagPreservedAsOpaqueEntry(t *testing.T) {
	body := `
 * @name Foo
 * @frobnicate with gusto
`
	pb := Parse("func", body)

	e, ok := pb.First("frobnicate")
	require.True(t, ok)
	require.Equal(t, "with gusto", e.Value)
	require.False(t, Known("frobnicate"))
	require.True(t, Known("param"))
}

func TestParse_TagsAreCaseSensitive(t *testing.T) {
	pb := Parse("func", " * @Name Foo\n * @name Bar\n")

	_, hasUpper := pb.First("Name")
	require.True(t, hasUpper)
	require.False(t, Known("Name"))

	name, ok := pb.First("name")
	require.True(t, ok)
	require.Equal(t, "Bar", name.Value)
}

func TestParse_NoTagsAtAll(t *testing.T) {
	pb := Parse("const", " * Just a description.\n")

	require.Equal(t, "Just a description.", pb.Description)
	require.Empty(t, pb.Tags)
}

func TestParse_CRLFInput(t *testing.T) {
	pb := Parse("func", " * @name Foo\r\n * @side server\r\n")

	name, ok := pb.First("name")
	require.True(t, ok)
	require.Equal(t, "Foo", name.Value)
	side, _ := pb.First("side")
	require.Equal(t, "server", side.Value)
}

func TestParse_Idempotent(t *testing.T) {
	body := `
 * Some description.
 * @name Foo
 * @param (int) a first
 * @example
 * print("x")
`
	first := Parse("func", body)
	second := Parse("func", body)
	require.Equal(t, first, second)
}
