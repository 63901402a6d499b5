package router

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/entity"
)

func TestForClass(t *testing.T) {
	c := &entity.Class{Definition: &entity.Entity{
		Kind: entity.KindClass, Name: "Discord", Side: "client", Category: "Discord",
	}}

	target := ForClass(c)
	require.Equal(t, TemplateClass, target.Template)
	require.Equal(t, filepath.Join("client-classes", "discord", "Discord.md"), target.Path)
}

func TestForEntity(t *testing.T) {
	cases := []struct {
		kind     entity.Kind
		template string
		dir      string
	}{
		{entity.KindFunc, TemplateFunction, "shared-functions"},
		{entity.KindEvent, TemplateEvent, "shared-events"},
		{entity.KindGlobal, TemplateGlobal, "shared-globals"},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			e := &entity.Entity{Kind: tc.kind, Name: "Thing", Side: "shared", Category: "World Utils"}
			target, err := ForEntity(e)
			require.NoError(t, err)
			require.Equal(t, tc.template, target.Template)
			require.Equal(t, filepath.Join(tc.dir, "world-utils", "Thing.md"), target.Path)
		})
	}
}

func TestForEntity_RejectsNonStandaloneKinds(t *testing.T) {
	for _, kind := range []entity.Kind{entity.KindClass, entity.KindMethod, entity.KindConst} {
		_, err := ForEntity(&entity.Entity{Kind: kind, Name: "x"})
		require.Error(t, err, string(kind))
	}
}

func TestForGroup_KeepsCategoryCasingInFileName(t *testing.T) {
	g := &entity.CategoryGroup{Side: "client", Category: "Key"}

	target := ForGroup(g)
	require.Equal(t, TemplateConst, target.Template)
	require.Equal(t, filepath.Join("client-constants", "key", "Key.md"), target.Path)
}

func TestRoutingIsDeterministic(t *testing.T) {
	e := &entity.Entity{Kind: entity.KindFunc, Name: "getTime", Side: "server", Category: "Time"}
	first, err := ForEntity(e)
	require.NoError(t, err)
	second, err := ForEntity(e)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Key":             "key",
		"World Utils":     "world-utils",
		"A  B--C":         "a-b-c",
		"Café Déjà":       "cafe-deja",
		"  padded  ":      "padded",
		"v2.1 API":        "v2-1-api",
		"___":             "uncategorized",
		"":                "uncategorized",
		"Uncategorized":   "uncategorized",
		"MiXeD_case.Name": "mixed-case-name",
	}

	for in, want := range cases {
		require.Equal(t, want, Slug(in), "Slug(%q)", in)
	}
}
