package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/diag"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/entity"
)

func ent(kind entity.Kind, name, side, category, file string) *entity.Entity {
	return &entity.Entity{Kind: kind, Name: name, Side: side, Category: category, File: file}
}

func TestResolve_AttachesMembersToPrecedingClass(t *testing.T) {
	files := []FileEntities{{
		File: "discord.cpp",
		Entities: []*entity.Entity{
			ent(entity.KindClass, "Discord", "client", "Discord", "discord.cpp"),
			ent(entity.KindConstructor, "new", "client", "Discord", "discord.cpp"),
			ent(entity.KindMethod, "setActivity", "client", "Discord", "discord.cpp"),
			ent(entity.KindProperty, "connected", "client", "Discord", "discord.cpp"),
			ent(entity.KindCallback, "onReady", "client", "Discord", "discord.cpp"),
		},
	}}

	p := Resolve(files, nil)

	require.Len(t, p.Classes, 1)
	c := p.Classes[0]
	require.Equal(t, "Discord", c.Definition.Name)
	require.Len(t, c.Constructors, 1)
	require.Len(t, c.Methods, 1)
	require.Len(t, c.Properties, 1)
	require.Len(t, c.Callbacks, 1)
}

func TestResolve_LaterClassStartsNewContext(t *testing.T) {
	files := []FileEntities{{
		File: "vec.hpp",
		Entities: []*entity.Entity{
			ent(entity.KindClass, "Vec3", "shared", "Math", "vec.hpp"),
			ent(entity.KindMethod, "length", "shared", "Math", "vec.hpp"),
			ent(entity.KindClass, "Vec4", "shared", "Math", "vec.hpp"),
			ent(entity.KindMethod, "lengthSquared", "shared", "Math", "vec.hpp"),
		},
	}}

	p := Resolve(files, nil)

	require.Len(t, p.Classes, 2)
	require.Len(t, p.Classes[0].Methods, 1)
	require.Equal(t, "length", p.Classes[0].Methods[0].Name)
	require.Len(t, p.Classes[1].Methods, 1)
	require.Equal(t, "lengthSquared", p.Classes[1].Methods[0].Name)
}

func TestResolve_OrphanedMemberDroppedWithWarning(t *testing.T) {
	warn := diag.NewCollector()
	files := []FileEntities{{
		File: "loose.cpp",
		Entities: []*entity.Entity{
			ent(entity.KindMethod, "setPosition", "client", "Player", "loose.cpp"),
			ent(entity.KindFunc, "getTime", "shared", "Time", "loose.cpp"),
		},
	}}

	p := Resolve(files, warn)

	require.Empty(t, p.Classes)
	require.Len(t, p.Functions, 1)
	require.Equal(t, 1, warn.Count())
	require.Contains(t, warn.Warnings()[0].Message, "orphaned")
	require.Contains(t, warn.Warnings()[0].Message, "setPosition")
}

func TestResolve_ContextDoesNotCrossFiles(t *testing.T) {
	warn := diag.NewCollector()
	files := []FileEntities{
		{
			File: "a.cpp",
			Entities: []*entity.Entity{
				ent(entity.KindClass, "Discord", "client", "Discord", "a.cpp"),
			},
		},
		{
			File: "b.cpp",
			Entities: []*entity.Entity{
				ent(entity.KindMethod, "setActivity", "client", "Discord", "b.cpp"),
			},
		},
	}

	p := Resolve(files, warn)

	require.Len(t, p.Classes, 1)
	require.Empty(t, p.Classes[0].Methods)
	require.Equal(t, 1, warn.Count())
}

func TestResolve_ConstantsGroupBySideAndCategory(t *testing.T) {
	files := []FileEntities{
		{
			File: "keys1.h",
			Entities: []*entity.Entity{
				ent(entity.KindConst, "KEY_ESCAPE", "client", "Key", "keys1.h"),
			},
		},
		{
			File: "keys2.h",
			Entities: []*entity.Entity{
				ent(entity.KindConst, "KEY_ENTER", "client", "Key", "keys2.h"),
				ent(entity.KindConst, "KEY_SERVER_ONLY", "server", "Key", "keys2.h"),
				ent(entity.KindConst, "COLOR_RED", "client", "Color", "keys2.h"),
			},
		},
	}

	p := Resolve(files, nil)

	require.Len(t, p.ConstGroups, 3)

	// Groups appear in first-discovery order.
	require.Equal(t, "Key", p.ConstGroups[0].Category)
	require.Equal(t, "client", p.ConstGroups[0].Side)
	require.Equal(t, "Key", p.ConstGroups[1].Category)
	require.Equal(t, "server", p.ConstGroups[1].Side)
	require.Equal(t, "Color", p.ConstGroups[2].Category)

	// Members keep file-then-block discovery order, no duplicates.
	clientKeys := p.ConstGroups[0]
	require.Len(t, clientKeys.Constants, 2)
	require.Equal(t, "KEY_ESCAPE", clientKeys.Constants[0].Name)
	require.Equal(t, "KEY_ENTER", clientKeys.Constants[1].Name)
}

func TestResolve_StandaloneKindsRouteToTheirLists(t *testing.T) {
	files := []FileEntities{{
		File: "api.cpp",
		Entities: []*entity.Entity{
			ent(entity.KindFunc, "getTime", "shared", "Time", "api.cpp"),
			ent(entity.KindEvent, "OnPlayerChat", "server", "Chat", "api.cpp"),
			ent(entity.KindGlobal, "gPlayers", "server", "Player", "api.cpp"),
		},
	}}

	p := Resolve(files, nil)

	require.Len(t, p.Functions, 1)
	require.Len(t, p.Events, 1)
	require.Len(t, p.Globals, 1)
	require.Empty(t, p.Classes)
	require.Empty(t, p.ConstGroups)
}
