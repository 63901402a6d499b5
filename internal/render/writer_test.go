package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteOutput_CreatesNestedDirs(t *testing.T) {
	root := t.TempDir()

	full, err := WriteOutput(root, filepath.Join("client-classes", "discord", "Discord.md"), "# Discord")
	require.NoError(t, err)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	require.Equal(t, "# Discord\n", string(data))
}

func TestWriteOutput_NormalizesTrailingNewlines(t *testing.T) {
	root := t.TempDir()

	full, err := WriteOutput(root, "a.md", "body\n\n\n")
	require.NoError(t, err)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	require.Equal(t, "body\n", string(data))
}

func TestWriteOutput_OverwritesExisting(t *testing.T) {
	root := t.TempDir()

	_, err := WriteOutput(root, "a.md", "old")
	require.NoError(t, err)
	full, err := WriteOutput(root, "a.md", "new")
	require.NoError(t, err)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	require.Equal(t, "new\n", string(data))
}

func TestWriteOutput_RejectsEscapingPaths(t *testing.T) {
	root := t.TempDir()

	for _, rel := range []string{"../escape.md", filepath.Join("..", "x", "y.md"), "/abs.md"} {
		_, err := WriteOutput(root, rel, "x")
		require.Error(t, err, rel)
	}

	_, err := WriteOutput(root, "", "x")
	require.Error(t, err)
	_, err = WriteOutput("", "a.md", "x")
	require.Error(t, err)
}

func TestCleanOutputRoot_RemovesChildrenKeepsRoot(t *testing.T) {
	root := t.TempDir()
	_, err := WriteOutput(root, filepath.Join("old", "page.md"), "stale")
	require.NoError(t, err)

	require.NoError(t, CleanOutputRoot(root))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCleanOutputRoot_CreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")

	require.NoError(t, CleanOutputRoot(root))

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
