package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

const docSnippet = "/* luagmp (func)\n * @name f\n */\n"

func TestListFiles_FiltersByExtensionAndMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.cpp", docSnippet)
	writeFile(t, root, "src/b.hpp", docSnippet)
	writeFile(t, root, "src/no_docs.cpp", "int main() { return 0; }\n")
	writeFile(t, root, "src/readme.txt", docSnippet)
	writeFile(t, root, "image.cpp", "")

	files, err := ListFiles(root, nil)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join("src", "a.cpp"),
		filepath.Join("src", "b.hpp"),
	}, files)
}

func TestListFiles_SkipsWellKnownDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.h", docSnippet)
	writeFile(t, root, ".git/objects/x.cpp", docSnippet)
	writeFile(t, root, "node_modules/dep/y.cpp", docSnippet)
	writeFile(t, root, "build/z.cpp", docSnippet)

	files, err := ListFiles(root, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"keep.h"}, files)
}

func TestListFiles_CustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.cc", docSnippet)
	writeFile(t, root, "b.cpp", docSnippet)

	files, err := ListFiles(root, []string{".cc"})
	require.NoError(t, err)
	require.Equal(t, []string{"a.cc"}, files)

	// Extensions without a leading dot are accepted too.
	files, err = ListFiles(root, []string{"cc", "cpp"})
	require.NoError(t, err)
	require.Equal(t, []string{"a.cc", "b.cpp"}, files)
}

func TestListFiles_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.cpp", docSnippet)
	writeFile(t, root, "a.cpp", docSnippet)
	writeFile(t, root, "c/d.cpp", docSnippet)

	first, err := ListFiles(root, nil)
	require.NoError(t, err)
	second, err := ListFiles(root, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, []string{"a.cpp", "b.cpp", filepath.Join("c", "d.cpp")}, first)
}

func TestReadFileText(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.cpp", docSnippet)

	text, err := ReadFileText(filepath.Join(root, "a.cpp"))
	require.NoError(t, err)
	require.Equal(t, docSnippet, text)

	_, err = ReadFileText(filepath.Join(root, "missing.cpp"))
	require.Error(t, err)
}

func TestMightContainDocs_CompactMarkerVariant(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tight.cpp", "/*luagmp(func)\n@name f\n*/\n")

	files, err := ListFiles(root, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"tight.cpp"}, files)
}
