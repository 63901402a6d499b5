package scanner

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the source file extensions scanned when the
// configuration does not override them.
var DefaultExtensions = []string{".cpp", ".hpp", ".h"}

// skipDirs are directory names never descended into.
var skipDirs = map[string]struct{}{
	".git": {}, "node_modules": {}, "dist": {}, "build": {}, ".venv": {}, "vendor": {},
}

var docMarkers = [][]byte{[]byte("luagmp ("), []byte("luagmp("), []byte("luadoc ("), []byte("luadoc(")}

const (
	prescanChunk = 256 * 1024
	maxFileSize  = 50 * 1024 * 1024
)

// ListFiles walks the project root and returns candidate source files
// (relative paths, lexical order): extension-filtered, skip-dir pruned,
// and pre-scanned for a doc marker so files that cannot contain blocks
// are never decoded.
func ListFiles(root string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		if !mightContainDocs(path) {
			return nil
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			rel = path
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk project %s: %w", root, err)
	}
	return files, nil
}

// mightContainDocs does a chunked binary pre-scan for the block markers.
func mightContainDocs(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 || info.Size() > maxFileSize {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	// Overlap keeps a marker split across chunk boundaries detectable.
	overlap := 16
	buf := make([]byte, prescanChunk+overlap)
	kept := 0
	for {
		n, err := f.Read(buf[kept:])
		if n > 0 {
			window := buf[:kept+n]
			for _, m := range docMarkers {
				if bytes.Contains(window, m) {
					return true
				}
			}
			if len(window) > overlap {
				copy(buf, window[len(window)-overlap:])
				kept = overlap
			} else {
				kept = len(window)
			}
		}
		if err != nil {
			// EOF without a marker, or a read error; either way skip.
			return false
		}
	}
}

// ReadFileText reads a source file as text. Invalid UTF-8 is tolerated;
// block markers and tags are plain ASCII so scanning still works.
func ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source file %s: %w", path, err)
	}
	return string(data), nil
}
