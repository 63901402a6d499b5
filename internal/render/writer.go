package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteOutput writes rendered content to relativePath under outRoot.
//
// The path is validated to stay inside outRoot, parent directories are
// created, and existing files are overwritten (the generator cleans the
// output root at the start of each run, so stale docs never linger).
// Content is normalized to end with exactly one trailing newline.
func WriteOutput(outRoot, relativePath, content string) (string, error) {
	if outRoot == "" {
		return "", errors.New("output root is required")
	}
	if relativePath == "" {
		return "", errors.New("output path is required")
	}

	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(cleanRel, "..") {
		return "", fmt.Errorf("output path escapes output root: %s", relativePath)
	}

	fullPath := filepath.Join(outRoot, cleanRel)
	rel, err := filepath.Rel(outRoot, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("output path escapes output root: %s", relativePath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	normalized := strings.TrimRight(content, "\n") + "\n"
	if err := os.WriteFile(fullPath, []byte(normalized), 0o644); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return fullPath, nil
}

// CleanOutputRoot removes everything inside outRoot while keeping the
// directory itself, so removed or renamed entities disappear from the
// docs between runs. A missing root is created instead.
func CleanOutputRoot(outRoot string) error {
	entries, err := os.ReadDir(outRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(outRoot, 0o750)
		}
		return fmt.Errorf("read output root: %w", err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(outRoot, e.Name())); err != nil {
			return fmt.Errorf("clean output root: %w", err)
		}
	}
	return nil
}
