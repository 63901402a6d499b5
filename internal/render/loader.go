// Package render is the template collaborator: it loads the Markdown
// template set from a directory or zip archive, renders entity models
// through text/template, and writes the results under the output root.
package render

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/router"
)

// ErrTemplatesNotFound is returned when neither the given path nor a
// templates/ subfolder inside it contains all required template files.
var ErrTemplatesNotFound = errors.New("template set not found")

// Set holds the parsed template files.
type Set struct {
	tpl *template.Template
	dir string
}

// Dir returns the directory the templates were loaded from.
func (s *Set) Dir() string { return s.dir }

// Load resolves and parses the template set. path may be a directory
// holding the templates, a directory with a templates/ subfolder, or a
// .zip archive with either layout. The returned cleanup removes any
// temporary extraction directory and is always non-nil.
//
// All five required templates must parse; a missing or broken template
// set fails the run before any output is attempted.
func Load(path string) (*Set, func(), error) {
	cleanup := func() {}

	dir, cleanup, err := resolveTemplateDir(path)
	if err != nil {
		return nil, cleanup, err
	}

	files := make([]string, 0, len(router.RequiredTemplates))
	for _, name := range router.RequiredTemplates {
		files = append(files, filepath.Join(dir, name))
	}

	tpl, err := template.New("docs").Funcs(template.FuncMap{
		"slug":  router.Slug,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
	}).ParseFiles(files...)
	if err != nil {
		return nil, cleanup, fmt.Errorf("parse templates in %s: %w", dir, err)
	}

	return &Set{tpl: tpl, dir: dir}, cleanup, nil
}

// resolveTemplateDir locates the directory actually holding the template
// files, extracting zip archives to a temporary directory first.
func resolveTemplateDir(path string) (string, func(), error) {
	noop := func() {}

	info, err := os.Stat(path)
	if err != nil {
		return "", noop, fmt.Errorf("templates path %s: %w", path, err)
	}

	if info.IsDir() {
		if dir, ok := findTemplateDir(path); ok {
			return dir, noop, nil
		}
		return "", noop, fmt.Errorf("%w: %s has no complete template set (need %s)",
			ErrTemplatesNotFound, path, strings.Join(router.RequiredTemplates, ", "))
	}

	if strings.EqualFold(filepath.Ext(path), ".zip") {
		tmp, err := os.MkdirTemp("", "docsgen-templates-*")
		if err != nil {
			return "", noop, fmt.Errorf("create extraction dir: %w", err)
		}
		cleanup := func() { _ = os.RemoveAll(tmp) }

		if err := extractZip(path, tmp); err != nil {
			return "", cleanup, fmt.Errorf("extract %s: %w", path, err)
		}
		if dir, ok := findTemplateDir(tmp); ok {
			return dir, cleanup, nil
		}
		return "", cleanup, fmt.Errorf("%w: archive %s has no complete template set", ErrTemplatesNotFound, path)
	}

	return "", noop, fmt.Errorf("%w: %s is neither a directory nor a zip archive", ErrTemplatesNotFound, path)
}

// findTemplateDir checks dir and dir/templates for the full template set.
func findTemplateDir(dir string) (string, bool) {
	if hasAllTemplates(dir) {
		return dir, true
	}
	sub := filepath.Join(dir, "templates")
	if hasAllTemplates(sub) {
		return sub, true
	}
	return "", false
}

func hasAllTemplates(dir string) bool {
	for _, name := range router.RequiredTemplates {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

func extractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		name := filepath.Clean(f.Name)
		if filepath.IsAbs(name) || strings.HasPrefix(name, "..") {
			return fmt.Errorf("archive entry escapes extraction dir: %s", f.Name)
		}
		target := filepath.Join(dest, name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o750); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return err
		}
		if err := extractZipFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, rc)
	return err
}
