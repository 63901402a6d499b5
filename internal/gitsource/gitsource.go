// Package gitsource clones a remote project into a temporary workspace
// so it can be scanned like a local directory.
package gitsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
)

// Clone fetches url into a fresh temporary directory and returns its path
// together with a cleanup that removes it. The clone is shallow; the
// generator only reads the working tree.
func Clone(ctx context.Context, url, branch string) (string, func(), error) {
	noop := func() {}

	dir, err := os.MkdirTemp("", "docsgen-project-*")
	if err != nil {
		return "", noop, fmt.Errorf("create clone workspace: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	opts := &git.CloneOptions{URL: url, Depth: 1}
	if branch != "" {
		opts.ReferenceName = plumbing.ReferenceName("refs/heads/" + branch)
		opts.SingleBranch = true
	}

	slog.Debug("Cloning project", slog.String("url", url), slog.String("branch", branch), logfields.Path(dir))

	repo, err := git.PlainCloneContext(ctx, dir, false, opts)
	if err != nil {
		cleanup()
		return "", noop, fmt.Errorf("clone %s: %w", url, err)
	}

	if ref, herr := repo.Head(); herr == nil {
		slog.Info("Project cloned", slog.String("url", url), slog.String("commit", ref.Hash().String()[:8]))
	} else {
		slog.Info("Project cloned", slog.String("url", url))
	}
	return dir, cleanup, nil
}
