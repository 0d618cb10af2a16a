// Package discover finds the files a pass should transform.
package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	DefaultExtensions   = []string{".tsx"}
	DefaultExcludedDirs = []string{"node_modules", ".next"}
)

// Options controls discovery. When Files is set the walk is skipped.
type Options struct {
	Root         string   // directory every path is relative to
	Extensions   []string // kept file extensions, case-insensitive, with leading dot
	ExcludedDirs []string // directory names never descended into
	Files        []string // explicit relative paths
}

// Target is one candidate file
type Target struct {
	Path    string // slash-separated, relative to Root
	Abs     string
	Missing bool // listed explicitly but not present on disk
}

// Find returns the targets for opts in a stable order.
//
// A missing or non-directory root is an error. Unreadable entries found while
// walking are skipped.
func Find(ctx context.Context, opts Options) ([]Target, error) {
	logger := zerolog.Ctx(ctx)

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Errorf("resolving root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("checking root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", root)
	}

	if len(opts.Files) > 0 {
		return explicit(ctx, root, opts.Files)
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	excluded := map[string]bool{}
	for _, d := range opts.ExcludedDirs {
		excluded[d] = true
	}

	logger.Debug().Str("root", root).Strs("extensions", exts).Strs("excluded_dirs", opts.ExcludedDirs).Msg("walking")

	var targets []Target
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Debug().Str("path", p).Err(err).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			if p != root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !hasExtension(d.Name(), exts) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		targets = append(targets, Target{Path: filepath.ToSlash(rel), Abs: p})
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	return targets, nil
}

func explicit(ctx context.Context, root string, files []string) ([]Target, error) {
	targets := make([]Target, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("listing files: %w", err)
		}
		rel := filepath.ToSlash(filepath.Clean(filepath.FromSlash(f)))
		abs := filepath.Join(root, filepath.FromSlash(rel))

		// a repeated entry, or a link to a listed file, would get the rules
		// applied twice
		key := abs
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			key = resolved
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		t := Target{Path: rel, Abs: abs}
		if st, err := os.Stat(abs); err != nil || st.IsDir() {
			t.Missing = true
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
