// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/article-index/internal/console"
	"github.com/pdiddy/article-index/pkg/types"
)

// ScanDir returns an Article for every markdown file directly inside dir,
// in directory listing order. Subdirectories are not descended into and only
// regular files with the exact extension ".md" qualify (symlinks are
// followed). A missing or unreadable directory yields a warning on warn and
// an empty result; it is never an error.
func ScanDir(dir string, warn io.Writer) []types.Article {
	entries, err := os.ReadDir(dir)
	if err != nil {
		console.Warnf(warn, "could not scan directory %s: %v", dir, err)
		return nil
	}

	var articles []types.Article
	for _, e := range entries {
		name := e.Name()
		if !isMarkdownName(name) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			console.Warnf(warn, "could not stat %s: %v", path, err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		articles = append(articles, types.Article{
			Title:        ExtractTitle(path, warn),
			Filename:     name,
			RelativePath: relativePath(path),
		})
	}
	return articles
}

// isMarkdownName reports whether name carries the ".md" extension. A bare
// ".md" is a dotfile with no extension.
func isMarkdownName(name string) bool {
	return name != markdownExt && filepath.Ext(name) == markdownExt
}

// relativePath expresses path relative to the working directory with forward
// slashes. If that is not possible the cleaned path is returned as is.
func relativePath(path string) string {
	rel := filepath.Clean(path)
	if wd, err := os.Getwd(); err == nil {
		if abs, err := filepath.Abs(path); err == nil {
			if r, err := filepath.Rel(wd, abs); err == nil {
				rel = r
			}
		}
	}
	return filepath.ToSlash(rel)
}
