// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan discovers markdown articles in a directory and extracts a
// display title from each one.
package scan

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pdiddy/article-index/internal/console"
)

const markdownExt = ".md"

// titleMarkers are the line prefixes accepted as a title. A "## " line is
// never a title; "# " and "### " rank equally and the first one wins.
var titleMarkers = []string{"# ", "### "}

// ExtractTitle returns the display title of the markdown file at path. The
// title is the first line (trimmed) that starts with "# " or "### ", with
// its leading '#' characters and whitespace removed. When no such line
// exists or the file cannot be read, the base name without ".md" is used
// and, for read errors, a warning is written to warn.
func ExtractTitle(path string, warn io.Writer) string {
	data, err := os.ReadFile(path)
	if err != nil {
		console.Warnf(warn, "could not read %s: %v", path, err)
		return fallbackTitle(path)
	}

	if title, ok := findTitle(strings.ToValidUTF8(string(data), "\uFFFD")); ok {
		return title
	}
	return fallbackTitle(path)
}

// findTitle scans text line by line for the first title marker.
func findTitle(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimFunc(line, isTrimmable)
		if !hasTitleMarker(trimmed) {
			continue
		}
		return strings.TrimFunc(strings.TrimLeft(trimmed, "#"), isTrimmable), true
	}
	return "", false
}

// isTrimmable reports whether r is whitespace or a byte-order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func hasTitleMarker(line string) bool {
	for _, m := range titleMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// fallbackTitle is the base name of path with a trailing ".md" removed.
func fallbackTitle(path string) string {
	base := filepath.Base(path)
	if base == markdownExt {
		return base
	}
	return strings.TrimSuffix(base, markdownExt)
}
