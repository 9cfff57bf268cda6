// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns scanned articles into markdown listing sections.
package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/article-index/pkg/types"
)

// EmptyPlaceholder is the line rendered in place of a listing when a
// section has no articles.
const EmptyPlaceholder = "*Статьи не найдены*"

// RenderSection renders a level-2 heading followed by one link line per
// article, sorted by title with Russian collation, and a trailing blank line.
// An empty list renders the heading and EmptyPlaceholder instead. The
// caller's slice is left in its original order.
func RenderSection(articles []types.Article, heading string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", heading)

	if len(articles) == 0 {
		b.WriteString(EmptyPlaceholder)
		b.WriteString("\n\n")
		return b.String()
	}

	for _, a := range SortByTitle(articles) {
		fmt.Fprintf(&b, "- [%s](%s)\n", a.Title, EncodePath(a.RelativePath))
	}
	b.WriteString("\n")
	return b.String()
}

// SortByTitle returns a copy of articles ordered by title using Russian
// collation. Articles with equal titles keep their relative order.
func SortByTitle(articles []types.Article) []types.Article {
	sorted := make([]types.Article, len(articles))
	copy(sorted, articles)

	c := collate.New(language.Russian)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Title, sorted[j].Title
		if ga, gb := scriptGroup(a), scriptGroup(b); ga != gb {
			return ga < gb
		}
		return c.CompareString(a, b) < 0
	})
	return sorted
}

// scriptGroup ranks a title by its first character: digits, punctuation and
// symbols first, then Cyrillic letters, then letters of any other script.
func scriptGroup(title string) int {
	r, _ := utf8.DecodeRuneInString(title)
	switch {
	case !unicode.IsLetter(r):
		return 0
	case unicode.Is(unicode.Cyrillic, r):
		return 1
	default:
		return 2
	}
}
