// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/article-index/pkg/types"
)

func TestEncodePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain path unchanged", "articles/setup.md", "articles/setup.md"},
		{"space in segment", "ru/My Article.md", "ru/My%20Article.md"},
		{"cyrillic segment", "ru/тест.md", "ru/%D1%82%D0%B5%D1%81%D1%82.md"},
		{"reserved punctuation", "ru/a#b?c&d=e.md", "ru/a%23b%3Fc%26d%3De.md"},
		{"unreserved punctuation kept", "ru/a-b_c.d!e~f*g'h(i).md", "ru/a-b_c.d!e~f*g'h(i).md"},
		{"brackets and percent", "ru/[x]%.md", "ru/%5Bx%5D%25.md"},
		{"empty segments preserved", "a//b", "a//b"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodePath(tt.in))
		})
	}
}

func TestRenderSection_Empty(t *testing.T) {
	got := RenderSection(nil, "Статьи")

	assert.Equal(t, "## Статьи\n\n"+EmptyPlaceholder+"\n\n", got)
	assert.NotContains(t, got, "- [")
}

func TestRenderSection_Listing(t *testing.T) {
	articles := []types.Article{
		{Title: "Setup", Filename: "setup.md", RelativePath: "articles/setup.md"},
		{Title: "My Article", Filename: "My Article.md", RelativePath: "articles/My Article.md"},
	}

	got := RenderSection(articles, "Articles")

	want := "## Articles\n\n" +
		"- [My Article](articles/My%20Article.md)\n" +
		"- [Setup](articles/setup.md)\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderSection_RussianCollation(t *testing.T) {
	articles := []types.Article{
		{Title: "Б", RelativePath: "ru/b.md"},
		{Title: "А", RelativePath: "ru/a.md"},
	}

	got := RenderSection(articles, "ru")

	a := strings.Index(got, "[А]")
	b := strings.Index(got, "[Б]")
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.Less(t, a, b)
}

func TestSortByTitle(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{
			name:   "cyrillic alphabet order",
			titles: []string{"Б", "А", "В"},
			want:   []string{"А", "Б", "В"},
		},
		{
			name:   "case does not outrank letters",
			titles: []string{"Б", "а"},
			want:   []string{"а", "Б"},
		},
		{
			name:   "yo sorts with ye, not after ya",
			titles: []string{"яблоко", "ёж"},
			want:   []string{"ёж", "яблоко"},
		},
		{
			name:   "cyrillic before latin",
			titles: []string{"Apple", "Яблоко", "Zebra", "Банан"},
			want:   []string{"Банан", "Яблоко", "Apple", "Zebra"},
		},
		{
			name:   "digits before letters of any script",
			titles: []string{"Go", "Яндекс", "10 советов"},
			want:   []string{"10 советов", "Яндекс", "Go"},
		},
		{
			name:   "equal titles keep input order",
			titles: []string{"Тема", "Тема"},
			want:   []string{"Тема", "Тема"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]types.Article, len(tt.titles))
			for i, title := range tt.titles {
				in[i] = types.Article{Title: title}
			}

			sorted := SortByTitle(in)

			got := make([]string, len(sorted))
			for i, a := range sorted {
				got[i] = a.Title
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortByTitle_StableAndPure(t *testing.T) {
	in := []types.Article{
		{Title: "Б", Filename: "1.md"},
		{Title: "А", Filename: "2.md"},
		{Title: "Б", Filename: "3.md"},
	}

	sorted := SortByTitle(in)

	assert.Equal(t, []string{"2.md", "1.md", "3.md"},
		[]string{sorted[0].Filename, sorted[1].Filename, sorted[2].Filename})
	assert.Equal(t, "1.md", in[0].Filename, "input slice must not be reordered")
}
