// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index builds the README index of the article collection: it scans
// the translated and original article directories, renders one section per
// directory under a fixed preamble, and overwrites the output file.
package index

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/article-index/internal/console"
	"github.com/pdiddy/article-index/internal/render"
	"github.com/pdiddy/article-index/internal/scan"
	"github.com/pdiddy/article-index/pkg/types"
)

// OutputFile is the index file written in the working directory.
const OutputFile = "README.md"

// Preamble opens the generated index: title, one sentence, separator.
const Preamble = `# Коллекция статей

Этот репозиторий содержит коллекцию статей по программированию, разработке и технологиям.

---

`

// DefaultSections lists the scanned directories in rendering order.
var DefaultSections = []types.Section{
	{Dir: "ru", Heading: "📖 Переведенные статьи"},
	{Dir: "articles", Heading: "📖 Статьи"},
}

// Generator scans the configured sections and writes the index file.
type Generator struct {
	// Sections are scanned and rendered in order.
	Sections []types.Section

	// Output is the path of the index file to overwrite.
	Output string

	// Out receives progress and summary lines; Warn receives warnings.
	Out  io.Writer
	Warn io.Writer
}

// NewGenerator returns a Generator for the fixed layout: DefaultSections
// written to OutputFile.
func NewGenerator(out, warn io.Writer) *Generator {
	return &Generator{
		Sections: DefaultSections,
		Output:   OutputFile,
		Out:      out,
		Warn:     warn,
	}
}

// Scan scans every section directory. Unreadable inputs are reported on
// g.Warn and contribute no articles.
func (g *Generator) Scan() []types.SectionResult {
	results := make([]types.SectionResult, len(g.Sections))
	for i, s := range g.Sections {
		articles := scan.ScanDir(s.Dir, g.Warn)
		console.Infof(g.Out, "found %d article(s) in %s/", len(articles), s.Dir)
		results[i] = types.SectionResult{Section: s, Articles: articles}
	}
	return results
}

// Run scans, renders and writes the index, returning the per-section counts.
// Only a failure to write the output file is returned as an error.
func (g *Generator) Run() (types.Summary, error) {
	console.Infof(g.Out, "generating %s...", g.Output)

	results := g.Scan()
	content := Build(results)

	if err := os.WriteFile(g.Output, []byte(content), 0o644); err != nil {
		return types.Summary{}, fmt.Errorf("writing %s: %w", g.Output, err)
	}

	summary := types.Summary{Output: g.Output, Counts: make([]int, len(results))}
	for i, r := range results {
		summary.Counts[i] = len(r.Articles)
	}

	return summary, nil
}

// Build assembles the full index text: Preamble followed by one rendered
// section per result.
func Build(results []types.SectionResult) string {
	var b strings.Builder
	b.WriteString(Preamble)
	for _, r := range results {
		b.WriteString(render.RenderSection(r.Articles, r.Section.Heading))
	}
	return b.String()
}
