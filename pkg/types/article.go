// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Article describes one markdown file discovered during a directory scan.
type Article struct {
	// Title is the display title taken from the first "# " or "### " line,
	// or the base filename without ".md" when no such line exists.
	Title string `json:"title"`

	// Filename is the base name of the file (e.g. "intro.md").
	Filename string `json:"filename"`

	// RelativePath is the path relative to the working directory,
	// always with forward slashes (e.g. "ru/intro.md").
	RelativePath string `json:"relative_path"`
}

// Section names a scanned directory and the heading its listing is rendered under.
type Section struct {
	// Dir is the directory to scan, relative to the working directory.
	Dir string `json:"dir"`

	// Heading is the level-2 heading text for the rendered listing.
	Heading string `json:"heading"`
}

// SectionResult pairs a section with the articles found in its directory.
type SectionResult struct {
	Section  Section
	Articles []Article
}

// Summary reports how many articles each section contributed to the index.
type Summary struct {
	// Counts holds the article count per section, in section order.
	Counts []int

	// Output is the path of the written index file.
	Output string
}

// Total returns the number of articles across all sections.
func (s Summary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}
