// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the article-index CLI.
// It regenerates README.md from the markdown files in ru/ and articles/.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-index/internal/console"
	"github.com/pdiddy/article-index/internal/index"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd generates the index; it takes no arguments.
var rootCmd = &cobra.Command{
	Use:   "article-index",
	Short: "Generate README.md from the article collection",
	Long: `article-index scans the markdown files directly inside ru/ (translated
articles) and articles/ (original articles), takes the first "# " or "### "
heading of each file as its title, and overwrites README.md with a listing of
links grouped by section.

Missing directories and unreadable files are reported as warnings. Only a
failure to write README.md ends with a non-zero exit status.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	g := index.NewGenerator(out, cmd.ErrOrStderr())
	summary, err := g.Run()
	if err != nil {
		return err
	}

	console.Successf(out, "%s generated", summary.Output)
	for i, s := range g.Sections {
		console.Infof(out, "  %-10s %d", s.Dir+"/", summary.Counts[i])
	}
	console.Infof(out, "total articles: %d", summary.Total())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		console.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
