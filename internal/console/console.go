// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console writes colored progress, warning and status lines.
// Colors are dropped when the process is not attached to a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Infof writes a progress line.
func Infof(w io.Writer, format string, args ...any) {
	writeLine(w, infoColor, "", format, args...)
}

// Warnf writes a warning line prefixed with "warning: ".
func Warnf(w io.Writer, format string, args ...any) {
	writeLine(w, warnColor, "warning: ", format, args...)
}

// Successf writes a success line.
func Successf(w io.Writer, format string, args ...any) {
	writeLine(w, successColor, "", format, args...)
}

// Errorf writes an error line prefixed with "error: ".
func Errorf(w io.Writer, format string, args ...any) {
	writeLine(w, errorColor, "error: ", format, args...)
}

func writeLine(w io.Writer, c *color.Color, prefix, format string, args ...any) {
	if w == nil {
		return
	}
	c.Fprintln(w, prefix+fmt.Sprintf(format, args...))
}
