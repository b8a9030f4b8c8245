// Package report renders scanner and parser errors with the source
// line and a caret marker underneath the offending span.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"pss/internal/parser"
)

type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

func (r *Reporter) FormatScanError(err parser.ScanError) string {
	return r.format(err.Message, err.Position, err.Length)
}

func (r *Reporter) FormatParseError(err parser.ParseError) string {
	return r.format(err.Message, err.Position, 1)
}

func (r *Reporter) format(message string, pos parser.Position, length int) string {
	var lineContent string
	if pos.Line-1 < len(r.lines) && pos.Line-1 >= 0 {
		lineContent = r.lines[pos.Line-1]
	}

	// Prepare the underline
	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		strings.Repeat("^", max(1, length))

	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Compute width for line number column
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	location := fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	if r.filename != "" {
		location = fmt.Sprintf("%s:%s", r.filename, location)
	}

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		location,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
