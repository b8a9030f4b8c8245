// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"pss/internal/expand"
	"pss/internal/parser"
	"pss/internal/report"
)

var cli struct {
	Expression    string `arg:"" optional:"" help:"Protein definition to expand, e.g. '(S1 + S2) | S3'."`
	File          string `short:"f" type:"existingfile" help:"Read the protein definition from a file instead."`
	MaxStructures int    `default:"0" help:"Abort if the expansion would exceed this many structures (0 = unlimited)."`
	AST           bool   `help:"Print the parsed expression instead of expanding it."`
	Count         bool   `help:"Print only the number of structures."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pss-cli"),
		kong.Description("Enumerate every concrete structure a protein subunit definition denotes."),
	)

	startTime := time.Now()

	source, path := readDefinition(ctx)

	component, parseErrors, scanErrors := parser.ParseSource(path, source)

	reporter := report.NewReporter(path, source)
	for _, err := range scanErrors {
		fmt.Fprint(os.Stderr, reporter.FormatScanError(err))
	}
	for _, err := range parseErrors {
		fmt.Fprint(os.Stderr, reporter.FormatParseError(err))
	}
	if len(scanErrors) > 0 || len(parseErrors) > 0 {
		color.Red("Failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	if cli.AST {
		fmt.Println(component.String())
		return
	}

	expander := expand.Expander{MaxStructures: cli.MaxStructures}
	structures, err := expander.Expand(component)
	if err != nil {
		var limitErr *expand.LimitError
		if errors.As(err, &limitErr) {
			color.Red("error: %s", limitErr)
		} else {
			color.Red("error: %v", err)
		}
		os.Exit(1)
	}

	if cli.Count {
		fmt.Println(len(structures))
		return
	}

	for _, structure := range structures {
		fmt.Println(structure.String())
	}
	color.Green("Expanded into %d structure(s) in %s", len(structures), formatDuration(time.Since(startTime)))
}

func readDefinition(ctx *kong.Context) (source, path string) {
	switch {
	case cli.File != "" && cli.Expression != "":
		ctx.Fatalf("provide either an expression or --file, not both")
	case cli.File != "":
		data, err := os.ReadFile(cli.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			os.Exit(1)
		}
		return string(data), cli.File
	case cli.Expression != "":
		return cli.Expression, ""
	}
	ctx.Fatalf("expected a protein definition or --file")
	return "", ""
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
