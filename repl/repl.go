// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"pss/internal/expand"
	"pss/internal/parser"
	"pss/internal/report"
)

const PROMPT = ">> "

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		component, parseErrors, scanErrors := parser.ParseSource("", line)
		if len(scanErrors) > 0 || len(parseErrors) > 0 {
			reporter := report.NewReporter("", line)
			for _, err := range scanErrors {
				fmt.Fprint(out, reporter.FormatScanError(err))
			}
			for _, err := range parseErrors {
				fmt.Fprint(out, reporter.FormatParseError(err))
			}
			continue
		}

		structures := expand.Expand(component)
		for _, structure := range structures {
			fmt.Fprintln(out, structure.String())
		}
		fmt.Fprintf(out, "%d structure(s)\n", len(structures))
	}
}
