// Package protein is the public surface of the subunit syntax engine:
// parse a textual protein definition and enumerate every concrete
// structure it denotes.
package protein

import (
	"fmt"

	"pss/internal/ast"
	"pss/internal/expand"
	"pss/internal/parser"
)

// Structure is one concrete composition: an ordered sequence of subunit
// identifiers. It renders as "id1 + id2 + ... + idN".
type Structure = ast.Structure

// Options configures a ParseAndExpand call.
type Options struct {
	// MaxStructures limits the result-set size, including intermediate
	// sets built during expansion. Zero means unlimited. Exceeding the
	// limit yields a *expand.LimitError.
	MaxStructures int
}

// SyntaxError is the single error returned for malformed input. It
// carries the position of the first offending token and the unconsumed
// remainder of the input from that position.
type SyntaxError struct {
	Message   string
	Offset    int // 0-based byte offset
	Line      int // 1-based
	Column    int // 1-based
	Remainder string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseAndExpand parses a protein definition and returns the complete,
// deterministically ordered enumeration of structures it denotes.
// Failure is all-or-nothing: a malformed input returns a *SyntaxError
// and no structures, never a partial result.
func ParseAndExpand(text string, opts Options) ([]Structure, error) {
	component, parseErrors, scanErrors := parser.ParseSource("", text)

	if len(scanErrors) > 0 {
		first := scanErrors[0]
		return nil, newSyntaxError(text, first.Message, first.Position)
	}
	if len(parseErrors) > 0 {
		first := parseErrors[0]
		return nil, newSyntaxError(text, first.Message, first.Position)
	}

	return expand.Expander{MaxStructures: opts.MaxStructures}.Expand(component)
}

// Strings renders structures in display form, one string per structure.
// The empty structure renders as the empty string.
func Strings(structures []Structure) []string {
	rendered := make([]string, len(structures))
	for i, structure := range structures {
		rendered[i] = structure.String()
	}
	return rendered
}

func newSyntaxError(text, message string, pos parser.Position) *SyntaxError {
	remainder := ""
	if pos.Offset < len(text) {
		remainder = text[pos.Offset:]
	}
	return &SyntaxError{
		Message:   message,
		Offset:    pos.Offset,
		Line:      pos.Line,
		Column:    pos.Column,
		Remainder: remainder,
	}
}
