package expand

import (
	"fmt"

	"pss/internal/ast"
)

// LimitError reports that an expansion would exceed the configured
// ceiling on result-set size. It is returned before the oversized set
// is materialized, not after.
type LimitError struct {
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("expansion exceeds the configured limit of %d structures", e.Limit)
}

// Expander enumerates every structure a component denotes.
type Expander struct {
	// MaxStructures caps the size of any result set produced during
	// expansion, including intermediate ones. Zero disables the cap.
	MaxStructures int
}

// Expand enumerates without a ceiling. It cannot fail for a well-formed
// component.
func Expand(component ast.Component) []ast.Structure {
	structures, err := Expander{}.Expand(component)
	if err != nil {
		// Unreachable: only the ceiling produces errors.
		panic(err)
	}
	return structures
}

// Expand walks the component bottom-up and returns its structures in
// the deterministic order defined by the algebra: alternation branches
// in textual order, concatenation as a cartesian product with the first
// term varying slowest, an optional's absent case last.
func (e Expander) Expand(component ast.Component) ([]ast.Structure, error) {
	switch c := component.(type) {
	case *ast.Subunit:
		return []ast.Structure{{c.ID}}, nil

	case *ast.Concatenation:
		return e.expandConcatenation(c)

	case *ast.Alternation:
		return e.expandAlternation(c)

	case *ast.Optional:
		inner, err := e.Expand(c.Inner)
		if err != nil {
			return nil, err
		}
		if err := e.checkLimit(len(inner) + 1); err != nil {
			return nil, err
		}
		results := make([]ast.Structure, 0, len(inner)+1)
		results = append(results, inner...)
		return append(results, ast.Structure{}), nil

	case *ast.Multiplicity:
		return e.expandMultiplicity(c)
	}

	// The switch is exhaustive over ast variants.
	panic(fmt.Sprintf("unhandled component type %T", component))
}

func (e Expander) expandConcatenation(c *ast.Concatenation) ([]ast.Structure, error) {
	results := []ast.Structure{{}}

	for _, term := range c.Terms {
		termSet, err := e.Expand(term)
		if err != nil {
			return nil, err
		}
		if err := e.checkLimit(len(results) * len(termSet)); err != nil {
			return nil, err
		}

		combined := make([]ast.Structure, 0, len(results)*len(termSet))
		for _, prefix := range results {
			for _, structure := range termSet {
				next := make(ast.Structure, 0, len(prefix)+len(structure))
				next = append(next, prefix...)
				next = append(next, structure...)
				combined = append(combined, next)
			}
		}
		results = combined
	}

	return results, nil
}

func (e Expander) expandAlternation(a *ast.Alternation) ([]ast.Structure, error) {
	var results []ast.Structure

	for _, branch := range a.Branches {
		branchSet, err := e.Expand(branch)
		if err != nil {
			return nil, err
		}
		if err := e.checkLimit(len(results) + len(branchSet)); err != nil {
			return nil, err
		}
		results = append(results, branchSet...)
	}

	return results, nil
}

// expandMultiplicity repeats every inner structure Count times. The
// result set keeps the inner cardinality; only structure length scales.
// A zero count degenerates each structure to the empty structure, the
// same contribution an absent optional makes.
func (e Expander) expandMultiplicity(m *ast.Multiplicity) ([]ast.Structure, error) {
	inner, err := e.Expand(m.Inner)
	if err != nil {
		return nil, err
	}

	results := make([]ast.Structure, 0, len(inner))
	for _, structure := range inner {
		repeated := make(ast.Structure, 0, len(structure)*m.Count)
		for i := 0; i < m.Count; i++ {
			repeated = append(repeated, structure...)
		}
		results = append(results, repeated)
	}

	return results, nil
}

func (e Expander) checkLimit(size int) error {
	if e.MaxStructures > 0 && size > e.MaxStructures {
		return &LimitError{Limit: e.MaxStructures}
	}
	return nil
}
