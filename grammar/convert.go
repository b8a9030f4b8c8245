package grammar

import (
	"fmt"
	"strconv"

	"pss/internal/ast"
)

// Component converts the participle parse tree into the shared AST,
// applying the same collapsing rules as the hand-written parser:
// single-branch alternations and single-term concatenations collapse
// to their only child. The converted tree carries no positions; the
// hand-written frontend is the positioned one.
func (p *Protein) Component() (ast.Component, error) {
	return p.Alternation.component()
}

func (a *Alternation) component() (ast.Component, error) {
	branches := make([]ast.Component, 0, len(a.Branches))
	for _, branch := range a.Branches {
		c, err := branch.component()
		if err != nil {
			return nil, err
		}
		branches = append(branches, c)
	}

	if len(branches) == 1 {
		return branches[0], nil
	}
	return &ast.Alternation{Branches: branches}, nil
}

func (c *Concatenation) component() (ast.Component, error) {
	terms := make([]ast.Component, 0, len(c.Terms))
	for _, term := range c.Terms {
		t, err := term.component()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}

	if len(terms) == 1 {
		return terms[0], nil
	}
	return &ast.Concatenation{Terms: terms}, nil
}

func (t *Term) component() (ast.Component, error) {
	if t.Optional != nil {
		inner, err := t.Optional.Inner.component()
		if err != nil {
			return nil, err
		}
		return &ast.Optional{Inner: inner}, nil
	}
	return t.Required.component()
}

func (r *Required) component() (ast.Component, error) {
	var base ast.Component
	if r.Subunit != nil {
		base = &ast.Subunit{ID: *r.Subunit}
	} else {
		group, err := r.Group.component()
		if err != nil {
			return nil, err
		}
		base = group
	}

	if r.Count == nil {
		return base, nil
	}

	// The lexer hands every alphanumeric run to Count; only digit runs
	// are legal repeat counts.
	count, err := strconv.Atoi(*r.Count)
	if err != nil {
		return nil, fmt.Errorf("repeat count must be digits, got %q", *r.Count)
	}

	return &ast.Multiplicity{Inner: base, Count: count}, nil
}
