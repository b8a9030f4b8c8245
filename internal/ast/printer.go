package ast

import (
	"fmt"
	"strings"
)

func (s *Subunit) String() string {
	return s.ID
}

func (c *Concatenation) String() string {
	var b strings.Builder

	for i, term := range c.Terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		// Alternation binds looser than '+', so it needs parentheses
		// to re-parse the same way.
		if _, ok := term.(*Alternation); ok {
			b.WriteString("(" + term.String() + ")")
		} else {
			b.WriteString(term.String())
		}
	}

	return b.String()
}

func (a *Alternation) String() string {
	var b strings.Builder

	for i, branch := range a.Branches {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(branch.String())
	}

	return b.String()
}

func (o *Optional) String() string {
	return "[" + o.Inner.String() + "]"
}

func (m *Multiplicity) String() string {
	if sub, ok := m.Inner.(*Subunit); ok {
		return fmt.Sprintf("%s{%d}", sub.ID, m.Count)
	}
	return fmt.Sprintf("(%s){%d}", m.Inner.String(), m.Count)
}
