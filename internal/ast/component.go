package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Component is the tagged union over every node of a parsed protein
// expression. Exactly one variant applies per node, and the expander
// matches exhaustively over them.
type Component interface {
	NodePos() Position
	NodeEndPos() Position
	String() string
	isComponent()
}

// Subunit represents a single subunit occurrence.
// Example: "S1", "A12", "b3"
type Subunit struct {
	Pos    Position
	EndPos Position
	ID     string
}

// Concatenation represents components joined by '+' into one structure.
// The parser only builds Concatenation nodes for two or more terms; a
// single term collapses to the term itself.
// Example: "S1 + S2 + S3"
type Concatenation struct {
	Pos    Position
	EndPos Position
	Terms  []Component
}

// Alternation represents mutually exclusive branches joined by '|'.
// Branch order is textual order and determines output order. As with
// Concatenation, single branches collapse to the branch itself.
// Example: "(S1 + S2) | S3"
type Alternation struct {
	Pos      Position
	EndPos   Position
	Branches []Component
}

// Optional represents a bracketed component that may be present or absent.
// Example: "[S2]"
type Optional struct {
	Pos    Position
	EndPos Position
	Inner  Component
}

// Multiplicity represents a component repeated a literal number of times.
// The digit grammar admits zero; the expander decides what zero means.
// Example: "S1{3}", "(S1 | S2){2}"
type Multiplicity struct {
	Pos    Position
	EndPos Position
	Inner  Component
	Count  int
}

func (*Subunit) isComponent()       {}
func (*Concatenation) isComponent() {}
func (*Alternation) isComponent()   {}
func (*Optional) isComponent()      {}
func (*Multiplicity) isComponent()  {}

func (s *Subunit) NodePos() Position    { return s.Pos }
func (s *Subunit) NodeEndPos() Position { return s.EndPos }

func (c *Concatenation) NodePos() Position    { return c.Pos }
func (c *Concatenation) NodeEndPos() Position { return c.EndPos }

func (a *Alternation) NodePos() Position    { return a.Pos }
func (a *Alternation) NodeEndPos() Position { return a.EndPos }

func (o *Optional) NodePos() Position    { return o.Pos }
func (o *Optional) NodeEndPos() Position { return o.EndPos }

func (m *Multiplicity) NodePos() Position    { return m.Pos }
func (m *Multiplicity) NodeEndPos() Position { return m.EndPos }
