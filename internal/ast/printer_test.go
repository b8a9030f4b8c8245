package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubunitString(t *testing.T) {
	subunit := &Subunit{ID: "S1"}
	assert.Equal(t, "S1", subunit.String())
}

func TestConcatenationString(t *testing.T) {
	concat := &Concatenation{Terms: []Component{
		&Subunit{ID: "S1"},
		&Subunit{ID: "S2"},
	}}
	assert.Equal(t, "S1 + S2", concat.String())
}

func TestConcatenationParenthesizesAlternation(t *testing.T) {
	// An alternation term needs parentheses to re-parse identically.
	concat := &Concatenation{Terms: []Component{
		&Subunit{ID: "S1"},
		&Alternation{Branches: []Component{
			&Subunit{ID: "S2"},
			&Subunit{ID: "S3"},
		}},
	}}
	assert.Equal(t, "S1 + (S2 | S3)", concat.String())
}

func TestOptionalString(t *testing.T) {
	optional := &Optional{Inner: &Subunit{ID: "S2"}}
	assert.Equal(t, "[S2]", optional.String())
}

func TestMultiplicityString(t *testing.T) {
	mult := &Multiplicity{Inner: &Subunit{ID: "A"}, Count: 3}
	assert.Equal(t, "A{3}", mult.String())

	group := &Multiplicity{
		Inner: &Alternation{Branches: []Component{
			&Subunit{ID: "S1"},
			&Subunit{ID: "S2"},
		}},
		Count: 2,
	}
	assert.Equal(t, "(S1 | S2){2}", group.String())
}

func TestStructureString(t *testing.T) {
	assert.Equal(t, "B1 + B2 + B1", Structure{"B1", "B2", "B1"}.String())
	assert.Equal(t, "B1", Structure{"B1"}.String())
	assert.Equal(t, "", Structure{}.String())
}

func TestStructureEqual(t *testing.T) {
	assert.True(t, Structure{"A", "B"}.Equal(Structure{"A", "B"}))
	assert.False(t, Structure{"A", "B"}.Equal(Structure{"B", "A"}))
	assert.False(t, Structure{"A"}.Equal(Structure{"A", "A"}))
	assert.True(t, Structure{}.Equal(Structure(nil)))
}
