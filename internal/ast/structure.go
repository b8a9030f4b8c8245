package ast

import "strings"

// Structure is one concrete composition a protein expression denotes:
// an ordered sequence of subunit identifiers, repeats permitted. The
// empty structure (zero subunits) is the absent case of an optional.
type Structure []string

// String renders the structure in display form, subunits joined by " + ".
// The empty structure renders as the empty string.
func (s Structure) String() string {
	return strings.Join(s, " + ")
}

// Equal reports whether two structures are the same sequence.
func (s Structure) Equal(other Structure) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
