package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pss/grammar"
	"pss/internal/expand"
	"pss/internal/parser"
)

func TestParseAlternationOfGroups(t *testing.T) {
	protein, err := grammar.ParseSource("test.pss", "(B1 + B2) | (B3 + B4)")
	require.NoError(t, err)
	require.NotNil(t, protein)

	require.Len(t, protein.Alternation.Branches, 2)

	first := protein.Alternation.Branches[0]
	require.Len(t, first.Terms, 1)
	group := first.Terms[0].Required.Group
	require.NotNil(t, group)
	assert.Len(t, group.Branches, 1)
	assert.Len(t, group.Branches[0].Terms, 2)
}

func TestParseMultiplicityCount(t *testing.T) {
	protein, err := grammar.ParseSource("test.pss", "B2{3}")
	require.NoError(t, err)

	required := protein.Alternation.Branches[0].Terms[0].Required
	require.NotNil(t, required.Subunit)
	assert.Equal(t, "B2", *required.Subunit)
	require.NotNil(t, required.Count)
	assert.Equal(t, "3", *required.Count)
}

func TestParseOptionalTerm(t *testing.T) {
	protein, err := grammar.ParseSource("test.pss", "B1 + [B2] + B3")
	require.NoError(t, err)

	terms := protein.Alternation.Branches[0].Terms
	require.Len(t, terms, 3)
	assert.Nil(t, terms[0].Optional)
	assert.NotNil(t, terms[1].Optional)
	assert.Nil(t, terms[2].Optional)
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{
		"(A + B",
		"A +",
		"[A]{2}",
		"A{}",
		"",
		"A $ B",
	}

	for _, source := range tests {
		_, err := grammar.ParseSource("test.pss", source)
		assert.Error(t, err, "expected %q to fail", source)
	}
}

func TestConvertRejectsNonDigitCount(t *testing.T) {
	protein, err := grammar.ParseSource("test.pss", "A{B2}")
	require.NoError(t, err, "the lexer admits any alphanumeric run as a count")

	_, err = protein.Component()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeat count")
}

// The declarative frontend and the hand-written parser must agree on
// every well-formed expression: same rendered AST, same expansion.
func TestFrontendsAgree(t *testing.T) {
	sources := []string{
		"A",
		"42",
		"B1 + B1",
		"(B1 + B2) | (B3 + B4)",
		"B2{3}",
		"B1 + [B2] + B3",
		"B1 + [B2 + B3] + B4",
		"(B1 | B2){2} + [B3]",
		"A{2} | B{1}",
		"[A] + B",
		"A{0}",
		"B1 + ([B2 + (B3 | B4)] | B5{2}) + B6",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			protein, err := grammar.ParseSource("test.pss", source)
			require.NoError(t, err)
			declarative, err := protein.Component()
			require.NoError(t, err)

			handwritten, parseErrors, scanErrors := parser.ParseSource("test.pss", source)
			require.Empty(t, scanErrors)
			require.Empty(t, parseErrors)

			assert.Equal(t, handwritten.String(), declarative.String())
			assert.Equal(t, expand.Expand(handwritten), expand.Expand(declarative))
		})
	}
}
