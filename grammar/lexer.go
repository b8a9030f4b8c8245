package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ProteinLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Subunit identifiers; an all-digit run is also the repeat
		// count form, validated during conversion
		{Name: "Subunit", Pattern: `[A-Za-z0-9]+`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[+|(){}[\]]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
