package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = buildParser()

func buildParser() *participle.Parser[Protein] {
	p, err := participle.Build[Protein](
		participle.Lexer(ProteinLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

func ParseFile(path string) (*Protein, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}

func ParseSource(sourceName string, source string) (*Protein, error) {
	protein, err := parser.ParseString(sourceName, source)
	return protein, err
}
