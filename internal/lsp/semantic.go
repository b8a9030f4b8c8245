package lsp

import "pss/internal/parser"

// Semantic token type indexes into SemanticTokenTypes
const (
	tokenTypeType = iota
	tokenTypeNumber
	tokenTypeOperator
)

type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

// collectSemanticTokens classifies the lexical tokens of a document:
// subunit identifiers as types, repeat counts as numbers, everything
// else the grammar knows as operators. Unscannable characters carry no
// token; they are already reported as diagnostics.
func collectSemanticTokens(source string) []SemanticToken {
	scanner := parser.NewScanner(source)

	var tokens []SemanticToken
	for _, tok := range scanner.ScanTokens() {
		var tokenType uint32
		switch tok.Type {
		case parser.SUBUNIT:
			tokenType = tokenTypeType
		case parser.NUMBER:
			tokenType = tokenTypeNumber
		case parser.PLUS, parser.PIPE,
			parser.LEFT_PAREN, parser.RIGHT_PAREN,
			parser.LEFT_BRACKET, parser.RIGHT_BRACKET,
			parser.LEFT_BRACE, parser.RIGHT_BRACE:
			tokenType = tokenTypeOperator
		default:
			continue
		}

		tokens = append(tokens, SemanticToken{
			Line:      uint32(tok.Position.Line - 1),
			StartChar: uint32(tok.Position.Column - 1),
			Length:    uint32(len(tok.Lexeme)),
			TokenType: tokenType,
		})
	}

	return tokens
}
