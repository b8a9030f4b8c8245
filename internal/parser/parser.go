package parser

import (
	"fmt"
	"strconv"

	"pss/internal/ast"
)

type ParseError struct {
	Message  string
	Position Position
}

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseSource scans and parses a protein expression. The returned
// component is only meaningful when both error slices are empty;
// callers must never treat a partially parsed tree as a result.
func ParseSource(filename string, source string) (ast.Component, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(filename, tokens)
	component := parser.ParseProtein()

	return component, parser.errors, scanner.errors
}

// ParseProtein parses the whole token stream as a single expression:
//
//	protein        := alternation EOF
//	alternation    := concatenation ( "|" concatenation )*
//	concatenation  := term ( "+" term )*
//	term           := required_term | "[" alternation "]"
//	required_term  := ( subunit | "(" alternation ")" ) ( "{" NUMBER "}" )?
//
// Multiplicity binds tightest, '+' binds tighter than '|'.
func (p *Parser) ParseProtein() ast.Component {
	component := p.parseAlternation()
	if component == nil {
		return nil
	}

	if !p.isAtEnd() {
		p.errorAtCurrent(fmt.Sprintf("unexpected %q after expression", p.peek().Lexeme))
		return nil
	}

	return component
}

func (p *Parser) parseAlternation() ast.Component {
	first := p.parseConcatenation()
	if first == nil {
		return nil
	}

	branches := []ast.Component{first}
	for p.match(PIPE) {
		branch := p.parseConcatenation()
		if branch == nil {
			return nil
		}
		branches = append(branches, branch)
	}

	if len(branches) == 1 {
		return branches[0]
	}
	return &ast.Alternation{
		Pos:      branches[0].NodePos(),
		EndPos:   branches[len(branches)-1].NodeEndPos(),
		Branches: branches,
	}
}

func (p *Parser) parseConcatenation() ast.Component {
	first := p.parseTerm()
	if first == nil {
		return nil
	}

	terms := []ast.Component{first}
	for p.match(PLUS) {
		term := p.parseTerm()
		if term == nil {
			return nil
		}
		terms = append(terms, term)
	}

	if len(terms) == 1 {
		return terms[0]
	}
	return &ast.Concatenation{
		Pos:    terms[0].NodePos(),
		EndPos: terms[len(terms)-1].NodeEndPos(),
		Terms:  terms,
	}
}

func (p *Parser) parseTerm() ast.Component {
	if p.check(LEFT_BRACKET) {
		return p.parseOptional()
	}
	return p.parseRequiredTerm()
}

func (p *Parser) parseOptional() ast.Component {
	open := p.advance()

	inner := p.parseAlternation()
	if inner == nil {
		return nil
	}

	closing := p.consume(RIGHT_BRACKET, "expected ']' to close optional group")
	if closing.Type == ILLEGAL {
		return nil
	}

	if p.check(LEFT_BRACE) {
		p.errorAtCurrent("repeat count cannot apply to an optional group")
		return nil
	}

	return &ast.Optional{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(closing),
		Inner:  inner,
	}
}

func (p *Parser) parseRequiredTerm() ast.Component {
	var base ast.Component
	var startPos ast.Position

	switch {
	case p.check(SUBUNIT) || p.check(NUMBER):
		tok := p.advance()
		base = &ast.Subunit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			ID:     tok.Lexeme,
		}
		startPos = p.makePos(tok)

	case p.check(LEFT_PAREN):
		open := p.advance()
		inner := p.parseAlternation()
		if inner == nil {
			return nil
		}
		closing := p.consume(RIGHT_PAREN, "expected ')' to close group")
		if closing.Type == ILLEGAL {
			return nil
		}
		// Parentheses only group; no wrapper node is built.
		base = inner
		startPos = p.makePos(open)

	default:
		if p.isAtEnd() {
			p.errorAtCurrent("expected subunit, '(' or '[', found end of expression")
		} else {
			p.errorAtCurrent(fmt.Sprintf("expected subunit, '(' or '[', found %q", p.peek().Lexeme))
		}
		return nil
	}

	if !p.check(LEFT_BRACE) {
		return base
	}
	p.advance()

	countTok := p.consume(NUMBER, "expected repeat count digits inside '{ }'")
	if countTok.Type == ILLEGAL {
		return nil
	}

	closing := p.consume(RIGHT_BRACE, "expected '}' to close repeat count")
	if closing.Type == ILLEGAL {
		return nil
	}

	count, err := strconv.Atoi(countTok.Lexeme)
	if err != nil {
		// Digit runs always convert; only overflow can land here.
		p.errorAtCurrent(fmt.Sprintf("repeat count %q is out of range", countTok.Lexeme))
		return nil
	}

	return &ast.Multiplicity{
		Pos:    startPos,
		EndPos: p.makeEndPos(closing),
		Inner:  base,
		Count:  count,
	}
}
