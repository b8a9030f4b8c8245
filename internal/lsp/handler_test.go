package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pss/internal/parser"
)

func TestUpdateDocumentStoresCleanAST(t *testing.T) {
	handler := NewProteinHandler()

	diagnostics := handler.updateDocument("file:///def.pss", "(S1 + S2) | S3")
	assert.Empty(t, diagnostics)

	handler.mu.RLock()
	defer handler.mu.RUnlock()
	assert.Contains(t, handler.asts, "file:///def.pss")
	assert.Equal(t, "(S1 + S2) | S3", handler.content["file:///def.pss"])
}

func TestUpdateDocumentPublishesParseErrors(t *testing.T) {
	handler := NewProteinHandler()

	diagnostics := handler.updateDocument("file:///def.pss", "(A + B")
	require.Len(t, diagnostics, 1)

	diag := diagnostics[0]
	assert.Equal(t, uint32(0), diag.Range.Start.Line)
	assert.Equal(t, uint32(6), diag.Range.Start.Character)
	assert.Contains(t, diag.Message, "')'")
	assert.Equal(t, "pss-parser", *diag.Source)

	handler.mu.RLock()
	defer handler.mu.RUnlock()
	assert.NotContains(t, handler.asts, "file:///def.pss", "a failed parse must not leave a stale AST")
}

func TestUpdateDocumentClearsStaleAST(t *testing.T) {
	handler := NewProteinHandler()

	handler.updateDocument("file:///def.pss", "A | B")
	handler.updateDocument("file:///def.pss", "A |")

	handler.mu.RLock()
	defer handler.mu.RUnlock()
	assert.NotContains(t, handler.asts, "file:///def.pss")
}

func TestHoverReportsStructureCount(t *testing.T) {
	handler := NewProteinHandler()
	handler.updateDocument("file:///def.pss", "(B1 | B2){2} + [B3]")

	hover, err := handler.TextDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///def.pss"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "4 structure(s)")
}

func TestHoverWithoutDocument(t *testing.T) {
	handler := NewProteinHandler()

	hover, err := handler.TextDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///missing.pss"},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, hover)
}

func TestConvertScanErrors(t *testing.T) {
	scanErrors := []parser.ScanError{{
		Message:  "Unexpected character: '?'",
		Position: parser.Position{Line: 1, Column: 3, Offset: 2},
		Length:   1,
	}}

	diagnostics := ConvertScanErrors(scanErrors)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, uint32(0), diagnostics[0].Range.Start.Line)
	assert.Equal(t, uint32(2), diagnostics[0].Range.Start.Character)
	assert.Equal(t, uint32(3), diagnostics[0].Range.End.Character)
	assert.Equal(t, "pss-scanner", *diagnostics[0].Source)
}

func TestCollectSemanticTokens(t *testing.T) {
	tokens := collectSemanticTokens("S1 + B{2}")

	require.Len(t, tokens, 6)
	assert.Equal(t, uint32(tokenTypeType), tokens[0].TokenType)     // S1
	assert.Equal(t, uint32(tokenTypeOperator), tokens[1].TokenType) // +
	assert.Equal(t, uint32(tokenTypeType), tokens[2].TokenType)     // B
	assert.Equal(t, uint32(tokenTypeOperator), tokens[3].TokenType) // {
	assert.Equal(t, uint32(tokenTypeNumber), tokens[4].TokenType)   // 2
	assert.Equal(t, uint32(tokenTypeOperator), tokens[5].TokenType) // }
	assert.Equal(t, uint32(2), tokens[0].Length)
}
