package lsp

import (
	"fmt"
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pss/internal/ast"
	"pss/internal/expand"
	"pss/internal/parser"
)

// Ceiling for hover expansion so a combinatorial expression cannot
// stall the editor.
const hoverMaxStructures = 10000

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"type",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// ProteinHandler implements the LSP server handlers for the protein
// subunit syntax
type ProteinHandler struct {
	mu      sync.RWMutex
	content map[string]string
	asts    map[string]ast.Component
}

// NewProteinHandler creates and returns a new ProteinHandler instance
func NewProteinHandler() *ProteinHandler {
	return &ProteinHandler{
		content: make(map[string]string),
		asts:    make(map[string]ast.Component),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *ProteinHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *ProteinHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Protein LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *ProteinHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Protein LSP Shutdown")
	return nil
}

// SetTrace handles trace configuration requests from the client
func (h *ProteinHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *ProteinHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics := h.updateDocument(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *ProteinHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.asts, params.TextDocument.URI)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Sync is full-document, so the last change carries the whole text.
func (h *ProteinHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			diagnostics := h.updateDocument(params.TextDocument.URI, whole.Text)
			sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
		}
	}

	return nil
}

// TextDocumentHover reports how many structures the expression under
// the cursor's document denotes
func (h *ProteinHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	h.mu.RLock()
	component, ok := h.asts[params.TextDocument.URI]
	h.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	var message string
	expander := expand.Expander{MaxStructures: hoverMaxStructures}
	structures, err := expander.Expand(component)
	if err != nil {
		message = fmt.Sprintf("more than %d structures", hoverMaxStructures)
	} else {
		message = fmt.Sprintf("%d structure(s)", len(structures))
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("`%s` denotes %s", component.String(), message),
		},
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *ProteinHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	h.mu.RLock()
	content, ok := h.content[params.TextDocument.URI]
	h.mu.RUnlock()

	if !ok {
		return &protocol.SemanticTokens{}, nil
	}

	tokens := collectSemanticTokens(content)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, token.TokenType, token.TokenModifiers)

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// updateDocument reparses a document and returns the diagnostics to
// publish. A clean parse stores the AST; a failed one removes any
// stale AST so hover never answers from an outdated tree.
func (h *ProteinHandler) updateDocument(uri string, text string) []protocol.Diagnostic {
	component, parseErrors, scanErrors := parser.ParseSource(uri, text)

	diagnostics := append(ConvertScanErrors(scanErrors), ConvertParseErrors(parseErrors)...)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[uri] = text
	if len(diagnostics) == 0 && component != nil {
		h.asts[uri] = component
	} else {
		delete(h.asts, uri)
	}

	return diagnostics
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		// An empty list clears previously published diagnostics.
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
