// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"pss/internal/lsp"
)

const lsName = "pss" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	proteinHandler := lsp.NewProteinHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     proteinHandler.Initialize,
		Initialized:                    proteinHandler.Initialized,
		Shutdown:                       proteinHandler.Shutdown,
		SetTrace:                       proteinHandler.SetTrace,
		TextDocumentDidOpen:            proteinHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           proteinHandler.TextDocumentDidClose,
		TextDocumentDidChange:          proteinHandler.TextDocumentDidChange,
		TextDocumentHover:              proteinHandler.TextDocumentHover,
		TextDocumentSemanticTokensFull: proteinHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting protein subunit LSP server...")

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting protein subunit LSP server:", err)
		os.Exit(1)
	}
}
