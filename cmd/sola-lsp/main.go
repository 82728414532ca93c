// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sola/internal/lsp"
)

const lsName = "sola" // Name identifier for the language server

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	// 1 = debug level, nil = default logger
	commonlog.Configure(1, nil)

	solaHandler := lsp.NewSolaHandler()

	handler = protocol.Handler{
		Initialize:                     solaHandler.Initialize,
		Initialized:                    solaHandler.Initialized,
		Shutdown:                       solaHandler.Shutdown,
		SetTrace:                       solaHandler.SetTrace,
		TextDocumentDidOpen:            solaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           solaHandler.TextDocumentDidClose,
		TextDocumentDidChange:          solaHandler.TextDocumentDidChange,
		TextDocumentCompletion:         solaHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: solaHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting Sola LSP server %s...", version)

	// Serve over standard input/output, the transport editors expect.
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Sola LSP server:", err)
		os.Exit(1)
	}
}
