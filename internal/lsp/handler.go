package lsp

import (
	"log"
	"sort"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sola/internal/ast"
	"sola/internal/parser"
)

// SolaHandler implements the LSP server handlers for the Sola language.
// Documents are held in memory keyed by URI; the parser runs on every open
// and change, and its single error (if any) is published as a diagnostic.
type SolaHandler struct {
	mu       sync.RWMutex
	content  map[string]string
	programs map[string]*ast.Program
}

// NewSolaHandler creates and returns a new SolaHandler instance
func NewSolaHandler() *SolaHandler {
	return &SolaHandler{
		content:  make(map[string]string),
		programs: make(map[string]*ast.Program),
	}
}

// Initialize responds to the LSP client's initialize request and advertises
// the server's capabilities.
func (h *SolaHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *SolaHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Sola LSP Initialized")
	return nil
}

func (h *SolaHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Sola LSP Shutdown")
	return nil
}

func (h *SolaHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *SolaHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	h.updateDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server requests full sync, so the last change carries the whole text.
func (h *SolaHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			h.updateDocument(ctx, params.TextDocument.URI, c.Text)
		case protocol.TextDocumentContentChangeEventWhole:
			h.updateDocument(ctx, params.TextDocument.URI, c.Text)
		}
	}
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *SolaHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, string(params.TextDocument.URI))
	delete(h.programs, string(params.TextDocument.URI))
	return nil
}

// TextDocumentCompletion offers the language's keywords.
func (h *SolaHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	names := make([]string, 0, len(parser.KEYWORDS))
	for name := range parser.KEYWORDS {
		names = append(names, name)
	}
	sort.Strings(names)

	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the
// entire document. Tokens are derived from the scanner's stream; an input
// that fails to scan reports no tokens.
func (h *SolaHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.mu.RLock()
	content, ok := h.content[string(params.TextDocument.URI)]
	h.mu.RUnlock()
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	tokens, err := parser.NewScanner(string(params.TextDocument.URI), content).ScanTokens()
	if err != nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	// Encode into LSP wire format (delta-line, delta-start compression).
	var data []uint32
	var prevLine, prevStart uint32
	for _, token := range collectSemanticTokens(tokens) {
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

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *SolaHandler) updateDocument(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	program, perr := parser.ParseSource(string(uri), text)

	h.mu.Lock()
	h.content[string(uri)] = text
	if perr != nil {
		delete(h.programs, string(uri))
	} else {
		h.programs[string(uri)] = program
	}
	h.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: ConvertError(perr),
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
