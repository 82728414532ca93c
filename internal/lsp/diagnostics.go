package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sola/internal/errors"
)

// ConvertError transforms the front end's single failure value into LSP
// diagnostics for IDE display. A nil error converts to an empty (non-nil)
// slice so a publish clears stale diagnostics.
func ConvertError(err *errors.Error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	source := "sola-parser"
	if err.Kind == errors.Lexical {
		source = "sola-scanner"
	}
	severity := protocol.DiagnosticSeverityError

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(err.Position.Line - 1),   // convert to 0-based indexing
				Character: uint32(err.Position.Column - 1), // convert to 0-based indexing
			},
			End: protocol.Position{
				Line:      uint32(err.Position.Line - 1),
				Character: uint32(err.Position.Column),
			},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Message,
	}}
}
