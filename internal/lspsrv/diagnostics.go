package lspsrv

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"contractlang/internal/diag"
)

// ConvertParseError turns the single error ParseSource can return —
// a *diag.LexError or a *diag.SyntaxError, there is no third kind —
// into the one LSP diagnostic it corresponds to. A nil err clears
// whatever diagnostic a previous parse of this document published.
func ConvertParseError(source string, err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	switch e := err.(type) {
	case *diag.LexError:
		return []protocol.Diagnostic{rangeDiagnostic(source, e.Loc, e.Message, "contractlang-scanner")}
	case *diag.SyntaxError:
		msg := e.Message
		if len(e.Expected) > 0 {
			msg += " (expected one of: " + joinExpected(e.Expected) + ")"
		}
		if e.AtEOF {
			return []protocol.Diagnostic{{
				Range:    protocol.Range{Start: protocol.Position{}, End: protocol.Position{Character: 1}},
				Severity: ptrSeverity(protocol.DiagnosticSeverityError),
				Source:   ptrString("contractlang-parser"),
				Message:  msg,
			}}
		}
		return []protocol.Diagnostic{rangeDiagnostic(source, e.Loc, msg, "contractlang-parser")}
	default:
		return []protocol.Diagnostic{{
			Range:    protocol.Range{Start: protocol.Position{}, End: protocol.Position{Character: 1}},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("contractlang"),
			Message:  e.Error(),
		}}
	}
}

func rangeDiagnostic(source string, loc diag.Loc, message, sourceName string) protocol.Diagnostic {
	startLine, startCol := diag.LineCol(source, loc.Lo)
	endLine, endCol := diag.LineCol(source, loc.Hi)
	if loc.Hi <= loc.Lo {
		endCol = startCol + 1
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(startLine - 1), Character: uint32(startCol - 1)},
			End:   protocol.Position{Line: uint32(endLine - 1), Character: uint32(endCol - 1)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(sourceName),
		Message:  message,
	}
}

func joinExpected(expected []string) string {
	s := ""
	for i, e := range expected {
		if i > 0 {
			s += ", "
		}
		s += e
	}
	return s
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
