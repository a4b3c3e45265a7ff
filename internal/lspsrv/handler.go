// Package lspsrv implements a syntax-only Language Server Protocol
// handler: it scans and parses a document on open/change and publishes
// whatever lexical or syntax error that produced, with no completion
// or semantic-token support since nothing in this front end resolves
// names or types.
package lspsrv

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"contractlang/internal/ast"
	"contractlang/internal/parser"
)

// Handler implements the subset of glsp's protocol.Handler methods
// this front end can honestly serve: document sync and diagnostics.
// It keeps the most recent parse result per open file behind a mutex
// (nil when that parse failed), even though nothing in this package
// currently reads it back out beyond re-publishing diagnostics.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	units   map[string]*ast.SourceUnit
}

func NewHandler() *Handler {
	return &Handler{
		content: make(map[string]string),
		units:   make(map[string]*ast.SourceUnit),
	}
}

func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("contractlang LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("contractlang LSP initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("contractlang LSP shutdown")
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.reparse(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	text, ok := fullDocumentText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("contractlang LSP only supports full-document sync")
	}
	return h.reparse(ctx, params.TextDocument.URI, text)
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	delete(h.content, path)
	delete(h.units, path)
	h.mu.Unlock()

	return nil
}

func (h *Handler) reparse(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	unit, parseErr := parser.ParseSource(text)

	h.mu.Lock()
	h.content[path] = text
	h.units[path] = unit
	h.mu.Unlock()

	sendDiagnostics(ctx, uri, ConvertParseError(text, parseErr))
	return nil
}

func fullDocumentText(changes []interface{}) (string, bool) {
	if len(changes) == 0 {
		return "", false
	}
	event, ok := changes[len(changes)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return "", false
	}
	return event.Text, true
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnostics(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
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
