// Package lsp serves syntax diagnostics for documents written in an EBNF
// grammar over the Language Server Protocol.
package lsp

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/dhamidi/parsnip/comb"
	"github.com/dhamidi/parsnip/ebnf/parse"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "parsnip"

var log = commonlog.GetLogger("parsnip.lsp")

type Server struct {
	parser  *parse.Parser
	start   string
	version string
	handler protocol.Handler
	server  *server.Server

	mu        sync.Mutex
	documents map[protocol.DocumentUri]string
}

// NewServer returns a server that parses every open document from the
// start production.
func NewServer(version string, p *parse.Parser, start string) *Server {
	ls := &Server{
		parser:    p,
		start:     start,
		version:   version,
		documents: make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

// Diagnose parses text and returns at most one diagnostic, placed at the
// furthest point the parse reached.
func (ls *Server) Diagnose(text string) ([]protocol.Diagnostic, error) {
	root, err := ls.parser.Rule(ls.start)
	if err != nil {
		return nil, err
	}
	report := comb.Parse(root, text)
	var perr *comb.Error
	if !errors.As(report.Err(), &perr) {
		return []protocol.Diagnostic{}, nil
	}
	return []protocol.Diagnostic{diagnostic(text, perr)}, nil
}

func diagnostic(text string, perr *comb.Error) protocol.Diagnostic {
	start := protocol.Position{
		Line:      protocol.UInteger(perr.Position.Line - 1),
		Character: protocol.UInteger(utf16Column(text, perr.Position)),
	}
	end := start
	if perr.Got != "" {
		r := []rune(perr.Got)[0]
		if r != '\n' {
			end.Character += protocol.UInteger(utf16.RuneLen(r))
		}
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	message := strings.TrimPrefix(perr.Error(), perr.Position.String()+": ")
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// utf16Column converts the rune column of pos into the UTF-16 offset LSP
// clients count characters in.
func utf16Column(text string, pos comb.Position) int {
	runes := []rune(text)
	lineStart := pos.Offset - (pos.Column - 1)
	n := 0
	for _, r := range runes[lineStart:pos.Offset] {
		n += utf16.RuneLen(r)
	}
	return n
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("serving diagnostics for %q", ls.start)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()

	publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}
	ls.mu.Lock()
	text, ok := ls.documents[params.TextDocument.URI]
	ls.mu.Unlock()
	if ok {
		ls.update(ctx, params.TextDocument.URI, text)
	}
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.documents[uri] = text
	ls.mu.Unlock()

	diagnostics, err := ls.Diagnose(text)
	if err != nil {
		log.Errorf("%s: %s", uri, err)
		return
	}
	publish(ctx, uri, diagnostics)
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
