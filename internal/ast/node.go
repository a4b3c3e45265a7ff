// Package ast defines the typed syntax tree the parser produces: one
// type per grammar production, each carrying the byte span it was
// parsed from.
package ast

import "contractlang/internal/diag"

// Node is implemented by every syntax tree type. Pos and End are
// zero-width locations at the start and end of the node's span —
// callers that need the full range use Span instead.
type Node interface {
	Pos() diag.Loc
	End() diag.Loc
	Span() diag.Loc
	String() string
}

// span is embedded by every concrete node type; it stores the full
// byte range and projects Pos()/End() from it.
type span struct {
	Loc diag.Loc
}

func (s span) Span() diag.Loc { return s.Loc }
func (s span) Pos() diag.Loc  { return diag.Loc{Lo: s.Loc.Lo, Hi: s.Loc.Lo} }
func (s span) End() diag.Loc  { return diag.Loc{Lo: s.Loc.Hi, Hi: s.Loc.Hi} }

func (s *span) SetLoc(loc diag.Loc) { s.Loc = loc }

// Locatable is implemented by every pointer-to-node type; the parser
// uses it to backfill a span once a production's extent is known,
// rather than threading a Loc through every constructor argument list.
type Locatable interface {
	SetLoc(diag.Loc)
}

// Ident is a declaration-site or reference-site name: contract,
// struct, function, parameter, event, enum member. Expression-position
// identifiers are a distinct type, Identifier, in expr.go.
type Ident struct {
	span
	Name string
}

func NewIdent(loc diag.Loc, name string) Ident {
	return Ident{span: span{Loc: loc}, Name: name}
}

func (i Ident) String() string { return i.Name }
