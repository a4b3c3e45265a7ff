package ast

import (
	"fmt"
	"math/big"
	"strings"
)

// Expr is the sum of every expression-grammar production.
type Expr interface {
	Node
	isExpr()
}

// Identifier is a bare name used in expression position, distinct
// from Ident (a declaration-site name) the same way the grammar
// treats "x" as an expression differently from the "x" in "uint x;".
type Identifier struct {
	span
	Name string
}

func (*Identifier) isExpr()        {}
func (e *Identifier) String() string { return e.Name }

type NumberLiteral struct {
	span
	Value *big.Int
	Raw   string
}

func (*NumberLiteral) isExpr()        {}
func (e *NumberLiteral) String() string { return e.Raw }

// AddressLiteral is a hex literal exactly 42 bytes long (0x + 40 hex
// digits) with no embedded '_'. Anything else 0x-prefixed is a
// HexLiteral instead.
type AddressLiteral struct {
	span
	Raw string
}

func (*AddressLiteral) isExpr()        {}
func (e *AddressLiteral) String() string { return e.Raw }

type HexLiteral struct {
	span
	Raw   string
	Value *big.Int
}

func (*HexLiteral) isExpr()        {}
func (e *HexLiteral) String() string { return e.Raw }

type HexStringLiteral struct {
	span
	Raw   string
	Value []byte
}

func (*HexStringLiteral) isExpr() {}
func (e *HexStringLiteral) String() string {
	return fmt.Sprintf(`hex"%s"`, e.Raw)
}

// StringLiteral holds the decoded value: escapes resolved and
// "\<newline>" continuations removed. The decoded value never
// contains a bare newline introduced by a continuation.
type StringLiteral struct {
	span
	Value string
}

func (*StringLiteral) isExpr() {}
func (e *StringLiteral) String() string {
	return fmt.Sprintf("%q", e.Value)
}

type BoolLiteral struct {
	span
	Value bool
}

func (*BoolLiteral) isExpr() {}
func (e *BoolLiteral) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

type ArrayLiteral struct {
	span
	Elements []Expr
}

func (*ArrayLiteral) isExpr() {}
func (e *ArrayLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type ParenExpr struct {
	span
	Value Expr
}

func (*ParenExpr) isExpr() {}
func (e *ParenExpr) String() string {
	return "(" + e.Value.String() + ")"
}

type MemberAccess struct {
	span
	Target Expr
	Name   Ident
}

func (*MemberAccess) isExpr() {}
func (e *MemberAccess) String() string {
	return e.Target.String() + "." + e.Name.Name
}

// IndexAccess is Target[Index], or Target[] when Index is nil — the
// array-type-used-as-expression-prefix case.
type IndexAccess struct {
	span
	Target Expr
	Index  Expr
}

func (*IndexAccess) isExpr() {}
func (e *IndexAccess) String() string {
	if e.Index == nil {
		return e.Target.String() + "[]"
	}
	return fmt.Sprintf("%s[%s]", e.Target.String(), e.Index.String())
}

type FunctionCall struct {
	span
	Callee Expr
	Args   []Expr
}

func (*FunctionCall) isExpr() {}
func (e *FunctionCall) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee.String(), strings.Join(parts, ", "))
}

// NamedCall is a call with "{name: value, ...}" argument syntax.
type NamedCall struct {
	span
	Callee Expr
	Names  []Ident
	Values []Expr
}

func (*NamedCall) isExpr() {}
func (e *NamedCall) String() string {
	parts := make([]string, len(e.Names))
	for i := range e.Names {
		parts[i] = fmt.Sprintf("%s: %s", e.Names[i].Name, e.Values[i].String())
	}
	return fmt.Sprintf("%s({%s})", e.Callee.String(), strings.Join(parts, ", "))
}

type NewExpr struct {
	span
	Type ComplexType
	Args []Expr
}

func (*NewExpr) isExpr() {}
func (e *NewExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("new %s(%s)", e.Type.String(), strings.Join(parts, ", "))
}

// UnaryExpr is a prefix ("!x", "-x", "++x") or postfix ("x++", "x--")
// unary operator application.
type UnaryExpr struct {
	span
	Op      string
	Value   Expr
	Postfix bool
}

func (*UnaryExpr) isExpr() {}
func (e *UnaryExpr) String() string {
	if e.Postfix {
		return e.Value.String() + e.Op
	}
	return e.Op + e.Value.String()
}

type BinaryExpr struct {
	span
	Op          string
	Left, Right Expr
}

func (*BinaryExpr) isExpr() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

type ConditionalExpr struct {
	span
	Cond, Then, Else Expr
}

func (*ConditionalExpr) isExpr() {}
func (e *ConditionalExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond.String(), e.Then.String(), e.Else.String())
}

type AssignExpr struct {
	span
	Op            string
	Target, Value Expr
}

func (*AssignExpr) isExpr() {}
func (e *AssignExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Target.String(), e.Op, e.Value.String())
}
