package ast

import (
	"fmt"
	"strings"
)

// ComplexType is the sum of every type-position production:
// elementary types, arrays, mappings, and the type/expression
// ambiguity fallback.
type ComplexType interface {
	Node
	isComplexType()
}

type ElementaryKind int

const (
	Bool ElementaryKind = iota
	Address
	String
	Bytes
	Uint
	Int
	FixedBytes
)

// ElementaryType is a built-in scalar or dynamic-byte-array type.
// Width carries the bit-width for Uint/Int (8..256) or the
// byte-width for FixedBytes (1..32); it is zero for every other kind.
type ElementaryType struct {
	span
	Kind  ElementaryKind
	Width int
}

func (*ElementaryType) isComplexType() {}

func (t *ElementaryType) String() string {
	switch t.Kind {
	case Bool:
		return "bool"
	case Address:
		return "address"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	case Uint:
		return fmt.Sprintf("uint%d", t.Width)
	case Int:
		return fmt.Sprintf("int%d", t.Width)
	case FixedBytes:
		return fmt.Sprintf("bytes%d", t.Width)
	default:
		return "<bad elementary type>"
	}
}

// ArrayType is T[] (Length == nil) or T[N]. Multiple dimensions nest
// left-to-right: "T[][3]" parses as ArrayType{ArrayType{T, nil}, 3}.
type ArrayType struct {
	span
	ElementType ComplexType
	Length      Expr
}

func (*ArrayType) isComplexType() {}

func (t *ArrayType) String() string {
	if t.Length == nil {
		return t.ElementType.String() + "[]"
	}
	return fmt.Sprintf("%s[%s]", t.ElementType.String(), t.Length.String())
}

type MappingType struct {
	span
	Key   ComplexType
	Value ComplexType
}

func (*MappingType) isComplexType() {}

func (t *MappingType) String() string {
	return fmt.Sprintf("mapping(%s => %s)", t.Key.String(), t.Value.String())
}

// UnresolvedType wraps a primary-plus-postfix expression parsed in a
// type position that didn't start with an elementary-type keyword or
// "mapping". Resolving it to a named type or a malformed expression is
// a semantic-analysis concern this repo does not perform.
type UnresolvedType struct {
	span
	Expr Expr
}

func (*UnresolvedType) isComplexType() {}

func (t *UnresolvedType) String() string { return t.Expr.String() }

type StorageKind int

const (
	Memory StorageKind = iota
	Storage
	Calldata
)

type StorageLocation struct {
	span
	Kind StorageKind
}

func (l *StorageLocation) String() string {
	switch l.Kind {
	case Memory:
		return "memory"
	case Storage:
		return "storage"
	case Calldata:
		return "calldata"
	default:
		return "<bad storage location>"
	}
}

type Visibility int

const (
	Public Visibility = iota
	External
	Internal
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case External:
		return "external"
	case Internal:
		return "internal"
	case Private:
		return "private"
	default:
		return "<bad visibility>"
	}
}

type StateMutability int

const (
	Pure StateMutability = iota
	View
	Payable
)

func (m StateMutability) String() string {
	switch m {
	case Pure:
		return "pure"
	case View:
		return "view"
	case Payable:
		return "payable"
	default:
		return "<bad mutability>"
	}
}

// VariableAttribute is either a visibility modifier or the "constant"
// flag on a state variable declaration. Exactly one field is set.
type VariableAttribute struct {
	Visibility *Visibility
	IsConstant bool
}

func (a VariableAttribute) String() string {
	if a.IsConstant {
		return "constant"
	}
	if a.Visibility != nil {
		return a.Visibility.String()
	}
	return "<bad variable attribute>"
}

// FunctionAttribute is either a visibility modifier or a state
// mutability modifier on a function declaration.
type FunctionAttribute struct {
	Visibility *Visibility
	Mutability *StateMutability
}

func (a FunctionAttribute) String() string {
	if a.Visibility != nil {
		return a.Visibility.String()
	}
	if a.Mutability != nil {
		return a.Mutability.String()
	}
	return "<bad function attribute>"
}

// VariableDeclaration is a typed name: a struct field, a function
// parameter or return slot, or the declaration half of a local
// variable statement.
type VariableDeclaration struct {
	span
	Type    ComplexType
	Storage *StorageLocation
	Name    Ident
}

func (d *VariableDeclaration) String() string {
	var b strings.Builder
	b.WriteString(d.Type.String())
	if d.Storage != nil {
		b.WriteString(" ")
		b.WriteString(d.Storage.String())
	}
	if d.Name.Name != "" {
		b.WriteString(" ")
		b.WriteString(d.Name.Name)
	}
	return b.String()
}
