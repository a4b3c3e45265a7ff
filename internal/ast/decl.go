package ast

import (
	"fmt"
	"strings"
)

// writeDocComments re-attaches the "///" a doc comment's delimiters
// were stripped of at parse time, one line per stored comment line,
// so String() output still reads as source.
func writeDocComments(b *strings.Builder, docs []string) {
	for _, d := range docs {
		for _, line := range strings.Split(d, "\n") {
			b.WriteString("/// " + line)
			b.WriteString("\n")
		}
	}
}

// SourceUnit is the root of every parse: a flat sequence of
// top-level parts in source order.
type SourceUnit struct {
	span
	Parts []SourceUnitPart
}

func (u *SourceUnit) String() string {
	parts := make([]string, len(u.Parts))
	for i, p := range u.Parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, "\n\n")
}

// SourceUnitPart is implemented by every top-level production:
// contract/interface/library definitions, pragma directives, and
// import directives.
type SourceUnitPart interface {
	Node
	isSourceUnitPart()
}

type ContractKind int

const (
	ContractKindContract ContractKind = iota
	ContractKindInterface
	ContractKindLibrary
)

func (k ContractKind) String() string {
	switch k {
	case ContractKindContract:
		return "contract"
	case ContractKindInterface:
		return "interface"
	case ContractKindLibrary:
		return "library"
	default:
		return "<bad contract kind>"
	}
}

// ContractDefinition is a contract, interface, or library body.
type ContractDefinition struct {
	span
	Kind        ContractKind
	Name        Ident
	Parts       []ContractPart
	DocComments []string
}

func (*ContractDefinition) isSourceUnitPart() {}

func (c *ContractDefinition) String() string {
	var b strings.Builder
	writeDocComments(&b, c.DocComments)
	fmt.Fprintf(&b, "%s %s {\n", c.Kind, c.Name.Name)
	for _, p := range c.Parts {
		b.WriteString("  " + strings.ReplaceAll(p.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// PragmaDirective is "pragma Name Value;" where Value runs to the end
// of the logical line, consumed as raw text rather than tokenized.
type PragmaDirective struct {
	span
	Name  Ident
	Value string
}

func (*PragmaDirective) isSourceUnitPart() {}
func (p *PragmaDirective) String() string {
	return fmt.Sprintf("pragma %s %s;", p.Name.Name, p.Value)
}

type ImportDirective struct {
	span
	Path StringLiteral
}

func (*ImportDirective) isSourceUnitPart() {}
func (i *ImportDirective) String() string {
	return fmt.Sprintf("import %s;", i.Path.String())
}

// ContractPart is implemented by every declaration form that can
// appear inside a contract/interface/library body.
type ContractPart interface {
	Node
	isContractPart()
}

type StructDefinition struct {
	span
	Name        Ident
	Fields      []*VariableDeclaration
	DocComments []string
}

func (*StructDefinition) isContractPart() {}

func (s *StructDefinition) String() string {
	var b strings.Builder
	writeDocComments(&b, s.DocComments)
	fmt.Fprintf(&b, "struct %s {\n", s.Name.Name)
	for _, f := range s.Fields {
		fmt.Fprintf(&b, "  %s;\n", f.String())
	}
	b.WriteString("}")
	return b.String()
}

type EventParameter struct {
	span
	Type    ComplexType
	Indexed bool
	Name    *Ident
}

func (p *EventParameter) String() string {
	var b strings.Builder
	b.WriteString(p.Type.String())
	if p.Indexed {
		b.WriteString(" indexed")
	}
	if p.Name != nil {
		b.WriteString(" " + p.Name.Name)
	}
	return b.String()
}

type EventDefinition struct {
	span
	Name      Ident
	Params    []*EventParameter
	Anonymous bool
}

func (*EventDefinition) isContractPart() {}

func (e *EventDefinition) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.String()
	}
	s := fmt.Sprintf("event %s(%s)", e.Name.Name, strings.Join(parts, ", "))
	if e.Anonymous {
		s += " anonymous"
	}
	return s + ";"
}

type EnumDefinition struct {
	span
	Name   Ident
	Values []Ident
}

func (*EnumDefinition) isContractPart() {}

func (e *EnumDefinition) String() string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = v.Name
	}
	return fmt.Sprintf("enum %s { %s }", e.Name.Name, strings.Join(values, ", "))
}

type ContractVariableDefinition struct {
	span
	Type        ComplexType
	Attributes  []VariableAttribute
	Name        Ident
	Initializer Expr
	DocComments []string
}

func (*ContractVariableDefinition) isContractPart() {}

func (v *ContractVariableDefinition) String() string {
	var b strings.Builder
	writeDocComments(&b, v.DocComments)
	b.WriteString(v.Type.String())
	for _, a := range v.Attributes {
		b.WriteString(" " + a.String())
	}
	b.WriteString(" " + v.Name.Name)
	if v.Initializer != nil {
		b.WriteString(" = " + v.Initializer.String())
	}
	b.WriteString(";")
	return b.String()
}

// FunctionDefinition covers both "function"-keyword functions and
// constructors (IsConstructor == true, Name == nil). Body == nil
// marks a declaration-only interface method, ending in ";" instead of
// a block.
type FunctionDefinition struct {
	span
	IsConstructor bool
	Name          *Ident
	Params        []*VariableDeclaration
	Attributes    []FunctionAttribute
	Returns       []*VariableDeclaration
	Body          *Block
	DocComments   []string
}

func (*FunctionDefinition) isContractPart() {}

func (f *FunctionDefinition) String() string {
	var b strings.Builder
	writeDocComments(&b, f.DocComments)
	if f.IsConstructor {
		b.WriteString("constructor(")
	} else {
		b.WriteString("function ")
		if f.Name != nil {
			b.WriteString(f.Name.Name)
		}
		b.WriteString("(")
	}
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")")
	for _, a := range f.Attributes {
		b.WriteString(" " + a.String())
	}
	if len(f.Returns) > 0 {
		rets := make([]string, len(f.Returns))
		for i, r := range f.Returns {
			rets[i] = r.String()
		}
		b.WriteString(" returns (" + strings.Join(rets, ", ") + ")")
	}
	if f.Body == nil {
		b.WriteString(";")
	} else {
		b.WriteString(" " + f.Body.String())
	}
	return b.String()
}
