package ast

import (
	"fmt"
	"strings"
)

// Stmt is the sum of every statement-grammar production.
type Stmt interface {
	Node
	isStmt()
}

type Block struct {
	span
	Statements []Stmt
}

func (*Block) isStmt() {}
func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		sb.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// VariableDefinitionStmt is a local "let"-less C-style declaration:
// "Type [storage] name [= initializer];".
type VariableDefinitionStmt struct {
	span
	Decl        *VariableDeclaration
	Initializer Expr
}

func (*VariableDefinitionStmt) isStmt() {}
func (s *VariableDefinitionStmt) String() string {
	if s.Initializer == nil {
		return s.Decl.String() + ";"
	}
	return fmt.Sprintf("%s = %s;", s.Decl.String(), s.Initializer.String())
}

type ExpressionStmt struct {
	span
	Expr Expr
}

func (*ExpressionStmt) isStmt() {}
func (s *ExpressionStmt) String() string { return s.Expr.String() + ";" }

// IfStmt always binds a trailing "else" to the nearest unmatched
// "if", the standard resolution of the dangling-else ambiguity.
type IfStmt struct {
	span
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*IfStmt) isStmt() {}
func (s *IfStmt) String() string {
	if s.Else == nil {
		return fmt.Sprintf("if (%s) %s", s.Cond.String(), s.Then.String())
	}
	return fmt.Sprintf("if (%s) %s else %s", s.Cond.String(), s.Then.String(), s.Else.String())
}

type WhileStmt struct {
	span
	Cond Expr
	Body Stmt
}

func (*WhileStmt) isStmt() {}
func (s *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", s.Cond.String(), s.Body.String())
}

// ForStmt holds the classic three-clause C-style loop header. Init,
// Cond, and Post may each be nil for the corresponding empty clause.
type ForStmt struct {
	span
	Init Stmt
	Cond Expr
	Post Stmt
	Body Stmt
}

func (*ForStmt) isStmt() {}
func (s *ForStmt) String() string {
	init, cond, post := "", "", ""
	if s.Init != nil {
		init = strings.TrimSuffix(s.Init.String(), ";")
	}
	if s.Cond != nil {
		cond = s.Cond.String()
	}
	if s.Post != nil {
		post = strings.TrimSuffix(s.Post.String(), ";")
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", init, cond, post, s.Body.String())
}

type DoWhileStmt struct {
	span
	Body Stmt
	Cond Expr
}

func (*DoWhileStmt) isStmt() {}
func (s *DoWhileStmt) String() string {
	return fmt.Sprintf("do %s while (%s);", s.Body.String(), s.Cond.String())
}

type ReturnStmt struct {
	span
	Values []Expr
}

func (*ReturnStmt) isStmt() {}
func (s *ReturnStmt) String() string {
	if len(s.Values) == 0 {
		return "return;"
	}
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("return %s;", strings.Join(parts, ", "))
}

type BreakStmt struct{ span }

func (*BreakStmt) isStmt()         {}
func (*BreakStmt) String() string { return "break;" }

type ContinueStmt struct{ span }

func (*ContinueStmt) isStmt()         {}
func (*ContinueStmt) String() string { return "continue;" }

type ThrowStmt struct{ span }

func (*ThrowStmt) isStmt()         {}
func (*ThrowStmt) String() string { return "throw;" }

type EmitStmt struct {
	span
	Event Expr
	Args  []Expr
}

func (*EmitStmt) isStmt() {}
func (s *EmitStmt) String() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("emit %s(%s);", s.Event.String(), strings.Join(parts, ", "))
}

// PlaceholderStmt is the modifier-body placeholder "_;". Modifiers
// themselves are out of scope, but the statement form is still part
// of the grammar's statement set and still parses.
type PlaceholderStmt struct{ span }

func (*PlaceholderStmt) isStmt()         {}
func (*PlaceholderStmt) String() string { return "_;" }
