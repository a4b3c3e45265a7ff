package ast

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"contractlang/internal/diag"
)

func TestSpanPosAndEnd(t *testing.T) {
	n := &Identifier{span: span{Loc: diag.Loc{Lo: 10, Hi: 16}}, Name: "balance"}

	assert.Equal(t, diag.Loc{Lo: 10, Hi: 10}, n.Pos())
	assert.Equal(t, diag.Loc{Lo: 16, Hi: 16}, n.End())
	assert.Equal(t, diag.Loc{Lo: 10, Hi: 16}, n.Span())
}

func TestContractDefinitionString(t *testing.T) {
	c := &ContractDefinition{
		Kind: ContractKindContract,
		Name: NewIdent(diag.Loc{}, "Token"),
		Parts: []ContractPart{
			&ContractVariableDefinition{
				Type: &ElementaryType{Kind: Uint, Width: 256},
				Name: NewIdent(diag.Loc{}, "totalSupply"),
			},
		},
		DocComments: []string{"A minimal token"},
	}

	s := c.String()
	assert.Contains(t, s, "/// A minimal token")
	assert.Contains(t, s, "contract Token {")
	assert.Contains(t, s, "uint256 totalSupply;")
}

func TestFunctionDefinitionStringDeclarationOnly(t *testing.T) {
	name := NewIdent(diag.Loc{}, "balanceOf")
	pub := Public
	f := &FunctionDefinition{
		Name: &name,
		Params: []*VariableDeclaration{
			{Type: &ElementaryType{Kind: Address}, Name: NewIdent(diag.Loc{}, "account")},
		},
		Attributes: []FunctionAttribute{{Visibility: &pub}},
		Returns: []*VariableDeclaration{
			{Type: &ElementaryType{Kind: Uint, Width: 256}},
		},
	}

	assert.Equal(t, "function balanceOf(address account) public returns (uint256);", f.String())
}

func TestFunctionDefinitionStringConstructor(t *testing.T) {
	f := &FunctionDefinition{
		IsConstructor: true,
		Body:          &Block{},
	}
	assert.Equal(t, "constructor() {}", f.String())
}

func TestArrayTypeStringNestedDimensions(t *testing.T) {
	inner := &ArrayType{ElementType: &ElementaryType{Kind: Uint, Width: 256}}
	outer := &ArrayType{
		ElementType: inner,
		Length:      &NumberLiteral{Value: big.NewInt(3), Raw: "3"},
	}
	assert.Equal(t, "uint256[][3]", outer.String())
}

func TestMappingTypeString(t *testing.T) {
	m := &MappingType{
		Key:   &ElementaryType{Kind: Address},
		Value: &ElementaryType{Kind: Uint, Width: 256},
	}
	assert.Equal(t, "mapping(address => uint256)", m.String())
}

func TestUnresolvedTypeString(t *testing.T) {
	ut := &UnresolvedType{Expr: &Identifier{Name: "CustomToken"}}
	assert.Equal(t, "CustomToken", ut.String())
}

func TestIfStmtDanglingElseAttachesInnermost(t *testing.T) {
	inner := &IfStmt{
		Cond: &BoolLiteral{Value: true},
		Then: &ExpressionStmt{Expr: &Identifier{Name: "a"}},
		Else: &ExpressionStmt{Expr: &Identifier{Name: "b"}},
	}
	outer := &IfStmt{
		Cond: &BoolLiteral{Value: false},
		Then: inner,
	}

	assert.Equal(t, "if (false) if (true) a; else b;", outer.String())
}

func TestBinaryAndAssignExprString(t *testing.T) {
	bin := &BinaryExpr{Op: "+", Left: &Identifier{Name: "a"}, Right: &Identifier{Name: "b"}}
	assert.Equal(t, "(a + b)", bin.String())

	assign := &AssignExpr{Op: "+=", Target: &Identifier{Name: "x"}, Value: bin}
	assert.Equal(t, "(x += (a + b))", assign.String())
}

func TestForStmtStringWithEmptyClauses(t *testing.T) {
	f := &ForStmt{
		Body: &Block{},
	}
	assert.Equal(t, "for (; ; ) {}", f.String())
}

func TestEventDefinitionStringAnonymous(t *testing.T) {
	name := NewIdent(diag.Loc{}, "from")
	e := &EventDefinition{
		Name: NewIdent(diag.Loc{}, "Transfer"),
		Params: []*EventParameter{
			{Type: &ElementaryType{Kind: Address}, Indexed: true, Name: &name},
		},
		Anonymous: true,
	}
	assert.Equal(t, "event Transfer(address indexed from) anonymous;", e.String())
}
