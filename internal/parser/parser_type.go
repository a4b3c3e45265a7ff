package parser

import (
	"contractlang/internal/ast"
	"contractlang/internal/lexer"
)

func elementaryKind(tt lexer.TokenType) (ast.ElementaryKind, bool) {
	switch tt {
	case lexer.BOOL:
		return ast.Bool, true
	case lexer.ADDRESS:
		return ast.Address, true
	case lexer.STRING_TYPE:
		return ast.String, true
	case lexer.BYTES_TYPE:
		return ast.Bytes, true
	case lexer.UINT_TYPE:
		return ast.Uint, true
	case lexer.INT_TYPE:
		return ast.Int, true
	case lexer.FIXED_BYTES:
		return ast.FixedBytes, true
	default:
		return 0, false
	}
}

// parseComplexType parses an elementary type, a mapping, or falls
// back to wrapping an identifier with an optional "." member chain
// (parseTypePathExpr) as an UnresolvedType when the type position
// doesn't start with a recognized keyword; call, index and other
// postfix forms are not accepted there. Any number of trailing array
// dimensions are then folded on left-to-right, each bracket pair
// wrapping the type parsed so far as its element type.
func (p *Parser) parseComplexType() ast.ComplexType {
	start := p.peek()
	var base ast.ComplexType

	if kind, ok := elementaryKind(start.Type); ok {
		tok := p.advance()
		et := &ast.ElementaryType{Kind: kind, Width: tok.Width}
		et.SetLoc(p.locFrom(start))
		base = et
	} else if p.check(lexer.MAPPING) {
		p.advance()
		p.consume(lexer.LPAREN, "'('")
		key := p.parseComplexType()
		p.consume(lexer.FAT_ARROW, "'=>'")
		value := p.parseComplexType()
		p.consume(lexer.RPAREN, "')'")
		m := &ast.MappingType{Key: key, Value: value}
		m.SetLoc(p.locFrom(start))
		base = m
	} else {
		expr := p.parseTypePathExpr()
		u := &ast.UnresolvedType{Expr: expr}
		u.SetLoc(p.locFrom(start))
		base = u
	}

	for p.check(lexer.LBRACKET) {
		p.advance()
		var length ast.Expr
		if !p.check(lexer.RBRACKET) {
			length = p.parseExpression()
		}
		p.consume(lexer.RBRACKET, "']'")
		arr := &ast.ArrayType{ElementType: base, Length: length}
		arr.SetLoc(p.locFrom(start))
		base = arr
	}

	return base
}

// parseTypePathExpr parses a custom type name: an identifier plus any
// "." member chain, and nothing else. It deliberately stops short of
// call, index, and increment/decrement postfixes — a type position
// never needs them, and "new Wallet(args)" relies on this to leave the
// constructor's own call parens for its caller to consume.
func (p *Parser) parseTypePathExpr() ast.Expr {
	tok := p.consume(lexer.IDENTIFIER, "identifier")
	var expr ast.Expr = &ast.Identifier{Name: tok.Lexeme}
	expr.(ast.Locatable).SetLoc(p.tokLoc(tok))

	start := tok
	for p.match(lexer.DOT) {
		name := p.makeIdent()
		e := &ast.MemberAccess{Target: expr, Name: name}
		e.SetLoc(p.locFrom(start))
		expr = e
	}
	return expr
}

func (p *Parser) parseStorageLocation() *ast.StorageLocation {
	tok := p.peek()
	var kind ast.StorageKind
	switch tok.Type {
	case lexer.MEMORY:
		kind = ast.Memory
	case lexer.STORAGE:
		kind = ast.Storage
	case lexer.CALLDATA:
		kind = ast.Calldata
	default:
		return nil
	}
	p.advance()
	loc := &ast.StorageLocation{Kind: kind}
	loc.SetLoc(p.tokLoc(tok))
	return loc
}

// parseVariableDeclaration parses "Type [storage] [name]" — the name
// is optional (function returns may be unnamed).
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	start := p.peek()
	ty := p.parseComplexType()
	storage := p.parseStorageLocation()

	var name ast.Ident
	if p.check(lexer.IDENTIFIER) {
		name = p.makeIdent()
	}

	decl := &ast.VariableDeclaration{Type: ty, Storage: storage, Name: name}
	decl.SetLoc(p.locFrom(start))
	return decl
}
