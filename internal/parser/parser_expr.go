package parser

import (
	"contractlang/internal/ast"
	"contractlang/internal/lexer"
)

// binaryTier maps an operator lexeme to its tier (tighter = lower
// number) and associativity, per the 16-tier precedence table.
// Tiers 0-2 (postfix, type-call, unary) are handled outside this map
// by parseUnaryExpr/parsePostfixExpr; tiers 14-15 (ternary,
// assignment) are handled above the climbing loop.
var binaryTier = map[string]struct {
	tier  int
	right bool
}{
	"**": {3, true},
	"*":  {4, false}, "/": {4, false}, "%": {4, false},
	"+": {5, false}, "-": {5, false},
	"<<": {6, false}, ">>": {6, false},
	"&": {7, false},
	"^": {8, false},
	"|": {9, false},
	"<": {10, false}, ">": {10, false}, "<=": {10, false}, ">=": {10, false},
	"==": {11, false}, "!=": {11, false},
	"&&": {12, false},
	"||": {13, false},
}

var assignOps = map[lexer.TokenType]string{
	lexer.ASSIGN:         "=",
	lexer.PLUS_ASSIGN:    "+=",
	lexer.MINUS_ASSIGN:   "-=",
	lexer.STAR_ASSIGN:    "*=",
	lexer.SLASH_ASSIGN:   "/=",
	lexer.PERCENT_ASSIGN: "%=",
	lexer.PIPE_ASSIGN:    "|=",
	lexer.CARET_ASSIGN:   "^=",
	lexer.AMP_ASSIGN:     "&=",
	lexer.SHL_ASSIGN:     "<<=",
	lexer.SHR_ASSIGN:     ">>=",
}

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignmentExpr()
}

// parseAssignmentExpr is tier 15: "=" and the compound-assigns,
// right-associative.
func (p *Parser) parseAssignmentExpr() ast.Expr {
	return p.parseAssignmentExprFrom(p.parseConditionalExpr())
}

func (p *Parser) parseAssignmentExprFrom(left ast.Expr) ast.Expr {
	start := p.tokAt(left)
	if op, ok := assignOps[p.peek().Type]; ok {
		p.advance()
		value := p.parseAssignmentExpr()
		e := &ast.AssignExpr{Op: op, Target: left, Value: value}
		e.SetLoc(p.locFrom(start))
		return e
	}
	return left
}

// parseConditionalExpr is tier 14: "? :", right-associative.
func (p *Parser) parseConditionalExpr() ast.Expr {
	return p.parseConditionalExprFrom(p.parseBinaryExpr(13))
}

func (p *Parser) parseConditionalExprFrom(left ast.Expr) ast.Expr {
	start := p.tokAt(left)
	if p.match(lexer.QUESTION) {
		then := p.parseAssignmentExpr()
		p.consume(lexer.COLON, "':'")
		elseExpr := p.parseConditionalExpr()
		e := &ast.ConditionalExpr{Cond: left, Then: then, Else: elseExpr}
		e.SetLoc(p.locFrom(start))
		return e
	}
	return left
}

// parseBinaryExpr implements tiers 3-13 via precedence climbing. Lower
// tier numbers bind tighter in this table ("**" is tier 3, "||" is
// tier 13), so maxTier is the loosest tier still allowed at this
// level: the loop consumes an operator only while its tier fits under
// that ceiling, and recurses with a tighter ceiling on the right-hand
// side (the same ceiling, for a right-associative operator, so a
// chain of it nests to the right instead of spreading left).
func (p *Parser) parseBinaryExpr(maxTier int) ast.Expr {
	return p.parseBinaryExprContinue(p.parseUnaryExpr(), maxTier)
}

func (p *Parser) parseBinaryExprContinue(left ast.Expr, maxTier int) ast.Expr {
	start := p.tokAt(left)
	for {
		info, ok := binaryTier[p.peek().Lexeme]
		if !ok || info.tier > maxTier {
			break
		}
		op := p.advance().Lexeme
		nextMax := info.tier - 1
		if info.right {
			nextMax = info.tier
		}
		right := p.parseBinaryExpr(nextMax)
		e := &ast.BinaryExpr{Op: op, Left: left, Right: right}
		e.SetLoc(p.locFrom(start))
		left = e
	}
	return left
}

// parseUnaryExpr is tier 2: prefix "!" "~" "delete" "++" "--" and
// unary "+"/"-", right-associative (a single operator application
// followed by another unary expression).
func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.match(lexer.BANG, lexer.TILDE, lexer.DELETE, lexer.INCREMENT, lexer.DECREMENT, lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		value := p.parseUnaryExpr()
		e := &ast.UnaryExpr{Op: op.Lexeme, Value: value, Postfix: false}
		e.SetLoc(p.locFrom(op))
		return e
	}
	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

// parsePrecedence0 parses a primary plus its postfix chain only — no
// unary prefix, no binary/ternary/assignment layers above it. Used by
// the statement-level ambiguity resolver to look ahead for a
// declaration.
func (p *Parser) parsePrecedence0() ast.Expr {
	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	start := p.tokAt(expr)
	for {
		switch {
		case p.match(lexer.INCREMENT, lexer.DECREMENT):
			op := p.previous()
			e := &ast.UnaryExpr{Op: op.Lexeme, Value: expr, Postfix: true}
			e.SetLoc(p.locFrom(start))
			expr = e

		case p.match(lexer.DOT):
			name := p.makeIdent()
			e := &ast.MemberAccess{Target: expr, Name: name}
			e.SetLoc(p.locFrom(start))
			expr = e

		case p.check(lexer.LBRACKET):
			p.advance()
			var index ast.Expr
			if !p.check(lexer.RBRACKET) {
				index = p.parseExpression()
			}
			p.consume(lexer.RBRACKET, "']'")
			e := &ast.IndexAccess{Target: expr, Index: index}
			e.SetLoc(p.locFrom(start))
			expr = e

		case p.check(lexer.LPAREN):
			p.advance()
			args := p.parseExprList()
			p.consume(lexer.RPAREN, "')'")
			e := &ast.FunctionCall{Callee: expr, Args: args}
			e.SetLoc(p.locFrom(start))
			expr = e

		case p.check(lexer.LBRACE):
			expr = p.parseNamedCall(expr, start)

		default:
			return expr
		}
	}
}

func (p *Parser) parseNamedCall(callee ast.Expr, start lexer.Token) ast.Expr {
	p.advance() // '{'
	var names []ast.Ident
	var values []ast.Expr
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		names = append(names, p.makeIdent())
		p.consume(lexer.COLON, "':'")
		values = append(values, p.parseAssignmentExpr())
		if !p.match(lexer.COMMA) {
			break
		}
		if p.check(lexer.RBRACE) {
			break
		}
	}
	p.consume(lexer.RBRACE, "'}'")
	e := &ast.NamedCall{Callee: callee, Names: names, Values: values}
	e.SetLoc(p.locFrom(start))
	return e
}

func (p *Parser) parseExprList() []ast.Expr {
	var args []ast.Expr
	if p.check(lexer.RPAREN) {
		return args
	}
	for {
		args = append(args, p.parseAssignmentExpr())
		if !p.match(lexer.COMMA) {
			break
		}
		if p.check(lexer.RPAREN) {
			break
		}
	}
	return args
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		e := &ast.NumberLiteral{Value: decodeDecimal(tok.Lexeme), Raw: tok.Lexeme}
		e.SetLoc(p.tokLoc(tok))
		return e

	case lexer.HEX_NUMBER:
		p.advance()
		if isAddressLiteral(tok.Lexeme) {
			e := &ast.AddressLiteral{Raw: tok.Lexeme}
			e.SetLoc(p.tokLoc(tok))
			return e
		}
		e := &ast.HexLiteral{Raw: tok.Lexeme, Value: decodeHex(tok.Lexeme)}
		e.SetLoc(p.tokLoc(tok))
		return e

	case lexer.HEX_STRING:
		p.advance()
		e := &ast.HexStringLiteral{Raw: tok.Lexeme, Value: decodeHexString(tok.Lexeme)}
		e.SetLoc(p.tokLoc(tok))
		return e

	case lexer.STRING:
		p.advance()
		e := &ast.StringLiteral{Value: decodeStringLiteral(tok.Lexeme)}
		e.SetLoc(p.tokLoc(tok))
		return e

	case lexer.TRUE, lexer.FALSE:
		p.advance()
		e := &ast.BoolLiteral{Value: tok.Type == lexer.TRUE}
		e.SetLoc(p.tokLoc(tok))
		return e

	case lexer.IDENTIFIER:
		p.advance()
		e := &ast.Identifier{Name: tok.Lexeme}
		e.SetLoc(p.tokLoc(tok))
		return e

	// A type keyword in primary position is tier 1's "named/positional
	// function-call on type": the keyword becomes a callable name, the
	// same as any other Identifier primary, and the call itself is
	// parsed by parsePostfixExpr's ordinary '(' / '{' handling.
	case lexer.BOOL, lexer.ADDRESS, lexer.STRING_TYPE, lexer.BYTES_TYPE,
		lexer.UINT_TYPE, lexer.INT_TYPE, lexer.FIXED_BYTES:
		p.advance()
		e := &ast.Identifier{Name: tok.Lexeme}
		e.SetLoc(p.tokLoc(tok))
		return e

	case lexer.LBRACKET:
		p.advance()
		var elements []ast.Expr
		if !p.check(lexer.RBRACKET) {
			for {
				elements = append(elements, p.parseAssignmentExpr())
				if !p.match(lexer.COMMA) {
					break
				}
				if p.check(lexer.RBRACKET) {
					break
				}
			}
		}
		p.consume(lexer.RBRACKET, "']'")
		e := &ast.ArrayLiteral{Elements: elements}
		e.SetLoc(p.locFrom(tok))
		return e

	case lexer.LPAREN:
		p.advance()
		value := p.parseExpression()
		p.consume(lexer.RPAREN, "')'")
		e := &ast.ParenExpr{Value: value}
		e.SetLoc(p.locFrom(tok))
		return e

	case lexer.NEW:
		p.advance()
		ty := p.parseComplexType()
		p.consume(lexer.LPAREN, "'('")
		args := p.parseExprList()
		p.consume(lexer.RPAREN, "')'")
		e := &ast.NewExpr{Type: ty, Args: args}
		e.SetLoc(p.locFrom(tok))
		return e

	default:
		p.fail(p.tokLoc(tok), "unexpected "+tok.Type.String()+" in expression", "expression")
		return nil
	}
}

// tokAt reconstructs the token an already-parsed expression started
// at, for span bookkeeping when continuing a parse from an expression
// whose own start token isn't otherwise in scope.
func (p *Parser) tokAt(e ast.Expr) lexer.Token {
	loc := e.Pos()
	return lexer.Token{Position: lexer.Position{Offset: loc.Lo}}
}
