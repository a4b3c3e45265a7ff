package parser

import (
	"contractlang/internal/ast"
	"contractlang/internal/diag"
	"contractlang/internal/lexer"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(lexer.LBRACE, "'{'")
	var stmts []ast.Stmt
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.parseStatement())
	}
	p.consume(lexer.RBRACE, "'}'")
	b := &ast.Block{Statements: stmts}
	b.SetLoc(p.locFrom(start))
	return b
}

// parseStatement dispatches on the leading token. Dangling "else"
// always binds to the nearest unmatched "if" — plain recursive
// descent does this automatically, with no open/closed nonterminal
// split needed.
func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.check(lexer.LBRACE):
		return p.parseBlock()
	case p.check(lexer.IF):
		return p.parseIfStmt()
	case p.check(lexer.WHILE):
		return p.parseWhileStmt()
	case p.check(lexer.FOR):
		return p.parseForStmt()
	case p.check(lexer.DO):
		return p.parseDoWhileStmt()
	case p.check(lexer.RETURN):
		return p.parseReturnStmt()
	case p.check(lexer.BREAK):
		return p.parseSimpleKeywordStmt(lexer.BREAK, func(loc lexer.Token) ast.Stmt {
			s := &ast.BreakStmt{}
			s.SetLoc(p.tokLoc(loc))
			return s
		})
	case p.check(lexer.CONTINUE):
		return p.parseSimpleKeywordStmt(lexer.CONTINUE, func(loc lexer.Token) ast.Stmt {
			s := &ast.ContinueStmt{}
			s.SetLoc(p.tokLoc(loc))
			return s
		})
	case p.check(lexer.THROW):
		return p.parseSimpleKeywordStmt(lexer.THROW, func(loc lexer.Token) ast.Stmt {
			s := &ast.ThrowStmt{}
			s.SetLoc(p.tokLoc(loc))
			return s
		})
	case p.check(lexer.EMIT):
		return p.parseEmitStmt()
	case p.isPlaceholderStmt():
		return p.parsePlaceholderStmt()
	default:
		return p.parseExprOrDeclStmt()
	}
}

func (p *Parser) parseSimpleKeywordStmt(tt lexer.TokenType, build func(lexer.Token) ast.Stmt) ast.Stmt {
	tok := p.advance()
	p.consume(lexer.SEMICOLON, "';'")
	return build(tok)
}

func (p *Parser) isPlaceholderStmt() bool {
	return p.check(lexer.IDENTIFIER) && p.peek().Lexeme == "_" && p.checkAt(1, lexer.SEMICOLON)
}

func (p *Parser) parsePlaceholderStmt() ast.Stmt {
	start := p.advance() // '_'
	p.consume(lexer.SEMICOLON, "';'")
	s := &ast.PlaceholderStmt{}
	s.SetLoc(p.locFrom(start))
	return s
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.advance() // 'if'
	p.consume(lexer.LPAREN, "'('")
	cond := p.parseExpression()
	p.consume(lexer.RPAREN, "')'")
	then := p.parseStatement()

	var elseStmt ast.Stmt
	if p.match(lexer.ELSE) {
		elseStmt = p.parseStatement()
	}

	s := &ast.IfStmt{Cond: cond, Then: then, Else: elseStmt}
	s.SetLoc(p.locFrom(start))
	return s
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.advance() // 'while'
	p.consume(lexer.LPAREN, "'('")
	cond := p.parseExpression()
	p.consume(lexer.RPAREN, "')'")
	body := p.parseStatement()
	s := &ast.WhileStmt{Cond: cond, Body: body}
	s.SetLoc(p.locFrom(start))
	return s
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance() // 'for'
	p.consume(lexer.LPAREN, "'('")

	var init ast.Stmt
	if !p.check(lexer.SEMICOLON) {
		init = p.parseExprOrDeclStmt()
	} else {
		p.advance()
	}

	var cond ast.Expr
	if !p.check(lexer.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.consume(lexer.SEMICOLON, "';'")

	var post ast.Stmt
	if !p.check(lexer.RPAREN) {
		expr := p.parseExpression()
		es := &ast.ExpressionStmt{Expr: expr}
		es.SetLoc(diag.Loc{Lo: expr.Pos().Lo, Hi: expr.End().Hi})
		post = es
	}
	p.consume(lexer.RPAREN, "')'")

	body := p.parseStatement()
	s := &ast.ForStmt{Init: init, Cond: cond, Post: post, Body: body}
	s.SetLoc(p.locFrom(start))
	return s
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	start := p.advance() // 'do'
	body := p.parseStatement()
	p.consume(lexer.WHILE, "'while'")
	p.consume(lexer.LPAREN, "'('")
	cond := p.parseExpression()
	p.consume(lexer.RPAREN, "')'")
	p.consume(lexer.SEMICOLON, "';'")
	s := &ast.DoWhileStmt{Body: body, Cond: cond}
	s.SetLoc(p.locFrom(start))
	return s
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.advance() // 'return'
	var values []ast.Expr
	if !p.check(lexer.SEMICOLON) {
		values = append(values, p.parseAssignmentExpr())
		for p.match(lexer.COMMA) {
			values = append(values, p.parseAssignmentExpr())
		}
	}
	p.consume(lexer.SEMICOLON, "';'")
	s := &ast.ReturnStmt{Values: values}
	s.SetLoc(p.locFrom(start))
	return s
}

func (p *Parser) parseEmitStmt() ast.Stmt {
	start := p.advance() // 'emit'
	event := p.parseTypePathExpr()
	p.consume(lexer.LPAREN, "'('")
	args := p.parseExprList()
	p.consume(lexer.RPAREN, "')'")
	p.consume(lexer.SEMICOLON, "';'")
	s := &ast.EmitStmt{Event: event, Args: args}
	s.SetLoc(p.locFrom(start))
	return s
}

// parseExprOrDeclStmt resolves the statement-level type/expression
// ambiguity: an elementary-type or "mapping" keyword unambiguously
// starts a declaration; an identifier-led statement
// parses a Precedence0 expression first and then looks at what
// follows it to decide whether that expression is actually a type.
func (p *Parser) parseExprOrDeclStmt() ast.Stmt {
	start := p.peek()

	if _, ok := elementaryKind(start.Type); ok || p.check(lexer.MAPPING) {
		return p.parseVariableDefinitionStmt()
	}

	expr := p.parsePrecedence0()

	if p.check(lexer.IDENTIFIER) || p.check(lexer.MEMORY) || p.check(lexer.STORAGE) || p.check(lexer.CALLDATA) {
		return p.finishVariableDefinitionStmt(start, &ast.UnresolvedType{Expr: expr})
	}

	full := p.parseAssignmentExprFrom(p.parseConditionalExprFrom(p.parseBinaryExprContinue(expr, 13)))
	p.consume(lexer.SEMICOLON, "';'")
	s := &ast.ExpressionStmt{Expr: full}
	s.SetLoc(p.locFrom(start))
	return s
}

func (p *Parser) parseVariableDefinitionStmt() ast.Stmt {
	start := p.peek()
	ty := p.parseComplexType()
	return p.finishVariableDefinitionStmt(start, ty)
}

func (p *Parser) finishVariableDefinitionStmt(start lexer.Token, ty ast.ComplexType) ast.Stmt {
	if u, ok := ty.(*ast.UnresolvedType); ok {
		u.SetLoc(p.locFrom(start))
	}
	storage := p.parseStorageLocation()
	name := p.makeIdent()

	var init ast.Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseAssignmentExpr()
	}
	p.consume(lexer.SEMICOLON, "';'")

	decl := &ast.VariableDeclaration{Type: ty, Storage: storage, Name: name}
	decl.SetLoc(p.locFrom(start))

	s := &ast.VariableDefinitionStmt{Decl: decl, Initializer: init}
	s.SetLoc(p.locFrom(start))
	return s
}
