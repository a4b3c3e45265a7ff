package parser

import (
	"strings"

	"contractlang/internal/ast"
	"contractlang/internal/lexer"
)

func (p *Parser) parseSourceUnit() *ast.SourceUnit {
	start := p.peek()
	var parts []ast.SourceUnitPart
	for !p.isAtEnd() {
		parts = append(parts, p.parseSourceUnitPart())
	}
	unit := &ast.SourceUnit{Parts: parts}
	unit.SetLoc(p.locFrom(start))
	return unit
}

func (p *Parser) parseSourceUnitPart() ast.SourceUnitPart {
	docs := p.collectDocComments()

	switch {
	case p.check(lexer.PRAGMA):
		return p.parsePragmaDirective()
	case p.check(lexer.IMPORT):
		return p.parseImportDirective()
	case p.check(lexer.CONTRACT), p.check(lexer.INTERFACE), p.check(lexer.LIBRARY):
		return p.parseContractDefinition(docs)
	default:
		tok := p.peek()
		p.fail(p.tokLoc(tok), "unexpected "+tok.Type.String()+" at top level", "'pragma'", "'import'", "'contract'", "'interface'", "'library'")
		return nil
	}
}

// parsePragmaDirective parses a pragma's terminator as raw text: the
// payload runs from just after the pragma name to the
// end of that source line, trimmed, with an optional trailing ';'
// stripped. Whatever the scanner tokenized inside that span is
// discarded rather than parsed — the pragma grammar doesn't require
// those tokens to mean anything.
func (p *Parser) parsePragmaDirective() ast.SourceUnitPart {
	start := p.advance() // 'pragma'
	name := p.makeIdent()

	nameEnd := name.End().Hi
	lineEnd := len(p.source)
	if idx := strings.IndexByte(p.source[nameEnd:], '\n'); idx >= 0 {
		lineEnd = nameEnd + idx
	}

	raw := strings.TrimSpace(p.source[nameEnd:lineEnd])
	raw = strings.TrimSuffix(raw, ";")
	raw = strings.TrimSpace(raw)

	for !p.isAtEnd() && p.peek().Position.Offset < lineEnd {
		p.advance()
	}

	d := &ast.PragmaDirective{Name: name, Value: raw}
	d.SetLoc(p.locFrom(start))
	return d
}

func (p *Parser) parseImportDirective() ast.SourceUnitPart {
	start := p.advance() // 'import'
	pathTok := p.consume(lexer.STRING, "string literal")
	path := ast.StringLiteral{Value: decodeStringLiteral(pathTok.Lexeme)}
	path.SetLoc(p.tokLoc(pathTok))
	p.consume(lexer.SEMICOLON, "';'")

	d := &ast.ImportDirective{Path: path}
	d.SetLoc(p.locFrom(start))
	return d
}

func (p *Parser) parseContractDefinition(docs []string) ast.SourceUnitPart {
	start := p.advance() // 'contract' / 'interface' / 'library'
	var kind ast.ContractKind
	switch start.Type {
	case lexer.CONTRACT:
		kind = ast.ContractKindContract
	case lexer.INTERFACE:
		kind = ast.ContractKindInterface
	case lexer.LIBRARY:
		kind = ast.ContractKindLibrary
	}

	name := p.makeIdent()
	p.consume(lexer.LBRACE, "'{'")

	var parts []ast.ContractPart
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		parts = append(parts, p.parseContractPart())
	}
	if len(parts) == 0 {
		p.fail(p.tokLoc(p.peek()), "a contract, interface, or library must have at least one member")
	}
	p.consume(lexer.RBRACE, "'}'")

	d := &ast.ContractDefinition{Kind: kind, Name: name, Parts: parts, DocComments: docs}
	d.SetLoc(p.locFrom(start))
	return d
}

func (p *Parser) parseContractPart() ast.ContractPart {
	docs := p.collectDocComments()

	switch {
	case p.check(lexer.STRUCT):
		return p.parseStructDefinition(docs)
	case p.check(lexer.EVENT):
		return p.parseEventDefinition()
	case p.check(lexer.ENUM):
		return p.parseEnumDefinition()
	case p.check(lexer.CONSTRUCTOR):
		return p.parseFunctionDefinition(docs)
	case p.check(lexer.FUNCTION):
		return p.parseFunctionDefinition(docs)
	default:
		return p.parseContractVariableDefinition(docs)
	}
}

func (p *Parser) parseStructDefinition(docs []string) ast.ContractPart {
	start := p.advance() // 'struct'
	name := p.makeIdent()
	p.consume(lexer.LBRACE, "'{'")

	var fields []*ast.VariableDeclaration
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		field := p.parseVariableDeclaration()
		p.consume(lexer.SEMICOLON, "';'")
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		p.fail(p.tokLoc(p.peek()), "a struct must have at least one field")
	}
	p.consume(lexer.RBRACE, "'}'")

	d := &ast.StructDefinition{Name: name, Fields: fields, DocComments: docs}
	d.SetLoc(p.locFrom(start))
	return d
}

func (p *Parser) parseEventDefinition() ast.ContractPart {
	start := p.advance() // 'event'
	name := p.makeIdent()
	p.consume(lexer.LPAREN, "'('")

	var params []*ast.EventParameter
	if !p.check(lexer.RPAREN) {
		for {
			params = append(params, p.parseEventParameter())
			if !p.match(lexer.COMMA) {
				break
			}
			if p.check(lexer.RPAREN) {
				break
			}
		}
	}
	if len(params) == 0 {
		p.fail(p.tokLoc(p.peek()), "an event must have at least one parameter")
	}
	p.consume(lexer.RPAREN, "')'")

	anonymous := p.match(lexer.ANONYMOUS)
	p.consume(lexer.SEMICOLON, "';'")

	d := &ast.EventDefinition{Name: name, Params: params, Anonymous: anonymous}
	d.SetLoc(p.locFrom(start))
	return d
}

func (p *Parser) parseEventParameter() *ast.EventParameter {
	start := p.peek()
	ty := p.parseComplexType()
	indexed := p.match(lexer.INDEXED)

	var name *ast.Ident
	if p.check(lexer.IDENTIFIER) {
		n := p.makeIdent()
		name = &n
	}

	param := &ast.EventParameter{Type: ty, Indexed: indexed, Name: name}
	param.SetLoc(p.locFrom(start))
	return param
}

func (p *Parser) parseEnumDefinition() ast.ContractPart {
	start := p.advance() // 'enum'
	name := p.makeIdent()
	p.consume(lexer.LBRACE, "'{'")

	var values []ast.Ident
	if !p.check(lexer.RBRACE) {
		for {
			values = append(values, p.makeIdent())
			if !p.match(lexer.COMMA) {
				break
			}
			if p.check(lexer.RBRACE) {
				break
			}
		}
	}
	if len(values) == 0 {
		p.fail(p.tokLoc(p.peek()), "an enum must have at least one value")
	}
	p.consume(lexer.RBRACE, "'}'")

	d := &ast.EnumDefinition{Name: name, Values: values}
	d.SetLoc(p.locFrom(start))
	return d
}

func (p *Parser) parseContractVariableDefinition(docs []string) ast.ContractPart {
	start := p.peek()
	ty := p.parseComplexType()

	var attrs []ast.VariableAttribute
	for {
		if vis, ok := p.tryParseVisibility(); ok {
			attrs = append(attrs, ast.VariableAttribute{Visibility: &vis})
			continue
		}
		if p.check(lexer.CONSTANT) {
			p.advance()
			attrs = append(attrs, ast.VariableAttribute{IsConstant: true})
			continue
		}
		break
	}

	name := p.makeIdent()

	var init ast.Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseAssignmentExpr()
	}
	p.consume(lexer.SEMICOLON, "';'")

	d := &ast.ContractVariableDefinition{Type: ty, Attributes: attrs, Name: name, Initializer: init, DocComments: docs}
	d.SetLoc(p.locFrom(start))
	return d
}

func (p *Parser) tryParseVisibility() (ast.Visibility, bool) {
	switch p.peek().Type {
	case lexer.PUBLIC:
		p.advance()
		return ast.Public, true
	case lexer.EXTERNAL:
		p.advance()
		return ast.External, true
	case lexer.INTERNAL:
		p.advance()
		return ast.Internal, true
	case lexer.PRIVATE:
		p.advance()
		return ast.Private, true
	default:
		return 0, false
	}
}

func (p *Parser) tryParseMutability() (ast.StateMutability, bool) {
	switch p.peek().Type {
	case lexer.PURE:
		p.advance()
		return ast.Pure, true
	case lexer.VIEW:
		p.advance()
		return ast.View, true
	case lexer.PAYABLE:
		p.advance()
		return ast.Payable, true
	default:
		return 0, false
	}
}

// parseFunctionDefinition covers both "constructor(...)" and
// "function [name](...)" forms. A constructor has no name and must
// have a body; a function may be nameless (the fallback function) and
// may be declaration-only, ending ";" instead of a block.
func (p *Parser) parseFunctionDefinition(docs []string) ast.ContractPart {
	start := p.advance() // 'constructor' or 'function'
	isConstructor := start.Type == lexer.CONSTRUCTOR

	var name *ast.Ident
	if !isConstructor && p.check(lexer.IDENTIFIER) {
		n := p.makeIdent()
		name = &n
	}

	p.consume(lexer.LPAREN, "'('")
	var params []*ast.VariableDeclaration
	if !p.check(lexer.RPAREN) {
		for {
			params = append(params, p.parseVariableDeclaration())
			if !p.match(lexer.COMMA) {
				break
			}
			if p.check(lexer.RPAREN) {
				break
			}
		}
	}
	p.consume(lexer.RPAREN, "')'")

	var attrs []ast.FunctionAttribute
	for {
		if vis, ok := p.tryParseVisibility(); ok {
			attrs = append(attrs, ast.FunctionAttribute{Visibility: &vis})
			continue
		}
		if mut, ok := p.tryParseMutability(); ok {
			attrs = append(attrs, ast.FunctionAttribute{Mutability: &mut})
			continue
		}
		break
	}

	var returns []*ast.VariableDeclaration
	if p.match(lexer.RETURNS) {
		p.consume(lexer.LPAREN, "'('")
		if !p.check(lexer.RPAREN) {
			for {
				returns = append(returns, p.parseVariableDeclaration())
				if !p.match(lexer.COMMA) {
					break
				}
				if p.check(lexer.RPAREN) {
					break
				}
			}
		}
		p.consume(lexer.RPAREN, "')'")
	}

	var body *ast.Block
	if isConstructor {
		body = p.parseBlock()
	} else if p.check(lexer.LBRACE) {
		body = p.parseBlock()
	} else {
		p.consume(lexer.SEMICOLON, "';'")
	}

	d := &ast.FunctionDefinition{
		IsConstructor: isConstructor,
		Name:          name,
		Params:        params,
		Attributes:    attrs,
		Returns:       returns,
		Body:          body,
		DocComments:   docs,
	}
	d.SetLoc(p.locFrom(start))
	return d
}
