package lexer

import "testing"

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "contract struct event enum mapping function returns if else customIdent"
	expected := []TokenType{
		CONTRACT, STRUCT, EVENT, ENUM, MAPPING, FUNCTION, RETURNS, IF, ELSE, IDENTIFIER,
	}

	tokens := NewScanner(input).ScanTokens()
	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestParameterizedTypeKeywords(t *testing.T) {
	input := "uint uint256 uint8 int int128 bytes bytes32 bytes1"
	cases := []struct {
		tt    TokenType
		width int
	}{
		{UINT_TYPE, 256},
		{UINT_TYPE, 256},
		{UINT_TYPE, 8},
		{INT_TYPE, 256},
		{INT_TYPE, 128},
		{BYTES_TYPE, 0},
		{FIXED_BYTES, 32},
		{FIXED_BYTES, 1},
	}

	tokens := NewScanner(input).ScanTokens()
	for i, c := range cases {
		if tokens[i].Type != c.tt {
			t.Errorf("token %d: expected %s, got %s", i, c.tt, tokens[i].Type)
		}
		if tokens[i].Width != c.width {
			t.Errorf("token %d: expected width %d, got %d", i, c.width, tokens[i].Width)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 1_000_000 0x0 0x1F 0xDEAD_BEEF"
	expected := []TokenType{NUMBER, NUMBER, NUMBER, HEX_NUMBER, HEX_NUMBER, HEX_NUMBER}

	tokens := NewScanner(input).ScanTokens()
	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumberRejectsBoundaryUnderscore(t *testing.T) {
	s := NewScanner("_1 ")
	s.ScanTokens()
	// leading underscore makes this an identifier, not a malformed number
	if len(s.Errors()) != 0 {
		t.Fatalf("expected no lex errors for leading-underscore identifier, got %v", s.Errors())
	}

	s = NewScanner("1_")
	s.ScanTokens()
	if len(s.Errors()) != 1 {
		t.Fatalf("expected one lex error for trailing underscore, got %d", len(s.Errors()))
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "world\n" "line\` + "\n" + `continuation"`
	tokens := NewScanner(input).ScanTokens()

	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != `world\n` {
		t.Errorf("expected STRING 'world\\n', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
	if tokens[2].Type != STRING {
		t.Errorf("expected STRING for line-continuation literal, got %s", tokens[2].Type)
	}
}

func TestUnterminatedString(t *testing.T) {
	s := NewScanner(`"never closed`)
	s.ScanTokens()
	if len(s.Errors()) != 1 {
		t.Fatalf("expected one lex error, got %d", len(s.Errors()))
	}
	if s.Errors()[0].Kind != 0 {
		// UnterminatedString is iota 0
		t.Errorf("expected UnterminatedString, got %v", s.Errors()[0].Kind)
	}
}

func TestHexStringLiteral(t *testing.T) {
	input := `hex"DEAD_BEEF"`
	tokens := NewScanner(input).ScanTokens()
	if tokens[0].Type != HEX_STRING || tokens[0].Lexeme != "DEAD_BEEF" {
		t.Errorf("expected HEX_STRING 'DEAD_BEEF', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
}

func TestHexIdentifierWithoutQuoteIsPlainIdentifier(t *testing.T) {
	tokens := NewScanner("hexValue").ScanTokens()
	if tokens[0].Type != IDENTIFIER {
		t.Errorf("expected IDENTIFIER, got %s", tokens[0].Type)
	}
}

func TestOperatorsLongestMatch(t *testing.T) {
	input := "= == => ! != < <= << <<= > >= >> >>= & && &= | || |= ^ ^= + ++ += - -- -= * ** *= / /= % %="
	expected := []TokenType{
		ASSIGN, EQ, FAT_ARROW, BANG, NOT_EQ, LESS, LESS_EQ, SHL, SHL_ASSIGN,
		GREATER, GREATER_EQ, SHR, SHR_ASSIGN, AMP, AND_AND, AMP_ASSIGN,
		PIPE, OR_OR, PIPE_ASSIGN, CARET, CARET_ASSIGN, PLUS, INCREMENT, PLUS_ASSIGN,
		MINUS, DECREMENT, MINUS_ASSIGN, STAR, STAR_STAR, STAR_ASSIGN,
		SLASH, SLASH_ASSIGN, PERCENT, PERCENT_ASSIGN,
	}

	tokens := NewScanner(input).ScanTokens()
	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s (%q)", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestDocCommentsAreEmittedAsTokens(t *testing.T) {
	input := "/// line doc\n/** block doc */\n// plain\n/* plain block */"
	tokens := NewScanner(input).ScanTokens()

	expected := []TokenType{DOC_COMMENT, DOC_COMMENT, COMMENT, BLOCK_COMMENT}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	s := NewScanner("/* never closed")
	s.ScanTokens()
	if len(s.Errors()) != 1 {
		t.Fatalf("expected one lex error, got %d", len(s.Errors()))
	}
}

func TestBracketsAndPunctuation(t *testing.T) {
	input := "(){}[],.;?~:"
	expected := []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET,
		COMMA, DOT, SEMICOLON, QUESTION, TILDE, COLON,
	}

	tokens := NewScanner(input).ScanTokens()
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestStrayCharacterReportsError(t *testing.T) {
	s := NewScanner("@")
	tokens := s.ScanTokens()
	if len(s.Errors()) != 1 {
		t.Fatalf("expected one lex error, got %d", len(s.Errors()))
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("expected scan to continue to EOF after stray character")
	}
}

func TestOffsetsAreByteAccurate(t *testing.T) {
	input := "  contract"
	tokens := NewScanner(input).ScanTokens()
	if tokens[0].Position.Offset != 2 {
		t.Errorf("expected offset 2, got %d", tokens[0].Position.Offset)
	}
}
