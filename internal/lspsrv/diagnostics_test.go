package lspsrv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contractlang/internal/diag"
)

func TestConvertParseErrorNilClearsDiagnostics(t *testing.T) {
	diagnostics := ConvertParseError("contract C {}", nil)
	assert.Empty(t, diagnostics)
}

func TestConvertParseErrorLexError(t *testing.T) {
	source := "contract C {\n  uint256 x = \"unterminated;\n}"
	err := &diag.LexError{
		Kind:    diag.UnterminatedString,
		Loc:     diag.Loc{Lo: 26, Hi: 27},
		Message: "unterminated string literal",
	}

	diagnostics := ConvertParseError(source, err)
	assert.Len(t, diagnostics, 1)
	d := diagnostics[0]
	assert.Equal(t, "unterminated string literal", d.Message)
	assert.Equal(t, "contractlang-scanner", *d.Source)
	assert.Equal(t, uint32(1), d.Range.Start.Line, "error is on the second source line")
}

func TestConvertParseErrorSyntaxErrorReportsExpected(t *testing.T) {
	source := "contract C {\n  uint256 x\n}"
	err := &diag.SyntaxError{
		Loc:      diag.Loc{Lo: 23, Hi: 24},
		Message:  "unexpected '}'",
		Expected: []string{"';'"},
	}

	diagnostics := ConvertParseError(source, err)
	assert.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0].Message, "expected one of: ';'")
	assert.Equal(t, "contractlang-parser", *diagnostics[0].Source)
}

func TestConvertParseErrorSyntaxErrorAtEOF(t *testing.T) {
	source := "contract C {"
	err := &diag.SyntaxError{
		Message: "unexpected end of input",
		AtEOF:   true,
	}

	diagnostics := ConvertParseError(source, err)
	assert.Len(t, diagnostics, 1)
	assert.Equal(t, "unexpected end of input", diagnostics[0].Message)
}

func TestUriToPathStripsFileScheme(t *testing.T) {
	path, err := uriToPath("file:///home/user/Token.con")
	assert.NoError(t, err)
	assert.Equal(t, "/home/user/Token.con", path)
}
