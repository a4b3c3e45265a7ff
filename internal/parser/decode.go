package parser

import (
	"math/big"
	"strings"
)

// decodeDecimal strips the embedded '_' digit-group separators
// numeric literals permit before arbitrary-precision conversion.
func decodeDecimal(raw string) *big.Int {
	cleaned := strings.ReplaceAll(raw, "_", "")
	v, _ := new(big.Int).SetString(cleaned, 10)
	return v
}

// isAddressLiteral reports whether a 0x-prefixed literal is exactly
// 42 bytes long (0x + 40 hex digits) with no embedded '_', the
// address-vs-integer-literal disambiguation rule.
func isAddressLiteral(raw string) bool {
	return len(raw) == 42 && !strings.Contains(raw, "_")
}

func decodeHex(raw string) *big.Int {
	cleaned := strings.ReplaceAll(raw[2:], "_", "")
	v, _ := new(big.Int).SetString(cleaned, 16)
	return v
}

func decodeHexString(raw string) []byte {
	cleaned := strings.ReplaceAll(raw, "_", "")
	if len(cleaned)%2 != 0 {
		return nil
	}
	out := make([]byte, len(cleaned)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexDigit(cleaned[2*i])
		lo, ok2 := hexDigit(cleaned[2*i+1])
		if !ok1 || !ok2 {
			return nil
		}
		out[i] = hi<<4 | lo
	}
	return out
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// decodeStringLiteral resolves C-style escapes and removes
// "\<newline>" line continuations. Any backslash
// sequence that isn't one of the recognized escapes is passed through
// literally — the grammar defines no diagnostic for malformed escape
// content, only for the lexical error kinds the scanner raises.
func decodeStringLiteral(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}

		next := raw[i+1]
		switch next {
		case '\n':
			i++ // line continuation: drop both the backslash and the newline
		case '\\':
			b.WriteByte('\\')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'x':
			if i+3 < len(raw) {
				if hi, ok1 := hexDigit(raw[i+2]); ok1 {
					if lo, ok2 := hexDigit(raw[i+3]); ok2 {
						b.WriteByte(hi<<4 | lo)
						i += 3
						continue
					}
				}
			}
			b.WriteByte(c)
		case 'u':
			if end := strings.IndexByte(raw[i+2:], '}'); i+2 < len(raw) && raw[i+2] == '{' && end >= 0 {
				hexDigits := raw[i+3 : i+2+end]
				if v, ok := new(big.Int).SetString(hexDigits, 16); ok {
					b.WriteRune(rune(v.Int64()))
					i += 2 + end
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
