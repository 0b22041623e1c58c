package stackeval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	num := func(text string, pos int) Token { return Token{Kind: TokenNum, Text: text, Pos: pos} }
	op := func(k TokenKind, text string, pos int) Token { return Token{Kind: k, Text: text, Pos: pos} }
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []Token{num("0", 1)}},
		{"digits", "9876543210", []Token{num("9876543210", 1)}},
		{"decimal", "1.05", []Token{num("1.05", 1)}},
		{"lead-dot", ".5", []Token{num(".5", 1)}},
		{"dots", "1.2.3", []Token{num("1.2.3", 1)}},
		{"two", "1 0", []Token{num("1", 1), num("0", 3)}},
		{"padded", "  42  ", []Token{num("42", 3)}},
		// signs
		{"neg", "-5", []Token{num("-5", 1)}},
		{"neg-decimal", "-0.25", []Token{num("-0.25", 1)}},
		{"sub", "3 - 2", []Token{num("3", 1), op(TokenSub, "-", 3), num("2", 5)}},
		{"sub-tight", "3-2", []Token{num("3", 1), op(TokenSub, "-", 2), num("2", 3)}},
		{"sub-neg", "3 - -2", []Token{num("3", 1), op(TokenSub, "-", 3), num("-2", 5)}},
		{"add-neg", "1 + -2", []Token{num("1", 1), op(TokenAdd, "+", 3), num("-2", 5)}},
		{"div-neg", "4 / -2", []Token{num("4", 1), op(TokenDiv, "/", 3), num("-2", 5)}},
		{"paren-neg", "(-1)", []Token{op(TokenLeftParen, "(", 1), num("-1", 2), op(TokenRightParen, ")", 4)}},
		{"paren-sub", "(1)-2", []Token{
			op(TokenLeftParen, "(", 1), num("1", 2), op(TokenRightParen, ")", 3),
			op(TokenSub, "-", 4), num("2", 5),
		}},
		{"sign-space", "- 5", []Token{num("-", 1), num("5", 3)}},
		{"plus", "+5", []Token{op(TokenAdd, "+", 1), num("5", 2)}},
		// operators
		{"ops", "1+2*3/4", []Token{
			num("1", 1), op(TokenAdd, "+", 2), num("2", 3), op(TokenMul, "*", 4),
			num("3", 5), op(TokenDiv, "/", 6), num("4", 7),
		}},
		{"chain", "13 - 21 - 12", []Token{
			num("13", 1), op(TokenSub, "-", 4), num("21", 6), op(TokenSub, "-", 9), num("12", 11),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.NoError(t, err)
			require.Equal(t, c.tokens, toks)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		col    int
		char   rune
		before int
	}{
		{"dollar", "$", 1, '$', 0},
		{"ident", "1 + x", 5, 'x', 2},
		{"pow", "2^3", 2, '^', 1},
		{"bracket", "[1]", 1, '[', 0},
		{"exponent", "1e5", 2, 'e', 1},
		{"unicode", "2 × 3", 3, '×', 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.Error(t, err)
			var lerr *LexError
			require.ErrorAs(t, err, &lerr)
			require.Equal(t, c.col, lerr.Pos())
			require.Equal(t, c.char, lerr.Char)
			require.Len(t, toks, c.before)
			require.Contains(t, err.Error(), string(c.char))
		})
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: TokenMul, Text: "*", Pos: 7}
	require.Equal(t, "Mul:*@7", tok.String())
	require.Equal(t, "LeftParen", TokenLeftParen.String())
	require.Equal(t, "TokenKind(42)", TokenKind(42).String())
}
