package stackeval

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of a number token, including a leading minus
	// sign when the number is negated. For other kinds it is the operator or
	// bracket itself.
	Text string
	// Pos is the column of the first rune of the token, starting at 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is an integer or decimal number, possibly negated.
	TokenNum
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
	// TokenAdd is +.
	TokenAdd
	// TokenSub is binary -.
	TokenSub
	// TokenMul is *.
	TokenMul
	// TokenDiv is /.
	TokenDiv
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// operand reports whether a token of kind k ends an operand, so that a
// following - is subtraction rather than a sign.
func (k TokenKind) operand() bool {
	return k == TokenNum || k == TokenRightParen
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	col  int
	prev TokenKind
}

// Tokenize splits src into tokens in source order. White space separates
// tokens and is otherwise ignored. The only error is a *LexError for a rune
// that cannot begin any token.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: strings.NewReader(src)}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
		l.prev = tok.Kind
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col, Text: string(r)}
		switch {
		case unicode.IsSpace(r):
			continue
		case isNumRune(r):
			l.unreadRune()
			l.scanNum()
			tok.Kind = TokenNum
			tok.Text = l.buf.String()
		case r == '(':
			tok.Kind = TokenLeftParen
		case r == ')':
			tok.Kind = TokenRightParen
		case r == '+':
			tok.Kind = TokenAdd
		case r == '-':
			if l.prev.operand() {
				tok.Kind = TokenSub
				break
			}
			// A sign. The digits must follow immediately; if they don't, the
			// literal is just "-" and evaluating it fails.
			l.buf.WriteRune(r)
			l.scanNum()
			tok.Kind = TokenNum
			tok.Text = l.buf.String()
		case r == '*':
			tok.Kind = TokenMul
		case r == '/':
			tok.Kind = TokenDiv
		default:
			return tok, &LexError{Col: tok.Pos, Char: r}
		}
		return tok, nil
	}
}

// scanNum appends the run of digits and decimal points at the current
// position to the buffer.
func (l *lexer) scanNum() {
	for {
		r, err := l.readRune()
		if err != nil {
			// Only io.EOF is possible from a strings.Reader.
			return
		}
		if !isNumRune(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}
