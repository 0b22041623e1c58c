package stackeval

import "strconv"

// LexError indicates a rune that cannot begin a token. It implements
// InputError.
type LexError struct {
	// Col is the position of the invalid rune.
	Col int
	// Char is the invalid rune.
	Char rune
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unknown character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}

// StructureError indicates tokens that do not reduce to a single value: an
// operator without two operands, two operands without an operator between
// them, an empty group, or an unmatched close bracket. It implements
// InputError.
type StructureError struct {
	// Col is the position of the token where the problem was found.
	Col int
	// Op is the operator or bracket involved, if any.
	Op string
	// Msg describes the problem.
	Msg string
}

func (err *StructureError) Error() string {
	if err.Op == "" {
		return errpos(err.Col, err.Msg)
	}
	return errpos(err.Col, err.Msg+" for "+strconv.Quote(err.Op))
}

func (err *StructureError) Pos() int {
	return err.Col
}

// LiteralError indicates number text that does not parse as a float32. It
// implements InputError and unwraps to the *strconv.NumError.
type LiteralError struct {
	// Col is the position of the number.
	Col int
	// Text is the number text.
	Text string
	// Err is the error from parsing.
	Err error
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*StructureError)(nil)
	_ InputError = (*LiteralError)(nil)
)
