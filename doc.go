// Package stackeval implements a small single-precision arithmetic calculator.
//
// Expressions contain decimal numbers, the binary operators + - * /, and
// parentheses. A minus sign that does not follow an operand is folded into
// the number after it, so "-2" is a single literal and "3 - -2" is 5. There is
// no unary minus on parenthesized groups.
//
// Evaluation uses a pair of stacks per parenthesis level rather than a parser
// that builds the whole tree ahead of time: operands and pending operators are
// reduced as soon as precedence allows, and each group is evaluated by a
// recursive call. Results are float32, so division by zero gives an infinity
// or NaN rather than an error.
//
package stackeval
