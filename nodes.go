package stackeval

import (
	"strconv"
	"strings"
)

// node is a literal or a binary operation in an expression tree. Each
// operation node owns its two children exclusively.
type node struct {
	kind nodeKind

	// text is the number text of a nodeNum.
	text string
	// pos is the column of the token that produced the node.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // parse text

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// binary gets the node kind for an operator token. Other tokens give nodeNone.
func binary(k TokenKind) nodeKind {
	switch k {
	case TokenAdd:
		return nodeAdd
	case TokenSub:
		return nodeSub
	case TokenMul:
		return nodeMul
	case TokenDiv:
		return nodeDiv
	default:
		return nodeNone
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	var op string
	switch n.kind {
	case nodeNum:
		b.WriteString(n.text)
		return
	case nodeAdd:
		op = " + "
	case nodeSub:
		op = " - "
	case nodeMul:
		op = " * "
	case nodeDiv:
		op = " / "
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		return
	}
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}

// eval computes the value of the tree rooted at n. Every intermediate result
// is rounded to float32.
func (n *node) eval() (float32, error) {
	if n.kind == nodeNum {
		f, err := strconv.ParseFloat(n.text, 32)
		if err != nil {
			return 0, &LiteralError{Col: n.pos, Text: n.text, Err: err}
		}
		return float32(f), nil
	}
	l, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return float32(l + r), nil
	case nodeSub:
		return float32(l - r), nil
	case nodeMul:
		return float32(l * r), nil
	case nodeDiv:
		return float32(l / r), nil
	default:
		panic("stackeval: invalid node kind " + n.kind.String())
	}
}
