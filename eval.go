package stackeval

// Expr is an evaluated expression tree. Literals are kept as their source
// text until Value is called.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Value computes the expression in float32. The only possible error is a
// *LiteralError for a number that does not parse, e.g. "1.2.3" or a lone "-".
func (e *Expr) Value() (float32, error) {
	return e.n.eval()
}

// String creates a string representation of the expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

// Evaluate reduces tokens to an expression tree, starting at toks[start] and
// continuing until the end of toks or a right parenthesis that closes the
// group, whichever comes first. The second result is the position at which
// scanning stopped: the index of that right parenthesis, or len(toks).
//
// Operators are resolved with a value stack and an operator stack local to
// each parenthesis level. + and - first reduce every pending operator. * and
// / first reduce only a pending * or / on top of the stack. A left
// parenthesis evaluates its group recursively and pushes the result as a
// single operand.
func Evaluate(toks []Token, start int) (*Expr, int, error) {
	n, end, err := evaluate(toks, start)
	if err != nil {
		return nil, end, err
	}
	return &Expr{n: n}, end, nil
}

func evaluate(toks []Token, pos int) (*node, int, error) {
	var (
		vals []*node
		ops  []Token
		err  error
	)
	// Col to report if the group turns out to be empty.
	end := 1
	if pos > 0 && pos <= len(toks) {
		end = toks[pos-1].Pos
	}
scan:
	for ; pos < len(toks); pos++ {
		tok := toks[pos]
		end = tok.Pos
		switch tok.Kind {
		case TokenNum:
			vals = append(vals, &node{kind: nodeNum, text: tok.Text, pos: tok.Pos})
		case TokenAdd, TokenSub:
			// Lowest precedence: everything deferred so far resolves first.
			if vals, ops, err = reduceAll(vals, ops); err != nil {
				return nil, pos, err
			}
			ops = append(ops, tok)
		case TokenMul, TokenDiv:
			if len(ops) > 0 {
				if k := ops[len(ops)-1].Kind; k == TokenMul || k == TokenDiv {
					if vals, ops, err = reduce(vals, ops); err != nil {
						return nil, pos, err
					}
				}
			}
			ops = append(ops, tok)
		case TokenLeftParen:
			n, k, err := evaluate(toks, pos+1)
			if err != nil {
				return nil, k, err
			}
			vals = append(vals, n)
			// Continue after the closing parenthesis. If the group ran to the
			// end of the input, so does this one.
			pos = k
		case TokenRightParen:
			// The caller that opened the group steps past it.
			break scan
		default:
			return nil, pos, &StructureError{Col: tok.Pos, Op: tok.Text, Msg: "unknown token " + tok.String()}
		}
	}
	if pos > len(toks) {
		pos = len(toks)
	}
	if vals, ops, err = reduceAll(vals, ops); err != nil {
		return nil, pos, err
	}
	switch len(vals) {
	case 0:
		return nil, pos, &StructureError{Col: end, Msg: "empty expression"}
	case 1:
		return vals[0], pos, nil
	default:
		return nil, pos, &StructureError{Col: vals[1].pos, Msg: "operand without operator"}
	}
}

// reduce pops the top operator and the two top values and pushes the
// operation combining them.
func reduce(vals []*node, ops []Token) ([]*node, []Token, error) {
	op := ops[len(ops)-1]
	ops = ops[:len(ops)-1]
	if len(vals) < 2 {
		return vals, ops, &StructureError{Col: op.Pos, Op: op.Text, Msg: "missing operand"}
	}
	kind := binary(op.Kind)
	if kind == nodeNone {
		panic("stackeval: non-operator on operator stack: " + op.String())
	}
	r := vals[len(vals)-1]
	l := vals[len(vals)-2]
	vals = vals[:len(vals)-2]
	vals = append(vals, &node{kind: kind, pos: op.Pos, left: l, right: r})
	return vals, ops, nil
}

// reduceAll reduces until there are no pending operators, most recently
// pushed first.
func reduceAll(vals []*node, ops []Token) ([]*node, []Token, error) {
	var err error
	for len(ops) > 0 {
		if vals, ops, err = reduce(vals, ops); err != nil {
			return vals, ops, err
		}
	}
	return vals, ops, nil
}

// Parse tokenizes src and evaluates it to an expression tree. A right
// parenthesis with no matching left parenthesis is an error; a left
// parenthesis left open at the end of the input is closed implicitly.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	e, end, err := Evaluate(toks, 0)
	if err != nil {
		return nil, err
	}
	if end < len(toks) {
		return nil, &StructureError{Col: toks[end].Pos, Op: toks[end].Text, Msg: "close bracket with no open bracket"}
	}
	return e, nil
}

// EvalString is a shortcut to parse and compute an expression.
func EvalString(src string) (float32, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Value()
}

// MustEvalString is like EvalString but panics if the expression is
// malformed.
func MustEvalString(src string) float32 {
	r, err := EvalString(src)
	if err != nil {
		panic("stackeval: " + err.Error())
	}
	return r
}
