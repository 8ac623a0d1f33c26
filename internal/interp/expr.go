// ==============================================================================================
// FILE: internal/interp/expr.go
// ==============================================================================================
// PURPOSE: Expression evaluation dispatch (§4.4.3) and fold semantics
//          (§4.4.5) — the "(" accumulator rules that give adjacent values
//          inside parentheses their concatenation/addition/merge meaning.
// ==============================================================================================

package interp

import (
	"strconv"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/value"
	"github.com/lynxlang/lynx/token"
)

// evalExpr evaluates exactly one expression starting at the cursor and
// leaves the cursor at the first token past it, for every expression form
// in §4.4.3: list/compound/string/number literals, self-reference, a
// parenthesized fold, and an identifier (plain, dotted-path, or a
// builtin/call).
func evalExpr(p *parser) (*value.Value, bool) {
	if p.atEnd() {
		p.errorf(diag.Parse, "unexpected end of input")
		return nil, false
	}
	tok := p.cur()
	switch tok.Kind {
	case token.ListStart:
		lst, ok := parseList(p)
		if !ok {
			return nil, false
		}
		p.advance() // consume ']'
		return lst, true

	case token.CompoundStart:
		c, ok := parseCompound(p)
		if !ok {
			return nil, false
		}
		p.advance() // consume '}'
		return c, true

	case token.String:
		p.advance()
		return value.NewString(tok.Lexeme), true

	case token.Number:
		n, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.errorf(diag.Parse, "invalid number literal %q", tok.Lexeme)
			return nil, false
		}
		p.advance()
		return value.NewNumber(n), true

	case token.Dot:
		p.advance()
		return p.ss.Top().Clone(), true

	case token.BlockStart:
		return evalFold(p)

	case token.Identifier:
		return p.resolveIdentifier()

	default:
		p.errorf(diag.Parse, "unexpected token %s", tok.Kind)
		return nil, false
	}
}

// evalFold evaluates a parenthesized sequence of terms, combining them
// left to right with fold (§4.4.5).
func evalFold(p *parser) (*value.Value, bool) {
	p.advance() // consume '('
	if p.atEnd() || p.cur().Is(token.BlockEnd) {
		p.errorf(diag.Parse, "empty ( ) expression")
		return nil, false
	}
	acc, ok := evalExpr(p)
	if !ok {
		return nil, false
	}
	for !p.atEnd() && !p.cur().Is(token.BlockEnd) {
		term, ok := evalExpr(p)
		if !ok {
			return nil, false
		}
		acc, ok = p.fold(acc, term)
		if !ok {
			return nil, false
		}
	}
	if p.atEnd() {
		p.errorf(diag.Parse, "missing ) to close expression")
		return nil, false
	}
	p.advance() // consume ')'
	return acc, true
}

// fold combines acc with x per §4.4.5: same-variant concatenation/addition
// /merge, element-wise folding of a list whose element type matches acc's
// variant, and the two number<->string conversions.
func (p *parser) fold(acc, x *value.Value) (*value.Value, bool) {
	if acc.Kind == x.Kind {
		switch acc.Kind {
		case value.KindString:
			acc.Str += x.Str
			return acc, true
		case value.KindNumber:
			acc.Num += x.Num
			return acc, true
		case value.KindList:
			if !acc.ListMerge(x) {
				p.errorf(diag.Type, "cannot fold lists of differing element type")
				return nil, false
			}
			return acc, true
		case value.KindCompound:
			acc.Merge(x)
			return acc, true
		default:
			p.errorf(diag.Type, "values of this kind cannot be folded")
			return nil, false
		}
	}

	if x.Kind == value.KindList && x.ElemKind == acc.Kind {
		for _, el := range x.Elems {
			var ok bool
			acc, ok = p.fold(acc, el)
			if !ok {
				return nil, false
			}
		}
		return acc, true
	}

	if acc.Kind == value.KindString && x.Kind == value.KindNumber {
		acc.Str += value.FormatNumber(x.Num)
		return acc, true
	}
	if acc.Kind == value.KindNumber && x.Kind == value.KindString {
		return value.NewString(value.FormatNumber(acc.Num) + x.Str), true
	}

	p.errorf(diag.Type, "cannot fold a %s into a %s", kindName(x.Kind), kindName(acc.Kind))
	return nil, false
}

func kindName(k value.Kind) string {
	switch k {
	case value.KindString:
		return "string"
	case value.KindNumber:
		return "number"
	case value.KindList:
		return "list"
	case value.KindCompound:
		return "compound"
	case value.KindFunction:
		return "function"
	case value.KindType:
		return "type"
	default:
		return "invalid"
	}
}
