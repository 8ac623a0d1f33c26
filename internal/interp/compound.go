// ==============================================================================================
// FILE: internal/interp/compound.go
// ==============================================================================================
// PURPOSE: Compound parsing (§4.4.1): the three field forms (spread, type
//          declaration, assignment), a fourth bare-call-statement form for
//          side-effecting natives like `use` that bind nothing, plus the
//          nesting-depth guard shared with function-call recursion (§5).
// ==============================================================================================

package interp

import (
	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
	"github.com/lynxlang/lynx/token"
)

// parseCompound reads "{ field* }", pushing a fresh compound onto the
// scope stack for the duration of its own body so nested expressions (in
// particular `.` self-reference and identifier resolution) see it as the
// innermost frame. It leaves the cursor at the closing '}'.
func parseCompound(p *parser) (*value.Value, bool) {
	if !p.cur().Is(token.CompoundStart) {
		p.errorf(diag.Parse, "expected {")
		return nil, false
	}
	p.advance()

	p.depth++
	if p.depth > maxRecursionDepth {
		p.errorf(diag.Fatal, "maximum nesting depth exceeded")
		p.depth--
		return nil, false
	}

	c := value.NewCompound()
	p.ss.Push(c)

	ok := parseCompoundBody(p, c)

	p.ss.Pop()
	p.depth--
	if !ok {
		return nil, false
	}
	return c, true
}

func parseCompoundBody(p *parser, c *value.Value) bool {
	for !p.atEnd() && !p.cur().Is(token.CompoundEnd) {
		if p.cur().Is(token.BlockStart) {
			spread, ok := evalFold(p)
			if !ok {
				return false
			}
			if spread.Kind != value.KindCompound {
				p.errorf(diag.Type, "spread expression must evaluate to a compound")
				return false
			}
			c.Merge(spread)
			continue
		}

		if !p.cur().Is(token.Identifier) {
			p.errorf(diag.Parse, "expected a field name")
			return false
		}

		// A leading identifier not immediately followed by ':' or '=' is not
		// a field declaration at all but a bare call statement run for its
		// side effects (the canonical case: `use "lib.lynx"`, whose merge
		// into this very compound happens inside the native, not here).
		if !(p.peekIs(1, token.Colon) || p.peekIs(1, token.Assign)) {
			if _, ok := evalExpr(p); !ok {
				return false
			}
			continue
		}

		key := p.cur().Lexeme
		p.advance()

		switch {
		case p.cur().Is(token.Colon):
			p.advance()
			typ, ok := parseType(p)
			if !ok {
				return false
			}
			if existing, has := c.Get(key); has {
				if existing.Kind == value.KindType {
					p.errorf(diag.Parse, "%q already has a type declaration", key)
					return false
				}
				p.warnf("type declaration for %q has no effect on its existing value", key)
			} else {
				c.Add(value.NewType(typ).WithKey(key))
			}
			if p.cur().Is(token.Assign) {
				p.advance()
				if !assignField(p, c, key, typ) {
					return false
				}
			}

		case p.cur().Is(token.Assign):
			p.advance()
			var declared *types.Type
			if existing, has := c.Get(key); has && existing.Kind == value.KindType {
				declared = existing.Typ
			}
			if !assignField(p, c, key, declared) {
				return false
			}

		default:
			p.errorf(diag.Parse, "expected ':' or '=' after field name %q", key)
			return false
		}
	}

	if p.atEnd() {
		p.errorf(diag.Parse, "missing } to close compound")
		return false
	}
	return true
}

// assignField evaluates the right-hand side of "key = expr", validates it
// against declared (nil when the field has no prior type declaration),
// and adds it to c under key.
func assignField(p *parser, c *value.Value, key string, declared *types.Type) bool {
	val, ok := evalExpr(p)
	if !ok {
		return false
	}
	if declared != nil {
		var msgs []string
		if !types.Validate(val, declared, false, func(m string) { msgs = append(msgs, m) }) {
			p.errorf(diag.Type, "field %q: %s", key, joinMessages(msgs))
			return false
		}
	}
	val.Key = key
	c.Add(val)
	return true
}

func joinMessages(msgs []string) string {
	switch len(msgs) {
	case 0:
		return "type mismatch"
	case 1:
		return msgs[0]
	default:
		out := msgs[0]
		for _, m := range msgs[1:] {
			out += "; " + m
		}
		return out
	}
}
