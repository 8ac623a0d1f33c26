// ==============================================================================================
// FILE: internal/interp/types_expr.go
// ==============================================================================================
// PURPOSE: Type-expression parsing (§4.4.7): the grammar that follows a
//          field's ':' or a func argument's ':' — the primitive names,
//          list[...] / compound{...} composites, the optional prefix, and
//          a dotted path resolving to a previously-declared Type value.
// ==============================================================================================

package interp

import (
	"strings"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
	"github.com/lynxlang/lynx/token"
)

func parseType(p *parser) (*types.Type, bool) {
	optional := false
	if p.cur().Is(token.Identifier) && p.cur().Lexeme == "optional" {
		optional = true
		p.advance()
	}

	var t *types.Type
	var ok bool
	switch {
	case p.cur().Is(token.Identifier) && p.cur().Lexeme == "any":
		p.advance()
		t = types.Any()

	case p.cur().Is(token.Identifier) && p.cur().Lexeme == "string":
		p.advance()
		t = types.String()

	case p.cur().Is(token.Identifier) && p.cur().Lexeme == "number":
		p.advance()
		t = types.Number()

	case p.cur().Is(token.Identifier) && p.cur().Lexeme == "list":
		p.advance()
		t, ok = parseListType(p)
		if !ok {
			return nil, false
		}

	case p.cur().Is(token.Identifier) && p.cur().Lexeme == "compound":
		p.advance()
		t, ok = parseCompoundType(p)
		if !ok {
			return nil, false
		}

	case p.cur().Is(token.Identifier):
		t, ok = parseTypeAlias(p)
		if !ok {
			return nil, false
		}

	default:
		p.errorf(diag.Parse, "expected a type")
		return nil, false
	}

	if optional {
		t = types.Optional(t)
	}
	return t, true
}

func parseListType(p *parser) (*types.Type, bool) {
	if !p.cur().Is(token.ListStart) {
		p.errorf(diag.Parse, "expected [ after list")
		return nil, false
	}
	p.advance()
	elem, ok := parseType(p)
	if !ok {
		return nil, false
	}
	if !p.cur().Is(token.ListEnd) {
		p.errorf(diag.Parse, "expected ] to close list type")
		return nil, false
	}
	p.advance()
	return types.List(elem), true
}

func parseCompoundType(p *parser) (*types.Type, bool) {
	if !p.cur().Is(token.CompoundStart) {
		p.errorf(diag.Parse, "expected { after compound")
		return nil, false
	}
	p.advance()
	var fields []types.Field
	for !p.atEnd() && !p.cur().Is(token.CompoundEnd) {
		if !p.cur().Is(token.Identifier) {
			p.errorf(diag.Parse, "expected a field name in compound type")
			return nil, false
		}
		name := p.cur().Lexeme
		p.advance()
		if !p.cur().Is(token.Colon) {
			p.errorf(diag.Parse, "expected ':' after field name %q", name)
			return nil, false
		}
		p.advance()
		ft, ok := parseType(p)
		if !ok {
			return nil, false
		}
		fields = append(fields, types.Field{Name: name, Type: ft})
	}
	if p.atEnd() {
		p.errorf(diag.Parse, "missing } to close compound type")
		return nil, false
	}
	p.advance()
	return types.Compound(fields), true
}

// parseTypeAlias resolves a dotted path naming a previously-declared Type
// value — the mechanism by which a compound field's declared type can
// reference a type defined elsewhere in scope.
func parseTypeAlias(p *parser) (*types.Type, bool) {
	segs := []string{p.cur().Lexeme}
	p.advance()
	for p.cur().Is(token.Dot) {
		p.advance()
		if !p.cur().Is(token.Identifier) {
			p.errorf(diag.Parse, "expected identifier after '.'")
			return nil, false
		}
		segs = append(segs, p.cur().Lexeme)
		p.advance()
	}
	val, ok := p.ss.Resolve(segs)
	if !ok || val.Kind != value.KindType {
		p.errorf(diag.Resolve, "%q does not resolve to a type", strings.Join(segs, "."))
		return nil, false
	}
	return val.Typ, true
}
