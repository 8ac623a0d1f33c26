// ==============================================================================================
// FILE: internal/interp/builtins.go
// ==============================================================================================
// PURPOSE: The fixed builtin registry of §4.6: func, true, false, if, for,
//          exists, set. Each builtin is handed the live parser right after
//          its own name token has been consumed, and is responsible for
//          parsing and consuming everything it needs from there.
// ==============================================================================================

package interp

import (
	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
	"github.com/lynxlang/lynx/token"
)

// BuiltinFn is a builtin's implementation, dispatched by resolveIdentifier
// once its single-segment name has matched an entry in Interpreter.Builtins.
type BuiltinFn func(p *parser) (*value.Value, bool)

func defaultBuiltins() map[string]BuiltinFn {
	return map[string]BuiltinFn{
		"func":   builtinFunc,
		"true":   builtinTrue,
		"false":  builtinFalse,
		"if":     builtinIf,
		"for":    builtinFor,
		"exists": builtinExists,
		"set":    builtinSet,
	}
}

func builtinTrue(p *parser) (*value.Value, bool)  { return value.Bool(true), true }
func builtinFalse(p *parser) (*value.Value, bool) { return value.Bool(false), true }

// builtinFunc parses "( arg : type ... ) ( body )" and captures the current
// scope stack as the closure, without evaluating the body (§4.4.6, §3.1).
func builtinFunc(p *parser) (*value.Value, bool) {
	if !p.cur().Is(token.BlockStart) {
		p.errorf(diag.Parse, "expected ( to start a parameter list")
		return nil, false
	}
	p.advance()

	var params []types.Field
	for !p.atEnd() && !p.cur().Is(token.BlockEnd) {
		if !p.cur().Is(token.Identifier) {
			p.errorf(diag.Parse, "expected a parameter name")
			return nil, false
		}
		name := p.cur().Lexeme
		p.advance()
		if !p.cur().Is(token.Colon) {
			p.errorf(diag.Parse, "expected ':' after parameter name %q", name)
			return nil, false
		}
		p.advance()
		typ, ok := parseType(p)
		if !ok {
			return nil, false
		}
		params = append(params, types.Field{Name: name, Type: typ})
	}
	if p.atEnd() {
		p.errorf(diag.Parse, "missing ) to close parameter list")
		return nil, false
	}
	p.advance() // consume ')'

	if !p.cur().Is(token.BlockStart) {
		p.errorf(diag.Parse, "expected ( to start a function body")
		return nil, false
	}
	bodyStart := p.idx
	if !p.skipParenGroup() {
		return nil, false
	}
	bodyTokens := p.tokens[bodyStart:p.idx]

	fn := &value.Function{
		Params:      params,
		DotCallable: true,
		Body: &value.FuncBody{
			Tokens:   bodyTokens,
			Captured: p.ss.Frames(),
		},
	}
	return value.NewFunction(fn), true
}

// builtinIf parses "cond ( then ) [else ( else )]". The untaken branch's
// tokens are skipped, not evaluated, so its side effects never run.
func builtinIf(p *parser) (*value.Value, bool) {
	cond, ok := evalExpr(p)
	if !ok {
		return nil, false
	}
	if cond.Kind != value.KindNumber {
		p.errorf(diag.Type, "if condition must be a number")
		return nil, false
	}
	if !p.cur().Is(token.BlockStart) {
		p.errorf(diag.Parse, "expected ( after if condition")
		return nil, false
	}

	truthy := value.Truthy(cond)
	var result *value.Value
	if truthy {
		r, ok := evalExpr(p)
		if !ok {
			return nil, false
		}
		result = r
	} else {
		if !p.skipParenGroup() {
			return nil, false
		}
		result = value.NewString("")
	}

	if p.cur().Is(token.Identifier) && p.cur().Lexeme == "else" {
		p.advance()
		if !p.cur().Is(token.BlockStart) {
			p.errorf(diag.Parse, "expected ( after else")
			return nil, false
		}
		if truthy {
			if !p.skipParenGroup() {
				return nil, false
			}
		} else {
			r, ok := evalExpr(p)
			if !ok {
				return nil, false
			}
			result = r
		}
	}

	return result, true
}

// builtinFor parses "ident in list-expr ( body )", evaluating body once per
// element with ident bound in a fresh innermost frame, and folding the
// per-iteration results together (§4.6).
func builtinFor(p *parser) (*value.Value, bool) {
	if !p.cur().Is(token.Identifier) {
		p.errorf(diag.Parse, "expected a loop variable name")
		return nil, false
	}
	varName := p.cur().Lexeme
	p.advance()

	if !(p.cur().Is(token.Identifier) && p.cur().Lexeme == "in") {
		p.errorf(diag.Parse, "expected 'in' after loop variable")
		return nil, false
	}
	p.advance()

	listVal, ok := evalExpr(p)
	if !ok {
		return nil, false
	}
	if listVal.Kind != value.KindList {
		p.errorf(diag.Type, "for requires a list to iterate over")
		return nil, false
	}
	if !p.cur().Is(token.BlockStart) {
		p.errorf(diag.Parse, "expected ( to start a for body")
		return nil, false
	}

	bodyStart := p.idx
	var acc *value.Value
	for i, el := range listVal.Elems {
		p.idx = bodyStart
		frame := value.NewCompound()
		frame.Add(el.Clone().WithKey(varName))
		p.ss.Push(frame)
		result, ok := evalExpr(p)
		p.ss.Pop()
		if !ok {
			return nil, false
		}
		if i == 0 {
			acc = result
			continue
		}
		acc, ok = p.fold(acc, result)
		if !ok {
			return nil, false
		}
	}

	if len(listVal.Elems) == 0 {
		p.idx = bodyStart
		if !p.skipParenGroup() {
			return nil, false
		}
		return value.NewString(""), true
	}
	return acc, true
}

// builtinExists parses a dotted path and reports whether it resolves
// against the scope stack (§4.6), without evaluating any member function.
func builtinExists(p *parser) (*value.Value, bool) {
	if !p.cur().Is(token.Identifier) {
		p.errorf(diag.Parse, "expected an identifier after exists")
		return nil, false
	}
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
	_, ok := p.ss.Resolve(segs)
	return value.Bool(ok), true
}

// builtinSet parses "ident expr", binding ident in the innermost scope
// frame and yielding the bound value (§4.6).
func builtinSet(p *parser) (*value.Value, bool) {
	if !p.cur().Is(token.Identifier) {
		p.errorf(diag.Parse, "expected an identifier after set")
		return nil, false
	}
	name := p.cur().Lexeme
	p.advance()

	val, ok := evalExpr(p)
	if !ok {
		return nil, false
	}
	bound := val.Clone()
	p.ss.Set(name, bound)
	return bound, true
}
