// ==============================================================================================
// FILE: internal/interp/call.go
// ==============================================================================================
// PURPOSE: Identifier resolution (§4.4.4) and function invocation
//          (§4.4.6), including the dot-callable method-call fallback: a
//          dotted path that doesn't resolve as a nested compound member
//          falls back to treating its last segment as a plain function
//          name and everything before the last dot as that function's
//          bound first argument.
// ==============================================================================================

package interp

import (
	"strings"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/scope"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
	"github.com/lynxlang/lynx/token"
)

// resolveIdentifier reads one identifier and its dotted-path continuations,
// then resolves or invokes it per §4.4.4's three-way precedence: a single
// segment matching a builtin, a single segment matching a native, and
// otherwise scope-stack resolution (with a dot-callable fallback for
// multi-segment paths that don't resolve as a nested member access).
func (p *parser) resolveIdentifier() (*value.Value, bool) {
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

	if len(segs) == 1 {
		name := segs[0]
		if b, ok := p.interp.Builtins[name]; ok {
			return b(p)
		}
		if nf, ok := p.interp.Natives[name]; ok {
			return p.callFunction(nf, nil)
		}
		val, ok := p.ss.Resolve(segs)
		if !ok {
			p.errorf(diag.Resolve, "unresolved identifier %q", name)
			return nil, false
		}
		if val.Kind == value.KindFunction {
			return p.callFunction(val, nil)
		}
		return val.Clone(), true
	}

	if val, ok := p.ss.Resolve(segs); ok {
		if val.Kind == value.KindFunction {
			parent, _ := p.ss.Resolve(segs[:len(segs)-1])
			return p.callFunction(val, parent)
		}
		return val.Clone(), true
	}

	parent, ok := p.ss.Resolve(segs[:len(segs)-1])
	if !ok {
		p.errorf(diag.Resolve, "unresolved path %q", strings.Join(segs, "."))
		return nil, false
	}
	last := segs[len(segs)-1]
	fnVal, ok := p.ss.Resolve([]string{last})
	if !ok || fnVal.Kind != value.KindFunction {
		p.errorf(diag.Resolve, "unresolved path %q", strings.Join(segs, "."))
		return nil, false
	}
	return p.callFunction(fnVal, parent)
}

// callFunction binds arguments (positional or named, §4.4.6) and invokes
// fn. parent, when non-nil, is the value that preceded the final dot in a
// dot-callable method call; it is bound to the first parameter when fn is
// dot-callable and parent validates against that parameter's type.
func (p *parser) callFunction(fn *value.Value, parent *value.Value) (*value.Value, bool) {
	spec := fn.Fn.Params
	args := value.NewCompound()
	start := 0

	if parent != nil && fn.Fn.DotCallable && len(spec) > 0 {
		if types.Validate(parent, spec[0].Type, false, func(string) {}) {
			bound := parent.Clone().WithKey(spec[0].Name)
			args.Add(bound)
			start = 1
		}
	}

	for i := start; i < len(spec); i++ {
		slot := spec[i]
		if p.cur().Is(token.Identifier) && p.peekIs(1, token.Assign) {
			name := p.cur().Lexeme
			p.advance() // name
			p.advance() // '='
			target := findParam(spec, name)
			if target < 0 {
				p.errorf(diag.Resolve, "%q names no argument of this function", name)
				return nil, false
			}
			slot = spec[target]
		}

		raw, ok := evalExpr(p)
		if !ok {
			return nil, false
		}
		val := raw.Clone()
		var msgs []string
		if !types.Validate(val, slot.Type, false, func(m string) { msgs = append(msgs, m) }) {
			p.errorf(diag.Type, "argument %q: %s", slot.Name, joinMessages(msgs))
			return nil, false
		}
		val.Key = slot.Name
		args.Add(val)
	}

	if fn.Fn.Body.Native != nil {
		p.ss.Push(args)
		result, ok := fn.Fn.Body.Native(&value.Call{Args: args, Host: &hostCtx{p: p}})
		p.ss.Pop()
		return result, ok
	}

	callSS := scope.FromFrames(fn.Fn.Body.Captured)
	callSS.Push(args)
	sub := &parser{
		tokens: fn.Fn.Body.Tokens,
		idx:    0,
		ss:     callSS,
		interp: p.interp,
		file:   p.file,
		depth:  p.depth + 1,
	}
	if sub.depth > maxRecursionDepth {
		p.errorf(diag.Fatal, "maximum recursion depth exceeded")
		return nil, false
	}
	result, ok := evalExpr(sub)
	callSS.Pop()
	return result, ok
}

func findParam(spec []types.Field, name string) int {
	for i, f := range spec {
		if f.Name == name {
			return i
		}
	}
	return -1
}
