// ==============================================================================================
// FILE: internal/interp/parser.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The fused recursive-descent parser/evaluator of §4.4. There is no
//          separate AST: parsing a construct and evaluating it to a Value
//          happen in the same pass, exactly as amoghasbhardwaj-Eloquence's
//          parser/parser.go and evaluator/evaluator.go are fused here into
//          one set of mutually recursive functions operating on a shared
//          token cursor and scope stack.
// ==============================================================================================

package interp

import (
	"fmt"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/scope"
	"github.com/lynxlang/lynx/token"
)

// maxRecursionDepth bounds both compound/list nesting and function-call
// recursion (§5): past this depth a Fatal diagnostic is raised instead of
// risking a host stack overflow.
const maxRecursionDepth = 256

// parser threads a token cursor, the live scope stack, and a back-pointer
// to the owning Interpreter (for its builtin/native registries and I/O)
// through every helper function below.
type parser struct {
	tokens []token.Token
	idx    int
	ss     *scope.Stack
	interp *Interpreter
	file   string
	depth  int
}

func (p *parser) atEnd() bool { return p.idx >= len(p.tokens) }

// cur returns the token under the cursor, or a harmless CompoundEnd
// sentinel past the end of input so that "until terminator" loop
// conditions never index out of range; callers that must distinguish
// genuine end-of-input check atEnd explicitly.
func (p *parser) cur() token.Token {
	if p.atEnd() {
		return token.Token{Kind: token.CompoundEnd}
	}
	return p.tokens[p.idx]
}

func (p *parser) peekIs(n int, k token.Kind) bool {
	i := p.idx + n
	if i < 0 || i >= len(p.tokens) {
		return false
	}
	return p.tokens[i].Kind == k
}

func (p *parser) advance() { p.idx++ }

// errorf raises a diagnostic anchored at the current cursor position and
// aborts the enclosing construct; callers return (nil, false) immediately
// after calling this.
func (p *parser) errorf(kind diag.Kind, format string, args ...any) {
	tok := p.cur()
	if p.interp.Sink == nil {
		return
	}
	p.interp.Sink.Emit(&diag.Diagnostic{
		Kind: kind, File: p.file, Line: tok.Line, Column: tok.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// warnf raises a diagnostic that does not abort the parse (§4.4.1's
// "warning, no effect on that entry" case).
func (p *parser) warnf(format string, args ...any) {
	tok := p.cur()
	if p.interp.Sink == nil {
		return
	}
	p.interp.Sink.Emit(&diag.Diagnostic{
		Kind: diag.Parse, File: p.file, Line: tok.Line, Column: tok.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// skipParenGroup advances past a balanced BlockStart..BlockEnd span
// without evaluating it, for the untaken branch of `if` (§4.6).
func (p *parser) skipParenGroup() bool {
	if !p.cur().Is(token.BlockStart) {
		p.errorf(diag.Parse, "expected (")
		return false
	}
	depth := 0
	for !p.atEnd() {
		switch p.cur().Kind {
		case token.BlockStart:
			depth++
		case token.BlockEnd:
			depth--
			if depth == 0 {
				p.advance()
				return true
			}
		}
		p.advance()
	}
	p.errorf(diag.Parse, "missing ) to close expression")
	return false
}
