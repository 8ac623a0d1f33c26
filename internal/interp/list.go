// ==============================================================================================
// FILE: internal/interp/list.go
// ==============================================================================================
// PURPOSE: List literal parsing (§4.4.2): a homogeneous sequence of
//          expressions between [ and ], the element-type tag fixed by the
//          first element and enforced on every later one.
// ==============================================================================================

package interp

import (
	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/value"
	"github.com/lynxlang/lynx/token"
)

// parseList reads "[ expr* ]", leaving the cursor at the closing ']'
// (the caller — evalExpr — advances past it).
func parseList(p *parser) (*value.Value, bool) {
	if !p.cur().Is(token.ListStart) {
		p.errorf(diag.Parse, "expected [")
		return nil, false
	}
	p.advance()

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxRecursionDepth {
		p.errorf(diag.Fatal, "maximum nesting depth exceeded")
		return nil, false
	}

	lst := value.NewList()
	for !p.atEnd() && !p.cur().Is(token.ListEnd) {
		el, ok := evalExpr(p)
		if !ok {
			return nil, false
		}
		el.Key = ""
		if !lst.ListAdd(el) {
			p.errorf(diag.Type, "list elements must share one kind")
			return nil, false
		}
	}
	if p.atEnd() {
		p.errorf(diag.Parse, "missing ] to close list")
		return nil, false
	}
	return lst, true
}
