// ==============================================================================================
// FILE: internal/interp/host.go
// ==============================================================================================
// PURPOSE: hostCtx implements value.HostContext against a live parser, so
//          native functions (internal/natives) can reach EnclosingCompound,
//          recursive file parsing, stdio, and process exit without
//          internal/value importing this package.
// ==============================================================================================

package interp

import (
	"io"
	"os"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/value"
)

// hostCtx is constructed fresh for each native invocation in callFunction,
// bound to the parser whose scope stack is live at that call site.
type hostCtx struct{ p *parser }

// EnclosingCompound returns the frame one below the native's own
// argument-binding compound — the frame At(0) sits on top of (§6.4).
func (h *hostCtx) EnclosingCompound() *value.Value {
	return h.p.ss.At(1)
}

func (h *hostCtx) ParseFile(path string) (*value.Value, bool) {
	return h.p.interp.ParseFile(path)
}

func (h *hostCtx) Stdout() io.Writer { return h.p.interp.Out }
func (h *hostCtx) Stderr() io.Writer { return h.p.interp.ErrOut }
func (h *hostCtx) Stdin() io.Reader  { return h.p.interp.In }

func (h *hostCtx) Exit(code int) { os.Exit(code) }

func (h *hostCtx) Fail(kind diag.Kind, format string, args ...any) {
	h.p.errorf(kind, format, args...)
}
