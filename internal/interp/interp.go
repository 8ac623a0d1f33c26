// ==============================================================================================
// FILE: internal/interp/interp.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: Interpreter ties the lexer, the parser/evaluator, the builtin
//          registry, and the native registry together behind the two
//          entry points (Parse, ParseFile) the CLI and `use` both call
//          through. Grounded on amoghasbhardwaj-Eloquence/repl's
//          construction of an Environment + builtins map at startup,
//          generalized into a reusable, non-global Interpreter value per
//          §9's "globals -> injected registries" design note.
// ==============================================================================================

package interp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/lexer"
	"github.com/lynxlang/lynx/internal/natives"
	"github.com/lynxlang/lynx/internal/scope"
	"github.com/lynxlang/lynx/internal/value"
)

// Interpreter owns the builtin/native registries and the I/O streams
// natives write to, and exposes the two ways a file turns into a Value:
// Parse (from in-memory source) and ParseFile (resolving a path on disk,
// including the lynx-libs/ fallback of §6.4).
type Interpreter struct {
	Builtins map[string]BuiltinFn
	Natives  map[string]*value.Value

	Sink diag.Sink

	// BaseDir is the directory relative paths in `use` are resolved
	// against; empty means the process's working directory. The file-*
	// natives do not consult it: they use their path arguments as given.
	BaseDir string

	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader
}

// New builds an Interpreter with the full builtin and native registries
// installed and stdio wired to the process's own streams.
func New(sink diag.Sink) *Interpreter {
	return &Interpreter{
		Builtins: defaultBuiltins(),
		Natives:  natives.Register(),
		Sink:     sink,
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		In:       os.Stdin,
	}
}

// Parse tokenizes and parses src (the contents of file) into the file's
// root compound (§4.1, §4.4.1), or (nil, false) on the first error
// diagnostic (warnings do not abort the parse).
//
// A scope-stack invariant violation (§3.4: pushes/pops are strictly
// paired) surfaces as a panic carrying a *diag.Diagnostic rather than a
// normal (ok=false) return; recoverScopeFatal is what turns that into a
// clean sink-routed Fatal diagnostic instead of a raw Go stack trace
// reaching the CLI user. Any other panic is a genuine bug and is left to
// propagate.
func (in *Interpreter) Parse(file, src string) (root *value.Value, ok bool) {
	defer in.recoverScopeFatal(file, &root, &ok)

	toks := lexer.Tokenize(file, src, in.Sink)
	if toks == nil {
		return nil, false
	}

	p := &parser{tokens: toks, idx: 0, ss: scope.Empty(), interp: in, file: file}
	root, ok = parseCompound(p)
	if !ok {
		return nil, false
	}
	p.advance() // consume '}'
	if !p.atEnd() {
		p.errorf(diag.Parse, "unexpected trailing tokens after top-level compound")
		return nil, false
	}
	root.Key = value.RootKey
	return root, true
}

// recoverScopeFatal is Parse's deferred recover: it swallows a
// *diag.Diagnostic panic (the scope stack's own Fatal-class invariant
// violation), anchors it at file, and emits it through the sink like any
// other diagnostic, clearing *root/*ok to (nil, false). Any other panic
// value is not one of ours and is re-panicked unchanged.
func (in *Interpreter) recoverScopeFatal(file string, root **value.Value, ok *bool) {
	r := recover()
	if r == nil {
		return
	}
	d, isDiag := r.(*diag.Diagnostic)
	if !isDiag {
		panic(r)
	}
	d.File = file
	if in.Sink != nil {
		in.Sink.Emit(d)
	}
	*root, *ok = nil, false
}

// ParseFile reads path from disk — trying a lynx-libs/ prefix if the path
// does not exist as given, per §6.4 — and parses it.
func (in *Interpreter) ParseFile(path string) (*value.Value, bool) {
	resolved, data, ok := in.readFile(path)
	if !ok {
		return nil, false
	}
	return in.Parse(resolved, string(data))
}

func (in *Interpreter) readFile(path string) (string, []byte, bool) {
	full := path
	if in.BaseDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(in.BaseDir, path)
	}
	if data, err := os.ReadFile(full); err == nil {
		return full, data, true
	}

	libPath := filepath.Join(in.BaseDir, "lynx-libs", path)
	if data, err := os.ReadFile(libPath); err == nil {
		return libPath, data, true
	}

	if in.Sink != nil {
		in.Sink.Emit(&diag.Diagnostic{
			Kind:    diag.Runtime,
			File:    path,
			Message: fmt.Sprintf("cannot open %q (also tried lynx-libs/)", path),
		})
	}
	return "", nil, false
}
