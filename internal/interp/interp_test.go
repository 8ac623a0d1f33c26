package interp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/lexer"
	"github.com/lynxlang/lynx/internal/scope"
	"github.com/lynxlang/lynx/internal/value"
)

func newTestInterpreter() (*Interpreter, *diag.CollectingSink) {
	sink := diag.NewCollectingSink()
	in := New(sink)
	return in, sink
}

// S1: string + number fold changes the accumulator's own variant.
func TestScenarioStringNumberFold(t *testing.T) {
	in, sink := newTestInterpreter()
	root, ok := in.Parse("s1.lynx", `x = ( 1 " apples" )`)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	v, ok := root.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1.000000 apples", v.Str)
}

// S2: for + range + add fold.
func TestScenarioForRangeFold(t *testing.T) {
	in, sink := newTestInterpreter()
	root, ok := in.Parse("s2.lynx", `sum = for n in range 1 5 ( n )`)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	v, ok := root.Get("sum")
	require.True(t, ok)
	assert.Equal(t, float64(10), v.Num)
}

// S3: a typed compound field whose assigned value fails validation aborts
// the parse with a Type diagnostic citing the offending field.
func TestScenarioTypedCompoundValidationFailure(t *testing.T) {
	in, sink := newTestInterpreter()
	src := `
point : compound { x : number y : number }
point = { x = 1 y = "oops" }
`
	_, ok := in.Parse("s3.lynx", src)
	require.False(t, ok)
	last := sink.Last()
	require.NotNil(t, last)
	assert.Equal(t, diag.Type, last.Kind)
	assert.Contains(t, last.Message, "y")
}

// S4: a dot-callable function call falls back from nested-member
// resolution to a bare function name with the preceding path bound as its
// first argument.
func TestScenarioDotCallableDispatch(t *testing.T) {
	in, sink := newTestInterpreter()
	src := `
greet = func ( who : string ) ( ( "hi " who ) )
name = "world"
msg = name.greet
`
	root, ok := in.Parse("s4.lynx", src)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	v, ok := root.Get("msg")
	require.True(t, ok)
	assert.Equal(t, "hi world", v.Str)
}

// S5: `use` parses another file and merges its root into the enclosing
// compound, so later fields can reference the imported names directly.
func TestScenarioUseMerge(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.lynx"), []byte("a = 1"), 0o644))

	in, sink := newTestInterpreter()
	in.BaseDir = dir
	src := `
use "lib.lynx"
b = a
`
	root, ok := in.Parse("s5.lynx", src)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	a, ok := root.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), a.Num)

	b, ok := root.Get("b")
	require.True(t, ok)
	assert.Equal(t, float64(1), b.Num)
}

// S6: the element-type tag is fixed by a list's first element; a later
// element of a different kind aborts the parse with a Type diagnostic.
func TestScenarioListHomogeneityEnforcement(t *testing.T) {
	in, sink := newTestInterpreter()
	_, ok := in.Parse("s6.lynx", `xs = [ 1 "two" ]`)
	require.False(t, ok)
	last := sink.Last()
	require.NotNil(t, last)
	assert.Equal(t, diag.Type, last.Kind)
}

// S7: `set` binds in the innermost (per-iteration) frame, so the binding
// does not survive the loop, while the loop's own fold still sees each
// iteration's plain result.
func TestScenarioSetBindsInnermostScope(t *testing.T) {
	in, sink := newTestInterpreter()
	root, ok := in.Parse("s7.lynx", `y = for n in range 0 3 ( set last n )`)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	v, ok := root.Get("y")
	require.True(t, ok)
	assert.Equal(t, float64(3), v.Num)

	_, ok = root.Get("last")
	assert.False(t, ok, "a per-iteration set binding must not escape the loop")
}

func TestParseEmitsDiagnosticOnUnresolvedIdentifier(t *testing.T) {
	in, sink := newTestInterpreter()
	_, ok := in.Parse("bad.lynx", `x = nowhere`)
	require.False(t, ok)
	last := sink.Last()
	require.NotNil(t, last)
	assert.Equal(t, diag.Resolve, last.Kind)
}

// Parse's recover converts a scope-stack Fatal-invariant panic into a
// clean sink-routed diagnostic instead of letting a raw Go panic escape
// to the CLI user.
func TestParseRecoversScopeStackInvariantPanic(t *testing.T) {
	in, sink := newTestInterpreter()

	var root *value.Value
	ok := true
	func() {
		defer in.recoverScopeFatal("panic.lynx", &root, &ok)
		panic(&diag.Diagnostic{Kind: diag.Fatal, Message: "scope: pop of empty stack"})
	}()

	assert.False(t, ok)
	assert.Nil(t, root)
	last := sink.Last()
	require.NotNil(t, last)
	assert.Equal(t, diag.Fatal, last.Kind)
	assert.Equal(t, "panic.lynx", last.File)
}

func TestParseCompoundSpreadMergesFields(t *testing.T) {
	in, sink := newTestInterpreter()
	src := `
base = { a = 1 }
derived = { (base) b = 2 }
`
	root, ok := in.Parse("spread.lynx", src)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	derived, ok := root.Get("derived")
	require.True(t, ok)
	a, ok := derived.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), a.Num)
	b, ok := derived.Get("b")
	require.True(t, ok)
	assert.Equal(t, float64(2), b.Num)
}

// `use`'s lynx-libs/ fallback must preserve any subdirectory component of
// the requested path instead of collapsing it to the bare filename.
func TestUseLynxLibsFallbackPreservesSubdirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lynx-libs", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lynx-libs", "sub", "lib.lynx"), []byte("a = 1"), 0o644))

	in, sink := newTestInterpreter()
	in.BaseDir = dir
	root, ok := in.Parse("nested.lynx", `use "sub/lib.lynx"`)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	a, ok := root.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), a.Num)
}

// §8.1 "Scope balance": after a successful parse of a deeply nested
// compound, the scope stack used internally must be fully unwound —
// every Push during descent matched by a Pop on the way back out.
func TestScopeStackIsBalancedAfterNestedParse(t *testing.T) {
	in, sink := newTestInterpreter()
	src := `
outer : compound { inner : compound { x : number } }
outer = { inner = { x = 1 } }
`
	toks := lexer.Tokenize("balance.lynx", src, in.Sink)
	require.NotNil(t, toks)
	p := &parser{tokens: toks, idx: 0, ss: scope.Empty(), interp: in, file: "balance.lynx"}
	_, ok := parseCompound(p)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)
	assert.Equal(t, 0, p.ss.Len(), "parseCompound must pop every frame it pushes")
}

func TestIfBuiltinSkipsUntakenBranchSideEffects(t *testing.T) {
	in, sink := newTestInterpreter()
	src := `
cond = false
picked = if cond ( set touched 1 touched ) else ( 0 )
`
	root, ok := in.Parse("ifskip.lynx", src)
	require.True(t, ok, "diagnostics: %v", sink.Diagnostics)

	picked, ok := root.Get("picked")
	require.True(t, ok)
	assert.Equal(t, float64(0), picked.Num)

	_, ok = root.Get("touched")
	assert.False(t, ok, "the untaken branch must never run its `set`")
}
