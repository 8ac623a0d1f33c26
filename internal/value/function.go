// ==============================================================================================
// FILE: internal/value/function.go
// ==============================================================================================
// PURPOSE: The Function variant's payload (§3.1): an ordered argument
//          specification, a body (token slice + captured frames for a
//          declared function, or a host callback for a native),
//          and the dot-callable flag of §4.4.6.
// ==============================================================================================

package value

import (
	"io"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/token"
)

// Function is the shared representation of declared and native callables
// (§3.1, §9: "FunctionEntry, DeclaredFunctionEntry, NativeFunctionEntry
// collapse into the Function variant").
type Function struct {
	Params      []types.Field
	DotCallable bool
	Body        *FuncBody
}

// FuncBody is itself a two-case variant: a token-slice body for a
// declared function, or a native Go callback.
type FuncBody struct {
	Tokens   []token.Token // declared function body, nil for native
	Captured []*Value      // declared function's captured scope stack frames, nil otherwise
	Native   NativeFn      // nil for declared functions
}

// NativeFn is the uniform invocation contract §4.6 describes for host
// function bindings: it receives the already-validated, already-cloned
// argument compound and a HostContext for the handful of natives (`use`,
// `exit`) that need more than their own arguments.
type NativeFn func(call *Call) (*Value, bool)

// Call bundles what a NativeFn needs to run.
type Call struct {
	Args *Value
	Host HostContext
}

// HostContext is the seam between the core and its external collaborators
// (§1): the parser/evaluator implements it, and native functions that need
// to reach back into the interpreter (rather than just their own
// arguments) do so through this interface instead of importing the
// interp package directly, which would cycle.
type HostContext interface {
	// EnclosingCompound returns the compound the current native call
	// should merge or bind results into: the scope-stack frame directly
	// below the native's own argument-binding compound (§6.4).
	EnclosingCompound() *Value

	// ParseFile parses path (a relative path is resolved against the
	// interpreter's base directory, not the including file's) as an
	// independent compound, for `use` (§6.4).
	ParseFile(path string) (*Value, bool)

	// Stdout and Stderr are the sinks print/printLn/printErr/printErrLn
	// write to (§4.6), decoupled from os.Stdout so tests can capture them.
	Stdout() io.Writer
	Stderr() io.Writer
	Stdin() io.Reader

	// Exit terminates the process with the given status, after the host
	// context has released anything it must (§5 resource discipline).
	Exit(code int)

	// Fail reports a diagnostic anchored at the call site of the native
	// that is about to return ok=false (§7: Runtime for things like an
	// out-of-range index or a failed syscall).
	Fail(kind diag.Kind, format string, args ...any)
}
