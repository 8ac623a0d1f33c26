// ==============================================================================================
// FILE: internal/natives/natives.go
// ==============================================================================================
// PACKAGE: natives
// PURPOSE: Builds the native function registry of §4.6 — the fixed set of
//          host-OS bindings every core invokes through the same call
//          contract as a declared function. Grounded on
//          amoghasbhardwaj-Eloquence/object/builtins.go's registry-of-
//          Builtin map, generalized from that interpreter's handful of
//          list/string helpers to the full host-OS surface this language
//          needs, the way go-dws's internal/interp/builtins groups natives
//          one file per domain.
// ==============================================================================================

package natives

import (
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

// Register builds a fresh copy of every native, keyed by name, for an
// Interpreter to install into its registry.
func Register() map[string]*value.Value {
	out := map[string]*value.Value{}
	for _, add := range []func(map[string]*value.Value){
		registerIO,
		registerString,
		registerList,
		registerFile,
		registerProc,
		registerNumeric,
		registerUse,
	} {
		add(out)
	}
	return out
}

func makeNative(params []types.Field, dotCallable bool, fn value.NativeFn) *value.Value {
	return value.NewFunction(&value.Function{
		Params:      params,
		DotCallable: dotCallable,
		Body:        &value.FuncBody{Native: fn},
	})
}

func param(name string, t *types.Type) types.Field { return types.Field{Name: name, Type: t} }
