// ==============================================================================================
// FILE: internal/natives/natives_use.go
// ==============================================================================================
// PURPOSE: use <file> (§6.4) — parses file as an independent compound and
//          merges it into the enclosing compound, the scope-stack frame
//          directly below the native's own argument-binding frame.
// ==============================================================================================

package natives

import (
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

func registerUse(out map[string]*value.Value) {
	out["use"] = makeNative([]types.Field{param("file", types.String())}, false, useFile)
}

func useFile(call *value.Call) (*value.Value, bool) {
	fileV, _ := call.Args.Get("file")
	parsed, ok := call.Host.ParseFile(fileV.Str)
	if !ok {
		return nil, false
	}
	call.Host.EnclosingCompound().Merge(parsed)
	return parsed, true
}
