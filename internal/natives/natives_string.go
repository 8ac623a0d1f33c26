// ==============================================================================================
// FILE: internal/natives/natives_string.go
// ==============================================================================================
// PURPOSE: string-length, string-substring (§4.6). Substring semantics
//          follow the resolution in DESIGN.md/SPEC_FULL.md §C: end is an
//          exclusive end index, so the result has end-start runes (end is
//          not a length). Both bounds
//          must fall within [0, len(runes)) or the call fails with a
//          Runtime diagnostic instead of clamping, matching the original's
//          explicit bounds check.
// ==============================================================================================

package natives

import (
	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

func registerString(out map[string]*value.Value) {
	out["string-length"] = makeNative(
		[]types.Field{param("s", types.String())}, true, stringLength)
	out["string-substring"] = makeNative(
		[]types.Field{
			param("s", types.String()),
			param("start", types.Number()),
			param("end", types.Number()),
		}, true, stringSubstring)
}

func stringLength(call *value.Call) (*value.Value, bool) {
	s, _ := call.Args.Get("s")
	return value.NewNumber(float64(len([]rune(s.Str)))), true
}

func stringSubstring(call *value.Call) (*value.Value, bool) {
	s, _ := call.Args.Get("s")
	startV, _ := call.Args.Get("start")
	endV, _ := call.Args.Get("end")

	runes := []rune(s.Str)
	start := int(startV.Num)
	end := int(endV.Num)
	if start < 0 || start >= len(runes) || end < 0 || end >= len(runes) {
		call.Host.Fail(diag.Runtime, "string-substring: start %d or end %d out of range for length %d", start, end, len(runes))
		return nil, false
	}

	length := end - start
	if length < 0 {
		length = 0
	}
	return value.NewString(string(runes[start : start+length])), true
}
