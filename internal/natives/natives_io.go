// ==============================================================================================
// FILE: internal/natives/natives_io.go
// ==============================================================================================
// PURPOSE: print, printLn, printErr, printErrLn, readLn (§4.6) — the
//          stdio natives, reaching the interpreter's configured streams
//          through value.HostContext rather than os.Stdout/Stdin directly,
//          matching amoghasbhardwaj-Eloquence/object/builtins.go's `ask`.
// ==============================================================================================

package natives

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

func registerIO(out map[string]*value.Value) {
	out["print"] = makeNative([]types.Field{param("value", types.Any())}, false, printTo(false, false))
	out["printLn"] = makeNative([]types.Field{param("value", types.Any())}, false, printTo(false, true))
	out["printErr"] = makeNative([]types.Field{param("value", types.Any())}, false, printTo(true, false))
	out["printErrLn"] = makeNative([]types.Field{param("value", types.Any())}, false, printTo(true, true))
	out["readLn"] = makeNative(nil, false, readLn)
}

func printTo(stderr, newline bool) value.NativeFn {
	return func(call *value.Call) (*value.Value, bool) {
		v, _ := call.Args.Get("value")
		w := call.Host.Stdout()
		if stderr {
			w = call.Host.Stderr()
		}
		text := textOf(v)
		if newline {
			fmt.Fprintln(w, text)
		} else {
			fmt.Fprint(w, text)
		}
		return value.NewString(text), true
	}
}

func readLn(call *value.Call) (*value.Value, bool) {
	line, err := bufio.NewReader(call.Host.Stdin()).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return value.NewString(""), true
	}
	return value.NewString(line), true
}

// textOf renders a value the way print's argument is expected to appear on
// a stream: strings pass through verbatim, numbers use the same
// fixed-point convention as the pretty-printer, everything else falls back
// to its §6.3 rendering.
func textOf(v *value.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case value.KindString:
		return v.Str
	case value.KindNumber:
		return value.FormatNumber(v.Num)
	default:
		return value.Sprint(v)
	}
}
