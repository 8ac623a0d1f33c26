// ==============================================================================================
// FILE: internal/natives/natives_proc.go
// ==============================================================================================
// PURPOSE: runshell and exit (§4.6). runshell's output pipe is drained and
//          the process waited-on before the native returns, per §5's
//          resource-discipline requirement that natives not leak handles.
// ==============================================================================================

package natives

import (
	"os/exec"
	"strings"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

func registerProc(out map[string]*value.Value) {
	out["runshell"] = makeNative([]types.Field{param("command", types.String())}, false, runShell)
	out["exit"] = makeNative([]types.Field{param("code", types.Number())}, false, procExit)
}

func runShell(call *value.Call) (*value.Value, bool) {
	cmdV, _ := call.Args.Get("command")
	cmd := exec.Command("/bin/sh", "-c", cmdV.Str)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			call.Host.Fail(diag.Runtime, "runshell: %q exited %d: %s", cmdV.Str, exitErr.ExitCode(), strings.TrimSpace(string(exitErr.Stderr)))
			return nil, false
		}
		call.Host.Fail(diag.Runtime, "runshell: %q: %v", cmdV.Str, err)
		return nil, false
	}
	return value.NewString(strings.TrimRight(string(out), "\n")), true
}

func procExit(call *value.Call) (*value.Value, bool) {
	codeV, _ := call.Args.Get("code")
	call.Host.Exit(int(codeV.Num))
	return value.NewString(""), true
}
