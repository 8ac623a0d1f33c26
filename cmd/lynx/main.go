// ==============================================================================================
// FILE: cmd/lynx/main.go
// ==============================================================================================
// PURPOSE: Process entry point. All argument parsing lives in cmd/lynx/cmd,
//          matching the pack's convention of a slim main.go delegating to a
//          cobra command tree.
// ==============================================================================================

package main

import "github.com/lynxlang/lynx/cmd/lynx/cmd"

func main() {
	cmd.Execute()
}
