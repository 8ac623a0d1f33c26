// ==============================================================================================
// FILE: internal/diag/sink.go
// ==============================================================================================
// PURPOSE: The production diagnostic sink, styled the way ailang's CLI and
//          REPL color their own output (cmd/ailang/main.go): one
//          color.New(...).SprintFunc() per severity, applied only when the
//          sink is told it is writing to a terminal.
// ==============================================================================================

package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	redBold    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellowBold = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// ColorSink writes each diagnostic to W as one line, colorizing the
// kind prefix when Color is enabled.
type ColorSink struct {
	W     io.Writer
	Color bool
}

// NewColorSink builds a sink for w; color enables ANSI colorization of
// the kind prefix (callers typically gate this on isatty(w)).
func NewColorSink(w io.Writer, color bool) *ColorSink {
	return &ColorSink{W: w, Color: color}
}

func (s *ColorSink) Emit(d *Diagnostic) {
	prefix := d.Kind.prefix()
	if s.Color {
		if d.Kind == Runtime {
			prefix = yellowBold(prefix)
		} else {
			prefix = redBold(prefix)
		}
	}
	fmt.Fprintf(s.W, "[%s] %s:%d:%d: %s\n", prefix, d.File, d.Line, d.Column, d.Message)
}
