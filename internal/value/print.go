// ==============================================================================================
// FILE: internal/value/print.go
// ==============================================================================================
// PURPOSE: print(stream, indent) of §4.2, rendered per the canonical
//          surface syntax of §6.3. The root compound (Key == RootKey)
//          prints its children with no enclosing braces.
// ==============================================================================================

package value

import (
	"fmt"
	"io"
	"strings"
)

const maxFuncArgText = 16

// Print writes v to w in the canonical pretty-print format of §6.3,
// starting at the given indent depth (0 for the root call).
func (v *Value) Print(w io.Writer, indent int) {
	pad := strings.Repeat("  ", indent)
	switch v.Kind {
	case KindCompound:
		if v.Key == RootKey {
			for _, e := range v.entries {
				e.Print(w, indent)
			}
			return
		}
		fmt.Fprintf(w, "%s%s: {\n", pad, v.Key)
		for _, e := range v.entries {
			e.Print(w, indent+1)
		}
		fmt.Fprintf(w, "%s}\n", pad)

	case KindList:
		fmt.Fprintf(w, "%s%s: [\n", pad, v.Key)
		for _, e := range v.Elems {
			e.printElement(w, indent+1)
		}
		fmt.Fprintf(w, "%s]\n", pad)

	case KindString:
		fmt.Fprintf(w, "%s%s: %s\n", pad, v.Key, quoteString(v.Str))

	case KindNumber:
		fmt.Fprintf(w, "%s%s: %s\n", pad, v.Key, FormatNumber(v.Num))

	case KindFunction:
		fmt.Fprintf(w, "%s%s: %s\n", pad, v.Key, formatFuncSignature(v.Fn))

	case KindType:
		fmt.Fprintf(w, "%s%s: %s\n", pad, v.Key, v.Typ.String())
	}
}

// Sprint renders v the way a list element prints — the value's own text
// with no "key:" prefix — trimmed of its trailing newline. Natives use
// this to stringify a non-string, non-number argument (§4.6).
func Sprint(v *Value) string {
	var b strings.Builder
	v.printElement(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

// printElement renders a list element: the same shape as Print but
// without a "key:" prefix, since list elements carry no key (§3.1).
func (v *Value) printElement(w io.Writer, indent int) {
	pad := strings.Repeat("  ", indent)
	switch v.Kind {
	case KindCompound:
		fmt.Fprintf(w, "%s{\n", pad)
		for _, e := range v.entries {
			e.Print(w, indent+1)
		}
		fmt.Fprintf(w, "%s}\n", pad)
	case KindList:
		fmt.Fprintf(w, "%s[\n", pad)
		for _, e := range v.Elems {
			e.printElement(w, indent+1)
		}
		fmt.Fprintf(w, "%s]\n", pad)
	case KindString:
		fmt.Fprintf(w, "%s%s\n", pad, quoteString(v.Str))
	case KindNumber:
		fmt.Fprintf(w, "%s%s\n", pad, FormatNumber(v.Num))
	case KindFunction:
		fmt.Fprintf(w, "%s%s\n", pad, formatFuncSignature(v.Fn))
	case KindType:
		fmt.Fprintf(w, "%s%s\n", pad, v.Typ.String())
	}
}

// FormatNumber renders a Number the way the host's fixed-point formatting
// does, trailing zeros preserved (§6.3) — six decimal places, matching
// the stringification §4.4.5 uses when folding a number into a string.
func FormatNumber(n float64) string {
	return fmt.Sprintf("%.6f", n)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func formatFuncSignature(fn *Function) string {
	parts := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type.String())
	}
	text := strings.Join(parts, " ")
	if len(text) > maxFuncArgText {
		text = "..."
	}
	return fmt.Sprintf("func(%s)", text)
}
