// ==============================================================================================
// FILE: internal/types/validate.go
// ==============================================================================================
// PURPOSE: validate(value, flags, sink) of §4.3 — whether a value matches
//          a type descriptor. Works against the Inspectable interface so
//          this package never imports internal/value.
// ==============================================================================================

package types

// Inspectable is the minimal surface a value must expose to be validated.
// internal/value.Value implements this directly.
type Inspectable interface {
	ValueKind() ValueKind

	// ListElemKind and ListLen are only meaningful when ValueKind() == VList.
	ListElemKind() ValueKind
	ListLen() int
	ListElem(i int) Inspectable

	// CompoundField looks up a direct (non-dotted) member by key; only
	// meaningful when ValueKind() == VCompound.
	CompoundField(key string) (Inspectable, bool)

	// FunctionParams returns the callee's argument specification; only
	// meaningful when ValueKind() == VFunction.
	FunctionParams() []Field
}

// Lenient, when passed to Validate, treats every expected compound field
// as optional regardless of its own Optional flag — the "optional flag is
// in flags" variant of §4.3's Compound rule.
type Lenient bool

// Validate reports whether v matches t, invoking report for every
// mismatch found. Validation continues within a Compound after the first
// mismatch so that every failing field is reported (§4.3), but the
// overall result is false if any mismatch was reported.
func Validate(v Inspectable, t *Type, lenient Lenient, report func(string)) bool {
	if t == nil || t.Shape == AnyShape {
		return true
	}
	switch t.Shape {
	case StringShape:
		if v.ValueKind() != VString {
			report("expected string")
			return false
		}
		return true

	case NumberShape:
		if v.ValueKind() != VNumber {
			report("expected number")
			return false
		}
		return true

	case ListShape:
		if v.ValueKind() != VList {
			report("expected list")
			return false
		}
		if v.ListLen() == 0 {
			return true
		}
		return Validate(v.ListElem(0), t.Elem, false, report)

	case CompoundShape:
		if v.ValueKind() != VCompound {
			report("expected compound")
			return false
		}
		ok := true
		for _, f := range t.Fields {
			member, present := v.CompoundField(f.Name)
			if !present {
				if f.Type.Optional || bool(lenient) {
					continue
				}
				report("missing field " + f.Name)
				ok = false
				continue
			}
			if !Validate(member, f.Type, false, func(msg string) {
				report("field " + f.Name + ": " + msg)
			}) {
				ok = false
			}
		}
		return ok

	case FunctionShape:
		if v.ValueKind() != VFunction {
			report("expected function")
			return false
		}
		params := v.FunctionParams()
		if len(params) != len(t.Fields) {
			report("argument count mismatch")
			return false
		}
		for i, want := range t.Fields {
			got := params[i]
			if got.Name != want.Name || !Equal(got.Type, want.Type) {
				report("parameter " + want.Name + " mismatch")
				return false
			}
		}
		return true

	default:
		report("unknown type shape")
		return false
	}
}
