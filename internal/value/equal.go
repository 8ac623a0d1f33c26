// ==============================================================================================
// FILE: internal/value/equal.go
// ==============================================================================================
// PURPOSE: Structural equality (§4.2): Compound compares as an unordered
//          map (same key set, equal values), List compares the element
//          tag plus element-wise, Function compares argument spec and
//          body identity, Type compares structurally.
// ==============================================================================================

package value

import "github.com/lynxlang/lynx/internal/types"

// Equal reports structural equality between a and b, per §4.2.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindString:
		return a.Str == b.Str
	case KindNumber:
		return a.Num == b.Num
	case KindList:
		if a.ElemKind != b.ElemKind || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case KindCompound:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for _, e := range a.entries {
			other, ok := b.Get(e.Key)
			if !ok || !Equal(e, other) {
				return false
			}
		}
		return true
	case KindFunction:
		return a.Fn == b.Fn || (sameParams(a.Fn.Params, b.Fn.Params) && a.Fn.Body == b.Fn.Body)
	case KindType:
		return types.Equal(a.Typ, b.Typ)
	default:
		return true
	}
}

func sameParams(a, b []types.Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !types.Equal(a[i].Type, b[i].Type) {
			return false
		}
	}
	return true
}
