// ==============================================================================================
// FILE: internal/value/clone.go
// ==============================================================================================
// PURPOSE: Deep clone (§4.2): "preserves the key"; "mutating v.clone() in
//          any way does not alter v" (§8.1). Function values clone
//          shallowly — a function's body and captured frames are shared
//          by reference, matching the design note that closures share
//          their captured compounds rather than deep-copying them.
// ==============================================================================================

package value

// Clone returns a deep copy of v. The key is preserved.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{Kind: v.Kind, Key: v.Key, Str: v.Str, Num: v.Num, Typ: v.Typ.Clone()}

	switch v.Kind {
	case KindList:
		c.ElemKind = v.ElemKind
		if v.Elems != nil {
			c.Elems = make([]*Value, len(v.Elems))
			for i, e := range v.Elems {
				c.Elems[i] = e.Clone()
			}
		}

	case KindCompound:
		c.index = map[string]int{}
		c.entries = make([]*Value, len(v.entries))
		for i, e := range v.entries {
			c.entries[i] = e.Clone()
			c.index[e.Key] = i
		}

	case KindFunction:
		c.Fn = v.Fn
	}

	return c
}
