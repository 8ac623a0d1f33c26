// ==============================================================================================
// FILE: internal/value/inspect.go
// ==============================================================================================
// PURPOSE: Implements types.Inspectable so internal/types can validate a
//          Value against a Type without importing this package.
// ==============================================================================================

package value

import "github.com/lynxlang/lynx/internal/types"

var kindToValueKind = map[Kind]types.ValueKind{
	KindInvalid:  types.VInvalid,
	KindString:   types.VString,
	KindNumber:   types.VNumber,
	KindList:     types.VList,
	KindCompound: types.VCompound,
	KindFunction: types.VFunction,
	KindType:     types.VType,
}

func (v *Value) ValueKind() types.ValueKind { return kindToValueKind[v.Kind] }

func (v *Value) ListElemKind() types.ValueKind { return kindToValueKind[v.ElemKind] }

func (v *Value) ListLen() int { return len(v.Elems) }

func (v *Value) ListElem(i int) types.Inspectable { return v.Elems[i] }

func (v *Value) CompoundField(key string) (types.Inspectable, bool) {
	member, ok := v.Get(key)
	if !ok {
		return nil, false
	}
	return member, true
}

func (v *Value) FunctionParams() []types.Field {
	if v.Fn == nil {
		return nil
	}
	return v.Fn.Params
}
