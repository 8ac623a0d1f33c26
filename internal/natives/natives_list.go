// ==============================================================================================
// FILE: internal/natives/natives_list.go
// ==============================================================================================
// PURPOSE: list-length, list-get, list-set, list-append, list-remove
//          (§4.6) — mutate-and-return natives operating on a cloned list.
// ==============================================================================================

package natives

import (
	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

func registerList(out map[string]*value.Value) {
	anyList := types.List(types.Any())

	out["list-length"] = makeNative(
		[]types.Field{param("l", anyList)}, true, listLength)

	out["list-get"] = makeNative(
		[]types.Field{param("l", anyList), param("index", types.Number())}, true, listGet)

	out["list-set"] = makeNative(
		[]types.Field{
			param("l", anyList),
			param("index", types.Number()),
			param("value", types.Any()),
		}, true, listSet)

	out["list-append"] = makeNative(
		[]types.Field{param("l", anyList), param("value", types.Any())}, true, listAppend)

	out["list-remove"] = makeNative(
		[]types.Field{param("l", anyList), param("index", types.Number())}, true, listRemove)
}

func listLength(call *value.Call) (*value.Value, bool) {
	l, _ := call.Args.Get("l")
	return value.NewNumber(float64(len(l.Elems))), true
}

func listGet(call *value.Call) (*value.Value, bool) {
	l, _ := call.Args.Get("l")
	idxV, _ := call.Args.Get("index")
	i := int(idxV.Num)
	if i < 0 || i >= len(l.Elems) {
		call.Host.Fail(diag.Runtime, "list-get: index %d out of range (length %d)", i, len(l.Elems))
		return nil, false
	}
	return l.Elems[i].Clone(), true
}

func listSet(call *value.Call) (*value.Value, bool) {
	l, _ := call.Args.Get("l")
	idxV, _ := call.Args.Get("index")
	v, _ := call.Args.Get("value")
	i := int(idxV.Num)
	if i < 0 || i >= len(l.Elems) {
		call.Host.Fail(diag.Runtime, "list-set: index %d out of range (length %d)", i, len(l.Elems))
		return nil, false
	}
	if len(l.Elems) > 0 && v.Kind != l.ElemKind {
		call.Host.Fail(diag.Type, "list-set: value kind does not match the list's element kind")
		return nil, false
	}
	result := l.Clone()
	replacement := v.Clone()
	replacement.Key = ""
	result.Elems[i] = replacement
	return result, true
}

func listAppend(call *value.Call) (*value.Value, bool) {
	l, _ := call.Args.Get("l")
	v, _ := call.Args.Get("value")
	result := l.Clone()
	if !result.ListAdd(v.Clone()) {
		call.Host.Fail(diag.Type, "list-append: value kind does not match the list's element kind")
		return nil, false
	}
	return result, true
}

func listRemove(call *value.Call) (*value.Value, bool) {
	l, _ := call.Args.Get("l")
	idxV, _ := call.Args.Get("index")
	i := int(idxV.Num)
	if i < 0 || i >= len(l.Elems) {
		call.Host.Fail(diag.Runtime, "list-remove: index %d out of range (length %d)", i, len(l.Elems))
		return nil, false
	}
	result := l.Clone()
	result.Elems = append(result.Elems[:i], result.Elems[i+1:]...)
	if len(result.Elems) == 0 {
		result.ElemKind = value.KindInvalid
	}
	return result, true
}
