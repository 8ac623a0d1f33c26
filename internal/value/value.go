// ==============================================================================================
// FILE: internal/value/value.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The value universe of §3.1 — the single discriminated Value
//          type every parsed/evaluated result is an instance of, plus the
//          Compound and List operations of §4.2. amoghasbhardwaj-Eloquence's
//          class hierarchy of heap-allocated objects (object.Object)
//          collapses into one tagged struct; there is no null sentinel,
//          lookups return (*Value, bool) instead.
// ==============================================================================================

package value

import "github.com/lynxlang/lynx/internal/types"

// Kind is the closed set of value variants from §3.1. KindInvalid is not a
// variant a Value ever holds — it is the element-type tag of an empty
// list, and the zero value of Kind.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindList
	KindCompound
	KindFunction
	KindType
)

// RootKey is the sentinel key carried by the root compound of a file
// (§3.1): its presence suppresses the enclosing braces when printing.
const RootKey = ".root"

// Value is the single tagged representation every parsed or evaluated
// result takes. Only the fields relevant to Kind are meaningful; the rest
// are zero.
type Value struct {
	Kind Kind
	Key  string // non-empty when this value is a compound member

	Str string  // KindString
	Num float64 // KindNumber

	Elems    []*Value // KindList, ordered
	ElemKind Kind     // KindList: KindInvalid iff Elems is empty

	entries []*Value       // KindCompound, ordered
	index   map[string]int // KindCompound: key -> position in entries

	Fn *Function // KindFunction

	Typ *types.Type // KindType
}

func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }
func NewNumber(n float64) *Value { return &Value{Kind: KindNumber, Num: n} }

// NewList builds an empty list; its element-type tag is Invalid until the
// first Add (§3.1).
func NewList() *Value {
	return &Value{Kind: KindList, ElemKind: KindInvalid}
}

// NewCompound builds an empty compound.
func NewCompound() *Value {
	return &Value{Kind: KindCompound, index: map[string]int{}}
}

func NewFunction(fn *Function) *Value { return &Value{Kind: KindFunction, Fn: fn} }
func NewType(t *types.Type) *Value    { return &Value{Kind: KindType, Typ: t} }

// WithKey returns v with Key set, for chaining after a constructor.
func (v *Value) WithKey(key string) *Value {
	v.Key = key
	return v
}

// Bool constructs the Number 0/1 convention §3.1 uses for booleans.
func Bool(b bool) *Value {
	if b {
		return NewNumber(1)
	}
	return NewNumber(0)
}

// Truthy reports whether a Number value is the boolean "true" (non-zero),
// per §4.6's "Cond must be Number; != 0 picks then".
func Truthy(v *Value) bool {
	return v != nil && v.Kind == KindNumber && v.Num != 0
}

// ---------------------------------------------------------------------------
// Compound operations (§4.2)
// ---------------------------------------------------------------------------

// Entries returns the compound's members in insertion order. The caller
// must not mutate the returned slice.
func (v *Value) Entries() []*Value { return v.entries }

// Get returns the direct member at key, or (nil, false).
func (v *Value) Get(key string) (*Value, bool) {
	if v.index == nil {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.entries[i], true
}

// GetByPath descends one compound child per segment except the last,
// which is a direct lookup in whatever compound the descent reached
// (§4.2). It fails on any missing or non-compound intermediate segment.
func (v *Value) GetByPath(path []string) (*Value, bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur := v
	for _, seg := range path[:len(path)-1] {
		member, ok := cur.Get(seg)
		if !ok || member.Kind != KindCompound {
			return nil, false
		}
		cur = member
	}
	return cur.Get(path[len(path)-1])
}

// Add inserts member, replacing an existing entry with the same key in
// place (position preserved) or appending a new one (§4.2). The compound
// takes ownership of member.
func (v *Value) Add(member *Value) {
	if v.index == nil {
		v.index = map[string]int{}
	}
	if i, ok := v.index[member.Key]; ok {
		v.entries[i] = member
		return
	}
	v.index[member.Key] = len(v.entries)
	v.entries = append(v.entries, member)
}

// Merge adds every entry of other into v, replacing on key conflict, and
// returns the number of entries considered. Used for `{ (expr) }` spread
// and `use` import (§4.2, §6.4).
func (v *Value) Merge(other *Value) int {
	n := 0
	for _, e := range other.Entries() {
		v.Add(e)
		n++
	}
	return n
}

// ---------------------------------------------------------------------------
// List operations (§4.2)
// ---------------------------------------------------------------------------

// ListAdd appends el, enforcing the element-type tag: the first add fixes
// the tag, later adds with a mismatching Kind are rejected (ok=false).
// Compound/List element kinds compare only by Kind, not full structural
// type, per §3.1's "all elements share the tag".
func (v *Value) ListAdd(el *Value) bool {
	if v.ElemKind == KindInvalid {
		v.ElemKind = el.Kind
	} else if v.ElemKind != el.Kind {
		return false
	}
	el.Key = ""
	v.Elems = append(v.Elems, el)
	return true
}

// ListClear empties the list and resets its element-type tag to Invalid.
func (v *Value) ListClear() {
	v.Elems = nil
	v.ElemKind = KindInvalid
}

// ListMerge appends every element of other, enforcing tag compatibility
// the same way ListAdd does for a single element.
func (v *Value) ListMerge(other *Value) bool {
	for _, e := range other.Elems {
		if !v.ListAdd(e) {
			return false
		}
	}
	return true
}
