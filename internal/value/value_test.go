package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lynxlang/lynx/internal/types"
)

func TestCompoundAddReplacesInPlace(t *testing.T) {
	c := NewCompound()
	c.Add(NewString("a").WithKey("x"))
	c.Add(NewNumber(2).WithKey("y"))
	c.Add(NewString("b").WithKey("x"))

	require.Len(t, c.Entries(), 2)
	assert.Equal(t, "x", c.Entries()[0].Key)
	v, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, "b", v.Str)
}

func TestCompoundGetByPath(t *testing.T) {
	inner := NewCompound()
	inner.Add(NewNumber(42).WithKey("z"))
	outer := NewCompound()
	outer.Add(inner.WithKey("y"))

	v, ok := outer.GetByPath([]string{"y", "z"})
	require.True(t, ok)
	assert.Equal(t, float64(42), v.Num)

	_, ok = outer.GetByPath([]string{"y", "missing"})
	assert.False(t, ok)

	// Non-compound intermediate fails the descent.
	outer.Add(NewString("s").WithKey("s"))
	_, ok = outer.GetByPath([]string{"s", "z"})
	assert.False(t, ok)
}

func TestCompoundMerge(t *testing.T) {
	a := NewCompound()
	a.Add(NewNumber(1).WithKey("x"))
	b := NewCompound()
	b.Add(NewNumber(2).WithKey("x"))
	b.Add(NewNumber(3).WithKey("y"))

	n := a.Merge(b)
	assert.Equal(t, 2, n)
	v, _ := a.Get("x")
	assert.Equal(t, float64(2), v.Num)
	v, _ = a.Get("y")
	assert.Equal(t, float64(3), v.Num)
}

func TestListAddEnforcesElementKind(t *testing.T) {
	l := NewList()
	assert.True(t, l.ListAdd(NewNumber(1)))
	assert.Equal(t, KindNumber, l.ElemKind)
	assert.False(t, l.ListAdd(NewString("two")))
	assert.Len(t, l.Elems, 1)
}

func TestListMergeEnforcesElementKind(t *testing.T) {
	a := NewList()
	a.ListAdd(NewNumber(1))
	b := NewList()
	b.ListAdd(NewString("x"))

	assert.False(t, a.ListMerge(b))

	c := NewList()
	c.ListAdd(NewNumber(2))
	assert.True(t, a.ListMerge(c))
	assert.Len(t, a.Elems, 2)
}

func TestListClear(t *testing.T) {
	l := NewList()
	l.ListAdd(NewNumber(1))
	l.ListClear()
	assert.Equal(t, KindInvalid, l.ElemKind)
	assert.Empty(t, l.Elems)
}

func TestCloneIndependence(t *testing.T) {
	original := NewCompound()
	original.Add(NewString("a").WithKey("s"))
	inner := NewList()
	inner.ListAdd(NewNumber(1))
	original.Add(inner.WithKey("l"))

	clone := original.Clone()
	s, _ := clone.Get("s")
	s.Str = "mutated"
	l, _ := clone.Get("l")
	l.ListAdd(NewNumber(2))

	origS, _ := original.Get("s")
	origL, _ := original.Get("l")
	assert.Equal(t, "a", origS.Str)
	assert.Len(t, origL.Elems, 1)
}

func TestCloneFunctionSharesBody(t *testing.T) {
	fn := NewFunction(&Function{Params: nil, Body: &FuncBody{}})
	clone := fn.Clone()
	assert.Same(t, fn.Fn, clone.Fn)
}

func TestEqualCompoundIsUnordered(t *testing.T) {
	a := NewCompound()
	a.Add(NewNumber(1).WithKey("x"))
	a.Add(NewNumber(2).WithKey("y"))
	b := NewCompound()
	b.Add(NewNumber(2).WithKey("y"))
	b.Add(NewNumber(1).WithKey("x"))

	assert.True(t, Equal(a, b))
}

func TestEqualListComparesElementwise(t *testing.T) {
	a := NewList()
	a.ListAdd(NewNumber(1))
	a.ListAdd(NewNumber(2))
	b := NewList()
	b.ListAdd(NewNumber(1))
	b.ListAdd(NewNumber(3))

	assert.False(t, Equal(a, b))
	b.Elems[1].Num = 2
	assert.True(t, Equal(a, b))
}

func TestTruthy(t *testing.T) {
	assert.True(t, Truthy(NewNumber(1)))
	assert.False(t, Truthy(NewNumber(0)))
	assert.False(t, Truthy(NewString("1")))
}

func TestInspectableForwarding(t *testing.T) {
	c := NewCompound()
	c.Add(NewNumber(1).WithKey("x"))
	assert.Equal(t, types.VCompound, c.ValueKind())
	_, ok := c.CompoundField("x")
	assert.True(t, ok)

	l := NewList()
	l.ListAdd(NewString("a"))
	assert.Equal(t, types.VList, l.ValueKind())
	assert.Equal(t, types.VString, l.ListElemKind())
	assert.Equal(t, 1, l.ListLen())
}
