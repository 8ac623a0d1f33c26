package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestEqualityIsReflexiveSymmetricTransitive(t *testing.T) {
	a := Compound([]Field{{Name: "x", Type: Number()}, {Name: "y", Type: String()}})
	b := a.Clone()
	c := b.Clone()

	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
	assert.True(t, Equal(b, c))
	assert.True(t, Equal(a, c))
}

func TestOptionalParticipatesInEquality(t *testing.T) {
	n := Number()
	opt := Optional(n)
	assert.False(t, Equal(n, opt))
	assert.True(t, Equal(opt, Optional(Number())))
}

func TestCloneIsIndependent(t *testing.T) {
	original := List(Compound([]Field{{Name: "x", Type: Number()}}))
	clone := original.Clone()
	clone.Elem.Fields[0].Type.Shape = StringShape

	assert.Equal(t, NumberShape, original.Elem.Fields[0].Type.Shape)
}

func TestStringRendersSurfaceSyntax(t *testing.T) {
	assert.Equal(t, "string", String().String())
	assert.Equal(t, "optional number", Optional(Number()).String())
	assert.Equal(t, "list[number]", List(Number()).String())
}

func TestListAndFunctionShapesDistinguish(t *testing.T) {
	f := Function([]Field{{Name: "who", Type: String()}})
	assert.False(t, Equal(f, List(String())))
}

func TestCloneProducesAStructurallyIdenticalTree(t *testing.T) {
	original := Compound([]Field{
		{Name: "x", Type: Optional(Number())},
		{Name: "ys", Type: List(String())},
	})
	clone := original.Clone()

	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone diverged from original (-want +got):\n%s", diff)
	}
}
