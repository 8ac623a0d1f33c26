// ==============================================================================================
// FILE: internal/natives/natives_numeric.go
// ==============================================================================================
// PURPOSE: eq, ne, add, sub, mul, div, gt, lt, ge, le, and, or, not, mod,
//          shl, shr, range, inc, dec (§4.6). Comparisons and logic use the
//          0/1 Number convention of §3.1; division by zero is not trapped
//          (§7: "reported as host-float ∞/NaN").
// ==============================================================================================

package natives

import (
	"math"

	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

func registerNumeric(out map[string]*value.Value) {
	anyT := types.Any()
	num := types.Number()

	out["eq"] = makeNative([]types.Field{param("a", anyT), param("b", anyT)}, false, func(c *value.Call) (*value.Value, bool) {
		a, _ := c.Args.Get("a")
		b, _ := c.Args.Get("b")
		return value.Bool(value.Equal(a, b)), true
	})
	out["ne"] = makeNative([]types.Field{param("a", anyT), param("b", anyT)}, false, func(c *value.Call) (*value.Value, bool) {
		a, _ := c.Args.Get("a")
		b, _ := c.Args.Get("b")
		return value.Bool(!value.Equal(a, b)), true
	})

	out["add"] = numBinary("a", "b", func(a, b float64) float64 { return a + b })
	out["sub"] = numBinary("a", "b", func(a, b float64) float64 { return a - b })
	out["mul"] = numBinary("a", "b", func(a, b float64) float64 { return a * b })
	out["div"] = numBinary("a", "b", func(a, b float64) float64 { return a / b })
	out["mod"] = numBinary("a", "b", math.Mod)

	out["gt"] = numCompare("a", "b", func(a, b float64) bool { return a > b })
	out["lt"] = numCompare("a", "b", func(a, b float64) bool { return a < b })
	out["ge"] = numCompare("a", "b", func(a, b float64) bool { return a >= b })
	out["le"] = numCompare("a", "b", func(a, b float64) bool { return a <= b })

	out["and"] = numCompare("a", "b", func(a, b float64) bool { return a != 0 && b != 0 })
	out["or"] = numCompare("a", "b", func(a, b float64) bool { return a != 0 || b != 0 })

	out["not"] = makeNative([]types.Field{param("a", num)}, false, func(c *value.Call) (*value.Value, bool) {
		a, _ := c.Args.Get("a")
		return value.Bool(a.Num == 0), true
	})

	out["shl"] = numBinary("a", "b", func(a, b float64) float64 { return float64(int64(a) << uint(int64(b))) })
	out["shr"] = numBinary("a", "b", func(a, b float64) float64 { return float64(int64(a) >> uint(int64(b))) })

	out["inc"] = makeNative([]types.Field{param("n", num)}, true, func(c *value.Call) (*value.Value, bool) {
		n, _ := c.Args.Get("n")
		return value.NewNumber(n.Num + 1), true
	})
	out["dec"] = makeNative([]types.Field{param("n", num)}, true, func(c *value.Call) (*value.Value, bool) {
		n, _ := c.Args.Get("n")
		return value.NewNumber(n.Num - 1), true
	})

	out["range"] = makeNative([]types.Field{param("from", num), param("to", num)}, false, rangeList)
}

func numBinary(aName, bName string, op func(a, b float64) float64) *value.Value {
	return makeNative([]types.Field{param(aName, types.Number()), param(bName, types.Number())}, false,
		func(c *value.Call) (*value.Value, bool) {
			a, _ := c.Args.Get(aName)
			b, _ := c.Args.Get(bName)
			return value.NewNumber(op(a.Num, b.Num)), true
		})
}

func numCompare(aName, bName string, op func(a, b float64) bool) *value.Value {
	return makeNative([]types.Field{param(aName, types.Number()), param(bName, types.Number())}, false,
		func(c *value.Call) (*value.Value, bool) {
			a, _ := c.Args.Get(aName)
			b, _ := c.Args.Get(bName)
			return value.Bool(op(a.Num, b.Num)), true
		})
}

// rangeList builds [from, to) as a list of Numbers, per S2's
// `for n in range 1 5 ( n )` summing to 10.
func rangeList(call *value.Call) (*value.Value, bool) {
	fromV, _ := call.Args.Get("from")
	toV, _ := call.Args.Get("to")
	lst := value.NewList()
	for n := int(fromV.Num); n < int(toV.Num); n++ {
		lst.ListAdd(value.NewNumber(float64(n)))
	}
	return lst, true
}
