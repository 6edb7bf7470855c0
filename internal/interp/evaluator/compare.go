package evaluator

import (
	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/interp/runtime"
)

// equal and less are the comparison kernel shared by the Comparison
// evaluation rule: instances compare by identity, never structurally.

func equal(a, b runtime.Value) bool {
	aNone, bNone := runtime.IsNone(a), runtime.IsNone(b)
	if aNone || bNone {
		return aNone && bNone
	}
	if ai, ok := a.(*runtime.ObjectInstance); ok {
		bi, ok := b.(*runtime.ObjectInstance)
		return ok && ai == bi
	}
	if as, ok := a.(runtime.String); ok {
		bs, ok := b.(runtime.String)
		return ok && as == bs
	}
	if an, ok := a.(runtime.Number); ok {
		bn, ok := b.(runtime.Number)
		return ok && an == bn
	}
	if ab, ok := a.(runtime.Bool); ok {
		bb, ok := b.(runtime.Bool)
		return ok && ab == bb
	}
	return false
}

// less evaluates the ordering operators. Only Number/Number,
// String/String, and Bool/Bool pairs are ordered; any other pairing
// fails TypeError.
func less(a, b runtime.Value, op ast.CompareOp) (bool, error) {
	switch x := a.(type) {
	case runtime.Number:
		y, ok := b.(runtime.Number)
		if !ok {
			break
		}
		switch {
		case x < y:
			return compareOrdered(-1, op), nil
		case x > y:
			return compareOrdered(1, op), nil
		default:
			return compareOrdered(0, op), nil
		}
	case runtime.String:
		y, ok := b.(runtime.String)
		if !ok {
			break
		}
		switch {
		case x < y:
			return compareOrdered(-1, op), nil
		case x > y:
			return compareOrdered(1, op), nil
		default:
			return compareOrdered(0, op), nil
		}
	case runtime.Bool:
		y, ok := b.(runtime.Bool)
		if !ok {
			break
		}
		bi := func(v runtime.Bool) int {
			if v {
				return 1
			}
			return 0
		}
		return compareOrdered(bi(x)-bi(y), op), nil
	}
	return false, typeErrorf("unsupported operand types for %s: %s and %s", op, runtime.TypeName(a), runtime.TypeName(b))
}

// compareOrdered maps a three-way comparison result (negative, zero,
// positive) to the requested ordering operator's boolean result.
func compareOrdered(cmp int, op ast.CompareOp) bool {
	switch op {
	case ast.Lt:
		return cmp < 0
	case ast.Lte:
		return cmp <= 0
	case ast.Gt:
		return cmp > 0
	case ast.Gte:
		return cmp >= 0
	default:
		return false
	}
}
