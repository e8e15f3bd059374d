package ir

import (
	"fmt"
	"maps"
	"slices"
)

// FromAny builds a tree from plain Go values: nil, bool, string,
// int/int64, float64, []any, and map[string]any. Map keys are emitted
// in sorted order so programmatic construction is deterministic.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		return FromInt(int64(t)), nil
	case float64:
		if t == float64(int64(t)) && t < 1e15 && t > -1e15 {
			// yaml decoders hand over whole numbers as floats
			return FromInt(int64(t)), nil
		}
		return FromFloat(t), nil
	case []any:
		arr := NewArray()
		for _, elt := range t {
			child, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			child, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			child.Key = key
			obj.Append(child)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// ToAny converts a tree back to plain Go values. Objects become
// map[string]any, which loses entry order; use the tree itself where
// order matters.
func ToAny(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case StringType:
		return n.Str
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return int64(0)
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.Values))
		for _, v := range n.Values {
			res[v.Key] = ToAny(v)
		}
		return res
	}
	return nil
}

// Equal reports semantic equality of two trees: same shape and values,
// ignoring comments, spans, and scalar spelling.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		// ints and floats compare by value
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.Str == b.Str
	case NumberType:
		return numEqual(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for _, av := range a.Values {
			bv := b.Get(av.Key)
			if bv == nil || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

func numEqual(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	return numFloat(a) == numFloat(b)
}

func numFloat(n *Node) float64 {
	if n.Float64 != nil {
		return *n.Float64
	}
	if n.Int64 != nil {
		return float64(*n.Int64)
	}
	return 0
}
