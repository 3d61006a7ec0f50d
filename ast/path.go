// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequence of object keys and array indexes starting from
// v, and returns the value reached. Each element of path must be a string
// (an object key) or an int (an array index, negative counting from the
// end). An empty path returns v.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with key %q", cur, t)
			}
			m := obj.Find(t)
			if m == nil {
				return nil, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with index %d", cur, t)
			}
			idx := t
			if idx < 0 {
				idx += arr.Len()
			}
			if idx < 0 || idx >= arr.Len() {
				return nil, fmt.Errorf("index %d out of range for %d elements", t, arr.Len())
			}
			cur = arr.Values[idx]
		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}
