// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hakohakoo/jsontree/ast"
)

// writeValue writes a debug rendering of v to w. The output names the node
// types and quotes text; it is not JSON.
func writeValue(w io.Writer, v ast.Value, indent int) {
	pad := strings.Repeat("  ", indent)
	switch t := v.(type) {
	case ast.Object:
		if t.Len() == 0 {
			fmt.Fprint(w, "Object{}")
			return
		}
		fmt.Fprintln(w, "Object{")
		for _, m := range t.Members {
			fmt.Fprintf(w, "%s  %q: ", pad, m.Key)
			writeValue(w, m.Value, indent+1)
			fmt.Fprintln(w, ",")
		}
		fmt.Fprintf(w, "%s}", pad)
	case ast.Array:
		if t.Len() == 0 {
			fmt.Fprint(w, "Array[]")
			return
		}
		fmt.Fprintln(w, "Array[")
		for _, elt := range t.Values {
			fmt.Fprintf(w, "%s  ", pad)
			writeValue(w, elt, indent+1)
			fmt.Fprintln(w, ",")
		}
		fmt.Fprintf(w, "%s]", pad)
	case ast.String:
		fmt.Fprintf(w, "String(%q)", t.Value())
	case ast.Number:
		fmt.Fprintf(w, "Number(%v)", t.Float64())
	case ast.Bool:
		fmt.Fprintf(w, "Bool(%v)", t.Value())
	case ast.Null:
		fmt.Fprint(w, "Null")
	default:
		fmt.Fprintf(w, "%#v", v)
	}
}
