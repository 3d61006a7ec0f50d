// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/hakohakoo/jsontree"
	"github.com/hakohakoo/jsontree/ast"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ]
}`

func mustParse(t *testing.T, input string) ast.Value {
	t.Helper()
	v, err := ast.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return v
}

func TestObjectFind(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)
	obj, ok := v.(ast.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}
	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}

	// Find returns the first of the duplicate members.
	m := obj.Find("a")
	if m == nil {
		t.Fatal(`Key "a" not found`)
	}
	if got := m.Value.(ast.Number).Float64(); got != 1 {
		t.Errorf(`Find("a"): got %v, want 1`, got)
	}
	if got := obj.Find("nonesuch"); got != nil {
		t.Errorf(`Find("nonesuch"): got %+v, want nil`, got)
	}
}

func TestSpans(t *testing.T) {
	const input = `{"age": 25}`
	v := mustParse(t, input)

	if got, want := v.Span(), (jsontree.Span{Pos: 0, End: 11}); got != want {
		t.Errorf("Root span: got %+v, want %+v", got, want)
	}
	obj := v.(ast.Object)
	m := obj.Find("age")
	if got, want := m.Span(), (jsontree.Span{Pos: 1, End: 10}); got != want {
		t.Errorf("Member span: got %+v, want %+v", got, want)
	}
	if got, want := m.Value.Span(), (jsontree.Span{Pos: 8, End: 10}); got != want {
		t.Errorf("Value span: got %+v, want %+v", got, want)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  any // in flatten form
	}{
		{nil, nil},
		{true, true},
		{false, false},
		{"hello", "hello"},
		{3.5, 3.5},
		{25, 25.0},
		{int64(-3), -3.0},
		{uint8(7), 7.0},
		{[]any{1, "two", nil}, []any{1.0, "two", nil}},
		{map[string]any{"b": 2, "a": 1}, []pair{{"a", 1.0}, {"b", 2.0}}}, // keys sorted
		{ast.NewString("as-is"), "as-is"},
	}
	for _, test := range tests {
		got := flatten(ast.ToValue(test.input))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue(%+v): (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Unsupported", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestPath(t *testing.T) {
	v := mustParse(t, testJSON)

	tests := []struct {
		name string
		path []any
		want any // flatten form of the target value
		fail bool
	}{
		{"NilPath", nil, flatten(v), false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},
		{"LeafKey", []any{"y", "hello"}, "there", false},
		{"ArrayPos", []any{"list", 1, "x"}, 2.0, false},
		{"ArrayNeg", []any{"o", -1}, "yourself", false},
		{"OutOfRange", []any{"o", 25}, nil, true},
		{"IndexIntoLeaf", []any{"y", "hello", 0}, nil, true},
		{"BadElement", []any{"list", 1.5}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if tc.fail {
				if err == nil {
					t.Fatalf("Path: got %+v, want error", got)
				}
				t.Logf("Got expected error: %v", err)
				return
			}
			if err != nil {
				t.Fatalf("Path: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, flatten(got)); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFieldConstruction(t *testing.T) {
	// Trees can be built directly from constructors, without parsing.
	obj := ast.Object{Members: []*ast.Member{
		ast.Field("name", ast.NewString("Dennis")),
		ast.Field("age", ast.NewNumber(37)),
		ast.Field("isOld", ast.NewBool(false)),
		ast.Field("rank", ast.Null{}),
	}}
	want := []pair{
		{"name", "Dennis"},
		{"age", 37.0},
		{"isOld", false},
		{"rank", nil},
	}
	if diff := cmp.Diff(want, flatten(obj)); diff != "" {
		t.Errorf("Constructed object: (-want, +got)\n%s", diff)
	}
}

func TestStringVerbatim(t *testing.T) {
	// The tree keeps string text exactly as written: no escape decoding.
	v := mustParse(t, `"a\tb\nc"`)
	s, ok := v.(ast.String)
	if !ok {
		t.Fatalf("Root is %T, not string", v)
	}
	const want = `a\tb\nc`
	if got := s.Value(); got != want {
		t.Errorf("Value: got %#q, want %#q", got, want)
	}
	if strings.ContainsAny(s.Value(), "\t\n") {
		t.Error("Escape sequences were decoded, want verbatim text")
	}
}
