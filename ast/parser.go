// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hakohakoo/jsontree"
)

// A Parser builds syntax trees from scanned tokens. The zero value is ready
// for use and places no limit on nesting depth.
type Parser struct {
	maxDepth int
}

// SetMaxDepth configures the maximum nesting depth of objects and arrays the
// parser will accept. A value of 0 or less means no limit. Inputs nested
// more deeply are rejected with a *SyntaxError.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Parse builds the syntax tree for the value encoded by tokens. The whole
// sequence must encode exactly one value; leftover tokens after the value
// are an error. In case of error the result is nil and the error has
// concrete type *SyntaxError; no partial tree is returned.
func (p *Parser) Parse(tokens []jsontree.Token) (Value, error) {
	c := &cursor{toks: tokens, maxDepth: p.maxDepth}
	v, err := c.parseValue(0)
	if err != nil {
		return nil, err
	}
	if tok, ok := c.peek(); ok {
		return nil, c.failf(tok.Loc.First, "unexpected %v after value", tok.Kind)
	}
	return v, nil
}

// Parse builds the syntax tree for the value encoded by tokens using a
// default parser configuration.
func Parse(tokens []jsontree.Token) (Value, error) { return new(Parser).Parse(tokens) }

// ParseString tokenizes input and parses the resulting token sequence.
func ParseString(input string) (Value, error) {
	toks, err := jsontree.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// A cursor is a read position in a token sequence with one token of
// lookahead. The cursor holds no other state; nesting depth lives on the
// call stack of the parse methods.
type cursor struct {
	toks     []jsontree.Token
	next     int
	maxDepth int
}

func (c *cursor) peek() (jsontree.Token, bool) {
	if c.next < len(c.toks) {
		return c.toks[c.next], true
	}
	return jsontree.Token{}, false
}

func (c *cursor) advance() (jsontree.Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.next++
	}
	return tok, ok
}

// require consumes the next token, which must have one of the given kinds.
func (c *cursor) require(kinds ...jsontree.Kind) (jsontree.Token, error) {
	tok, ok := c.advance()
	if !ok {
		return tok, c.failf(c.endLoc(), "unexpected end of input: %s", kindLabel(kinds, "end of input"))
	}
	if !slices.Contains(kinds, tok.Kind) {
		return tok, c.failf(tok.Loc.First, "%s", kindLabel(kinds, tok.Kind))
	}
	return tok, nil
}

// parseValue consumes a single value of any type.
func (c *cursor) parseValue(depth int) (Value, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, c.failf(c.endLoc(), "unexpected end of input")
	}
	switch tok.Kind {
	case jsontree.LBrace:
		return c.parseObject(depth + 1)
	case jsontree.LSquare:
		return c.parseArray(depth + 1)
	case jsontree.String, jsontree.Number, jsontree.True, jsontree.False, jsontree.Null:
		return c.parseDatum()
	default:
		return nil, c.failf(tok.Loc.First, "unexpected %v", tok.Kind)
	}
}

// parseObject consumes an object: zero or more comma-separated key-value
// members between braces.
// Precondition: the next token is LBrace.
func (c *cursor) parseObject(depth int) (Value, error) {
	open, err := c.require(jsontree.LBrace)
	if err != nil {
		return nil, err
	}
	if err := c.checkDepth(depth, open.Loc.First); err != nil {
		return nil, err
	}

	obj := Object{pos: open.Loc.Pos}
	for {
		next, ok := c.peek()
		if !ok {
			return nil, c.failf(c.endLoc(), "unexpected end of input in object")
		}
		if next.Kind == jsontree.RBrace {
			break // end of object
		}

		// Parse a single member: "key": value
		key, err := c.require(jsontree.String)
		if err != nil {
			return nil, err
		}
		if _, err := c.require(jsontree.Colon); err != nil {
			return nil, err
		}
		val, err := c.parseValue(depth)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, &Member{
			pos: key.Loc.Pos, end: val.Span().End, Key: key.Text, Value: val,
		})

		// Check whether we have more members (",") or are done ("}").
		sep, ok := c.peek()
		if !ok {
			return nil, c.failf(c.endLoc(), "unexpected end of input: %s",
				kindLabel([]jsontree.Kind{jsontree.Comma, jsontree.RBrace}, "end of input"))
		}
		if sep.Kind == jsontree.RBrace {
			break // end of object
		}
		if sep.Kind != jsontree.Comma {
			return nil, c.failf(sep.Loc.First, "%s",
				kindLabel([]jsontree.Kind{jsontree.Comma, jsontree.RBrace}, sep.Kind))
		}
		c.advance()
		if after, ok := c.peek(); ok && after.Kind == jsontree.RBrace {
			return nil, c.failf(after.Loc.First, "trailing comma in object")
		}
	}

	rb, err := c.require(jsontree.RBrace)
	if err != nil {
		return nil, err
	}
	obj.end = rb.Loc.End
	return obj, nil
}

// parseArray consumes an array: zero or more comma-separated values between
// square brackets.
// Precondition: the next token is LSquare.
func (c *cursor) parseArray(depth int) (Value, error) {
	open, err := c.require(jsontree.LSquare)
	if err != nil {
		return nil, err
	}
	if err := c.checkDepth(depth, open.Loc.First); err != nil {
		return nil, err
	}

	arr := Array{pos: open.Loc.Pos}
	for {
		next, ok := c.peek()
		if !ok {
			return nil, c.failf(c.endLoc(), "unexpected end of input in array")
		}
		if next.Kind == jsontree.RSquare {
			break // end of array
		}

		elt, err := c.parseValue(depth)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, elt)

		sep, ok := c.peek()
		if !ok {
			return nil, c.failf(c.endLoc(), "unexpected end of input: %s",
				kindLabel([]jsontree.Kind{jsontree.Comma, jsontree.RSquare}, "end of input"))
		}
		if sep.Kind == jsontree.RSquare {
			break // end of array
		}
		if sep.Kind != jsontree.Comma {
			return nil, c.failf(sep.Loc.First, "%s",
				kindLabel([]jsontree.Kind{jsontree.Comma, jsontree.RSquare}, sep.Kind))
		}
		c.advance()
		if after, ok := c.peek(); ok && after.Kind == jsontree.RSquare {
			return nil, c.failf(after.Loc.First, "trailing comma in array")
		}
	}

	rs, err := c.require(jsontree.RSquare)
	if err != nil {
		return nil, err
	}
	arr.end = rs.Loc.End
	return arr, nil
}

// parseDatum consumes exactly one leaf token and returns the corresponding
// node. Number text is converted here; text the scanner admitted but that
// does not spell a valid number (e.g. "3.14.15") fails at this point.
// Precondition: the next token is a leaf kind.
func (c *cursor) parseDatum() (Value, error) {
	tok, _ := c.advance()
	pos, end := tok.Loc.Pos, tok.Loc.End
	switch tok.Kind {
	case jsontree.True:
		return Bool{pos: pos, end: end, value: true}, nil
	case jsontree.False:
		return Bool{pos: pos, end: end, value: false}, nil
	case jsontree.Null:
		return Null{pos: pos, end: end}, nil
	case jsontree.String:
		return String{pos: pos, end: end, text: tok.Text}, nil
	case jsontree.Number:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &SyntaxError{
				Location: tok.Loc.First,
				Message:  fmt.Sprintf("invalid number %q", tok.Text),
				err:      err,
			}
		}
		return Number{pos: pos, end: end, value: v}, nil
	default:
		return nil, c.failf(tok.Loc.First, "unexpected %v", tok.Kind)
	}
}

func (c *cursor) checkDepth(depth int, loc jsontree.LineCol) error {
	if c.maxDepth > 0 && depth > c.maxDepth {
		return c.failf(loc, "nesting depth exceeds %d", c.maxDepth)
	}
	return nil
}

// endLoc reports the position just past the final token, for errors raised
// at the end of the token sequence.
func (c *cursor) endLoc() jsontree.LineCol {
	if n := len(c.toks); n > 0 {
		return c.toks[n-1].Loc.Last
	}
	return jsontree.LineCol{Line: 1}
}

func (c *cursor) failf(loc jsontree.LineCol, msg string, args ...any) error {
	return &SyntaxError{Location: loc, Message: fmt.Sprintf(msg, args...)}
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Location jsontree.LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(kinds []jsontree.Kind, got any) string {
	if len(kinds) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, len(kinds)-1)
		for i, k := range kinds[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
