// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

package jsontree

// A Kind classifies a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number: digits and decimal points
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single classified lexical unit of the input. Tokens are
// created by a Scanner and are not modified afterward.
type Token struct {
	Kind Kind     // the lexical class of the token
	Text string   // the raw text of the token, without delimiting quotes
	Loc  Location // where in the input the token appeared
}
