// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

// Package jsontree implements a lexical scanner for JSON text.
//
// # Scanning
//
// The Scanner type reads tokens one at a time from an io.Reader. Call Next
// to advance to the next token of the input:
//
//	s := jsontree.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// Next reports false when the input is exhausted or an error occurs; Err
// returns nil in the former case and a *LexError in the latter.
//
// To scan a complete input at once, use Tokenize:
//
//	toks, err := jsontree.Tokenize(`{"age": 25}`)
//
// Tokenize returns the full token sequence covering every non-whitespace
// character of the input, or the error that stopped the scan. No partial
// token list is returned alongside an error.
//
// # Parsing
//
// The ast subpackage consumes the token sequence produced here and builds
// syntax trees according to the JSON grammar:
//
//	v, err := ast.Parse(toks)
//
// The scanner deliberately leaves two jobs to the parser: string tokens are
// reported with their backslash sequences intact (no escape decoding is
// performed), and number tokens are any run of digits and dots, so text such
// as "3.14.15" scans cleanly and fails only when the parser converts it.
package jsontree
