// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

// Program jsontree tokenizes and parses JSON input, printing either the
// token stream or a debug rendering of the resulting syntax tree.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hakohakoo/jsontree"
	"github.com/hakohakoo/jsontree/ast"
)

// CLI defines the command-line interface.
var CLI struct {
	Input    string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Tokens   bool   `help:"Print the token stream instead of the parsed tree." short:"t"`
	MaxDepth int    `help:"Maximum nesting depth accepted by the parser (0 = unlimited)." default:"0"`
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsontree"),
		kong.Description("Tokenize and parse JSON input."),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	input, err := readInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", userMessage(err))
		os.Exit(1)
	}
	opts := options{tokens: CLI.Tokens, maxDepth: CLI.MaxDepth}
	if err := execute(opts, input, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", userMessage(err))
		os.Exit(1)
	}
}

type options struct {
	tokens   bool
	maxDepth int
}

// execute runs the scan-then-parse pipeline over input and writes the
// requested rendering to w.
func execute(opts options, input []byte, w io.Writer) error {
	toks, err := jsontree.Tokenize(string(input))
	if err != nil {
		return err
	}
	if opts.tokens {
		for _, tok := range toks {
			fmt.Fprintf(w, "%-10s %-10s %v\n", tok.Kind, tok.Text, tok.Loc)
		}
		return nil
	}

	p := new(ast.Parser)
	p.SetMaxDepth(opts.maxDepth)
	v, err := p.Parse(toks)
	if err != nil {
		return err
	}
	writeValue(w, v, 0)
	fmt.Fprintln(w)
	return nil
}

// readInput reads the input file, or stdin if no file was named.
func readInput() ([]byte, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// userMessage renders err for the terminal, naming the pipeline stage that
// produced it.
func userMessage(err error) string {
	var lerr *jsontree.LexError
	var serr *ast.SyntaxError
	switch {
	case errors.As(err, &lerr):
		return fmt.Sprintf("lexical error %v", lerr)
	case errors.As(err, &serr):
		return fmt.Sprintf("syntax error %v", serr)
	}
	return fmt.Sprintf("error: %v", err)
}
