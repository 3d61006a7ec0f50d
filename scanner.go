// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

package jsontree

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	r    *bufio.Reader
	buf  bytes.Buffer // text of current token
	kind Kind
	err  error

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Tokenize scans input and returns its complete token sequence, covering
// every non-whitespace character of the input in order of appearance. If the
// scan fails, Tokenize returns a nil slice along with a *LexError; no
// partial token sequence is returned.
func Tokenize(input string) ([]Token, error) {
	s := NewScanner(strings.NewReader(input))
	var toks []Token
	for s.Next() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}

// Next advances s to the next token of the input and reports whether one is
// available. Once Next returns false, Err reports the reason: nil at the end
// of input, otherwise a *LexError describing the first invalid construct.
func (s *Scanner) Next() bool {
	s.buf.Reset()
	s.kind = Invalid
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	for {
		ch, err := s.rune()
		if err == io.EOF {
			s.err = io.EOF
			return false
		} else if err != nil {
			return s.fail(err)
		}

		// Discard whitespace.
		if unicode.IsSpace(ch) {
			if ch == '\n' {
				s.eline++
				s.ecol = 0
			}
			s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
			continue
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.kind = k
			return true
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString(ch)
		}

		// Handle numbers.
		if isDigit(ch) {
			return s.scanNumber(ch)
		}

		// Handle constants: true, false, null
		if isAlpha(ch) {
			return s.scanKeyword(ch)
		}

		return s.failf("unexpected character %q", ch)
	}
}

// Token returns the token most recently scanned by Next.
func (s *Scanner) Token() Token {
	return Token{Kind: s.kind, Text: s.buf.String(), Loc: s.Location()}
}

// Err returns the error that stopped the scan, or nil if scanning stopped at
// the end of the input.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Text returns the raw text of the current token. For string tokens this is
// the content between the quotes, with backslash sequences intact.
func (s *Scanner) Text() string { return s.buf.String() }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

// scanString consumes the text of a string literal whose opening quote has
// already been read. The quotes do not become part of the token text, and no
// escape processing is done; a backslash is an ordinary character here.
func (s *Scanner) scanString(open rune) bool {
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf("unterminated string")
		} else if err != nil {
			return s.fail(err)
		} else if ch == open {
			s.kind = String
			return true
		}
		if ch == '\n' {
			s.eline++
			s.ecol = 0
		}
		s.buf.WriteRune(ch)
	}
}

// scanNumber consumes the longest run of digits and decimal points. Whether
// the run spells a sensible number is left to value conversion in the
// parser, so "3.14.15" scans without complaint.
func (s *Scanner) scanNumber(first rune) bool {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isNumRune)
	if err == nil {
		s.unrune()
	} else if err != io.EOF {
		return s.fail(err)
	}
	s.kind = Number
	return true
}

// scanKeyword consumes the longest run of ASCII letters beginning with
// first, which must spell one of the literal keywords.
func (s *Scanner) scanKeyword(first rune) bool {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isAlpha)
	if err == nil {
		s.unrune()
	} else if err != io.EOF {
		return s.fail(err)
	}

	word := mem.B(s.buf.Bytes())
	switch {
	case word.Equal(mem.S("true")):
		s.kind = True
	case word.Equal(mem.S("false")):
		s.kind = False
	case word.Equal(mem.S("null")):
		s.kind = Null
	default:
		return s.failf("unknown keyword %q", word.StringCopy())
	}
	return true
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	s.ecol += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.ecol -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// readWhile consumes runes matching f from the input until EOF or until a
// rune not matching f is found. The first non-matching rune (if any) is
// returned. It is the caller's responsibility to unread this rune, if
// desired. The int reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err != nil {
			return nr, 0, err
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

func (s *Scanner) fail(err error) bool {
	s.err = &LexError{
		Location: LineCol{Line: s.eline + 1, Column: s.ecol},
		Message:  err.Error(),
		err:      err,
	}
	return false
}

func (s *Scanner) failf(msg string, args ...any) bool {
	s.err = &LexError{
		Location: LineCol{Line: s.eline + 1, Column: s.ecol},
		Message:  fmt.Sprintf(msg, args...),
	}
	return false
}

// LexError is the concrete type of errors reported by the scanner.
type LexError struct {
	Location LineCol // where the offending input was found
	Message  string  // names the offending character or word

	err error
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.err }

func isDigit(ch rune) bool   { return '0' <= ch && ch <= '9' }
func isAlpha(ch rune) bool   { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isNumRune(ch rune) bool { return isDigit(ch) || ch == '.' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
