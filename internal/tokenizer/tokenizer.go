/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package tokenizer splits GS1 element strings into raw (lexeme, data)
// segments.
//
// The grammar knows only which 2 character lexemes begin fixed-length
// segments and the total length of those segments. Every other segment is
// variable-length: two digits, then one or more characters of the GS1 AI
// character set, terminated by the group separator or the end of input. A
// single group separator may follow any segment.
//
// Variable data is consumed greedily, so two variable-length segments
// written without a separator between them become a single segment whose
// data contains the second. That's how the format behaves; it's not an error
// this package can detect.
package tokenizer

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/ai"
)

// DefaultGroupSeparator is the ASCII GS control character, which GS1 uses to
// represent FNC1 when transmitting element strings.
const DefaultGroupSeparator = byte(0x1D)

// Kind is the grammar rule that produced a Token.
type Kind int

const (
	Fixed = Kind(iota)
	Variable
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Variable:
		return "variable"
	}
	return "unknown token kind"
}

// Token is a raw segment of an element string. Its lexeme is always the
// segment's first two characters; whether the AI is actually longer than that
// is for the caller to work out.
type Token struct {
	Kind   Kind
	Lexeme string
	Data   string
	// Offset is the index of the lexeme within the tokenized string.
	Offset int
}

// Error reports where and why tokenizing stopped.
type Error struct {
	Reason string
	// Offset is the index within the tokenized string of the segment which
	// couldn't be matched.
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at offset %d)", e.Reason, e.Offset)
}

// Tokenizer holds the fixed-length segment table and the group separator.
// It's not modified after construction, so it's safe for concurrent use.
type Tokenizer struct {
	fixed map[string]int
	gs    byte
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithGroupSeparator replaces the default group separator.
func WithGroupSeparator(gs byte) Option {
	return func(t *Tokenizer) {
		t.gs = gs
	}
}

// New returns a Tokenizer for the given fixed-length table, which maps 2
// character lexemes to the total length of their segments (lexeme + data).
//
// It panics if any entry's total length is less than 3, since such a segment
// couldn't have data.
func New(fixed map[string]int, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		fixed: make(map[string]int, len(fixed)),
		gs:    DefaultGroupSeparator,
	}
	for lexeme, total := range fixed {
		if len(lexeme) != 2 || total < 3 {
			panic(fmt.Sprintf("illegal fixed-length entry %q: %d", lexeme, total))
		}
		t.fixed[lexeme] = total
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GroupSeparator returns the byte this Tokenizer treats as the separator.
func (t *Tokenizer) GroupSeparator() byte {
	return t.gs
}

// Tokenize splits s into one or more segments, or returns an *Error locating
// the first segment that doesn't match the grammar. It does not check whether
// the lexemes are known AIs.
func (t *Tokenizer) Tokenize(s string) ([]Token, error) {
	if s == "" {
		return nil, &Error{Reason: "expected at least one segment, but the input is empty"}
	}

	var tokens []Token
	for pos := 0; pos < len(s); {
		tok, next, err := t.segment(s, pos)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)

		pos = next
		if pos < len(s) && s[pos] == t.gs {
			pos++
		}
	}
	return tokens, nil
}

// segment matches the segment starting at pos and returns it along with the
// index just past it.
func (t *Tokenizer) segment(s string, pos int) (Token, int, error) {
	if pos+2 <= len(s) {
		if total, ok := t.fixed[s[pos:pos+2]]; ok {
			return t.fixedSegment(s, pos, total)
		}
	}
	return t.variableSegment(s, pos)
}

func (t *Tokenizer) fixedSegment(s string, pos, total int) (Token, int, error) {
	lexeme := s[pos : pos+2]
	end := pos + total
	if end > len(s) {
		return Token{}, 0, &Error{
			Reason: fmt.Sprintf("fixed-length segment %q needs %d data digits, "+
				"but only %d characters remain", lexeme, total-2, len(s)-pos-2),
			Offset: pos,
		}
	}
	for i := pos + 2; i < end; i++ {
		if !isDigit(s[i]) {
			return Token{}, 0, &Error{
				Reason: fmt.Sprintf("fixed-length segment %q expects only digits, "+
					"but has %q at offset %d", lexeme, s[i], i),
				Offset: pos,
			}
		}
	}
	return Token{Kind: Fixed, Lexeme: lexeme, Data: s[pos+2 : end], Offset: pos}, end, nil
}

func (t *Tokenizer) variableSegment(s string, pos int) (Token, int, error) {
	if pos+2 > len(s) || !isDigit(s[pos]) || !isDigit(s[pos+1]) {
		return Token{}, 0, &Error{
			Reason: fmt.Sprintf("expected a segment starting with 2 digits, "+
				"but found %q", s[pos:min(pos+2, len(s))]),
			Offset: pos,
		}
	}

	lexeme := s[pos : pos+2]
	end := pos + 2
	for end < len(s) && s[end] != t.gs && ai.IsAllowed(s[end]) {
		end++
	}

	if end == pos+2 {
		return Token{}, 0, &Error{
			Reason: fmt.Sprintf("variable-length segment %q has no data", lexeme),
			Offset: pos,
		}
	}
	if end < len(s) && s[end] != t.gs {
		return Token{}, 0, &Error{
			Reason: fmt.Sprintf("variable-length segment %q has illegal "+
				"character %q at offset %d", lexeme, s[end], end),
			Offset: pos,
		}
	}
	return Token{Kind: Variable, Lexeme: lexeme, Data: s[pos+2 : end], Offset: pos}, end, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
