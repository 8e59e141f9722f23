/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/internal/tokenizer"
	"github.com/pkg/errors"
	"unicode/utf8"
)

// Parser decodes element strings. A Parser is immutable and safe for
// concurrent use.
type Parser struct {
	tok *tokenizer.Tokenizer
}

// Option configures a Parser.
type Option func(*parserConfig)

type parserConfig struct {
	gs byte
}

// WithGroupSeparator sets the byte used to terminate variable-length data.
// By default, it's the ASCII GS character, 0x1D.
func WithGroupSeparator(gs byte) Option {
	return func(c *parserConfig) {
		c.gs = gs
	}
}

// NewParser returns a Parser using the GS1 predefined length table.
func NewParser(opts ...Option) *Parser {
	c := parserConfig{gs: tokenizer.DefaultGroupSeparator}
	for _, opt := range opts {
		opt(&c)
	}
	return &Parser{
		tok: tokenizer.New(ai.FixedLengthTable(), tokenizer.WithGroupSeparator(c.gs)),
	}
}

// GroupSeparator returns the byte the Parser treats as the group separator.
func (p *Parser) GroupSeparator() byte {
	return p.tok.GroupSeparator()
}

var defaultParser = NewParser()

// Decode decodes s using the default Parser.
func Decode(s string) (ElementString, error) {
	return defaultParser.Decode(s)
}

// DecodeBytes decodes b using the default Parser.
func DecodeBytes(b []byte) (ElementString, error) {
	return defaultParser.Decode(string(b))
}

// Decode splits s into its Application Identifiers and their data.
//
// s may begin with a symbology identifier, such as "]d2"; if it does, it's
// stripped and recorded. Every AI must be allocated by GS1 and may appear only
// once. Decoding stops at the first problem and returns a *DecodeError
// describing it.
//
// Decode doesn't check the data itself; check digits, dates and any business
// rules are the job of the validate package.
func (p *Parser) Decode(s string) (ElementString, error) {
	if s == "" {
		return ElementString{}, &DecodeError{Kind: EmptyInput}
	}
	if !utf8.ValidString(s) {
		return ElementString{}, &DecodeError{Kind: NonText, Offset: firstInvalidByte(s)}
	}

	prefix, kind := detectSymbology(s)
	tokens, err := p.tok.Tokenize(s[len(prefix):])
	if err != nil {
		var tErr *tokenizer.Error
		if !errors.As(err, &tErr) {
			return ElementString{}, errors.Wrap(err, "unable to tokenize element string")
		}
		return ElementString{}, &DecodeError{
			Kind:   TokenizeFailure,
			Reason: tErr.Reason,
			Offset: tErr.Offset + len(prefix),
		}
	}

	fields := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		id, data, err := canonicalize(tok)
		if err != nil {
			err.Offset += len(prefix)
			return ElementString{}, err
		}
		if _, dup := fields[id]; dup {
			return ElementString{}, &DecodeError{
				Kind:       DuplicateIdentifier,
				Identifier: id,
				Data:       data,
				Offset:     tok.Offset + len(prefix),
			}
		}
		fields[id] = data
	}

	return ElementString{
		raw:    s,
		prefix: prefix,
		kind:   kind,
		fields: fields,
	}, nil
}

// canonicalize returns the true AI of the token and the data that remains
// once any AI suffix is taken from the front of it.
func canonicalize(tok tokenizer.Token) (string, string, *DecodeError) {
	length, ok := ai.DeclaredLength(tok.Lexeme)
	if !ok {
		return "", "", &DecodeError{
			Kind:       UnknownIdentifier,
			Identifier: tok.Lexeme,
			Data:       tok.Data,
			Offset:     tok.Offset,
		}
	}
	if length == 2 {
		return tok.Lexeme, tok.Data, nil
	}
	return reconstruct(tok, length)
}

// reconstruct extends the token's lexeme to a length of 3 or 4 using digits
// from the front of its data, and checks that the result was allocated.
func reconstruct(tok tokenizer.Token, length int) (string, string, *DecodeError) {
	if length != 3 && length != 4 {
		panic(fmt.Sprintf("cannot reconstruct an AI of length %d", length))
	}

	n := length - 2
	if len(tok.Data) < n {
		return "", "", &DecodeError{
			Kind:       NotEnoughData,
			Identifier: tok.Lexeme,
			Data:       tok.Data,
			Offset:     tok.Offset,
		}
	}

	suffix := tok.Data[:n]
	for i := 0; i < n; i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return "", "", &DecodeError{
				Kind:       SuffixNotNumeric,
				Identifier: tok.Lexeme,
				Data:       tok.Data,
				Offset:     tok.Offset,
			}
		}
	}

	id, data := tok.Lexeme+suffix, tok.Data[n:]
	if !ai.IsCompliant(id) {
		return "", "", &DecodeError{
			Kind:       UnknownIdentifier,
			Identifier: id,
			Data:       data,
			Offset:     tok.Offset,
		}
	}
	return id, data, nil
}

func firstInvalidByte(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(s)
}
