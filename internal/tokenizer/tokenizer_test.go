/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package tokenizer

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/ai"
	"github.com/pkg/errors"
	"testing"
)

const gs = "\x1d"

func TestTokenize(t *testing.T) {
	type tokTest struct {
		name, input string
		tokens      []Token
		badOffset   int
		bad         bool
	}

	fixed := func(lexeme, data string, offset int) Token {
		return Token{Kind: Fixed, Lexeme: lexeme, Data: data, Offset: offset}
	}
	variable := func(lexeme, data string, offset int) Token {
		return Token{Kind: Variable, Lexeme: lexeme, Data: data, Offset: offset}
	}
	pass := func(n, in string, tokens ...Token) tokTest {
		return tokTest{name: n, input: in, tokens: tokens}
	}
	fail := func(n, in string, offset int) tokTest {
		return tokTest{name: n, input: in, bad: true, badOffset: offset}
	}

	for i, tt := range []tokTest{
		pass("GTIN", "0109876543210987",
			fixed("01", "09876543210987", 0)),
		pass("net weight", "3102000123",
			fixed("31", "02000123", 0)),
		pass("fixed then fixed", "010987654321098217250101",
			fixed("01", "09876543210982", 0), fixed("17", "250101", 16)),
		pass("fixed then variable", "0109876543210982"+"10ABC-123",
			fixed("01", "09876543210982", 0), variable("10", "ABC-123", 16)),
		pass("separator after fixed", "0109876543210982"+gs+"21XYZ",
			fixed("01", "09876543210982", 0), variable("21", "XYZ", 17)),
		pass("variable then fixed", "10LOT1"+gs+"17250101",
			variable("10", "LOT1", 0), fixed("17", "250101", 7)),
		pass("two variables", "10LOT1"+gs+"21SER",
			variable("10", "LOT1", 0), variable("21", "SER", 7)),
		pass("trailing separator", "10LOT1"+gs,
			variable("10", "LOT1", 0)),
		pass("unknown lexeme accepted", "55whatever",
			variable("55", "whatever", 0)),
		pass("reconstructed lexeme", "400PO-1",
			variable("40", "0PO-1", 0)),
		pass("punctuation", `91!"%&'()*+,-./:;<=>?_`,
			variable("91", `!"%&'()*+,-./:;<=>?_`, 0)),
		// without a separator the first variable segment swallows the second
		pass("missing separator merges", "10LOT121SER",
			variable("10", "LOT121SER", 0)),
		pass("fixed lookalike inside variable", "21SER0109876543210982",
			variable("21", "SER0109876543210982", 0)),

		fail("empty", "", 0),
		fail("short fixed", "01098765", 0),
		fail("non-digit fixed", "010987654321098A", 0),
		fail("non-digit fixed after segment", "10LOT"+gs+"17ABCDEF", 6),
		fail("no data", "10", 0),
		fail("no data before separator", "10"+gs+"21SER", 0),
		fail("single character", "1", 0),
		fail("leading separator", gs+"10LOT", 0),
		fail("double separator", "10LOT"+gs+gs+"21SER", 6),
		fail("letter lexeme", "A1LOT", 0),
		fail("illegal character", "10LOT 1", 0),
		fail("illegal character later", "0109876543210982"+"10LOT 1", 16),
		fail("dangling digit", "0109876543210982"+"1", 16),
		fail("non-ascii", "10LÖT", 0),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			tok := New(ai.FixedLengthTable())
			tokens, err := tok.Tokenize(tt.input)
			if tt.bad {
				w.As(tt.input).ShouldFail(err)
				w.Logf("%+v", err)
				tErr, ok := errors.Cause(err).(*Error)
				w.StopOnMismatch().ShouldBeTrue(ok)
				w.ShouldBeEqual(tErr.Offset, tt.badOffset)
				w.ShouldNotBeEmptyStr(tErr.Reason)
				return
			}
			w.As(tt.input).ShouldSucceed(err)
			w.ShouldBeEqual(tokens, tt.tokens)
		})
	}
}

func TestWithGroupSeparator(t *testing.T) {
	w := expect.WrapT(t)
	tok := New(ai.FixedLengthTable(), WithGroupSeparator('|'))
	w.ShouldBeEqual(tok.GroupSeparator(), byte('|'))

	tokens := w.ShouldHaveResult(tok.Tokenize("10LOT|21SER")).([]Token)
	w.ShouldHaveLength(tokens, 2)
	w.ShouldBeEqual(tokens[1].Data, "SER")

	// the default separator is now just an illegal character
	_, err := tok.Tokenize("10LOT" + gs + "21SER")
	w.ShouldFail(err)
}

func TestNew_rejectsBadTable(t *testing.T) {
	w := expect.WrapT(t)
	defer func() {
		w.ShouldBeTrue(recover() != nil)
	}()
	New(map[string]int{"01": 2})
}

func TestTokenize_doesNotShareTable(t *testing.T) {
	w := expect.WrapT(t)
	table := map[string]int{"01": 16}
	tok := New(table)
	delete(table, "01")

	tokens := w.ShouldHaveResult(tok.Tokenize("0109876543210982")).([]Token)
	w.ShouldBeEqual(tokens[0].Kind, Fixed)
}
