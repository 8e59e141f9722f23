/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"strconv"
	"testing"
)

func TestDeclaredLength(t *testing.T) {
	w := expect.WrapT(t)
	for lexeme, expected := range map[string]int{
		"00": 2, "01": 2, "10": 2, "21": 2, "99": 2,
		"24": 3, "41": 3, "71": 3,
		"31": 4, "39": 4, "70": 4, "80": 4,
	} {
		n, ok := DeclaredLength(lexeme)
		w.As(lexeme).ShouldBeTrue(ok)
		w.As(lexeme).ShouldBeEqual(n, expected)
	}

	for _, lexeme := range []string{"04", "14", "18", "50", "89", "", "0", "010", "ab"} {
		_, ok := DeclaredLength(lexeme)
		w.As(lexeme).ShouldBeFalse(ok)
	}
}

func TestNumericRange(t *testing.T) {
	w := expect.WrapT(t)

	r, ok := NumericRange("3109")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(r, Range{3100, 3105})

	r, ok = NumericRange("414")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(r, Range{410, 417})

	r, ok = NumericRange("7003")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(r, Range{7001, 7009})

	for _, candidate := range []string{"01", "310", "3", "31000", "5000", "999"} {
		_, ok := NumericRange(candidate)
		w.As(candidate).ShouldBeFalse(ok)
	}
}

func TestIsCompliant(t *testing.T) {
	type aiTest struct {
		id        string
		compliant bool
	}
	pass := func(id string) aiTest { return aiTest{id: id, compliant: true} }
	fail := func(id string) aiTest { return aiTest{id: id} }

	for i, tt := range []aiTest{
		pass("00"), pass("01"), pass("17"), pass("21"), pass("90"),
		pass("235"), pass("240"), pass("400"), pass("414"), pass("417"),
		pass("3100"), pass("3105"), pass("3203"), pass("3375"), pass("3695"),
		pass("3922"), pass("4326"), pass("7003"), pass("7240"), pass("8017"),
		pass("8200"),

		fail(""), fail("0"), fail("04"), fail("31"), fail("41"),
		fail("236"), fail("418"), fail("310"),
		fail("3106"), fail("3109"), fail("3380"), fail("4327"), fail("7000"),
		fail("8031"), fail("31a2"), fail("00000"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.id), func(t *testing.T) {
			expect.WrapT(t).As(tt.id).ShouldBeEqual(IsCompliant(tt.id), tt.compliant)
		})
	}
}

func TestRangesAgreeWithDeclaredLengths(t *testing.T) {
	// every allocated range must belong to a lexeme declared with its length
	w := expect.WrapT(t)
	for prefix, r := range threeDigitRanges {
		n, ok := DeclaredLength(prefix)
		w.As(prefix).ShouldBeTrue(ok)
		w.As(prefix).ShouldBeEqual(n, 3)
		w.As(prefix).ShouldBeEqual(strconv.Itoa(r.Min)[:2], prefix)
		w.As(prefix).ShouldBeEqual(strconv.Itoa(r.Max)[:2], prefix)
	}
	for prefix, r := range fourDigitRanges {
		n, ok := DeclaredLength(prefix[:2])
		w.As(prefix).ShouldBeTrue(ok)
		w.As(prefix).ShouldBeEqual(n, 4)
		w.As(prefix).ShouldBeEqual(strconv.Itoa(r.Min)[:3], prefix)
		w.As(prefix).ShouldBeEqual(strconv.Itoa(r.Max)[:3], prefix)
	}
}

func TestFixedLengthTable(t *testing.T) {
	w := expect.WrapT(t)
	table := FixedLengthTable()
	w.ShouldBeEqual(table["01"], 16)
	w.ShouldBeEqual(table["31"], 10)
	w.ShouldBeEqual(table["41"], 16)

	_, ok := table["10"]
	w.ShouldBeFalse(ok)

	// callers get their own copy
	table["01"] = 3
	w.ShouldBeEqual(FixedLengthTable()["01"], 16)

	// fixed data must at least cover the suffix of a reconstructed AI
	for lexeme, total := range table {
		if n, ok := DeclaredLength(lexeme); ok {
			w.As(lexeme).ShouldBeTrue(total > n)
		}
	}
}

func TestCheckDigitAndDateAIs(t *testing.T) {
	w := expect.WrapT(t)
	for _, id := range []string{"00", "01", "02", "03", "414", "8017"} {
		w.As(id).ShouldBeTrue(RequiresCheckDigit(id))
		w.As(id).ShouldBeTrue(IsCompliant(id))
	}
	w.ShouldBeFalse(RequiresCheckDigit("10"))
	w.ShouldBeFalse(RequiresCheckDigit("41"))

	for _, id := range []string{"11", "12", "13", "15", "16", "17"} {
		w.As(id).ShouldBeTrue(CarriesDate(id))
		w.As(id).ShouldBeTrue(IsCompliant(id))
	}
	w.ShouldBeFalse(CarriesDate("10"))
}

func TestMustBeCompliant(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(MustBeCompliant("3102"), "3102")

	defer func() {
		w.ShouldBeTrue(recover() != nil)
	}()
	MustBeCompliant("3109")
}

func TestIsEncodable(t *testing.T) {
	w := expect.WrapT(t)
	for _, s := range []string{
		"", "ABC123", "abc", "hello_world!", `"%&'()*+,-./:;<=>?`,
	} {
		w.As(s).ShouldBeTrue(IsEncodable(s))
	}
	for _, s := range []string{
		" ", "a b", "#", "\x1d", "\x00", "é", "~", "[", "@",
	} {
		w.As(s).ShouldBeFalse(IsEncodable(s))
	}
}
