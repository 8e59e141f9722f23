/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package ai holds static knowledge about GS1 Application Identifiers (AIs).
//
// An element string never says how long its AIs are. Instead, the first two
// digits of every AI determine its length (2, 3 or 4 digits), and for a subset
// of those, the total length of the AI and its data. This package answers both
// questions, and decides whether a longer, reconstructed AI was actually
// allocated by GS1. Values follow the GS1 General Specifications (Release 24).
//
// Everything here is read-only after package initialization and is safe to use
// from multiple goroutines.
package ai

import (
	"fmt"
	"strconv"
)

// Range is an inclusive interval of allocated AI values.
type Range struct {
	Min, Max int
}

// Contains returns true if v lies within the range.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

var (
	// length of the AI (not its data) keyed by its first two digits
	declaredLengths = map[string]int{
		"00": 2, "01": 2, "02": 2, "03": 2,
		"10": 2, "11": 2, "12": 2, "13": 2, "15": 2, "16": 2, "17": 2,
		"20": 2, "21": 2, "22": 2, "30": 2, "37": 2,
		"90": 2, "91": 2, "92": 2, "93": 2, "94": 2,
		"95": 2, "96": 2, "97": 2, "98": 2, "99": 2,

		"23": 3, "24": 3, "25": 3, "40": 3, "41": 3, "42": 3, "71": 3,

		"31": 4, "32": 4, "33": 4, "34": 4, "35": 4, "36": 4, "39": 4,
		"43": 4, "70": 4, "72": 4, "80": 4, "81": 4, "82": 4,
	}

	// GS1 "AI prefixes with predefined length": total characters of the AI
	// and its data, which never need a separator. Some prefixes (04, 14, 18,
	// 19) are reserved for future use; they're listed because the length is
	// fixed regardless.
	fixedLengths = map[string]int{
		"00": 20, "01": 16, "02": 16, "03": 16, "04": 18,
		"11": 8, "12": 8, "13": 8, "14": 8, "15": 8,
		"16": 8, "17": 8, "18": 8, "19": 8, "20": 4,
		"31": 10, "32": 10, "33": 10, "34": 10, "35": 10, "36": 10,
		"41": 16,
	}

	// allocated 3 digit AIs, keyed by their first two digits
	threeDigitRanges = map[string]Range{
		"23": {235, 235},
		"24": {240, 243},
		"25": {250, 255},
		"40": {400, 403},
		"41": {410, 417},
		"42": {420, 427},
		"71": {710, 717},
	}

	// allocated 4 digit AIs, keyed by their first three digits; built in init
	fourDigitRanges map[string]Range

	// AIs whose data ends in a GS1 check digit
	checkDigitAIs = map[string]bool{
		"00": true, "01": true, "02": true, "03": true,
		"410": true, "411": true, "412": true, "413": true,
		"414": true, "415": true, "416": true, "417": true,
		"8017": true, "8018": true,
	}

	// AIs whose data is a YYMMDD date
	dateAIs = map[string]bool{
		"11": true, "12": true, "13": true,
		"15": true, "16": true, "17": true,
	}
)

func init() {
	fourDigitRanges = map[string]Range{
		"390": {3900, 3909}, "391": {3910, 3919}, "392": {3920, 3929},
		"393": {3930, 3939}, "394": {3940, 3943}, "395": {3950, 3955},
		"430": {4300, 4309}, "431": {4310, 4319}, "432": {4320, 4326},
		"433": {4330, 4333},
		"700": {7001, 7009}, "701": {7010, 7011}, "702": {7020, 7023},
		"703": {7030, 7039}, "704": {7040, 7041},
		"722": {7220, 7225}, "723": {7230, 7239}, "724": {7240, 7242},
		"725": {7250, 7259},
		"800": {8001, 8009}, "801": {8010, 8019}, "802": {8020, 8026},
		"803": {8030, 8030}, "810": {8100, 8102}, "811": {8110, 8112},
		"820": {8200, 8200},
	}

	// trade measures: the 4th digit is the implied decimal point position
	measures := [][2]int{{310, 316}, {320, 337}, {340, 357}, {360, 369}}
	for _, block := range measures {
		for p := block[0]; p <= block[1]; p++ {
			fourDigitRanges[strconv.Itoa(p)] = Range{p * 10, p*10 + 5}
		}
	}
}

// DeclaredLength returns the length of AIs beginning with the given two
// characters (2, 3 or 4) or false if no AIs begin with them.
//
// The lexeme must be exactly two characters; callers with longer candidates
// should truncate them first.
func DeclaredLength(lexeme string) (int, bool) {
	if len(lexeme) != 2 {
		return 0, false
	}
	n, ok := declaredLengths[lexeme]
	return n, ok
}

// NumericRange returns the allocated range of 3 or 4 digit AIs sharing the
// candidate's prefix (its first 2 digits for 3 digit candidates, its first 3
// for 4 digit ones), or false if none are allocated or the candidate isn't
// 3 or 4 characters long.
func NumericRange(candidate string) (Range, bool) {
	var r Range
	var ok bool
	switch len(candidate) {
	case 3:
		r, ok = threeDigitRanges[candidate[:2]]
	case 4:
		r, ok = fourDigitRanges[candidate[:3]]
	}
	return r, ok
}

// IsCompliant returns true if id is an AI allocated by GS1: either a 2 digit
// AI, or a 3 or 4 digit AI within its family's allocated range.
func IsCompliant(id string) bool {
	switch len(id) {
	case 2:
		n, ok := DeclaredLength(id)
		return ok && n == 2
	case 3, 4:
		if !isDigits(id) {
			return false
		}
		r, ok := NumericRange(id)
		if !ok {
			return false
		}
		v, err := strconv.Atoi(id)
		return err == nil && r.Contains(v)
	}
	return false
}

// FixedLengthTable returns a copy of the predefined length table, mapping the
// first two digits of an AI to the total length of the AI plus its data.
func FixedLengthTable() map[string]int {
	t := make(map[string]int, len(fixedLengths))
	for k, v := range fixedLengths {
		t[k] = v
	}
	return t
}

// RequiresCheckDigit returns true if the data of the AI id ends in a GS1
// modulo-10 check digit.
func RequiresCheckDigit(id string) bool {
	return checkDigitAIs[id]
}

// CarriesDate returns true if the data of the AI id is a YYMMDD date.
func CarriesDate(id string) bool {
	return dateAIs[id]
}

// MustBeCompliant panics if id isn't a compliant AI. It's meant for package
// level tables built from literals.
func MustBeCompliant(id string) string {
	if !IsCompliant(id) {
		panic(fmt.Sprintf("%q is not an allocated GS1 Application Identifier", id))
	}
	return id
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
