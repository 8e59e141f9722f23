/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package checkdigit implements the GS1 standard modulo-10 check digit used by
// GTINs, SSCCs, GLNs and the other GS1 keys whose final digit protects the rest.
//
// The digits are weighted alternately by 3 and 1 such that the check digit
// itself always has weight 1; the check digit is the value that brings the
// weighted sum up to the next multiple of 10.
package checkdigit

import (
	"github.com/pkg/errors"
)

// weight returns the multiplier for the digit at pos, where pos is the
// 1-indexed distance from the right end of the full number (check digit
// included): the check digit is at pos 1 and weighs 1, its neighbor weighs 3.
func weight(pos int) int {
	return (((pos + 1) & 1) << 1) | 1
}

// sum returns the weighted sum of the digits of s, treating the rightmost
// digit of s as lying at position d1. It returns false if s has a non-digit.
func sum(s string, d1 int) (total int, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		total += int(c-'0') * weight(d1+len(s)-1-i)
	}
	return total, true
}

// Valid returns true if s is a non-empty string of digits 0-9 whose final
// digit is the correct GS1 check digit for the digits before it.
//
// Equivalently, weighting from the left starts at 3 when len(s) is even and 1
// when it's odd, and the weighted sum must be divisible by 10.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	total, ok := sum(s, 1)
	return ok && total%10 == 0
}

// Calculate returns the check digit that should follow payload.
//
// Since the digit will be appended, the payload's rightmost digit has weight
// 3, which is the opposite polarity of Valid's view of the same digits. An
// empty payload has the check digit 0. Non-digit characters are an error.
func Calculate(payload string) (int, error) {
	total, ok := sum(payload, 2)
	if !ok {
		return 0, errors.Errorf("check digits are only defined for "+
			"strings of digits 0-9, but got %q", payload)
	}
	// mod 10 additive inverse
	return (10 - (total % 10)) % 10, nil
}

// Append returns payload with its check digit appended.
func Append(payload string) (string, error) {
	d, err := Calculate(payload)
	if err != nil {
		return "", err
	}
	return payload + string(rune('0'+d)), nil
}
