/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

// valid characters for GS1 Application Identifier data (GS1 AI encodable
// character set 82); note the group separator is not among them
var cset82 = [128]bool{
	'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true, ')': true,
	'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
	':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '_': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

// IsAllowed returns true if c may appear in AI data.
func IsAllowed(c byte) bool {
	return c < 128 && cset82[c]
}

// IsEncodable returns true if the string contains only characters allowed in
// the GS1 Application Identifier character set.
func IsEncodable(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsAllowed(s[i]) {
			return false
		}
	}
	return true
}
