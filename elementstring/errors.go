/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies why an element string couldn't be decoded.
type ErrorKind int

const (
	EmptyInput = ErrorKind(iota + 1)
	NonText
	TokenizeFailure
	UnknownIdentifier
	DuplicateIdentifier
	NotEnoughData
	SuffixNotNumeric
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case NonText:
		return "non-text input"
	case TokenizeFailure:
		return "tokenize failure"
	case UnknownIdentifier:
		return "unknown identifier"
	case DuplicateIdentifier:
		return "duplicate identifier"
	case NotEnoughData:
		return "not enough data"
	case SuffixNotNumeric:
		return "suffix not numeric"
	}
	return "unknown decode error kind: " + strconv.Itoa(int(k))
}

// DecodeError describes the first problem found while decoding.
//
// Depending on the Kind, Identifier and Data hold the AI and data at fault,
// and Reason holds the tokenizer's explanation. Offset is always relative to
// the start of the full input, symbology prefix included.
type DecodeError struct {
	Kind       ErrorKind
	Identifier string
	Data       string
	Reason     string
	Offset     int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "cannot decode an empty element string"
	case NonText:
		return fmt.Sprintf("element string is not valid UTF-8 text "+
			"(first invalid byte at offset %d)", e.Offset)
	case TokenizeFailure:
		return fmt.Sprintf("unable to tokenize element string at offset %d: %s",
			e.Offset, e.Reason)
	case UnknownIdentifier:
		return fmt.Sprintf("unknown application identifier %q with data %q "+
			"at offset %d", e.Identifier, e.Data, e.Offset)
	case DuplicateIdentifier:
		return fmt.Sprintf("application identifier %q appears more than once; "+
			"the repeat at offset %d has data %q", e.Identifier, e.Offset, e.Data)
	case NotEnoughData:
		return fmt.Sprintf("application identifier starting %q at offset %d "+
			"needs more characters than its data %q has", e.Identifier, e.Offset, e.Data)
	case SuffixNotNumeric:
		return fmt.Sprintf("application identifier starting %q at offset %d "+
			"must continue with digits, but its data is %q", e.Identifier, e.Offset, e.Data)
	}
	return fmt.Sprintf("%s: %q %q at offset %d", e.Kind, e.Identifier, e.Data, e.Offset)
}
