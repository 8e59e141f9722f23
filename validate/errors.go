/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind is the rule a ValidationError violates.
type ErrorKind int

const (
	InvalidCheckDigit = ErrorKind(iota)
	InvalidDate
	MissingIdentifier
	ForbiddenIdentifier
	ConstraintViolation
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCheckDigit:
		return "InvalidCheckDigit"
	case InvalidDate:
		return "InvalidDate"
	case MissingIdentifier:
		return "MissingIdentifier"
	case ForbiddenIdentifier:
		return "ForbiddenIdentifier"
	case ConstraintViolation:
		return "ConstraintViolation"
	}
	return "Unknown validation error kind: " + strconv.Itoa(int(k))
}

// ValidationError is a single rule violation.
type ValidationError struct {
	Kind       ErrorKind
	Identifier string
	Message    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Identifier, e.Message)
}

// Errors are the violations found by Validate, in the order the rules ran.
type Errors []ValidationError

func (errs Errors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(errs), strings.Join(msgs, "; "))
}

// Kinds returns the kind of each error, in order.
func (errs Errors) Kinds() []ErrorKind {
	kinds := make([]ErrorKind, len(errs))
	for i, e := range errs {
		kinds[i] = e.Kind
	}
	return kinds
}
