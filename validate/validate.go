/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package validate checks decoded GS1 element strings against business rules.
//
// Validation runs five stages, in order:
//  1. every required AI is present;
//  2. no forbidden AI is present;
//  3. every AI that ends in a check digit has a correct one;
//  4. every AI that carries a YYMMDD date has a real one;
//  5. every present AI with a constraint satisfies it.
//
// By default, all stages run and every violation is reported. With fail-fast
// enabled, no stage runs after one that produced an error.
package validate

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/gs1date"
	"time"
)

// Fields is the view of a decoded element string that validation needs.
// elementstring.ElementString satisfies it.
type Fields interface {
	Get(id string) (string, bool)
	// Identifiers must return the AIs in a deterministic order.
	Identifiers() []string
}

type stage func(f Fields, cfg Config, now time.Time, errs Errors) Errors

var stages = []stage{
	checkRequired,
	checkForbidden,
	checkCheckDigits,
	checkDates,
	checkConstraints,
}

// Validate applies the Config's rules to f. It returns nil if f satisfies
// all of them, or else the violations as Errors.
func Validate(f Fields, cfg Config) error {
	return ValidateAt(f, cfg, time.Now())
}

// ValidateAt works like Validate, but resolves the century of dates relative
// to now instead of the current time.
func ValidateAt(f Fields, cfg Config, now time.Time) error {
	var errs Errors
	for _, run := range stages {
		if cfg.failFast && len(errs) > 0 {
			break
		}
		errs = run(f, cfg, now, errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkRequired(f Fields, cfg Config, _ time.Time, errs Errors) Errors {
	for _, id := range cfg.required {
		if _, ok := f.Get(id); !ok {
			errs = append(errs, ValidationError{
				Kind:       MissingIdentifier,
				Identifier: id,
				Message:    "required AI (" + id + ") is missing",
			})
		}
	}
	return errs
}

func checkForbidden(f Fields, cfg Config, _ time.Time, errs Errors) Errors {
	for _, id := range cfg.forbidden {
		if _, ok := f.Get(id); ok {
			errs = append(errs, ValidationError{
				Kind:       ForbiddenIdentifier,
				Identifier: id,
				Message:    "AI (" + id + ") is not permitted",
			})
		}
	}
	return errs
}

func checkCheckDigits(f Fields, _ Config, _ time.Time, errs Errors) Errors {
	for _, id := range f.Identifiers() {
		if !ai.RequiresCheckDigit(id) {
			continue
		}
		data, _ := f.Get(id)
		if !checkdigit.Valid(data) {
			errs = append(errs, ValidationError{
				Kind:       InvalidCheckDigit,
				Identifier: id,
				Message:    "data " + quote(data) + " does not end in a valid check digit",
			})
		}
	}
	return errs
}

func checkDates(f Fields, _ Config, now time.Time, errs Errors) Errors {
	for _, id := range f.Identifiers() {
		if !ai.CarriesDate(id) {
			continue
		}
		data, _ := f.Get(id)
		if _, err := gs1date.Parse(gs1date.Strict, data, now); err != nil {
			errs = append(errs, ValidationError{
				Kind:       InvalidDate,
				Identifier: id,
				Message:    err.Error(),
			})
		}
	}
	return errs
}

func checkConstraints(f Fields, cfg Config, _ time.Time, errs Errors) Errors {
	for _, con := range cfg.constraints {
		data, ok := f.Get(con.id)
		if !ok {
			continue
		}
		if !con.pred(data) {
			errs = append(errs, ValidationError{
				Kind:       ConstraintViolation,
				Identifier: con.id,
				Message:    "data " + quote(data) + " does not satisfy the constraint",
			})
		}
	}
	return errs
}

func quote(s string) string {
	return "\"" + s + "\""
}
