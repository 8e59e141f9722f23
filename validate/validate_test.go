/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package validate

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/elementstring"
	"github.com/pkg/errors"
	"sort"
	"strings"
	"testing"
	"time"
)

// fields is a minimal Fields for tests that don't need a real decode.
type fields map[string]string

func (f fields) Get(id string) (string, bool) {
	data, ok := f[id]
	return data, ok
}

func (f fields) Identifiers() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var refTime = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func isUpper(s string) bool {
	return s == strings.ToUpper(s)
}

func TestValidateAt(t *testing.T) {
	type valTest struct {
		name  string
		f     fields
		cfg   Config
		kinds []ErrorKind
		ids   []string
	}

	pass := func(n string, f fields, cfg Config) valTest {
		return valTest{name: n, f: f, cfg: cfg}
	}
	fail := func(n string, f fields, cfg Config, kinds []ErrorKind, ids ...string) valTest {
		return valTest{name: n, f: f, cfg: cfg, kinds: kinds, ids: ids}
	}
	kinds := func(k ...ErrorKind) []ErrorKind { return k }

	empty := Config{}

	for i, tt := range []valTest{
		pass("nothing to check", fields{}, empty),
		pass("good GTIN", fields{"01": "09876543210982"}, empty),
		pass("good SSCC", fields{"00": "376104250021234569"}, empty),
		pass("good GLN", fields{"414": "9506000134352"}, empty),
		pass("good date", fields{"17": "280229"}, empty),
		pass("no check digit on lot", fields{"10": "09876543210987"}, empty),
		pass("required present", fields{"01": "09876543210982"},
			NewBuilder().Require("01").Build()),
		pass("forbidden absent", fields{"01": "09876543210982"},
			NewBuilder().Forbid("21").Build()),
		pass("constraint satisfied", fields{"10": "ABC"},
			NewBuilder().Constrain("10", isUpper).Build()),
		pass("constraint on absent AI", fields{"21": "x"},
			NewBuilder().Constrain("10", isUpper).Build()),

		fail("corrupted check digit", fields{"01": "09876543210987"}, empty,
			kinds(InvalidCheckDigit), "01"),
		fail("non-numeric checked data", fields{"02": "0987654321098X"}, empty,
			kinds(InvalidCheckDigit), "02"),
		fail("bad month", fields{"11": "251301"}, empty,
			kinds(InvalidDate), "11"),
		fail("zero day is strict", fields{"15": "250200"}, empty,
			kinds(InvalidDate), "15"),
		fail("not a leap year", fields{"17": "270229"}, empty,
			kinds(InvalidDate), "17"),
		fail("missing and forbidden", fields{"01": "09876543210982", "21": "S"},
			NewBuilder().Require("10").Forbid("21").Build(),
			kinds(MissingIdentifier, ForbiddenIdentifier), "10", "21"),
		fail("constraint violated", fields{"10": "abc"},
			NewBuilder().Constrain("10", isUpper).Build(),
			kinds(ConstraintViolation), "10"),
		fail("every stage", fields{"01": "09876543210987", "17": "251301", "10": "abc", "90": "x"},
			NewBuilder().Require("21").Forbid("90").Constrain("10", isUpper).Build(),
			kinds(MissingIdentifier, ForbiddenIdentifier, InvalidCheckDigit, InvalidDate, ConstraintViolation),
			"21", "90", "01", "17", "10"),
		fail("checks in identifier order", fields{"02": "1", "01": "2", "00": "3"}, empty,
			kinds(InvalidCheckDigit, InvalidCheckDigit, InvalidCheckDigit), "00", "01", "02"),
		fail("required in configured order", fields{},
			NewBuilder().Require("21", "10", "01").Build(),
			kinds(MissingIdentifier, MissingIdentifier, MissingIdentifier), "21", "10", "01"),

		fail("fail fast stops after required", fields{"01": "09876543210987", "21": "S"},
			NewBuilder().FailFast(true).Require("10", "17").Forbid("21").Build(),
			kinds(MissingIdentifier, MissingIdentifier), "10", "17"),
		fail("fail fast runs until a stage fails", fields{"01": "09876543210987", "17": "251301"},
			NewBuilder().FailFast(true).Require("01").Build(),
			kinds(InvalidCheckDigit), "01"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			err := ValidateAt(tt.f, tt.cfg, refTime)
			if tt.kinds == nil {
				w.ShouldSucceed(err)
				return
			}

			w.StopOnMismatch().ShouldFail(err)
			w.Logf("%v", err)
			errs, ok := err.(Errors)
			w.StopOnMismatch().ShouldBeTrue(ok)
			w.ShouldBeEqual(errs.Kinds(), tt.kinds)
			w.StopOnMismatch().ShouldHaveLength(errs, len(tt.ids))
			for j, e := range errs {
				w.ShouldBeEqual(e.Identifier, tt.ids[j])
				w.ShouldNotBeEmptyStr(e.Message)
				w.ShouldContainStr(e.Error(), e.Kind.String())
			}
		})
	}
}

func TestValidate_decoded(t *testing.T) {
	w := expect.WrapT(t)

	// decoding never checks check digits
	es := w.ShouldHaveResult(elementstring.Decode("0109876543210987")).(elementstring.ElementString)
	err := Validate(es, Config{})
	w.StopOnMismatch().ShouldFail(err)
	errs := errors.Cause(err).(Errors)
	w.ShouldBeEqual(errs.Kinds(), []ErrorKind{InvalidCheckDigit})

	es = w.ShouldHaveResult(elementstring.Decode(
		"]d2" + "0109876543210982" + "10LOT" + "\x1d" + "21SER")).(elementstring.ElementString)
	cfg := NewBuilder().Require("01", "21").Forbid("00").Build()
	w.ShouldSucceed(Validate(es, cfg))
}

func TestValidate_configIsReusable(t *testing.T) {
	w := expect.WrapT(t)
	cfg := NewBuilder().Require("01").Build()
	good := fields{"01": "09876543210982"}
	bad := fields{"10": "X"}
	for i := 0; i < 3; i++ {
		w.ShouldSucceed(ValidateAt(good, cfg, refTime))
		w.ShouldFail(ValidateAt(bad, cfg, refTime))
	}
}

func TestErrors_Error(t *testing.T) {
	w := expect.WrapT(t)
	one := Errors{{Kind: MissingIdentifier, Identifier: "10", Message: "missing"}}
	w.ShouldBeEqual(one.Error(), "MissingIdentifier (10): missing")

	two := append(one, ValidationError{Kind: InvalidDate, Identifier: "17", Message: "bad"})
	w.ShouldContainStr(two.Error(), "2 validation errors")
	w.ShouldContainStr(two.Error(), "InvalidDate (17): bad")

	w.ShouldContainStr(ErrorKind(99).String(), "99")
}
