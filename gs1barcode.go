/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1barcode

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/elementstring"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/validate"
)

// Check decodes an element string and validates it against cfg.
//
// If decoding fails, the error is the *elementstring.DecodeError and the
// returned ElementString is the zero value. Otherwise, the ElementString is
// always returned, and the error, if any, is a validate.Errors.
func Check(input string, cfg validate.Config) (elementstring.ElementString, error) {
	return CheckWith(elementstring.NewParser(), input, cfg)
}

// CheckWith works like Check, but decodes with the given Parser.
func CheckWith(p *elementstring.Parser, input string, cfg validate.Config) (elementstring.ElementString, error) {
	es, err := p.Decode(input)
	if err != nil {
		return elementstring.ElementString{}, err
	}
	return es, validate.Validate(es, cfg)
}
