/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1barcode/checkdigit"
	"github.com/pkg/errors"
)

const (
	SSCCPureURIPrefix  = "urn:epc:id:sscc"
	SSCC96TagURIPrefix = "urn:epc:tag:sscc-96"

	ssccLen = 18
)

var aiSSCC = ai.MustBeCompliant("00")

// SSCC is a Serial Shipping Container Code, carried in AI (00). Like a GTIN,
// it starts with a digit that isn't part of the company prefix, here called
// the extension digit, and ends with a check digit. The remaining digits after
// the company prefix are the serial reference.
type SSCC struct {
	partition     int
	extension     byte
	companyPrefix string
	serialRef     string
}

func (s SSCC) Partition() int {
	return s.partition
}

func (s SSCC) Extension() int {
	return int(s.extension - '0')
}

func (s SSCC) CompanyPrefix() string {
	return s.companyPrefix
}

func (s SSCC) SerialReference() string {
	return s.serialRef
}

// NewSSCC returns the SSCC for an 18 digit code, given the length of its
// company prefix.
func NewSSCC(sscc string, companyPrefixLen int) (SSCC, error) {
	if err := checkCompanyPrefixLen(companyPrefixLen); err != nil {
		return SSCC{}, err
	}
	if len(sscc) != ssccLen {
		return SSCC{}, errors.Errorf("SSCCs must have %d digits, "+
			"but %q has %d characters", ssccLen, sscc, len(sscc))
	}
	if !checkdigit.Valid(sscc) {
		return SSCC{}, errors.Errorf("SSCC %q does not end in a valid "+
			"check digit", sscc)
	}
	return SSCC{
		partition:     partitionOf(companyPrefixLen),
		extension:     sscc[0],
		companyPrefix: sscc[1 : 1+companyPrefixLen],
		serialRef:     sscc[1+companyPrefixLen : ssccLen-1],
	}, nil
}

// SSCCFromElementString returns the SSCC in the (00) AI of an element string.
func SSCCFromElementString(f Fields, companyPrefixLen int) (SSCC, error) {
	sscc, ok := f.Get(aiSSCC)
	if !ok {
		return SSCC{}, errors.Errorf("an SSCC requires AI (%s)", aiSSCC)
	}
	s, err := NewSSCC(sscc, companyPrefixLen)
	return s, errors.Wrap(err, "invalid SSCC")
}

// SSCC returns all 18 digits of the code, check digit included.
func (s SSCC) SSCC() string {
	code, _ := checkdigit.Append(string(s.extension) + s.companyPrefix + s.serialRef)
	return code
}

// URI returns the EPC Pure Identity URI for this SSCC, of the format:
//     urn:epc:id:sscc:CompanyPrefix.ExtensionAndSerialRef
func (s SSCC) URI() string {
	return fmt.Sprintf("%s:%s.%c%s",
		SSCCPureURIPrefix, s.companyPrefix, s.extension, s.serialRef)
}

// TagURI returns the SSCC-96 EPC Tag URI for this SSCC with the given filter.
func (s SSCC) TagURI(filter FilterValue) (string, error) {
	if !filter.IsValid() {
		return "", errors.Errorf("filter must be in {0, 1, 2, 4, 6, 7}, "+
			"but this is: %d", filter)
	}
	return fmt.Sprintf("%s:%d.%s.%c%s",
		SSCC96TagURIPrefix, filter, s.companyPrefix, s.extension, s.serialRef), nil
}
