/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"github.com/pkg/errors"
	"strconv"
)

const (
	MinCompanyPrefixLen = 6
	MaxCompanyPrefixLen = 12
)

// ErrNoEPC is returned by PureURI when an element string lacks the AIs that
// identify any of the supported EPC schemes.
var ErrNoEPC = errors.New("element string does not carry a supported EPC")

// Fields is the view of a decoded element string needed to form an EPC.
// elementstring.ElementString satisfies it.
type Fields interface {
	Get(id string) (string, bool)
}

// PureURI returns the EPC Pure Identity URI for the identifiers in f: an
// SGTIN if it has both (01) and (21), otherwise an SSCC if it has (00). If it
// has neither, the error is ErrNoEPC.
func PureURI(f Fields, companyPrefixLen int) (string, error) {
	_, hasGTIN := f.Get(aiGTIN)
	_, hasSerial := f.Get(aiSerial)
	if hasGTIN && hasSerial {
		s, err := SGTINFromElementString(f, companyPrefixLen)
		if err != nil {
			return "", err
		}
		return s.URI(), nil
	}

	if _, ok := f.Get(aiSSCC); ok {
		s, err := SSCCFromElementString(f, companyPrefixLen)
		if err != nil {
			return "", err
		}
		return s.URI(), nil
	}

	return "", ErrNoEPC
}

func checkCompanyPrefixLen(n int) error {
	if n < MinCompanyPrefixLen || n > MaxCompanyPrefixLen {
		return errors.Errorf("company prefix length must be in [%d,%d], "+
			"but is %d", MinCompanyPrefixLen, MaxCompanyPrefixLen, n)
	}
	return nil
}

// partitionOf returns the EPC partition value for a company prefix length.
func partitionOf(companyPrefixLen int) int {
	return MaxCompanyPrefixLen - companyPrefixLen
}

type FilterValue int

const (
	Other     = FilterValue(0)
	POS       = FilterValue(1)
	FullCase  = FilterValue(2)
	reserved1 = FilterValue(3)
	InnerPack = FilterValue(4)
	reserved2 = FilterValue(5)
	UnitLoad  = FilterValue(6)
	UnitPack  = FilterValue(7)
)

// IsValid returns false if the FilterValue is outside the available range of
// filter values, or if it equals one of the GS1 reserved filter values; other-
// wise it returns true.
func (fv FilterValue) IsValid() bool {
	return fv >= Other && fv <= UnitPack &&
		!(fv == reserved1 || fv == reserved2)
}

func (fv FilterValue) String() string {
	switch fv {
	case Other:
		return "Other"
	case POS:
		return "POS"
	case FullCase:
		return "Full Case"
	case InnerPack:
		return "Inner Pack"
	case UnitLoad:
		return "Unit Load"
	case UnitPack:
		return "Unit Pack"
	case reserved1, reserved2:
		return "Reserved"
	}
	return "Unknown filter value: " + strconv.Itoa(int(fv))
}
