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
	"strconv"
	"strings"
)

const (
	SGTINPureURIPrefix   = "urn:epc:id:sgtin"
	SGTIN96TagURIPrefix  = "urn:epc:tag:sgtin-96"
	SGTIN198TagURIPrefix = "urn:epc:tag:sgtin-198"

	gtinLen         = 14
	maxSerialLength = 20
)

var (
	aiGTIN   = ai.MustBeCompliant("01")
	aiSerial = ai.MustBeCompliant("21")
)

// SGTIN does not directly correspond to a GS1 identifier, but instead is a
// combination of a GS1 GTIN (global trade identification number) and a serial
// "number" to identify the specific instance of that GTIN. In an element
// string, they're carried by AIs (01) and (21).
//
// Although the serial value is frequently referenced as a serial "number", the
// GS1 General Specifications permits _alphanumeric_ serial numbers, not just
// the digits 0-9. Moreover, it specifies that those serial *must* be treated
// as a string, wherein two serials are distinct if their string comparisons are
// distinct, including leading '0's. In other words, '0', '07', '007' are all
// valid, distinct serial numbers. On the other hand, the EPC Tag Standard
// restricts some serial number depending on the encoding. Specifically, SGTIN-96
// only permits serial numbers consisting of digits '0'-'9', and forbids serials
// with leading '0's, except for a single '0'. SGTIN-198 has no such restriction.
//
// The element string doesn't say where the GS1 Company Prefix ends and the
// item reference begins, so its length must be supplied from elsewhere, usually
// the GS1 Company Prefix list or application configuration.
type SGTIN struct {
	partition     int
	indicator     byte
	companyPrefix string
	itemRef       string
	serial        string
}

func (s SGTIN) Serial() string {
	return s.serial
}

// Partition returns the EPC partition value, which is 12 minus the length of
// the company prefix.
func (s SGTIN) Partition() int {
	return s.partition
}

func (s SGTIN) Indicator() int {
	return int(s.indicator - '0')
}

func (s SGTIN) CompanyPrefix() string {
	return s.companyPrefix
}

func (s SGTIN) ItemReference() string {
	return s.itemRef
}

// NewSGTIN returns the SGTIN for a GTIN-14 and serial, given the length of the
// GTIN's company prefix. It returns an error if the GTIN isn't 14 digits with
// a valid check digit, the company prefix length isn't in [6,12], or the serial
// is empty, longer than 20 characters, or has characters outside of the GS1 AI
// encodable character set 82.
func NewSGTIN(gtin, serial string, companyPrefixLen int) (SGTIN, error) {
	if err := checkCompanyPrefixLen(companyPrefixLen); err != nil {
		return SGTIN{}, err
	}
	if len(gtin) != gtinLen {
		return SGTIN{}, errors.Errorf("GTINs must have %d digits, "+
			"but %q has %d characters", gtinLen, gtin, len(gtin))
	}
	if !checkdigit.Valid(gtin) {
		return SGTIN{}, errors.Errorf("GTIN %q does not end in a valid "+
			"check digit", gtin)
	}
	if err := checkSerial(serial); err != nil {
		return SGTIN{}, err
	}

	itemEnd := gtinLen - 1
	return SGTIN{
		partition:     partitionOf(companyPrefixLen),
		indicator:     gtin[0],
		companyPrefix: gtin[1 : 1+companyPrefixLen],
		itemRef:       gtin[1+companyPrefixLen : itemEnd],
		serial:        serial,
	}, nil
}

// SGTINFromElementString returns the SGTIN formed by the (01) GTIN and (21)
// serial of a decoded element string.
func SGTINFromElementString(f Fields, companyPrefixLen int) (SGTIN, error) {
	gtin, ok := f.Get(aiGTIN)
	if !ok {
		return SGTIN{}, errors.Errorf("an SGTIN requires AI (%s)", aiGTIN)
	}
	serial, ok := f.Get(aiSerial)
	if !ok {
		return SGTIN{}, errors.Errorf("an SGTIN requires AI (%s)", aiSerial)
	}
	s, err := NewSGTIN(gtin, serial, companyPrefixLen)
	return s, errors.Wrap(err, "invalid SGTIN")
}

// ParseSGTINURI parses an SGTIN Pure Identity URI, of the format:
//     urn:epc:id:sgtin:CompanyPrefix.IndicatorAndItemRef.SerialNumber
func ParseSGTINURI(uri string) (SGTIN, error) {
	if !strings.HasPrefix(uri, SGTINPureURIPrefix+":") {
		return SGTIN{}, errors.Errorf("SGTIN URIs start with %q, but got %q",
			SGTINPureURIPrefix+":", uri)
	}
	parts := strings.SplitN(uri[len(SGTINPureURIPrefix)+1:], ".", 3)
	if len(parts) != 3 {
		return SGTIN{}, errors.Errorf("SGTIN URIs have 3 dot-separated "+
			"parts, but %q has %d", uri, len(parts))
	}
	prefix, iir := parts[0], parts[1]
	if len(prefix)+len(iir) != gtinLen-1 || iir == "" {
		return SGTIN{}, errors.Errorf("the company prefix, indicator and item "+
			"reference of an SGTIN URI must have %d digits, but %q has %d",
			gtinLen-1, uri, len(prefix)+len(iir))
	}
	gtin, err := checkdigit.Append(iir[:1] + prefix + iir[1:])
	if err != nil {
		return SGTIN{}, errors.Wrapf(err, "invalid SGTIN URI %q", uri)
	}
	s, err := NewSGTIN(gtin, UnescapeGS1(parts[2]), len(prefix))
	return s, errors.Wrapf(err, "invalid SGTIN URI %q", uri)
}

// GTIN returns the GTIN-14 of this SGTIN, check digit included.
func (s SGTIN) GTIN() string {
	// the digits were validated on construction, so this can't fail
	gtin, _ := checkdigit.Append(string(s.indicator) + s.companyPrefix + s.itemRef)
	return gtin
}

// ElementString returns the element string, without symbology identifier,
// that carries this SGTIN.
func (s SGTIN) ElementString() string {
	return aiGTIN + s.GTIN() + aiSerial + s.serial
}

// URI returns the EPC Pure Identity URI for this SGTIN, of the format:
//     urn:epc:id:sgtin:CompanyPrefix.ItemRefAndIndicator.SerialNumber
// The serial number is escaped, if necessary, to conform with GS1 specs.
func (s SGTIN) URI() string {
	return fmt.Sprintf("%s:%s.%c%s.%s",
		SGTINPureURIPrefix,
		s.companyPrefix,
		s.indicator, s.itemRef,
		EscapeGS1(s.serial))
}

// TagURI returns the EPC Tag URI for this SGTIN with the given filter. It uses
// the SGTIN-96 scheme if the serial permits it, and SGTIN-198 otherwise.
func (s SGTIN) TagURI(filter FilterValue) (string, error) {
	if !filter.IsValid() {
		return "", errors.Errorf("filter must be in {0, 1, 2, 4, 6, 7}, "+
			"but this is: %d", filter)
	}
	scheme := SGTIN96TagURIPrefix
	if s.CanSGTIN96() != nil {
		scheme = SGTIN198TagURIPrefix
	}
	return fmt.Sprintf("%s:%d.%s.%c%s.%s",
		scheme, filter,
		s.companyPrefix,
		s.indicator, s.itemRef,
		EscapeGS1(s.serial)), nil
}

// CanSGTIN96 returns nil if the SGTIN's serial may be encoded as SGTIN-96.
//
// The EPC Tag Data Standard specifies that SGTIN-96 encoded serial numbers must
// consist only of decimal values (0-9) less than 2^(38), with no leading '0's,
// except for a single '0'.
func (s SGTIN) CanSGTIN96() error {
	if s.serial == "" {
		return errors.New("serial is empty")
	}
	_, err := strconv.ParseUint(s.serial, 10, 38)
	if err != nil {
		return errors.Wrap(err, "SGTIN96 serial numbers must be numeric")
	}
	if s.serial[0] == '0' && s.serial != "0" {
		return errors.New("serials cannot have leading '0's, " +
			"except for the unique value '0'")
	}
	return nil
}

func checkSerial(serial string) error {
	if serial == "" {
		return errors.New("serial is empty")
	}
	if len(serial) > maxSerialLength {
		return errors.Errorf("SGTIN serial numbers are limited to at most "+
			"%d characters, but this serial has %d characters",
			maxSerialLength, len(serial))
	}
	if !ai.IsEncodable(serial) {
		return errors.Errorf("SGTIN serial numbers may only contain ASCII "+
			"characters in the GS1 AI Encodable Character Set 82, but this "+
			"serial is %q", serial)
	}
	return nil
}
