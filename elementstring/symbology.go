/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"sort"
	"strconv"
	"strings"
)

// Kind is the type of barcode that carried an element string, as announced
// by its symbology identifier.
type Kind int

const (
	Unknown = Kind(iota)
	DataMatrix
	QRCode
	LinearDataBar
	Code128Based
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case DataMatrix:
		return "GS1 DataMatrix"
	case QRCode:
		return "GS1 QR Code"
	case LinearDataBar:
		return "GS1 DataBar"
	case Code128Based:
		return "GS1-128"
	}
	return "Unknown barcode kind: " + strconv.Itoa(int(k))
}

// Symbology pairs a symbology identifier with the barcode kind it announces.
type Symbology struct {
	Prefix string
	Kind   Kind
}

// symbologies are the ISO/IEC 15424 identifiers that signal GS1 data, longest
// first so that the first match is the longest one.
var symbologies = func() []Symbology {
	s := []Symbology{
		{"]d2", DataMatrix},
		{"]Q3", QRCode},
		{"]e0", LinearDataBar},
		{"]C1", Code128Based},
	}
	sort.SliceStable(s, func(i, j int) bool {
		return len(s[i].Prefix) > len(s[j].Prefix)
	})
	return s
}()

// Symbologies returns the recognized symbology identifiers.
func Symbologies() []Symbology {
	return append([]Symbology(nil), symbologies...)
}

// detectSymbology returns the longest known symbology identifier at the front
// of s, or "" and Unknown if there isn't one.
func detectSymbology(s string) (string, Kind) {
	for _, sym := range symbologies {
		if strings.HasPrefix(s, sym.Prefix) {
			return sym.Prefix, sym.Kind
		}
	}
	return "", Unknown
}
