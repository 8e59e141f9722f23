/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"sort"
	"strings"
)

// ElementString is a decoded GS1 element string: the data of each Application
// Identifier it carries, along with the symbology that carried it.
//
// An ElementString is never modified after Decode returns it, so it may be
// shared freely. Its zero value has no fields and an Unknown kind.
type ElementString struct {
	raw    string
	prefix string
	kind   Kind
	fields map[string]string
}

// Raw returns the exact input that was decoded, including any symbology prefix.
func (es ElementString) Raw() string {
	return es.raw
}

// SymbologyPrefix returns the symbology identifier that preceded the element
// string, or "" if there wasn't a recognized one.
func (es ElementString) SymbologyPrefix() string {
	return es.prefix
}

// Kind returns the barcode kind identified by the symbology prefix.
func (es ElementString) Kind() Kind {
	return es.kind
}

// Get returns the data associated with the AI id.
func (es ElementString) Get(id string) (string, bool) {
	data, ok := es.fields[id]
	return data, ok
}

// Has returns true if the element string contains the AI id.
func (es ElementString) Has(id string) bool {
	_, ok := es.fields[id]
	return ok
}

// Len returns the number of AIs in the element string.
func (es ElementString) Len() int {
	return len(es.fields)
}

// Identifiers returns the element string's AIs in ascending order.
func (es ElementString) Identifiers() []string {
	ids := make([]string, 0, len(es.fields))
	for id := range es.fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Fields returns a copy of the AI to data mapping.
func (es ElementString) Fields() map[string]string {
	m := make(map[string]string, len(es.fields))
	for id, data := range es.fields {
		m[id] = data
	}
	return m
}

// HRI formats the element string in the "human readable interpretation" used
// beneath barcodes, with each AI in parentheses before its data:
//     (01)09876543210982(10)ABC123
// AIs appear in ascending order, which isn't necessarily the order in which
// they were encoded.
func (es ElementString) HRI() string {
	b := &strings.Builder{}
	for _, id := range es.Identifiers() {
		b.WriteByte('(')
		b.WriteString(id)
		b.WriteByte(')')
		b.WriteString(es.fields[id])
	}
	return b.String()
}

// String returns the HRI representation.
func (es ElementString) String() string {
	return es.HRI()
}
