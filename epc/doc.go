/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc converts the GS1 keys found in decoded element strings into
// Electronic Product Codes, as defined by the EPC Tag Data Standard.
//
// The following are links to the GS1 General Standard, EPC Tag Data Standard,
// and supplemental materials such as the "Interoperability of Barcodes, EPCIS,
// and RFID" PDF; this code is based on these guides and does its best to both
// follow its guidelines and properly implement its definitions.
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
// - https://www.gs1.org/standards/epcrfid-epcis-id-keys/epc-rfid-tds/1-12
//
// Most significant in GS1's recommendations is the following idea:
//     "The canonical representation of an EPC is the pure-identity URI
//     	representation, which is intended for communicating and storing EPCs in
//     	information systems, databases and applications, in order to insulate
//     	them from knowledge about the physical nature of the tag..."
//		- GS1 EPCglobal Tag Data Translation (TDT) 1.6
// In other words: a barcode scanned at a dock door and an RFID tag read at the
// same door name the same thing only if their URIs match, so convert both to
// a URI as soon as possible, and use that.
//
// An element string carries everything an EPC needs except one detail: how
// many digits of the key are the GS1 Company Prefix. That boundary is assigned
// by GS1 Member Organizations and can't be derived from the digits, so every
// conversion here takes the prefix length as an argument. It determines the
// EPC "partition" value used by the binary encodings and the Tag URIs.
//
// Supported schemes are SGTIN, from AIs (01) and (21), and SSCC, from AI (00).
package epc
