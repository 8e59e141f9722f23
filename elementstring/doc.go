/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package elementstring decodes GS1 element strings, the text carried by
// GS1-128, GS1 DataBar, GS1 DataMatrix and GS1 QR Code barcodes.
//
// An element string is a run of Application Identifiers (AIs), each followed
// by its data:
//     ]d2 01 09876543210982 17 250101 10 ABC123 <GS> 21 XYZ
// (spaces added for clarity). Nothing in the string marks where an AI ends or
// how long it is. Instead, GS1 fixes the length of every AI by its first two
// digits, and fixes the length of the data of some of them; only data of
// other AIs is terminated, by the group separator (ASCII 0x1D), unless it's at
// the end of the string.
//
// Decoding is done in two passes. The first splits the string into segments
// knowing only the first two digits of each AI and whether they fix the
// segment's length. The second works out each segment's real AI, which may
// take one or two more digits from the front of the data, and rejects AIs GS1
// hasn't allocated, along with repeated AIs.
//
// Decoding does not validate the data; see the validate package.
//
// More information is available in the GS1 General Specifications:
// - https://www.gs1.org/standards/barcodes-epcrfid-id-keys/gs1-general-specifications
package elementstring
