/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1barcode decodes and checks the data carried by GS1 barcodes.
//
// Scanners deliver a GS1 barcode's payload as an element string: a run of
// Application Identifiers (AIs) and their data, usually preceded by a
// symbology identifier such as "]d2". This package and its subpackages turn
// that text into identifiers and data you can work with:
// - elementstring splits the text into AIs and their data;
// - validate applies check digit, date and business rules to the result;
// - policy loads business rules from JSON or YAML;
// - epc converts GS1 keys to EPC URIs, to match barcodes with RFID tags.
//
// Check combines the first two steps:
//     es, err := gs1barcode.Check("]d20109876543210982"+"10LOT\x1d21SER", cfg)
// The leaf packages checkdigit, gs1date and ai implement GS1 rules used
// throughout and are useful on their own.
package gs1barcode
