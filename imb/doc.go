/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package imb encodes and decodes the USPS Intelligent Mail barcode (IMb),
// the 65-symbol, four-state barcode applied to letter mail in the United
// States. It replaces both the POSTNET and PLANET symbologies and carries a
// tracking portion (barcode identifier, service type, mailer identifier and
// serial number) alongside an optional routing portion (ZIP code, ZIP+4 and
// delivery point).
//
// The barcode is specified by USPS-B-3200, "Intelligent Mail Barcode 4-State
// Specification". Encoding proceeds in fixed stages: the decimal fields are
// folded into a single 102-bit binary value; an 11-bit frame check sequence
// (CRC, polynomial 0xF35) is computed over that value; the value is converted
// into ten codewords; each codeword is mapped through a table of 13-bit
// "characters" drawn from the 5-of-13 and 2-of-13 constant-weight codes, with
// selected characters bit-complemented to embed the FCS; and finally the 130
// character bits are scattered over the 65 bar positions, one bit for each
// bar's ascender half and one for its descender half. A bar with neither half
// is rendered as the symbol 'T' (tracker), ascender only as 'A', descender
// only as 'D', and both as 'F' (full).
//
// Decoding reverses each stage and verifies the FCS. Because every character
// comes from a constant-weight code, most single-symbol scan defects are
// detectable; Decode additionally attempts a bounded repair search for inputs
// with one damaged, one missing or one extra symbol, and reports via
// Result.Repair when it had to repair the input. A barcode that only decodes
// after swapping ascenders with descenders is reported as upside down rather
// than decoded, so an inverted scan can never be mistaken for a valid read.
//
// The package has no state beyond three read-only lookup tables built on
// first use; both Encode and Decode are safe for concurrent use.
package imb
