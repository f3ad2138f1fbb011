/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

import "github.com/intel/rsp-sw-toolkit-im-suite-imbcode/bignum"

// Result is a successful decode. Repair is nil when the input decoded as
// given, and set when it only decoded after repairing damage.
type Result struct {
	Record Record
	Repair *Repair
}

// Repair describes how a damaged barcode was read.
type Repair struct {
	// Suggested is the corrected 65-symbol barcode that decoded.
	Suggested string
	// Positions lists the 0-based symbol positions where Suggested
	// differs from the (length-adjusted) input.
	Positions []int
}

// routeFieldSizes gives the digits peeled from the routing value per round,
// least significant first: the low five digits of the routing number, then
// the four above them, then the top two. One round runs per populated field
// (ZIP, Plus4, DeliveryPt), so the digits land right-aligned. The markers additionally reserve an unpopulated three-digit
// field, which is why they are 1, 100001 and 1000100001 rather than plain
// powers of ten; collapsing these rounds differently corrupts the ZIP.
var routeFieldSizes = [...]int{5, 4, 2}

// Decode parses a 65-symbol Intelligent Mail barcode back into its Record.
//
// Whitespace is stripped and letters are upcased first. If the string does
// not decode as given, Decode attempts a bounded repair: inputs of length 64
// or 66 are length-adjusted at every position, and a single bit of damage
// per character is searched for. A repaired read reports the corrections in
// Result.Repair. When repair finds no unique valid reading, Decode returns a
// DecodingError; if the input only reads with ascenders and descenders
// exchanged, the error reports the barcode as upside down instead, and the
// inverted payload is never returned.
func Decode(barcode string) (Result, error) {
	s := normalize(barcode)
	if len(s) < numSymbols-1 || len(s) > numSymbols+1 {
		return Result{}, decodingErrorf(
			"barcode must have %d symbols, but this has %d", numSymbols, len(s))
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case barTracker, barAscender, barDescender, barFull:
		default:
			return Result{}, decodingErrorf(
				"symbol %d is %q; barcodes use only 'A', 'D', 'F' and 'T'", i, s[i])
		}
	}

	t := codec()
	if len(s) != numSymbols {
		if res, ok := repairLength(t, s); ok {
			return res, nil
		}
		return Result{}, decodingErrorf("not a valid Intelligent Mail barcode")
	}

	words := parseWords(s)
	if rec, ok := decodeWords(t, &words); ok {
		return Result{Record: rec}, nil
	}
	// The orientation test runs before the repair search: an upside-down
	// scan occasionally repairs into an unrelated record, while a merely
	// damaged barcode has no realistic chance of a clean decode with its
	// ascenders and descenders exchanged.
	flipped := parseWords(flipOrientation(s))
	if _, ok := decodeWords(t, &flipped); ok {
		return Result{}, upsideDownError()
	}
	if res, ok := repairSymbols(t, s); ok {
		return res, nil
	}
	return Result{}, decodingErrorf("not a valid Intelligent Mail barcode")
}

// decodeWords looks the ten characters up and hands the codewords on. It
// reports false for any character outside the code, leaving the caller to
// decide between failure and repair.
func decodeWords(t *codecTables, words *[numCodewords]uint16) (Record, bool) {
	var cw [numCodewords]uint32
	var fcs uint16
	for i, word := range words {
		idx := t.decode[word]
		if idx == invalidCodeword {
			return Record{}, false
		}
		cw[i] = uint32(idx)
		fcs |= uint16(t.fcsBit[word]) << uint(i)
	}
	return decodeCodewords(cw, fcs)
}

// decodeCodewords runs the numeric half of the pipeline: range and
// orientation checks, value reconstruction, FCS verification, and the field
// decomposition.
func decodeCodewords(cw [numCodewords]uint32, fcs uint16) (Record, bool) {
	if cw[0] > maxCodewordZero || cw[numCodewords-1] > maxCodewordNine {
		return Record{}, false
	}
	// a right-side-up barcode always has an even last codeword
	if cw[numCodewords-1]&1 != 0 {
		return Record{}, false
	}
	cw[numCodewords-1] >>= 1
	if cw[0] >= fcsBit10Offset {
		cw[0] -= fcsBit10Offset
		fcs |= 1 << 10
	}

	var n bignum.BigNum
	n[bignum.Limbs-2] = uint16(cw[0] >> bignum.LimbBits)
	n[bignum.Limbs-1] = uint16(cw[0] & bignum.LimbMask)
	for i := 1; i <= numCodewords-2; i++ {
		n.MulAdd(characterCount, cw[i])
	}
	n.MulAdd(lastCodewordBase, cw[numCodewords-1])

	if calculateFCS(&n) != fcs {
		return Record{}, false
	}

	// 20 tracking digits come off least significant first; the second
	// digit was folded base 5.
	var track [20]byte
	for j := len(track) - 1; j >= 2; j-- {
		track[j] = byte('0' + n.DivMod(10))
	}
	track[1] = byte('0' + n.DivMod(5))
	track[0] = byte('0' + n.DivMod(10))

	// What remains is the routing value. Each round strips one marker
	// unit and one field's worth of digits, stopping when the value is
	// exhausted; how far pos descends identifies the shape.
	var route [11]byte
	pos := len(route)
	for _, size := range routeFieldSizes {
		if n.IsZero() {
			break
		}
		n.Add(-1)
		for k := 0; k < size; k++ {
			pos--
			route[pos] = byte('0' + n.DivMod(10))
		}
	}
	if !n.IsZero() {
		return Record{}, false
	}

	rec := Record{
		BarcodeID:   string(track[0:2]),
		ServiceType: string(track[2:5]),
	}
	if track[5] == '9' {
		rec.MailerID = string(track[5:14])
		rec.SerialNum = string(track[14:20])
	} else {
		rec.MailerID = string(track[5:11])
		rec.SerialNum = string(track[11:20])
	}
	if pos <= 6 {
		rec.Zip = string(route[pos : pos+5])
	}
	if pos <= 2 {
		rec.Plus4 = string(route[pos+5 : pos+9])
	}
	if pos == 0 {
		rec.DeliveryPt = string(route[9:11])
	}
	return rec, true
}
