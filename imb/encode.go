/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

import "github.com/intel/rsp-sw-toolkit-im-suite-imbcode/bignum"

// Routing shape markers. The composed routing value gets one marker added
// per populated field, so the decoder can tell the four legal shapes apart:
// 0 for no routing, 1 for ZIP only, 100001 for ZIP+4, and 1000100001 for a
// full delivery point. The gaps between markers deliberately reserve an
// unused three-digit field between the ZIP+4 and delivery point; see the
// routing decomposition in decode.go.
const (
	markerZip        = 1
	markerPlus4      = 100000
	markerDeliveryPt = 1000000000
)

// Bases used to fold the tracking fields onto the routing value, in order.
// The second barcode ID digit is base 5, which is why it may only be 0-4.
// The mailer ID and serial always total 15 digits; each two-step fold keeps
// the intermediate multiplier small enough for limb arithmetic.
const (
	baseBarcodeID1  = 10
	baseBarcodeID2  = 5
	baseServiceType = 1000
)

// Encode validates rec and returns its 65-symbol barcode.
//
// Every field is normalized (whitespace stripped, letters upcased) before
// validation, so "503 10" and "50310" encode identically. The returned
// string uses the symbols 'T', 'A', 'D' and 'F'. Encoding is deterministic:
// equal records always produce byte-identical barcodes.
func Encode(rec Record) (string, error) {
	rec = rec.Normalized()
	if err := rec.Validate(); err != nil {
		return "", err
	}

	var n bignum.BigNum
	var marker int64
	if rec.Zip != "" {
		n.Add(int64(fieldValue(rec.Zip)))
		marker += markerZip
	}
	if rec.Plus4 != "" {
		n.MulAdd(10000, fieldValue(rec.Plus4))
		marker += markerPlus4
	}
	if rec.DeliveryPt != "" {
		n.MulAdd(100, fieldValue(rec.DeliveryPt))
		marker += markerDeliveryPt
	}
	n.Add(marker)

	n.MulAdd(baseBarcodeID1, uint32(rec.BarcodeID[0]-'0'))
	n.MulAdd(baseBarcodeID2, uint32(rec.BarcodeID[1]-'0'))
	n.MulAdd(baseServiceType, fieldValue(rec.ServiceType))
	if len(rec.MailerID) == 6 {
		n.MulAdd(1000000, fieldValue(rec.MailerID))
		n.MulAdd(100000, 0)
		n.MulAdd(10000, fieldValue(rec.SerialNum))
	} else {
		n.MulAdd(10000, 0)
		n.MulAdd(100000, fieldValue(rec.MailerID))
		n.MulAdd(1000000, fieldValue(rec.SerialNum))
	}

	fcs := calculateFCS(&n)

	// Split off the codewords, least significant first. What remains in
	// the two low limbs after nine divisions is the 21-bit residue held
	// by codeword 0, which also absorbs FCS bit 10 as a range offset.
	// Codeword 9 is doubled so its low bit is always 0 right side up.
	var cw [numCodewords]uint32
	cw[numCodewords-1] = n.DivMod(lastCodewordBase) << 1
	for i := numCodewords - 2; i >= 1; i-- {
		cw[i] = n.DivMod(characterCount)
	}
	cw[0] = uint32(n[bignum.Limbs-2])<<bignum.LimbBits | uint32(n[bignum.Limbs-1])
	if fcs&(1<<10) != 0 {
		cw[0] += fcsBit10Offset
	}

	// FCS bits 0-9 select the complemented character of each pair.
	t := codec()
	var words [numCodewords]uint16
	for i := range words {
		words[i] = t.encode[cw[i]]
		if fcs&(1<<uint(i)) != 0 {
			words[i] ^= wordMask
		}
	}
	return renderSymbols(&words), nil
}
