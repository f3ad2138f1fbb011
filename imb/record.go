/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

import "strings"

// Record is the payload of one Intelligent Mail barcode.
//
// The tracking fields (BarcodeID through SerialNum) are always present. The
// routing fields are optional, but only in the combinations the barcode can
// represent: nothing, Zip alone, Zip with Plus4, or all three. All fields are
// decimal digit strings; leading zeros are significant and preserved.
type Record struct {
	// BarcodeID is 2 digits; the second digit may only be 0-4.
	BarcodeID string
	// ServiceType is the 3-digit service type identifier.
	ServiceType string
	// MailerID is the USPS-assigned mailer identifier, 6 or 9 digits.
	// 9-digit mailer identifiers begin with 9; 6-digit ones must not.
	MailerID string
	// SerialNum is the mailer-assigned serial, 9 digits with a 6-digit
	// MailerID and 6 digits with a 9-digit one.
	SerialNum string
	// Zip is the 5-digit ZIP code, or empty.
	Zip string
	// Plus4 is the 4-digit ZIP+4 extension, or empty. Requires Zip.
	Plus4 string
	// DeliveryPt is the 2-digit delivery point, or empty. Requires Plus4.
	DeliveryPt string
}

// String returns the record's digits concatenated in barcode order, the
// conventional human-readable form printed beneath the barcode.
func (r Record) String() string {
	return r.BarcodeID + r.ServiceType + r.MailerID + r.SerialNum +
		r.Zip + r.Plus4 + r.DeliveryPt
}

// Normalized returns a copy of r with every field stripped of whitespace and
// upcased. Encode normalizes its input itself; this is exported for callers
// that want to compare records they built from raw user input.
func (r Record) Normalized() Record {
	return Record{
		BarcodeID:   normalize(r.BarcodeID),
		ServiceType: normalize(r.ServiceType),
		MailerID:    normalize(r.MailerID),
		SerialNum:   normalize(r.SerialNum),
		Zip:         normalize(r.Zip),
		Plus4:       normalize(r.Plus4),
		DeliveryPt:  normalize(r.DeliveryPt),
	}
}

// Validate checks the digit, length and shape constraints on a normalized
// record and returns a ValidationError naming the first violated rule.
func (r Record) Validate() error {
	if len(r.BarcodeID) != 2 || !isDigits(r.BarcodeID) {
		return validationErrorf("barcode_id must be 2 digits")
	}
	if r.BarcodeID[1] > '4' {
		return validationErrorf("second digit of barcode_id must be 0-4")
	}
	if len(r.ServiceType) != 3 || !isDigits(r.ServiceType) {
		return validationErrorf("service_type must be 3 digits")
	}
	if (len(r.MailerID) != 6 && len(r.MailerID) != 9) || !isDigits(r.MailerID) {
		return validationErrorf("mailer_id must be 6 or 9 digits")
	}
	// the decoder tells the two mailer ID widths apart by the leading 9
	if len(r.MailerID) == 9 && r.MailerID[0] != '9' {
		return validationErrorf("9-digit mailer_id must begin with 9")
	}
	if len(r.MailerID) == 6 && r.MailerID[0] == '9' {
		return validationErrorf("6-digit mailer_id must not begin with 9")
	}
	if !isDigits(r.SerialNum) {
		return validationErrorf("serial_num must be digits")
	}
	if len(r.MailerID)+len(r.SerialNum) != 15 {
		return validationErrorf("mailer_id + serial_num must total 15 digits")
	}
	if r.Plus4 != "" && r.Zip == "" {
		return validationErrorf("zip required when plus4 present")
	}
	if r.DeliveryPt != "" && r.Plus4 == "" {
		return validationErrorf("plus4 required when delivery_pt present")
	}
	if r.Zip != "" && (len(r.Zip) != 5 || !isDigits(r.Zip)) {
		return validationErrorf("zip must be 5 digits")
	}
	if r.Plus4 != "" && (len(r.Plus4) != 4 || !isDigits(r.Plus4)) {
		return validationErrorf("plus4 must be 4 digits")
	}
	if r.DeliveryPt != "" && (len(r.DeliveryPt) != 2 || !isDigits(r.DeliveryPt)) {
		return validationErrorf("delivery_pt must be 2 digits")
	}
	return nil
}

// normalize strips ASCII whitespace and upcases ASCII letters. The barcode
// alphabet and every field are plain ASCII, so no Unicode handling applies.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r':
			// dropped
		case 'a' <= c && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// fieldValue converts a validated digit field to its numeric value.
func fieldValue(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		v = v*10 + uint32(s[i]-'0')
	}
	return v
}
