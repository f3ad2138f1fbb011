/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

// The four bar symbols. A bar always includes the tracker segment; the
// ascender and descender halves above and below it each carry one bit.
const (
	barTracker   = 'T'
	barAscender  = 'A'
	barDescender = 'D'
	barFull      = 'F'
)

// Bar-to-character mapping, per the USPS 4-state specification. For bar
// position p, the descender half carries bit descBit[p] of character
// descChar[p] and the ascender half carries bit ascBit[p] of character
// ascChar[p]. Together the 130 halves cover each of the 130 character bits
// exactly once; the tables must be reproduced verbatim for interchange with
// other Intelligent Mail encoders.
var (
	descChar = [numSymbols]uint8{
		7, 1, 9, 5, 8, 0, 2, 4, 6, 3, 5, 8, 9, 7, 3, 0, 6, 1, 7, 4,
		6, 8, 9, 2, 5, 1, 7, 5, 4, 3, 8, 7, 6, 0, 2, 5, 4, 9, 3, 0,
		1, 3, 8, 6, 6, 4, 5, 9, 6, 7, 5, 2, 6, 2, 8, 5, 1, 9, 8, 7,
		4, 0, 2, 0, 3,
	}
	descBit = [numSymbols]uint8{
		2, 10, 12, 5, 9, 1, 5, 4, 3, 9, 11, 5, 10, 1, 6, 3, 4, 1, 10, 0,
		2, 11, 8, 6, 1, 12, 3, 8, 6, 4, 4, 11, 0, 6, 1, 9, 11, 5, 3, 7,
		3, 11, 7, 10, 8, 2, 10, 3, 5, 8, 0, 3, 12, 11, 8, 4, 5, 1, 3, 0,
		7, 12, 9, 8, 10,
	}
	ascChar = [numSymbols]uint8{
		4, 0, 2, 6, 3, 5, 1, 9, 8, 7, 1, 2, 0, 6, 4, 8, 2, 9, 5, 3,
		0, 1, 3, 7, 4, 6, 8, 9, 2, 0, 5, 1, 9, 4, 3, 8, 6, 7, 1, 2,
		4, 3, 9, 5, 7, 8, 3, 0, 2, 1, 4, 0, 9, 1, 7, 0, 2, 4, 6, 3,
		7, 1, 9, 5, 8,
	}
	ascBit = [numSymbols]uint8{
		3, 0, 8, 11, 1, 12, 8, 11, 10, 6, 4, 12, 2, 7, 9, 6, 7, 9, 2, 8,
		4, 0, 12, 7, 10, 9, 0, 7, 10, 5, 7, 9, 6, 8, 2, 12, 1, 4, 2, 0,
		1, 5, 4, 6, 12, 1, 0, 9, 4, 7, 5, 10, 2, 6, 9, 11, 2, 12, 6, 7,
		5, 11, 0, 3, 2,
	}
)

// renderSymbols lays the ten characters out over the 65 bar positions.
func renderSymbols(words *[numCodewords]uint16) string {
	var out [numSymbols]byte
	for p := 0; p < numSymbols; p++ {
		desc := words[descChar[p]]>>descBit[p]&1 != 0
		asc := words[ascChar[p]]>>ascBit[p]&1 != 0
		switch {
		case asc && desc:
			out[p] = barFull
		case asc:
			out[p] = barAscender
		case desc:
			out[p] = barDescender
		default:
			out[p] = barTracker
		}
	}
	return string(out[:])
}

// parseWords gathers the ten characters back out of a 65-symbol string. The
// input must already be validated as exactly numSymbols bar symbols.
func parseWords(s string) [numCodewords]uint16 {
	var words [numCodewords]uint16
	for p := 0; p < numSymbols; p++ {
		c := s[p]
		if c == barDescender || c == barFull {
			words[descChar[p]] |= 1 << descBit[p]
		}
		if c == barAscender || c == barFull {
			words[ascChar[p]] |= 1 << ascBit[p]
		}
	}
	return words
}

// flipOrientation exchanges ascenders and descenders, which is how a barcode
// reads when the mailpiece is rotated 180 degrees.
func flipOrientation(s string) string {
	out := []byte(s)
	for i, c := range out {
		switch c {
		case barAscender:
			out[i] = barDescender
		case barDescender:
			out[i] = barAscender
		}
	}
	return string(out)
}
