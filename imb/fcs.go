/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

import "github.com/intel/rsp-sw-toolkit-im-suite-imbcode/bignum"

const (
	// fcsPolynomial is the generator for the 11-bit frame check sequence.
	fcsPolynomial = 0xF35
	// fcsSeed is the register value before any limbs are folded in.
	// Advancing it across the eight always-zero bits at the top of the
	// 110-bit limb array yields the USPS seed 0x7FF.
	fcsSeed = 0x1F0
	// fcsMask keeps the low 11 bits of the register.
	fcsMask = 0x7FF
	// fcsOverflow is the bit shifted out of the 11-bit register.
	fcsOverflow = 0x800
)

// calculateFCS computes the 11-bit frame check sequence of n, folding in one
// limb at a time and clocking the CRC register once per limb bit.
func calculateFCS(n *bignum.BigNum) uint16 {
	fcs := uint16(fcsSeed)
	for i := 0; i < bignum.Limbs; i++ {
		fcs ^= n[i]
		for b := 0; b < bignum.LimbBits; b++ {
			fcs <<= 1
			if fcs&fcsOverflow != 0 {
				fcs ^= fcsPolynomial
			}
		}
	}
	return fcs & fcsMask
}
