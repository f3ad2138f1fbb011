/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

import (
	"fmt"
	"math/bits"
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestTables_Weights(t *testing.T) {
	w := expect.WrapT(t)
	tab := codec()

	// 1287 five-of-thirteen characters, then 78 two-of-thirteen
	for i, word := range tab.encode {
		want := 5
		if i > weightFiveEnd {
			want = 2
		}
		as := fmt.Sprintf("codeword %d", i)
		w.As(as).StopOnMismatch().ShouldBeEqual(bits.OnesCount16(word), want)
		w.As(as).ShouldBeTrue(word <= wordMask)
	}
}

func TestTables_RoundTrip(t *testing.T) {
	w := expect.WrapT(t)
	tab := codec()

	for i, word := range tab.encode {
		as := fmt.Sprintf("codeword %d", i)
		w.As(as).StopOnMismatch().ShouldBeEqual(tab.decode[word], uint16(i))
		w.As(as).StopOnMismatch().ShouldBeEqual(tab.decode[word^wordMask], uint16(i))
		w.As(as).ShouldBeEqual(tab.fcsBit[word], uint8(0))
		w.As(as).ShouldBeEqual(tab.fcsBit[word^wordMask], uint8(1))
	}

	// every remaining word is invalid: 1365 characters and complements
	valid := 0
	for _, idx := range tab.decode {
		if idx != invalidCodeword {
			valid++
		}
	}
	w.ShouldBeEqual(valid, 2*characterCount)
}

func TestTables_Deterministic(t *testing.T) {
	w := expect.WrapT(t)
	a, b := buildTables(), buildTables()
	w.ShouldBeTrue(*a == *b)
	w.ShouldBeTrue(*a == *codec())
}

func TestLayout_CoversEveryBit(t *testing.T) {
	w := expect.WrapT(t)

	// the 130 bar halves must each draw a distinct character bit
	var seen [numCodewords][wordBits]int
	for p := 0; p < numSymbols; p++ {
		seen[descChar[p]][descBit[p]]++
		seen[ascChar[p]][ascBit[p]]++
	}
	for char := range seen {
		for bit := range seen[char] {
			w.As(fmt.Sprintf("character %d bit %d", char, bit)).
				StopOnMismatch().ShouldBeEqual(seen[char][bit], 1)
		}
	}
}
