/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

import (
	"fmt"
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestRepair_FlaggedPosition(t *testing.T) {
	w := expect.WrapT(t)
	known := knownBarcodes[4] // full routing record

	// flip a tracker bar to an ascender
	const pos = 31
	w.StopOnMismatch().ShouldBeEqual(known.barcode[pos], byte(barTracker))
	damaged := known.barcode[:pos] + string(barAscender) + known.barcode[pos+1:]

	res := w.ShouldHaveResult(Decode(damaged)).(Result)
	w.ShouldBeEqual(res.Record, known.rec)
	w.StopOnMismatch().ShouldBeTrue(res.Repair != nil)
	w.ShouldBeEqual(res.Repair.Suggested, known.barcode)
	w.StopOnMismatch().ShouldBeEqual(len(res.Repair.Positions), 1)
	w.ShouldBeEqual(res.Repair.Positions[0], pos)
}

// TestRepair_SingleSymbolSweep damages every position of every known barcode
// in every possible way. Each damaged read must either recover the original
// record (flagging the damaged position) or fail outright; a wrong record is
// never acceptable. The damage is overwhelmingly recoverable, though a few
// substitutions land on readings the search cannot disambiguate.
func TestRepair_SingleSymbolSweep(t *testing.T) {
	symbols := []byte{barTracker, barAscender, barDescender, barFull}
	for _, tt := range knownBarcodes {
		t.Run(tt.name, func(t *testing.T) {
			w := expect.WrapT(t)
			recovered, total := 0, 0
			for pos := 0; pos < numSymbols; pos++ {
				for _, sym := range symbols {
					if tt.barcode[pos] == sym {
						continue
					}
					total++
					damaged := tt.barcode[:pos] + string(sym) + tt.barcode[pos+1:]
					as := fmt.Sprintf("position %d -> %c", pos, sym)

					res, err := Decode(damaged)
					if err != nil {
						w.As(as).ShouldBeTrue(IsDecoding(err))
						continue
					}
					recovered++
					w.As(as).StopOnMismatch().ShouldBeEqual(res.Record, tt.rec)
					w.As(as).StopOnMismatch().ShouldBeTrue(res.Repair != nil)
					w.As(as).ShouldBeEqual(res.Repair.Suggested, tt.barcode)
					w.As(as).ShouldBeTrue(containsPosition(res.Repair.Positions, pos))
				}
			}
			// at least 95% of single-symbol damage must be recoverable
			w.As("recovery rate").ShouldBeTrue(recovered*100 >= total*95)
		})
	}
}

func TestRepair_DeletedSymbol(t *testing.T) {
	w := expect.WrapT(t)
	known := knownBarcodes[4]

	recovered := 0
	for pos := 0; pos < numSymbols; pos++ {
		shortened := known.barcode[:pos] + known.barcode[pos+1:]
		res, err := Decode(shortened)
		if err != nil {
			w.As(fmt.Sprintf("deletion at %d", pos)).ShouldBeTrue(IsDecoding(err))
			continue
		}
		as := fmt.Sprintf("deletion at %d", pos)
		w.As(as).StopOnMismatch().ShouldBeEqual(res.Record, known.rec)
		w.As(as).ShouldBeTrue(res.Repair != nil)
		recovered++
	}
	// most, though not all, single deletions are recoverable
	w.As("deletions recovered").ShouldBeTrue(recovered*2 > numSymbols)
}

func TestRepair_InsertedSymbol(t *testing.T) {
	w := expect.WrapT(t)
	known := knownBarcodes[4]

	recovered := 0
	for pos := 0; pos <= numSymbols; pos++ {
		extended := known.barcode[:pos] + string(barAscender) + known.barcode[pos:]
		res, err := Decode(extended)
		if err != nil {
			w.As(fmt.Sprintf("insertion at %d", pos)).ShouldBeTrue(IsDecoding(err))
			continue
		}
		as := fmt.Sprintf("insertion at %d", pos)
		w.As(as).StopOnMismatch().ShouldBeEqual(res.Record, known.rec)
		w.As(as).ShouldBeTrue(res.Repair != nil)
		recovered++
	}
	w.As("insertions recovered").ShouldBeTrue(recovered*2 > numSymbols+1)
}

func containsPosition(positions []int, p int) bool {
	for _, pos := range positions {
		if pos == p {
			return true
		}
	}
	return false
}
