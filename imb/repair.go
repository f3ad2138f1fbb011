/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

// Repair limits. A single damaged symbol disturbs at most two character bits
// (its descender and ascender halves), so genuine one-symbol damage stays far below the
// combination cap; inputs that blow past it are damaged beyond what one
// symbol explains and are not worth searching.
const (
	maxRepairCombinations = 1000
	maxInvalidWords       = 5
)

// repairSymbols searches for the unique reading of a 65-symbol string that
// differs from the input by at most one bit per character. It reports false
// when no reading, or more than one, exists within the search bounds.
func repairSymbols(t *codecTables, s string) (Result, bool) {
	words := parseWords(s)

	// For each character, collect the plausible words: itself if it is in
	// the code, otherwise every single-bit neighbor that is.
	var options [numCodewords][]uint16
	combinations := 1
	for i, word := range &words {
		if t.decode[word] != invalidCodeword {
			options[i] = []uint16{word}
			continue
		}
		var alts []uint16
		for b := uint(0); b < wordBits; b++ {
			alt := word ^ 1<<b
			if t.decode[alt] != invalidCodeword {
				alts = append(alts, alt)
			}
		}
		if len(alts) == 0 {
			return Result{}, false
		}
		options[i] = alts
		combinations *= len(alts)
		if combinations > maxRepairCombinations {
			return Result{}, false
		}
	}

	// Walk the Cartesian product. Exactly one combination may decode;
	// two readings mean the damage is ambiguous and none is trusted.
	var (
		found     int
		rec       Record
		repaired  [numCodewords]uint16
		candidate [numCodewords]uint16
		odometer  [numCodewords]int
	)
	for {
		for i := range candidate {
			candidate[i] = options[i][odometer[i]]
		}
		if r, ok := decodeWords(t, &candidate); ok {
			found++
			if found > 1 {
				return Result{}, false
			}
			rec = r
			repaired = candidate
		}
		i := numCodewords - 1
		for ; i >= 0; i-- {
			odometer[i]++
			if odometer[i] < len(options[i]) {
				break
			}
			odometer[i] = 0
		}
		if i < 0 {
			break
		}
	}
	if found != 1 {
		return Result{}, false
	}

	suggested := renderSymbols(&repaired)
	var positions []int
	for p := 0; p < numSymbols; p++ {
		if suggested[p] != s[p] {
			positions = append(positions, p)
		}
	}
	return Result{
		Record: rec,
		Repair: &Repair{Suggested: suggested, Positions: positions},
	}, true
}

// repairLength restores a 64- or 66-symbol string to 65 symbols by trying
// every insertion point (a placeholder tracker bar; the symbol search fixes
// its value) or every deletion, keeping the candidate whose characters need
// the least repair. Recovering every single-omission case this way is not
// guaranteed: the inserted placeholder can shift enough bars to push the
// damage past the search bounds, in which case the decode fails outright.
func repairLength(t *codecTables, s string) (Result, bool) {
	var best string
	bestInvalid := maxInvalidWords
	try := func(candidate string) {
		words := parseWords(candidate)
		invalid := 0
		for _, word := range &words {
			if t.decode[word] == invalidCodeword {
				invalid++
			}
		}
		if invalid < bestInvalid {
			bestInvalid = invalid
			best = candidate
		}
	}

	if len(s) == numSymbols-1 {
		for p := 0; p <= len(s); p++ {
			try(s[:p] + string(barTracker) + s[p:])
		}
	} else {
		for p := 0; p < len(s); p++ {
			try(s[:p] + s[p+1:])
		}
	}
	if best == "" {
		return Result{}, false
	}
	return repairSymbols(t, best)
}
