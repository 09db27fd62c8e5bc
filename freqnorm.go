/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tans

import "fmt"

// NormalizeFrequencies rescales an arbitrary non-zero histogram so its
// entries sum to exactly 2^tableLog, in place. It never turns a non-zero
// count into zero and never turns a zero count into non-zero: a symbol that
// never occurred stays absent from the normalized table.
//
// This is a convenience layer outside the codec's core: BuildEncoderTables
// and BuildDecoderTable both require their input to already sum to 2^L.
// Callers who only have a raw histogram from BuildHistogram can run it
// through NormalizeFrequencies first.
func NormalizeFrequencies(freqs []uint32, tableLog int) error {
	if tableLog < MinTableLog || tableLog > MaxTableLog {
		return fmt.Errorf("%w: tableLog %d (must be in [%d,%d])", ErrInvalidTableLog, tableLog, MinTableLog, MaxTableLog)
	}

	tableSize := uint64(1) << uint(tableLog)

	var total uint64
	nonZero := 0
	for _, f := range freqs {
		total += uint64(f)
		if f > 0 {
			nonZero++
		}
	}
	if total == 0 {
		return fmt.Errorf("%w: all-zero histogram", ErrInvalidDistribution)
	}
	if uint64(nonZero) > tableSize {
		return fmt.Errorf("%w: %d distinct symbols cannot fit in a table of size %d", ErrInvalidDistribution, nonZero, tableSize)
	}
	if total == tableSize {
		return nil
	}

	// Scale every non-zero bucket down (or up) proportionally, rounding to
	// the nearest integer but never below 1, then fix up the remaining
	// difference by nudging the largest buckets - this never reduces a
	// non-zero bucket to zero and never changes the set of zero buckets.
	scaled := make([]uint64, len(freqs))
	var sum uint64
	for i, f := range freqs {
		if f == 0 {
			continue
		}
		v := (uint64(f)*tableSize + total/2) / total
		if v == 0 {
			v = 1
		}
		scaled[i] = v
		sum += v
	}

	for sum > tableSize {
		i := largestIndex(scaled)
		if scaled[i] <= 1 {
			break
		}
		scaled[i]--
		sum--
	}
	for sum < tableSize {
		i := largestIndex(scaled)
		scaled[i]++
		sum++
	}

	for i, v := range scaled {
		freqs[i] = uint32(v)
	}
	return nil
}

func largestIndex(v []uint64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
