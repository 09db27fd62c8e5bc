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

package entropy

import (
	"errors"
	"testing"

	tans "github.com/gigel773/entropy-coder"
)

func TestBuildEncoderTablesRejectsBadTableLog(t *testing.T) {
	_, err := BuildEncoderTables([]uint32{16}, 0)
	if !errors.Is(err, tans.ErrInvalidTableLog) {
		t.Fatalf("err = %v, want ErrInvalidTableLog", err)
	}
	_, err = BuildEncoderTables([]uint32{16}, 13)
	if !errors.Is(err, tans.ErrInvalidTableLog) {
		t.Fatalf("err = %v, want ErrInvalidTableLog", err)
	}
}

func TestBuildEncoderTablesRejectsBadDistribution(t *testing.T) {
	_, err := BuildEncoderTables([]uint32{5, 5, 5}, 4) // sums to 15, not 16
	if !errors.Is(err, tans.ErrInvalidDistribution) {
		t.Fatalf("err = %v, want ErrInvalidDistribution", err)
	}
}

// TestEncoderTablesStateTransitionInvariant checks universal invariant 3:
// for each symbol, the entries it was assigned in the state-transition
// table form a strictly increasing sequence of distinct values in [T,2T).
func TestEncoderTablesStateTransitionInvariant(t *testing.T) {
	freqs := []uint32{7, 6, 3}
	tables, err := BuildEncoderTables(freqs, 4)
	if err != nil {
		t.Fatalf("BuildEncoderTables: %v", err)
	}

	tableSize := uint32(16)
	position := uint32(0)
	for sym, f := range freqs {
		if f == 0 {
			continue
		}
		rec := tables.symbols[sym]
		var prev uint32
		for i := uint32(0); i < f; i++ {
			v := tables.states[position+i]
			if v < tableSize || v >= 2*tableSize {
				t.Errorf("symbol %d entry %d = %d, want in [%d,%d)", sym, i, v, tableSize, 2*tableSize)
			}
			if i > 0 && v <= prev {
				t.Errorf("symbol %d entries not strictly increasing at %d: %d <= %d", sym, i, v, prev)
			}
			prev = v
		}
		if rec.offset != int32(position)-int32(f) {
			t.Errorf("symbol %d offset = %d, want %d", sym, rec.offset, int32(position)-int32(f))
		}
		position += f
	}
}
