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

// encoderSymbol is the per-symbol record consumed by Encoder.Encode.
type encoderSymbol struct {
	bitsOut   uint
	threshold uint32
	offset    int32
}

// EncoderTables holds the per-symbol encoder records and the
// state-transition table built from a single normalized frequency
// distribution. Once built it is immutable and may back any number of
// concurrent Encoder contexts.
type EncoderTables struct {
	TableLog  int
	tableSize uint32
	freqs     []uint32 // copy of the distribution; rejects unseen symbols at encode time
	symbols   []encoderSymbol
	states    []uint32
}

// BuildEncoderTables builds the encoder record table and the
// state-transition table for the given normalized frequency distribution.
// freqs must sum to exactly 2^tableLog and tableLog must be in
// [tans.MinTableLog, tans.MaxTableLog].
func BuildEncoderTables(freqs []uint32, tableLog int) (*EncoderTables, error) {
	if err := validateTableLog(tableLog); err != nil {
		return nil, err
	}
	if err := validateDistribution(freqs, tableLog); err != nil {
		return nil, err
	}

	tableSize := uint32(1) << uint(tableLog)
	symbols := make([]encoderSymbol, len(freqs))
	beginIndex := make([]uint32, len(freqs))

	position := uint32(0)
	for sym, f := range freqs {
		if f == 0 {
			continue
		}
		beginIndex[sym] = position
		h := highestBit(f)
		bitsOut := uint(tableLog) - h
		symbols[sym] = encoderSymbol{
			bitsOut:   bitsOut,
			threshold: f << bitsOut,
			offset:    int32(position) - int32(f),
		}
		position += f
	}

	spread, err := spreadSymbols(freqs, tableLog)
	if err != nil {
		return nil, err
	}

	states := make([]uint32, tableSize)
	for p := uint32(0); p < tableSize; p++ {
		sym := spread[p]
		states[beginIndex[sym]] = p + tableSize
		beginIndex[sym]++
	}

	return &EncoderTables{
		TableLog:  tableLog,
		tableSize: tableSize,
		freqs:     append([]uint32(nil), freqs...),
		symbols:   symbols,
		states:    states,
	}, nil
}
