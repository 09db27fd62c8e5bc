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

// decoderSymbol is the per-state record consumed by Decoder.Decode.
type decoderSymbol struct {
	symbol            byte
	numberOfBits      uint
	nextStateBaseline uint32
}

// DecoderTable holds the per-state decoder records built from a single
// normalized frequency distribution. Once built it is immutable and may
// back any number of concurrent Decoder contexts.
type DecoderTable struct {
	TableLog  int
	tableSize uint32
	states    []decoderSymbol
}

// BuildDecoderTable builds the decoder record table for the given
// normalized frequency distribution. freqs must sum to exactly 2^tableLog
// and must be the same distribution used to build the matching
// EncoderTables.
func BuildDecoderTable(freqs []uint32, tableLog int) (*DecoderTable, error) {
	if err := validateTableLog(tableLog); err != nil {
		return nil, err
	}
	if err := validateDistribution(freqs, tableLog); err != nil {
		return nil, err
	}

	tableSize := uint32(1) << uint(tableLog)
	cursor := append([]uint32(nil), freqs...)

	spread, err := spreadSymbols(freqs, tableLog)
	if err != nil {
		return nil, err
	}

	states := make([]decoderSymbol, tableSize)
	for p := uint32(0); p < tableSize; p++ {
		sym := spread[p]
		newState := cursor[sym]
		h := highestBit(newState)
		numberOfBits := uint(tableLog) - h
		nextStateBaseline := (newState << numberOfBits) - tableSize
		states[p] = decoderSymbol{
			symbol:            sym,
			numberOfBits:      numberOfBits,
			nextStateBaseline: nextStateBaseline,
		}
		cursor[sym]++
	}

	return &DecoderTable{
		TableLog:  tableLog,
		tableSize: tableSize,
		states:    states,
	}, nil
}
