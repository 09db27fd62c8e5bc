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
	"fmt"

	tans "github.com/gigel773/entropy-coder"
)

// EncodedStream is the in-memory compressed representation produced by
// Encoder.Stream: the triple (byte buffer, normalized final state,
// trailing bits used) the decoder needs to start from.
type EncodedStream struct {
	Bytes        []byte
	FinalState   uint32
	TrailingBits uint
}

// Encoder drives state evolution over an input, emitting bits into a
// private stream buffer. An Encoder owns its buffer exclusively; call
// Reset to reuse it for a new input against the same tables.
type Encoder struct {
	tables *EncoderTables
	bw     *bitWriter
	state  uint32
}

// NewEncoder returns a fresh encoder context over tables, with a zeroed
// stream buffer and initial state T.
func NewEncoder(tables *EncoderTables) (*Encoder, error) {
	if tables == nil {
		return nil, fmt.Errorf("%w: nil encoder tables", tans.ErrInvalidDistribution)
	}
	e := &Encoder{tables: tables}
	e.Reset()
	return e, nil
}

// Reset reinitializes the encoder's stream buffer and state so it can be
// driven over a new input against the same tables.
func (e *Encoder) Reset() {
	if e.bw == nil {
		e.bw = newBitWriter(int(e.tables.tableSize))
	} else {
		e.bw.reset(int(e.tables.tableSize))
	}
	e.state = e.tables.tableSize
}

// Encode appends the compressed encoding of src, in input index order, to
// the context's stream and keeps the terminal state; Stream reports that
// state normalized for transfer to a decoder. It returns ErrSymbolOutOfAlphabet if src contains a byte with
// no entry, or a zero-frequency entry, in the context's tables.
func (e *Encoder) Encode(src []byte) error {
	tables := e.tables
	state := e.state

	for _, sym := range src {
		if int(sym) >= len(tables.symbols) || tables.freqs[sym] == 0 {
			return fmt.Errorf("%w: symbol %d", tans.ErrSymbolOutOfAlphabet, sym)
		}
		rec := tables.symbols[sym]

		b := int(rec.bitsOut)
		if state < rec.threshold {
			b--
		}
		e.bw.write(uint(b), state)
		state >>= uint(b)

		idx := int32(state) + rec.offset
		state = tables.states[idx]
	}

	e.state = state
	return nil
}

// Stream returns the compressed payload: the used prefix of the stream
// buffer, the normalized final state (state - T, in [0,T)), and the number
// of meaningful bits in the buffer's terminal byte. Call it once after a
// complete Encode call.
func (e *Encoder) Stream() EncodedStream {
	return EncodedStream{
		Bytes:        e.bw.buf,
		FinalState:   e.state - e.tables.tableSize,
		TrailingBits: 8 - e.bw.availableBits,
	}
}
