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

// Decoder drives state evolution over a compressed bit stream, emitting
// symbols in the exact reverse of the order an Encoder consumed them. A
// Decoder owns an independent copy of the stream it was initialized from;
// mutating the Encoder it was built from afterwards has no effect on it.
type Decoder struct {
	table *DecoderTable
	br    *bitReader
	state uint32
}

// NewDecoder initializes a decoder context from table and the compressed
// stream produced by an Encoder built over the matching frequency
// distribution. It copies the encoder's used buffer prefix so the two
// contexts are independent afterwards.
func NewDecoder(table *DecoderTable, stream EncodedStream) (*Decoder, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil decoder table", tans.ErrInvalidDistribution)
	}
	if len(stream.Bytes) == 0 {
		return nil, fmt.Errorf("%w: empty stream buffer", tans.ErrStreamUnderflow)
	}
	if stream.FinalState >= table.tableSize {
		return nil, fmt.Errorf("%w: final state %d outside [0,%d)", tans.ErrStateMismatch, stream.FinalState, table.tableSize)
	}

	buf := append([]byte(nil), stream.Bytes...)
	return &Decoder{
		table: table,
		br:    newBitReader(buf, stream.TrailingBits),
		state: stream.FinalState,
	}, nil
}

// Decode fills dst with the decoded symbols, writing dst[len(dst)-1] first
// and dst[0] last - the exact reverse of the order Encoder.Encode consumed
// them.
func (d *Decoder) Decode(dst []byte) error {
	table := d.table
	state := d.state
	br := d.br

	for i := len(dst) - 1; i >= 0; i-- {
		rec := table.states[state]
		dst[i] = rec.symbol

		r, err := br.read(rec.numberOfBits)
		if err != nil {
			return err
		}
		state = rec.nextStateBaseline + r
	}

	d.state = state
	return nil
}

// Finish performs the optional end-of-decode sanity check: it returns
// ErrStateMismatch if the decoder did not terminate in state 0, which
// means the stream, trailing-bit count, or final state it was initialized
// with did not match what the encoder actually produced.
func (d *Decoder) Finish() error {
	if d.state != 0 {
		return fmt.Errorf("%w: terminal state %d, want 0", tans.ErrStateMismatch, d.state)
	}
	return nil
}
