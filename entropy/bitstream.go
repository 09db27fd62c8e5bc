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
	"golang.org/x/exp/slices"
)

// bitWriter packs variable-width bit groups into a byte buffer from low to
// high addresses: each byte accumulates bits by left-shifting the bits
// already in it and OR-ing the new ones into the freed low positions.
type bitWriter struct {
	buf           []byte
	availableBits uint // free low-bit positions in buf's last byte, in [0,8]
}

func newBitWriter(capacityHint int) *bitWriter {
	w := &bitWriter{}
	w.buf = slices.Grow(w.buf[:0], capacityHint)
	w.buf = append(w.buf, 0)
	w.availableBits = 8
	return w
}

func (w *bitWriter) reset(capacityHint int) {
	w.buf = slices.Grow(w.buf[:0], capacityHint)
	w.buf = append(w.buf, 0)
	w.availableBits = 8
}

// write packs the low n bits of value into the stream, n up to L bits wide.
// Since a byte only holds 8 bits, a single call with n > 8 (tableLog can run
// up to 12) may need to cross more than one byte boundary; the loop peels
// off availableBits at a time, low bits of value first, until all n bits
// are placed.
func (w *bitWriter) write(n uint, value uint32) {
	written := uint(0)
	for n > 0 {
		if w.availableBits == 0 {
			w.buf = append(w.buf, 0)
			w.availableBits = 8
		}
		idx := len(w.buf) - 1

		chunk := n
		if chunk > w.availableBits {
			chunk = w.availableBits
		}
		bits := byte((value >> written) & (1<<chunk - 1))
		w.buf[idx] = (w.buf[idx] << chunk) | bits

		w.availableBits -= chunk
		written += chunk
		n -= chunk
	}
}

// bitReader extracts variable-width bit groups from a byte buffer from high
// to low addresses, mirroring bitWriter exactly: the decoder always starts
// at the last byte the encoder wrote and walks back toward index 0.
type bitReader struct {
	buf           []byte
	pos           int
	availableBits uint // bits still holding meaning in buf[pos], from the low end
}

func newBitReader(buf []byte, trailingBitsUsed uint) *bitReader {
	return &bitReader{
		buf:           buf,
		pos:           len(buf) - 1,
		availableBits: trailingBitsUsed,
	}
}

// read extracts n bits of the stream, undoing exactly one bitWriter write
// call of the same width in reverse order. It mirrors write's chunking
// exactly: write put the low bits of the value in the earlier byte, so the
// byte read first holds the high bits, and each later chunk is shifted in
// below the bits already read.
func (r *bitReader) read(n uint) (uint32, error) {
	var result uint32
	for n > 0 {
		if r.availableBits == 0 {
			if r.pos == 0 {
				return 0, fmt.Errorf("%w: need %d more bits, stream exhausted", tans.ErrStreamUnderflow, n)
			}
			r.pos--
			r.availableBits = 8
		}

		chunk := n
		if chunk > r.availableBits {
			chunk = r.availableBits
		}
		mask := uint32(1<<chunk - 1)
		bits := uint32(r.buf[r.pos]) & mask
		r.buf[r.pos] >>= chunk

		result = result<<chunk | bits
		r.availableBits -= chunk
		n -= chunk
	}
	return result, nil
}
