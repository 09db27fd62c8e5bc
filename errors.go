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

import "errors"

// Sentinel errors returned across the codec's public API. Callers should
// compare against these with errors.Is; messages wrapped around them
// (via fmt.Errorf("%w: ...", ...)) carry the offending value for logging.
var (
	// ErrInvalidTableLog is returned when a tableLog argument falls outside
	// [MinTableLog, MaxTableLog], or when it yields a Spreader step that is
	// not coprime with the table size.
	ErrInvalidTableLog = errors.New("tans: invalid tableLog")

	// ErrInvalidDistribution is returned when a frequency vector does not
	// sum to the table size implied by tableLog, or carries a negative or
	// out-of-range count.
	ErrInvalidDistribution = errors.New("tans: invalid frequency distribution")

	// ErrSymbolOutOfAlphabet is returned when an input byte has no entry in
	// the table's alphabet, or has frequency zero.
	ErrSymbolOutOfAlphabet = errors.New("tans: symbol out of alphabet")

	// ErrBufferTooSmall names a destination buffer too small to hold a
	// result. No function in this module returns it: the Encoder grows its
	// stream buffer as needed, and Decoder.Decode fills exactly the dst it
	// is given.
	ErrBufferTooSmall = errors.New("tans: destination buffer too small")

	// ErrStreamUnderflow is returned when the decoder attempts to read past
	// the beginning of its bit stream.
	ErrStreamUnderflow = errors.New("tans: stream underflow")

	// ErrStateMismatch is returned by the optional end-of-decode sanity
	// check when the decoder does not terminate in state 0, and by
	// NewDecoder when a stream's final state lies outside the decoder table.
	ErrStateMismatch = errors.New("tans: decoder state mismatch at end of stream")
)
