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

// BuildHistogram counts byte occurrences in src and returns a frequency
// vector of length alphabetSize, zero-initialized then incremented once per
// occurrence. alphabetSize must be in [1, 256]; every byte in src must be
// strictly less than alphabetSize.
//
// The counting loop is unrolled four-wide to keep the common case (a full
// 256-symbol alphabet, large src) branch-light.
func BuildHistogram(src []byte, alphabetSize int) ([]uint32, error) {
	if alphabetSize <= 0 || alphabetSize > 256 {
		return nil, fmt.Errorf("%w: alphabet size %d (must be in [1,256])", ErrInvalidDistribution, alphabetSize)
	}

	freqs := make([]uint32, alphabetSize)
	n := len(src)
	i := 0

	for ; i+4 <= n; i += 4 {
		b0, b1, b2, b3 := src[i], src[i+1], src[i+2], src[i+3]
		if int(b0) >= alphabetSize || int(b1) >= alphabetSize || int(b2) >= alphabetSize || int(b3) >= alphabetSize {
			return nil, fmt.Errorf("%w: byte value outside alphabet size %d", ErrSymbolOutOfAlphabet, alphabetSize)
		}
		freqs[b0]++
		freqs[b1]++
		freqs[b2]++
		freqs[b3]++
	}
	for ; i < n; i++ {
		b := src[i]
		if int(b) >= alphabetSize {
			return nil, fmt.Errorf("%w: byte value %d outside alphabet size %d", ErrSymbolOutOfAlphabet, b, alphabetSize)
		}
		freqs[b]++
	}
	return freqs, nil
}
