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

// NormalizeRange shifts a signed-byte input into a zero-based symbol domain:
// it finds min(src) and returns dst[i] = src[i] - min for every index, along
// with the shift applied so DenormalizeRange can undo it. An empty src
// normalizes to an empty dst and a shift of 0.
func NormalizeRange(src []int8) (dst []byte, shift int8) {
	if len(src) == 0 {
		return nil, 0
	}

	min := src[0]
	for _, v := range src[1:] {
		if v < min {
			min = v
		}
	}

	dst = make([]byte, len(src))
	for i, v := range src {
		dst[i] = byte(v - min)
	}
	return dst, min
}

// DenormalizeRange reverses NormalizeRange: given the shifted bytes and the
// shift NormalizeRange recorded, it reconstructs the original signed bytes.
func DenormalizeRange(src []byte, shift int8) []int8 {
	if len(src) == 0 {
		return nil
	}
	dst := make([]int8, len(src))
	for i, v := range src {
		dst[i] = int8(v) + shift
	}
	return dst
}
