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

import "testing"

// TestNormalizeRangeRoundTrip checks universal invariant 8:
// denormalizeRange(normalizeRange(x), min(x)) == x.
func TestNormalizeRangeRoundTrip(t *testing.T) {
	cases := [][]int8{
		{5, -3, 0, 127, -128, 1},
		{-10, -10, -10},
		{0},
		{},
	}

	for _, src := range cases {
		dst, shift := NormalizeRange(src)
		if len(dst) != len(src) {
			t.Fatalf("len(dst) = %d, want %d", len(dst), len(src))
		}
		back := DenormalizeRange(dst, shift)
		if len(back) != len(src) {
			t.Fatalf("len(back) = %d, want %d", len(back), len(src))
		}
		for i := range src {
			if back[i] != src[i] {
				t.Errorf("round trip mismatch at %d: got %d, want %d", i, back[i], src[i])
			}
		}
	}
}

// TestNormalizeRangeMinIsZero checks universal invariant 7's shift half:
// normalizeRange's output always has a minimum of 0.
func TestNormalizeRangeMinIsZero(t *testing.T) {
	src := []int8{5, -3, 0, 127, -128, 1}
	dst, shift := NormalizeRange(src)

	if shift != -128 {
		t.Errorf("shift = %d, want -128 (the minimum of src)", shift)
	}

	min := dst[0]
	for _, v := range dst[1:] {
		if v < min {
			min = v
		}
	}
	if min != 0 {
		t.Errorf("min(dst) = %d, want 0", min)
	}
}
