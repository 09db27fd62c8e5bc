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

import (
	"errors"
	"testing"
)

func TestBuildHistogram(t *testing.T) {
	src := []byte{0, 1, 0, 2, 1, 0, 2, 1, 0, 1, 1, 0, 2, 0, 0, 1}
	freqs, err := BuildHistogram(src, 3)
	if err != nil {
		t.Fatalf("BuildHistogram: %v", err)
	}
	want := []uint32{7, 6, 3}
	for i, w := range want {
		if freqs[i] != w {
			t.Errorf("freqs[%d] = %d, want %d", i, freqs[i], w)
		}
	}

	var sum uint32
	for _, f := range freqs {
		sum += f
	}
	if int(sum) != len(src) {
		t.Errorf("sum(freqs) = %d, want %d", sum, len(src))
	}
}

func TestBuildHistogramOddLength(t *testing.T) {
	// Exercises the tail loop after the 4-wide unrolled body.
	src := []byte{0, 0, 1, 2, 1}
	freqs, err := BuildHistogram(src, 3)
	if err != nil {
		t.Fatalf("BuildHistogram: %v", err)
	}
	want := []uint32{2, 2, 1}
	for i, w := range want {
		if freqs[i] != w {
			t.Errorf("freqs[%d] = %d, want %d", i, freqs[i], w)
		}
	}
}

func TestBuildHistogramRejectsOutOfAlphabet(t *testing.T) {
	_, err := BuildHistogram([]byte{0, 1, 5}, 3)
	if !errors.Is(err, ErrSymbolOutOfAlphabet) {
		t.Fatalf("err = %v, want ErrSymbolOutOfAlphabet", err)
	}
}

func TestBuildHistogramRejectsBadAlphabetSize(t *testing.T) {
	_, err := BuildHistogram(nil, 0)
	if !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("err = %v, want ErrInvalidDistribution", err)
	}
	_, err = BuildHistogram(nil, 257)
	if !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("err = %v, want ErrInvalidDistribution", err)
	}
}
