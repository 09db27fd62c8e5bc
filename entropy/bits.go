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

import "math/bits"

// highestBit returns floor(log2(n)). The C original relies on
// _BitScanReverse, which is undefined for n == 0; callers here must only
// ever invoke it with n >= 1 (guaranteed by the table builders, which skip
// zero-frequency symbols and only call this on a strictly positive
// newState cursor).
func highestBit(n uint32) uint {
	return uint(bits.Len32(n) - 1)
}
