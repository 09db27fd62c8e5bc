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

// spreadSymbols assigns each of the 2^tableLog table slots to a symbol,
// visiting slots in the fixed step-13-style recurrence shared by the
// encoder-table and decoder-table builders: pos starts at 0 and advances by
// step = (T>>1)+(T>>3)+3 modulo T after every slot write. Symbol s fills
// exactly freqs[s] slots, symbols are placed in ascending order.
//
// step must be odd for this to visit every slot exactly once (T is always a
// power of two, so an odd step is coprime with it). That holds for most
// tableLog values in range but not all arithmetically - tableLog == 3 is a
// genuine counterexample (T=8: T>>1=4, T>>3=1, step=4+1+3=8) - so the
// invariant is checked at runtime rather than assumed.
func spreadSymbols(freqs []uint32, tableLog int) ([]byte, error) {
	tableSize := 1 << uint(tableLog)
	mask := tableSize - 1
	step := (tableSize >> 1) + (tableSize >> 3) + 3
	if step&1 == 0 {
		return nil, fmt.Errorf("%w: spreader step %d is even for tableLog %d (step must be coprime with the table size)", tans.ErrInvalidTableLog, step, tableLog)
	}

	table := make([]byte, tableSize)
	pos := 0
	for sym, f := range freqs {
		for i := uint32(0); i < f; i++ {
			table[pos] = byte(sym)
			pos = (pos + step) & mask
		}
	}
	return table, nil
}
