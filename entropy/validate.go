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

func validateTableLog(tableLog int) error {
	if tableLog < tans.MinTableLog || tableLog > tans.MaxTableLog {
		return fmt.Errorf("%w: tableLog %d (must be in [%d,%d])", tans.ErrInvalidTableLog, tableLog, tans.MinTableLog, tans.MaxTableLog)
	}
	return nil
}

func validateDistribution(freqs []uint32, tableLog int) error {
	if len(freqs) == 0 || len(freqs) > 256 {
		return fmt.Errorf("%w: alphabet size %d (must be in [1,256])", tans.ErrInvalidDistribution, len(freqs))
	}
	tableSize := uint32(1) << uint(tableLog)
	var sum uint64
	for _, f := range freqs {
		sum += uint64(f)
	}
	if sum != uint64(tableSize) {
		return fmt.Errorf("%w: frequencies sum to %d, want %d", tans.ErrInvalidDistribution, sum, tableSize)
	}
	return nil
}
