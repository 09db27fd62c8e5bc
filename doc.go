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

// Package tans defines the shared types used by the tANS (tabled Finite
// State Entropy) codec and its supporting utilities.
//
// The codec proper lives in the entropy sub-package: table construction,
// the streaming encoder and the streaming decoder. This root package holds
// what every caller needs regardless of which part of the codec they drive
// directly: the error taxonomy, and the small collaborators the core
// assumes already ran (histogram construction, signed-byte range
// normalization, and frequency-table rescaling to a power of two).
package tans

// MinTableLog and MaxTableLog bound the tableLog parameter accepted by the
// table builders in the entropy sub-package.
const (
	MinTableLog = 2
	MaxTableLog = 12
)
