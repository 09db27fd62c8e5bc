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

// Package entropy implements a tabled Finite-State Entropy (tANS) codec: a
// single evolving integer state, driven by lookup tables built once from a
// normalized frequency distribution, translates a byte sequence into a
// compact bit stream and back.
//
// Build the tables once per distribution with BuildEncoderTables and
// BuildDecoderTable, then drive as many Encoder/Decoder contexts over them
// as needed; the tables are read-only after construction and safe to share
// across concurrent contexts.
package entropy
