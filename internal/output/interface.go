// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

// Emitter defines the interface for writing deduplicated records.
// The two methods correspond to the two output modes: WriteRecord for
// first-seen-order output, WriteCount for counted output.
type Emitter interface {
	// WriteRecord writes one record followed by the delimiter byte.
	WriteRecord(rec []byte) error

	// WriteCount writes "<count> <record>" followed by the delimiter
	// byte. The count-space-record framing is a wire contract relied on
	// by scripts; it must not change.
	WriteCount(count uint64, rec []byte) error

	// Close flushes buffered output and releases any resources.
	// It must be called when all writing is complete.
	Close() error
}
