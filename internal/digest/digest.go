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

// Package digest selects the 64-bit hash function used by the
// digest-backed uniqueness index. The algorithm is chosen once at
// startup and never changes during a run.
package digest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
)

// Algorithm identifies a 64-bit digest function.
type Algorithm uint8

const (
	// XXH3 is the default algorithm. Fastest on the short records that
	// dominate typical line-oriented input.
	XXH3 Algorithm = iota

	// XXH64 is the classic xxHash variant, kept for reproducibility with
	// pipelines that already standardized on it.
	XXH64

	// Murmur3 is the 64-bit half of MurmurHash3 (x64_128).
	Murmur3
)

// String returns the algorithm name as accepted by Parse.
func (a Algorithm) String() string {
	switch a {
	case XXH3:
		return "xxh3"
	case XXH64:
		return "xxh64"
	case Murmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// Parse maps an algorithm name to its Algorithm value. Unrecognized
// names return ErrUnknownDigest.
func Parse(name string) (Algorithm, error) {
	switch name {
	case "xxh3":
		return XXH3, nil
	case "xxh64":
		return XXH64, nil
	case "murmur3":
		return Murmur3, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, uniqerrors.ErrUnknownDigest)
	}
}

// Sum64 hashes data with the selected algorithm.
func (a Algorithm) Sum64(data []byte) uint64 {
	switch a {
	case XXH64:
		return xxhash.Sum64(data)
	case Murmur3:
		return murmur3.Sum64(data)
	default:
		return xxh3.Hash(data)
	}
}
