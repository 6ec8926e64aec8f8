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

// Package dedup implements the uniqueness tracker at the heart of
// sirseer-uniq: a single forward pass over a record stream that emits
// each distinct record once (OrderedUnique) or tallies occurrences per
// distinct record (Counting).
//
// OrderedUnique streams: a record is emitted the moment it is first
// seen, so output begins before the input ends and the emission order is
// exactly first-appearance order. By default the index stores only a
// 64-bit digest per distinct record, never the record bytes; with Exact
// set it stores full record content instead, trading memory for zero
// collision risk.
//
// Counting cannot stream: counts are only final at end-of-stream, so the
// index is drained into the emitter by Finish. The drain order is Go map
// iteration order, which is deliberately left unspecified and may differ
// between runs. Scripts must treat counted output as an unordered set.
package dedup

import (
	"github.com/sirseerhq/sirseer-uniq/internal/digest"
	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
	"github.com/sirseerhq/sirseer-uniq/internal/output"
)

// Mode selects the tracking strategy. It is fixed for the lifetime of a
// Tracker.
type Mode int

const (
	// OrderedUnique emits each distinct record once, in first-seen order.
	OrderedUnique Mode = iota

	// Counting emits each distinct record with its occurrence count, in
	// unspecified order, only after the input is exhausted.
	Counting
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case OrderedUnique:
		return "ordered-unique"
	case Counting:
		return "counting"
	default:
		return "unknown"
	}
}

// Tracker lifecycle states. A tracker moves Idle → Reading on the first
// record, Reading → Draining → Done through Finish (Counting), or
// straight to Done (OrderedUnique, which has nothing to drain).
type state int

const (
	stateIdle state = iota
	stateReading
	stateDraining
	stateDone
)

// Options configures a Tracker.
type Options struct {
	// Mode selects OrderedUnique or Counting.
	Mode Mode

	// Digest is the hash algorithm backing the OrderedUnique index.
	// Ignored in Counting mode and when Exact is set.
	Digest digest.Algorithm

	// Exact keys the OrderedUnique index on full record content instead
	// of a 64-bit digest. Uses memory proportional to the total size of
	// distinct records, but rules out hash collisions.
	Exact bool
}

// Tracker consumes records one at a time and forwards distinct results
// to an Emitter. It is exclusively owned by a single goroutine for the
// duration of a run; the index it builds is never shared or persisted.
type Tracker struct {
	mode    Mode
	state   state
	emitter output.Emitter

	// OrderedUnique index: exactly one of these is populated.
	digests map[uint64]struct{}
	exact   map[string]struct{}
	algo    digest.Algorithm

	// Counting index. Keys own the sole copy of each distinct record's
	// bytes.
	counts map[string]uint64
}

// NewTracker returns a Tracker that forwards results to emitter.
func NewTracker(emitter output.Emitter, opts Options) *Tracker {
	t := &Tracker{
		mode:    opts.Mode,
		emitter: emitter,
		algo:    opts.Digest,
	}
	switch {
	case opts.Mode == Counting:
		t.counts = make(map[string]uint64)
	case opts.Exact:
		t.exact = make(map[string]struct{})
	default:
		t.digests = make(map[uint64]struct{})
	}
	return t
}

// Process observes one record. In OrderedUnique mode a first-seen record
// is forwarded to the emitter immediately and a duplicate is dropped
// silently; in Counting mode the record's count is incremented and
// nothing is emitted. rec may be reused by the caller after Process
// returns: the tracker copies whatever it needs to retain.
func (t *Tracker) Process(rec []byte) error {
	switch t.state {
	case stateIdle:
		t.state = stateReading
	case stateReading:
	default:
		return uniqerrors.ErrTrackerDone
	}

	if t.mode == Counting {
		// string(rec) only allocates when the key is first inserted.
		t.counts[string(rec)]++
		return nil
	}

	if t.exact != nil {
		if _, seen := t.exact[string(rec)]; seen {
			return nil
		}
		t.exact[string(rec)] = struct{}{}
	} else {
		sum := t.algo.Sum64(rec)
		if _, seen := t.digests[sum]; seen {
			return nil
		}
		t.digests[sum] = struct{}{}
	}
	return t.emitter.WriteRecord(rec)
}

// Finish marks end-of-stream. In Counting mode it drains the index into
// (record, count) pairs on the emitter; in OrderedUnique mode all output
// already happened inline. After Finish the tracker accepts no further
// records. Finish does not flush or close the emitter.
func (t *Tracker) Finish() error {
	if t.state == stateDone {
		return nil
	}

	if t.mode == Counting {
		t.state = stateDraining
		for rec, n := range t.counts {
			if err := t.emitter.WriteCount(n, []byte(rec)); err != nil {
				t.state = stateDone
				return err
			}
		}
	}

	t.state = stateDone
	return nil
}

// Distinct returns the number of distinct records observed so far.
func (t *Tracker) Distinct() int {
	switch {
	case t.counts != nil:
		return len(t.counts)
	case t.exact != nil:
		return len(t.exact)
	default:
		return len(t.digests)
	}
}
