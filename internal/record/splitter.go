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

// Package record splits a byte stream into delimiter-separated records.
//
// A record is the byte sequence between two occurrences of the configured
// delimiter byte; the delimiter itself is never part of a record. The
// Splitter is a forward-only, read-once iterator over an io.Reader: it
// buffers at most one partially built record at a time, so its memory use
// is bounded by the longest record in the stream, not by the stream size.
package record

import (
	"bufio"
	"fmt"
	"io"

	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
)

// defaultBufferSize is the initial size of the underlying read buffer.
// Records longer than the buffer are accumulated across multiple reads.
const defaultBufferSize = 64 * 1024

// Splitter iterates over delimiter-separated records in a byte stream.
// The usage pattern follows bufio.Scanner:
//
//	s := record.NewSplitter(r, '\n')
//	for s.Scan() {
//	    process(s.Bytes())
//	}
//	if err := s.Err(); err != nil {
//	    return err
//	}
//
// Splitting rules:
//   - Every occurrence of the delimiter ends a record; the delimiter byte
//     is excluded from the record.
//   - A trailing delimiter at end-of-stream does not produce an extra
//     empty record.
//   - A stream ending without a trailing delimiter still yields its final
//     partial record.
//   - Two adjacent delimiters yield an empty (zero-length) record.
//   - An empty stream yields no records.
type Splitter struct {
	reader *bufio.Reader
	delim  byte

	rec  []byte // current record, valid until the next Scan call
	buf  []byte // accumulator for records spanning multiple reads
	err  error
	done bool
}

// NewSplitter returns a Splitter that reads records from r, using delim
// as the record separator.
func NewSplitter(r io.Reader, delim byte) *Splitter {
	return &Splitter{
		reader: bufio.NewReaderSize(r, defaultBufferSize),
		delim:  delim,
	}
}

// Scan advances to the next record. It returns false at end-of-stream or
// on read error; the two cases are distinguished by Err.
func (s *Splitter) Scan() bool {
	if s.done {
		return false
	}

	s.buf = s.buf[:0]
	for {
		chunk, err := s.reader.ReadSlice(s.delim)
		switch err {
		case nil:
			chunk = chunk[:len(chunk)-1] // strip the delimiter
			if len(s.buf) == 0 {
				// Common case: the whole record fit in the read buffer.
				s.rec = chunk
			} else {
				s.buf = append(s.buf, chunk...)
				s.rec = s.buf
			}
			return true

		case bufio.ErrBufferFull:
			// Record longer than the read buffer; keep accumulating.
			s.buf = append(s.buf, chunk...)

		case io.EOF:
			s.done = true
			s.buf = append(s.buf, chunk...)
			if len(s.buf) == 0 {
				// Clean end-of-stream right after a delimiter (or an
				// empty stream): no trailing empty record.
				return false
			}
			s.rec = s.buf
			return true

		default:
			s.done = true
			s.err = fmt.Errorf("%v: %w", err, uniqerrors.ErrReadInput)
			return false
		}
	}
}

// Bytes returns the current record. The returned slice is only valid
// until the next call to Scan; callers that retain a record must copy it.
func (s *Splitter) Bytes() []byte {
	return s.rec
}

// Err returns the first read error encountered, or nil if the stream
// ended cleanly.
func (s *Splitter) Err() error {
	return s.err
}
