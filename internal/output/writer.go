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

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
)

// Writer emits delimiter-terminated records to an io.Writer through a
// buffer. It is owned by a single goroutine for the duration of a run;
// output reaches the sink no later than Close.
type Writer struct {
	bw        *bufio.Writer
	delim     byte
	count     int
	scratch   [20]byte // enough for a base-10 uint64
	closeFunc func() error
}

// NewWriter returns a Writer that emits records to w separated by delim.
func NewWriter(w io.Writer, delim byte) *Writer {
	return &Writer{
		bw:    bufio.NewWriter(w),
		delim: delim,
	}
}

// NewFileWriter returns a Writer that emits records to the named file.
// The caller must call Close to flush and close the file.
func NewFileWriter(filename string, delim byte) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		bw:        bufio.NewWriter(file),
		delim:     delim,
		closeFunc: file.Close,
	}, nil
}

// WriteRecord writes rec followed by the delimiter byte.
func (w *Writer) WriteRecord(rec []byte) error {
	if _, err := w.bw.Write(rec); err != nil {
		return fmt.Errorf("%v: %w", err, uniqerrors.ErrWriteOutput)
	}
	if err := w.bw.WriteByte(w.delim); err != nil {
		return fmt.Errorf("%v: %w", err, uniqerrors.ErrWriteOutput)
	}
	w.count++
	return nil
}

// WriteCount writes "<count> <rec>" followed by the delimiter byte.
func (w *Writer) WriteCount(count uint64, rec []byte) error {
	if _, err := w.bw.Write(strconv.AppendUint(w.scratch[:0], count, 10)); err != nil {
		return fmt.Errorf("%v: %w", err, uniqerrors.ErrWriteOutput)
	}
	if err := w.bw.WriteByte(' '); err != nil {
		return fmt.Errorf("%v: %w", err, uniqerrors.ErrWriteOutput)
	}
	return w.WriteRecord(rec)
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered output and closes the underlying file, if any.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		if w.closeFunc != nil {
			_ = w.closeFunc() // flush error takes precedence
		}
		return fmt.Errorf("%v: %w", err, uniqerrors.ErrWriteOutput)
	}
	if w.closeFunc != nil {
		if err := w.closeFunc(); err != nil {
			return fmt.Errorf("%v: %w", err, uniqerrors.ErrWriteOutput)
		}
	}
	return nil
}
