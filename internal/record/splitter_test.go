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

package record

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
)

func collect(t *testing.T, input string, delim byte) []string {
	t.Helper()

	s := NewSplitter(strings.NewReader(input), delim)
	var records []string
	for s.Scan() {
		records = append(records, string(s.Bytes()))
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return records
}

func TestSplitter_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delim byte
		want  []string
	}{
		{
			name:  "empty input yields no records",
			input: "",
			delim: '\n',
			want:  nil,
		},
		{
			name:  "single record with trailing delimiter",
			input: "foo\n",
			delim: '\n',
			want:  []string{"foo"},
		},
		{
			name:  "single record without trailing delimiter",
			input: "foo",
			delim: '\n',
			want:  []string{"foo"},
		},
		{
			name:  "multiple records",
			input: "foo\nbar\nbaz\n",
			delim: '\n',
			want:  []string{"foo", "bar", "baz"},
		},
		{
			name:  "final partial record without trailing delimiter",
			input: "foo\nbar",
			delim: '\n',
			want:  []string{"foo", "bar"},
		},
		{
			name:  "adjacent delimiters yield an empty record",
			input: "foo\n\nbar\n",
			delim: '\n',
			want:  []string{"foo", "", "bar"},
		},
		{
			name:  "lone delimiter yields one empty record",
			input: "\n",
			delim: '\n',
			want:  []string{""},
		},
		{
			name:  "two delimiters yield two empty records",
			input: "\n\n",
			delim: '\n',
			want:  []string{"", ""},
		},
		{
			name:  "nul delimiter",
			input: "foo\x00bar\x00",
			delim: 0,
			want:  []string{"foo", "bar"},
		},
		{
			name:  "arbitrary byte delimiter",
			input: "a,b,,c",
			delim: ',',
			want:  []string{"a", "b", "", "c"},
		},
		{
			name:  "newline is ordinary content under another delimiter",
			input: "a\nb,c\n",
			delim: ',',
			want:  []string{"a\nb", "c\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.input, tt.delim)
			if len(got) != len(tt.want) {
				t.Fatalf("record count = %d, want %d (%q)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitter_RecordLargerThanBuffer(t *testing.T) {
	// Force the accumulation path by making a record several times the
	// read buffer size.
	long := strings.Repeat("x", 3*defaultBufferSize+17)
	input := "first\n" + long + "\nlast\n"

	got := collect(t, input, '\n')
	want := []string{"first", long, "last"}

	if len(got) != len(want) {
		t.Fatalf("record count = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("record[%d] mismatch (len %d, want len %d)", i, len(got[i]), len(want[i]))
		}
	}
}

// errReader yields some data, then fails.
type errReader struct {
	data []byte
	err  error
}

func (r *errReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	return 0, r.err
}

func TestSplitter_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	s := NewSplitter(&errReader{data: []byte("ok\npart"), err: boom}, '\n')

	if !s.Scan() {
		t.Fatal("expected first record before the read error")
	}
	if got := string(s.Bytes()); got != "ok" {
		t.Errorf("first record = %q, want %q", got, "ok")
	}

	if s.Scan() {
		t.Error("expected Scan to fail once the reader errors")
	}
	if err := s.Err(); !errors.Is(err, uniqerrors.ErrReadInput) {
		t.Errorf("Err() = %v, want ErrReadInput", err)
	}

	// The splitter stays stopped after an error.
	if s.Scan() {
		t.Error("Scan should keep returning false after an error")
	}
}

func BenchmarkSplitter(b *testing.B) {
	var input bytes.Buffer
	for i := 0; i < 10000; i++ {
		input.WriteString("some-moderately-sized-record-payload\n")
	}
	data := input.Bytes()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSplitter(bytes.NewReader(data), '\n')
		for s.Scan() {
			_ = s.Bytes()
		}
	}
}
