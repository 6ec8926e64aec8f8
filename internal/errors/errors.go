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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrConflictingDelimiters indicates more than one delimiter
	// selection was supplied (e.g. --null together with --delimiter).
	// Detected before any input byte is read. Maps to exit code 2.
	ErrConflictingDelimiters = errors.New("conflicting delimiter flags")

	// ErrInvalidDelimiter indicates the supplied delimiter is not
	// exactly one byte. Maps to exit code 2.
	ErrInvalidDelimiter = errors.New("delimiter must be a single byte")

	// ErrUnknownDigest indicates an unrecognized digest algorithm name.
	// Maps to exit code 2.
	ErrUnknownDigest = errors.New("unknown digest algorithm")

	// ErrReadInput indicates the input stream could not be read. The run
	// aborts immediately; any output already flushed is partial and must
	// not be treated as a complete result. Maps to exit code 3.
	ErrReadInput = errors.New("failed to read input")

	// ErrWriteOutput indicates the output sink could not be written.
	// Same partial-output caveat as ErrReadInput. Maps to exit code 3.
	ErrWriteOutput = errors.New("failed to write output")

	// ErrTrackerDone indicates a record was offered to a tracker after it
	// finished draining. This is a programming error, not a user error.
	ErrTrackerDone = errors.New("tracker already finished")
)
