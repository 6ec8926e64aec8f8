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

// Package main implements the sirseer-uniq command-line interface.
// This tool removes duplicate records from a byte stream in a single
// linear pass, replacing the "sort | uniq" idiom without the O(n log n)
// cost or the working set of a sort.
//
// The CLI supports:
//   - First-seen-order deduplication (default behavior)
//   - Per-record occurrence counting with the --count flag
//   - Newline, NUL, or arbitrary single-byte record delimiters
//   - Customizable output destinations (stdout or file)
//   - Defaults from a YAML config file and environment variables
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	sirseer-uniq [flags] < input
//
// Example:
//
//	cat access.log | sirseer-uniq --count --output tally.txt
//
// Exit codes:
//   - 0: Success (an empty input is a success)
//   - 1: General error
//   - 2: Configuration error (e.g. conflicting delimiter flags)
//   - 3: Input/output error; output already flushed is partial and
//     must not be treated as a complete result
package main
