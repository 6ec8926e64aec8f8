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

package main

import (
	"errors"
	"fmt"
	"os"

	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
)

var version = "dev"

func main() {
	rootCmd := newRootCommand(os.Stdin, os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, uniqerrors.ErrConflictingDelimiters) ||
		errors.Is(err, uniqerrors.ErrInvalidDelimiter) ||
		errors.Is(err, uniqerrors.ErrUnknownDigest) {
		return 2 // Configuration/usage errors
	}

	if errors.Is(err, uniqerrors.ErrReadInput) ||
		errors.Is(err, uniqerrors.ErrWriteOutput) {
		return 3 // I/O errors
	}

	return 1 // General error
}
