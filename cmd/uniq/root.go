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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-uniq/internal/config"
	"github.com/sirseerhq/sirseer-uniq/internal/dedup"
	"github.com/sirseerhq/sirseer-uniq/internal/digest"
	uniqerrors "github.com/sirseerhq/sirseer-uniq/internal/errors"
	"github.com/sirseerhq/sirseer-uniq/internal/output"
	"github.com/sirseerhq/sirseer-uniq/internal/record"
)

// newRootCommand builds the CLI. Input is read from in and, unless
// --output is given, results are written to out. Help and version
// requests are handled by cobra and never touch the engine.
func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var (
		count      bool
		delimiter  string
		null       bool
		exact      bool
		digestAlgo string
		outputFile string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "sirseer-uniq",
		Short: "Remove duplicate records from a stream in a single pass",
		Long: `sirseer-uniq reads delimiter-separated records from standard input and
removes duplicates in one linear pass, without sorting.

By default each distinct record is written exactly once, in the order of
its first appearance, as soon as it is first seen. With --count, each
distinct record is instead written as "<count> <record>" after the input
ends; the order of counted output is unspecified and may differ between
runs.

Records are compared by exact byte content. The default index stores a
64-bit xxh3 digest per distinct record, which keeps memory independent
of record length at the cost of a vanishing hash-collision probability
(~1e-10 for a billion distinct records). Use --exact to index full
record content instead. Counted output always indexes full content.`,
		Example: `  # Deduplicate lines, preserving first-seen order
  cat access.log | sirseer-uniq

  # Count occurrences per distinct line
  cat access.log | sirseer-uniq --count

  # NUL-delimited records, e.g. from find -print0
  find . -print0 | sirseer-uniq --null`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions{
				count:      count,
				null:       null,
				exact:      exact,
				exactSet:   cmd.Flags().Changed("exact"),
				outputFile: outputFile,
				configFile: configFile,
			}
			if cmd.Flags().Changed("delimiter") {
				opts.delimiter = &delimiter
			}
			if cmd.Flags().Changed("digest") {
				opts.digest = &digestAlgo
			}
			return run(in, out, opts)
		},
	}

	cmd.Flags().BoolVarP(&count, "count", "c", false, "output the number of times each record occurred")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "\n", "record delimiter, a single byte")
	cmd.Flags().BoolVarP(&null, "null", "0", false, "use the NUL byte as the record delimiter")
	cmd.Flags().BoolVar(&exact, "exact", false, "index full record content instead of a 64-bit digest")
	cmd.Flags().StringVar(&digestAlgo, "digest", "xxh3", "digest algorithm: xxh3, xxh64, or murmur3")
	cmd.Flags().StringVar(&outputFile, "output", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path")

	return cmd
}

// runOptions carries the resolved flag surface into run. Pointer fields
// distinguish "flag given" from "use config/default": flags beat
// environment, which beats the config file.
type runOptions struct {
	count      bool
	delimiter  *string
	null       bool
	exact      bool
	exactSet   bool
	digest     *string
	outputFile string
	configFile string
}

// run resolves configuration, then drives the pipeline: splitter →
// tracker → emitter. All configuration errors surface before the first
// input byte is read.
func run(in io.Reader, out io.Writer, opts runOptions) error {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	delim, err := resolveDelimiter(cfg, opts)
	if err != nil {
		return err
	}

	algoName := cfg.Defaults.Digest
	if opts.digest != nil {
		algoName = *opts.digest
	}
	algo, err := digest.Parse(algoName)
	if err != nil {
		return err
	}

	exact := cfg.Defaults.Exact
	if opts.exactSet {
		exact = opts.exact
	}

	var writer *output.Writer
	if opts.outputFile == "" {
		writer = output.NewWriter(out, delim)
	} else {
		writer, err = output.NewFileWriter(opts.outputFile, delim)
		if err != nil {
			return err
		}
	}

	mode := dedup.OrderedUnique
	if opts.count {
		mode = dedup.Counting
	}
	tracker := dedup.NewTracker(writer, dedup.Options{
		Mode:   mode,
		Digest: algo,
		Exact:  exact,
	})

	if err := process(in, delim, tracker); err != nil {
		_ = writer.Close() // best effort; the run already failed
		return err
	}
	return writer.Close()
}

// process runs the forward pass over the input stream.
func process(in io.Reader, delim byte, tracker *dedup.Tracker) error {
	splitter := record.NewSplitter(in, delim)
	for splitter.Scan() {
		if err := tracker.Process(splitter.Bytes()); err != nil {
			return err
		}
	}
	if err := splitter.Err(); err != nil {
		return err
	}
	return tracker.Finish()
}

// resolveDelimiter applies the delimiter precedence rules and rejects
// conflicting selections before any input is read.
func resolveDelimiter(cfg *config.Config, opts runOptions) (byte, error) {
	if opts.null && opts.delimiter != nil {
		return 0, fmt.Errorf("--null conflicts with --delimiter: %w", uniqerrors.ErrConflictingDelimiters)
	}
	if opts.null {
		return 0, nil
	}
	if opts.delimiter != nil {
		d := *opts.delimiter
		if len(d) != 1 {
			return 0, fmt.Errorf("%q (use --null for NUL-delimited input): %w", d, uniqerrors.ErrInvalidDelimiter)
		}
		return d[0], nil
	}
	return config.ParseDelimiter(cfg.Defaults.Delimiter)
}
