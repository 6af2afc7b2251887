// cmd/quickcdc/chunk_cmd.go

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-quickcdc/internal/chunker"
	"github.com/creativeyann17/go-quickcdc/pkg/chunkdir"
	"github.com/creativeyann17/go-quickcdc/pkg/report"
)

func init() {
	rootCmd.AddCommand(chunkCmd())
}

func chunkCmd() *cobra.Command {
	var inputPath string
	var algorithm string
	var targetSize, maxSize, maxDecoded string
	var saltValue string
	var randomSalt bool
	var maxThreads int
	var useGitignore bool
	var decompress bool
	var noMmap bool
	var dedup bool
	var indexCapacity int
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "chunk",
		Short: "Chunk every file under a path and report chunk statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseSize("target", targetSize)
			if err != nil {
				return err
			}
			var maximum int
			if cmd.Flags().Changed("max") {
				if maximum, err = parseSize("max", maxSize); err != nil {
					return err
				}
			}

			opts := &chunkdir.Options{
				InputPath:     inputPath,
				Algorithm:     algorithm,
				TargetSize:    target,
				MaxSize:       maximum,
				RandomSalt:    true,
				MaxThreads:    maxThreads,
				UseGitignore:  useGitignore,
				Decompress:    decompress,
				NoMmap:        noMmap,
				Dedup:         dedup,
				IndexCapacity: indexCapacity,
				Verbose:       verbose,
				Quiet:         quiet,
				Logger:        logger,
			}

			if cmd.Flags().Changed("salt") {
				if cmd.Flags().Changed("random-salt") && randomSalt {
					return chunkdir.ErrSaltConflict
				}
				if opts.Salt, err = parseSalt(saltValue); err != nil {
					return err
				}
				opts.RandomSalt = false
			} else {
				// --random-salt=false pins the zero salt
				opts.RandomSalt = randomSalt
			}

			if decompress {
				opts.MaxDecodedSize = defaultMaxDecodedSize()
				if cmd.Flags().Changed("max-decoded") {
					n, err := parseSize("max-decoded", maxDecoded)
					if err != nil {
						return err
					}
					opts.MaxDecodedSize = int64(n)
				}
			}

			// Validate and set defaults
			if err := opts.Validate(); err != nil {
				return err
			}

			// Logging helper
			log := func(format string, args ...interface{}) {
				if !quiet {
					fmt.Printf(format+"\n", args...)
				}
			}

			log("Processing files under path: %s", opts.InputPath)
			log("  Algorithm:   %s", opts.Algorithm)
			log("  Target size: %d bytes", opts.TargetSize)
			log("  Max size:    %d bytes", opts.MaxSize)
			log("  Max threads: %d", opts.MaxThreads)
			if !opts.RandomSalt {
				log("  Salt:        0x%016x (pinned)", opts.Salt)
			}
			if decompress {
				log("  Mode:        DECOMPRESS (.zst, .gz, .xz decoded, up to %s each)", report.FormatSize(uint64(opts.MaxDecodedSize)))
			}
			if dedup {
				log("  Mode:        DEDUP (BLAKE3 digests)")
			}
			if verbose {
				log("  Mode:        VERBOSE (detailed output)")
			}
			log("")

			// Progress bars only on an interactive terminal
			var progressCb chunkdir.ProgressCallback
			var progress *mpb.Progress

			if !quiet && !verbose && isTerminal(os.Stdout) {
				progressCb, progress = chunkdir.ProgressBarCallback()
			}

			if verbose && logger.GetLevel() < logrus.InfoLevel {
				// Per-file lines are logged at info level
				logger.SetLevel(logrus.InfoLevel)
			}

			result, err := chunkdir.Run(opts, progressCb)

			// Wait for progress bars to finish rendering
			if progress != nil {
				progress.Wait()
			}

			if err != nil {
				return err
			}

			// Final report
			fmt.Println()
			fmt.Print(chunkdir.FormatSummary(result))

			if len(result.Errors) > 0 {
				return fmt.Errorf("finished with %d errors", len(result.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file or directory (required)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(chunker.DefaultAlgorithm),
		"Chunking algorithm ("+strings.Join(chunker.Algorithms(), ", ")+")")
	cmd.Flags().StringVar(&targetSize, "target", "128000", "Target chunk size (e.g. 128000, 64k, 1MiB)")
	cmd.Flags().StringVar(&maxSize, "max", "524288", "Maximum chunk size, at least twice the target (default 524288 or 4x target)")
	cmd.Flags().StringVar(&saltValue, "salt", "", "Pin the comparator salt (decimal or 0x hex) for reproducible runs")
	cmd.Flags().BoolVar(&randomSalt, "random-salt", true, "Draw one random salt for the run")
	cmd.Flags().IntVarP(&maxThreads, "threads", "t", runtime.NumCPU(), "Max concurrent threads")
	cmd.Flags().BoolVar(&useGitignore, "gitignore", false, "Skip paths matched by .gitignore files")
	cmd.Flags().BoolVar(&decompress, "decompress", false, "Chunk the decoded content of .zst, .gz and .xz files")
	cmd.Flags().StringVar(&maxDecoded, "max-decoded", "", "Size limit of one decoded file (default: a quarter of system memory)")
	cmd.Flags().BoolVar(&noMmap, "no-mmap", false, "Read files into memory instead of mapping them")
	cmd.Flags().BoolVar(&dedup, "dedup", false, "Hash chunks with BLAKE3 and report repeated chunks")
	cmd.Flags().IntVar(&indexCapacity, "index-capacity", 0, "Max digests kept for --dedup (0 = unlimited)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// defaultMaxDecodedSize allows a quarter of system memory per decoded file,
// falling back to the library default when memory cannot be read
func defaultMaxDecodedSize() int64 {
	totalKB, err := getTotalSystemMemory()
	if err != nil || totalKB == 0 {
		logger.WithError(err).Debug("system memory unknown, using default decode limit")
		return chunkdir.DefaultMaxDecodedSize
	}
	return int64(totalKB * 1024 / 4)
}
