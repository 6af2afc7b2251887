// cmd/quickcdc/split_cmd.go

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-quickcdc/internal/chunker"
	"github.com/creativeyann17/go-quickcdc/internal/source"
)

func init() {
	rootCmd.AddCommand(splitCmd())
}

func splitCmd() *cobra.Command {
	var algorithm string
	var targetSize, maxSize string
	var saltValue string
	var decompress bool
	var noHash bool

	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Print the chunks of one file: offset, length and BLAKE3 digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseSize("target", targetSize)
			if err != nil {
				return err
			}
			maximum, err := parseSize("max", maxSize)
			if err != nil {
				return err
			}
			salt, err := parseSalt(saltValue)
			if err != nil {
				return err
			}

			c, err := chunker.New(chunker.Params{
				Algorithm:  chunker.Algorithm(algorithm),
				TargetSize: target,
				MaxSize:    maximum,
				Salt:       salt,
				Hash:       !noHash,
			})
			if err != nil {
				return err
			}

			buf, err := source.Open(args[0], source.OpenOptions{Decompress: decompress})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			defer buf.Close()

			logger.WithFields(logrus.Fields{
				"file":    args[0],
				"bytes":   len(buf.Data),
				"mapped":  buf.Mapped,
				"decoded": buf.Decoded,
			}).Debug("splitting")

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()

			return c.SplitWithCallback(buf.Data, func(chunk chunker.Chunk) error {
				if noHash {
					_, err := fmt.Fprintf(w, "%d\t%d\n", chunk.Offset, chunk.OrigSize)
					return err
				}
				_, err := fmt.Fprintf(w, "%d\t%d\t%s\n", chunk.Offset, chunk.OrigSize, hex.EncodeToString(chunk.Hash[:]))
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(chunker.DefaultAlgorithm),
		"Chunking algorithm ("+strings.Join(chunker.Algorithms(), ", ")+")")
	cmd.Flags().StringVar(&targetSize, "target", "128000", "Target chunk size (e.g. 128000, 64k, 1MiB)")
	cmd.Flags().StringVar(&maxSize, "max", "524288", "Maximum chunk size, at least twice the target")
	cmd.Flags().StringVar(&saltValue, "salt", "0", "Comparator salt (decimal or 0x hex)")
	cmd.Flags().BoolVar(&decompress, "decompress", false, "Split the decoded content of .zst, .gz and .xz files")
	cmd.Flags().BoolVar(&noHash, "no-hash", false, "Print offsets and lengths only")

	return cmd
}
