package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aglyzov/go-mrst/cmd/mrst/casefile"
	"github.com/aglyzov/go-mrst/mrst"
)

var windowWidth int

var windowCmd = &cobra.Command{
	Use:   "window KEY...",
	Short: "Print the critical window of a key set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := make([]uint64, len(args))

		for i, arg := range args {
			v, err := casefile.ParseKey(arg)
			if err != nil {
				return err
			}
			keys[i] = v
		}

		out := cmd.OutOrStdout()

		switch windowWidth {
		case 8:
			return printWindow[uint8](out, keys)
		case 16:
			return printWindow[uint16](out, keys)
		case 32:
			return printWindow[uint32](out, keys)
		case 64:
			return printWindow[uint64](out, keys)
		}

		return fmt.Errorf("%w: %d", casefile.ErrWidth, windowWidth)
	},
}

func printWindow[K mrst.Word](out io.Writer, raw []uint64) error {
	var (
		limit = uint64(^K(0))
		keys  = make([]K, len(raw))
	)

	for i, key := range raw {
		if key > limit {
			return fmt.Errorf("%w: %d > %d", casefile.ErrKeyRange, key, limit)
		}
		keys[i] = K(key)
	}

	w := mrst.CriticalWindow(keys)

	log.Debug().Stringer("window", w).Int("keys", len(keys)).Msg("critical window")

	_, err := fmt.Fprintf(out, "%s: %d of %d buckets used\n", w, mrst.MappedCardinality[K](keys, w), w.Size())

	return err
}

func init() {
	windowCmd.Flags().IntVarP(&windowWidth, "width", "w", 64, "key width in bits: 8, 16, 32 or 64")

	rootCmd.AddCommand(windowCmd)
}
