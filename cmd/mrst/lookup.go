package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aglyzov/go-mrst/cmd/mrst/casefile"
	"github.com/aglyzov/go-mrst/mrst"
)

var lookupFlags struct {
	file   string
	policy string
}

var lookupCmd = &cobra.Command{
	Use:   "lookup -f cases.yaml KEY...",
	Short: "Dispatch keys through the tree built from a case file",
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

		f, err := loadCaseFile(lookupFlags.file, lookupFlags.policy, nil)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		switch f.Width {
		case 8:
			return lookupKeys[uint8](out, f, keys)
		case 16:
			return lookupKeys[uint16](out, f, keys)
		case 32:
			return lookupKeys[uint32](out, f, keys)
		default:
			return lookupKeys[uint64](out, f, keys)
		}
	},
}

func lookupKeys[K mrst.Word](out io.Writer, f *casefile.File, keys []uint64) error {
	tree, err := buildTree[K](f, 0)
	if err != nil {
		return err
	}

	limit := uint64(^K(0))

	for _, key := range keys {
		label := "default"

		if key <= limit {
			if val, ok := tree.Lookup(K(key)); ok {
				label = val
			}
		}

		if _, err := fmt.Fprintf(out, "%d -> %s\n", key, label); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupFlags.file, "file", "f", "", "YAML case file")
	lookupCmd.Flags().StringVar(&lookupFlags.policy, "policy", "", "override the rejection policy: subset or critical")

	_ = lookupCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(lookupCmd)
}
