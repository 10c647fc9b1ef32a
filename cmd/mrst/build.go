package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aglyzov/go-mrst/cmd/mrst/casefile"
	"github.com/aglyzov/go-mrst/mrst"
	"github.com/aglyzov/go-mrst/mrst/dot"
)

var buildFlags struct {
	file          string
	format        string
	policy        string
	strategies    []string
	parallelDepth int
	stats         bool
}

var buildCmd = &cobra.Command{
	Use:   "build -f cases.yaml",
	Short: "Build a dispatch tree and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildFlags.format != "text" && buildFlags.format != "dot" {
			return fmt.Errorf("unknown format %q", buildFlags.format)
		}

		f, err := loadCaseFile(buildFlags.file, buildFlags.policy, buildFlags.strategies)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		switch f.Width {
		case 8:
			return buildAndPrint[uint8](out, f)
		case 16:
			return buildAndPrint[uint16](out, f)
		case 32:
			return buildAndPrint[uint32](out, f)
		default:
			return buildAndPrint[uint64](out, f)
		}
	},
}

// loadCaseFile reads the cases and applies the command-line overrides.
func loadCaseFile(path, policy string, strategies []string) (*casefile.File, error) {
	f, err := casefile.Load(path)
	if err != nil {
		return nil, err
	}

	if policy != "" {
		if _, err := mrst.ParsePolicy(policy); err != nil {
			return nil, err
		}
		f.Policy = policy
	}

	if len(strategies) > 0 {
		f.Strategies = strategies
	}

	log.Debug().
		Str("file", path).
		Int("width", f.Width).
		Int("cases", f.Len()).
		Strs("strategies", f.Strategies).
		Str("policy", f.BuildPolicy().String()).
		Msg("case file loaded")

	return f, nil
}

func buildTree[K mrst.Word](f *casefile.File, parallelDepth int) (*mrst.Tree[K, string], error) {
	cases, err := casefile.Cases[K](f)
	if err != nil {
		return nil, err
	}

	strategies, err := casefile.Strategies[K](f)
	if err != nil {
		return nil, err
	}

	return mrst.BuildCases(cases, strategies,
		mrst.WithLogger(log),
		mrst.WithPolicy(f.BuildPolicy()),
		mrst.WithParallelDepth(parallelDepth),
	)
}

func buildAndPrint[K mrst.Word](out io.Writer, f *casefile.File) error {
	tree, err := buildTree[K](f, buildFlags.parallelDepth)
	if err != nil {
		return err
	}

	if buildFlags.format == "dot" {
		return dot.Write(out, tree, nil)
	}

	if err := tree.Dump(out, nil); err != nil {
		return err
	}

	if buildFlags.stats {
		st := tree.Stats()
		_, err = fmt.Fprintf(out, "depth %d, branches %d, cases %d, defaults %d, slots %d\n",
			st.Depth, st.Branches, st.Cases, st.Defaults, st.Slots)
	}

	return err
}

func init() {
	fs := buildCmd.Flags()

	fs.StringVarP(&buildFlags.file, "file", "f", "", "YAML case file")
	fs.StringVar(&buildFlags.format, "format", "text", "output format: text or dot")
	fs.StringVar(&buildFlags.policy, "policy", "", "override the rejection policy: subset or critical")
	fs.StringSliceVarP(&buildFlags.strategies, "strategies", "s", nil, "override the strategies (window, sublow, clz, ctz)")
	fs.IntVar(&buildFlags.parallelDepth, "parallel-depth", 0, "build subtrees concurrently on this many top levels")
	fs.BoolVar(&buildFlags.stats, "stats", false, "print tree statistics after the dump")

	_ = buildCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(buildCmd)
}
