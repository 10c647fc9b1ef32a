package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:          "mrst",
	Short:        "Build bit-extraction dispatch trees for sparse integer keys",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return err
		}

		log = newLogger(cmd.ErrOrStderr(), lvl)

		return nil
	},
}

// newLogger writes human-readable events; colors only on a terminal.
func newLogger(out io.Writer, lvl zerolog.Level) zerolog.Logger {
	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
}
