// Command xgxcheck parses documents through xgx-result adapters and reports
// the outcome as Ok, Err or an escalating Panic.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Version is the xgxcheck version reported by --version.
var Version = "0.1.0-dev"

var (
	logLevel string
	noColor  bool
)

func main() {
	defer xgxresult.ReportUnhandled()

	rootCmd := &cobra.Command{
		Use:           "xgxcheck",
		Short:         "Run document parsing through xgx-result adapters",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newKindsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the console logger used for panic reports.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
