package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	xgxresult "github.com/xgx-io/xgx-result"
)

func newParseCmd() *cobra.Command {
	var (
		format     string
		policyPath string
		logPanics  bool
		showTrace  bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a JSON or YAML document and print the Result",
		Long: `Parse a JSON or YAML document under a call-boundary adapter.

A missing file or malformed content is expected and printed as Err. Any other
failure escalates as a Panic. With --log-panics the panic is logged once at
critical level before the process terminates, and the stderr report is
turned off so it is not printed a second time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = formatFromPath(path)
			}
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q", format)
			}

			opts := defaultParseOptions()
			if policyPath != "" {
				cfg := xgxresult.LoadPolicyConfig(policyPath)
				if cfg.IsErr() {
					return fmt.Errorf("failed to load policy: %w", cfg.UnwrapErr())
				}
				opts = cfg.Unwrap().Options()
			}

			var res xgxresult.Result[any]
			work := func() error {
				res = parseDocument(path, format, opts...)
				return nil
			}
			if logPanics {
				// The logger is the only reporter from here on.
				xgxresult.InstallReportHook(nil)
				xgxresult.LogPanic(xgxresult.NewZerologLogger(newLogger()), work)
			} else {
				_ = work()
			}

			printResult(cmd.OutOrStdout(), res, showTrace)
			if res.IsErr() {
				return fmt.Errorf("%s: %s", path, xgxresult.FormatException(res.UnwrapErr()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Document format (json, yaml); inferred from the extension when empty")
	cmd.Flags().StringVar(&policyPath, "policy", "", "YAML policy file overriding the expected kinds")
	cmd.Flags().BoolVar(&logPanics, "log-panics", false, "Log escalating panics at critical level")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Print the failure trace for Err results")

	return cmd
}

// defaultParseOptions expects the two ways a document can legitimately fail.
func defaultParseOptions() []xgxresult.PolicyOption {
	return []xgxresult.PolicyOption{
		xgxresult.WithExpects(xgxresult.KindFileNotFound, xgxresult.KindParse),
	}
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// parseDocument reads and decodes path. JSON syntax errors classify as parse
// on their own; YAML errors are untyped and get tagged here.
func parseDocument(path, format string, opts ...xgxresult.PolicyOption) xgxresult.Result[any] {
	return xgxresult.Call(func() (any, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var doc any
		switch format {
		case "json":
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, err
			}
		case "yaml":
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return nil, xgxresult.Wrap(xgxresult.KindParse, err, "path", path)
			}
		default:
			return nil, xgxresult.Errorf(xgxresult.KindNotImplemented, "format %q", format)
		}
		return doc, nil
	}, opts...)
}

func printResult(w io.Writer, res xgxresult.Result[any], showTrace bool) {
	if noColor {
		color.NoColor = true
	}
	if res.IsOk() {
		_, _ = color.New(color.FgGreen).Fprintln(w, res.String())
		return
	}
	_, _ = color.New(color.FgRed).Fprintln(w, res.String())
	if showTrace {
		_, _ = fmt.Fprint(w, res.Trace())
		_, _ = fmt.Fprintln(w)
	}
}
