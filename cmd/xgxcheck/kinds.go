package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	xgxresult "github.com/xgx-io/xgx-result"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the built-in failure kinds and how the default policy treats them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printKinds(cmd.OutOrStdout())
			return nil
		},
	}
}

func printKinds(w io.Writer) {
	if noColor {
		color.NoColor = true
	}
	policy := xgxresult.DefaultPolicy()
	escalates := color.New(color.FgRed).SprintFunc()
	expected := color.New(color.FgGreen).SprintFunc()

	for _, k := range xgxresult.BuiltinKinds() {
		var verdict string
		switch {
		case k == xgxresult.KindAssertion:
			verdict = escalates("passes through")
		case policy.Expected(xgxresult.New(k, "")):
			verdict = expected("expected")
		default:
			verdict = escalates("escalates")
		}
		parent := ""
		if k != xgxresult.KindAny {
			parent = string(k.Parent())
		}
		_, _ = fmt.Fprintf(w, "%-16s %-12s %s\n", k, parent, verdict)
	}
}
