package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/srlehn/riv/internal/encoder"
	"github.com/srlehn/riv/resize"
	"github.com/srlehn/riv/source"
	"github.com/srlehn/riv/wm"
	"github.com/srlehn/riv/wm/wmimpl"
)

func init() { rootCmd.AddCommand(listCmd) }

var listCmd = &cobra.Command{
	Use:   listCmdStr,
	Short: `list window backends, resamplers and image formats`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(listFunc(cmd, args))
	},
}

var listCmdStr = `list`

func listFunc(cmd *cobra.Command, _ []string) func() error {
	return func() error {
		wmimpl.Register()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "backend\tavailable\tlow power")
		for _, name := range wm.Names() {
			b := wm.ByName(name)
			if b == nil {
				continue
			}
			fmt.Fprintf(w, "%s\t%t\t%t\n", name, b.Available(), b.LowPower())
		}
		if err := w.Flush(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nresamplers: %s\n", strings.Join(resize.Names(), `, `))
		fmt.Fprintf(out, "input formats: %s\n", strings.Join(source.Formats(), `, `))
		fmt.Fprintf(out, "output formats: %s\n", strings.Join(encoder.Formats(), `, `))
		return nil
	}
}
