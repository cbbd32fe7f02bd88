package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/util"
	"github.com/srlehn/riv/scale"
)

func init() { rootCmd.AddCommand(scaleCmd) }

var scaleCmd = &cobra.Command{
	Use:   scaleCmdStr + ` SOURCE VIEWPORT`,
	Short: `fit an image size into a viewport`,
	Long: `Fit an image size into a viewport while keeping the aspect ratio.

` + scaleUsageStr + `

Smaller images keep their size unless --up-scale is set.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(scaleFunc(cmd, args))
	},
}

var (
	scaleCmdStr   = `scale`
	scaleUsageStr = `usage: ` + os.Args[0] + ` ` + scaleCmdStr + ` <source(<w>x<h>)> <viewport(<w>x<h>)>`
)

func scaleFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		if len(args) != 2 {
			return errors.New(scaleUsageStr)
		}
		src, err := util.ParseSize(args[0])
		if err != nil {
			return errors.WrapPrefix(err, scaleUsageStr, 0)
		}
		viewport, err := util.ParseSize(args[1])
		if err != nil {
			return errors.WrapPrefix(err, scaleUsageStr, 0)
		}
		factor := scale.FitScale(viewport, src, upScaleFlag)
		target := scale.Apply(src, factor)
		fmt.Fprintf(cmd.OutOrStdout(), "%dx%d %g\n", target.X, target.Y, factor)
		return nil
	}
}
