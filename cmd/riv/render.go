package main

import (
	"github.com/spf13/cobra"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/util"
	"github.com/srlehn/riv/viewer"
	"github.com/srlehn/riv/wm"
	"github.com/srlehn/riv/wm/offscreen"
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&viewportFlag, `viewport`, `1280x720`, `viewport size <w>x<h>`)
}

var renderCmd = &cobra.Command{
	Use:   renderCmdStr + ` FILE OUT`,
	Short: `render the fitted image into a file`,
	Long: `Render the image fitted to a viewport into an image file
without opening a window. The format is chosen by the extension of OUT.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(renderFunc(cmd, args))
	},
}

var (
	renderCmdStr = `render`
	viewportFlag string
)

func renderFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		viewport, err := util.ParseSize(viewportFlag)
		if err != nil {
			return err
		}
		wm.Register(offscreen.New(args[1], viewport))
		return view(cmd, args[0], consts.WindowTitle,
			viewer.SetBackend(consts.BackendOffscreen),
			viewer.SetScreenPercent(100),
		)
	}
}
