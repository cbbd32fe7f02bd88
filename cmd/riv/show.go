package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/logx"
	"github.com/srlehn/riv/rgb"
	"github.com/srlehn/riv/source"
	"github.com/srlehn/riv/viewer"
	"github.com/srlehn/riv/wm/wmimpl"
)

func init() { rootCmd.AddCommand(showCmd) }

var showCmd = &cobra.Command{
	Use:   showCmdStr + ` FILE`,
	Short: `show an image in a window`,
	Long: `Show an image in a window fitted to the screen.

The window backend is chosen automatically unless --backend is given.
Keys: q/Esc quit, r redraw, u toggle up-scaling.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(showFunc(cmd, args))
	},
}

var showCmdStr = `show`

func showFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		wmimpl.Register()
		return view(cmd, args[0], consts.WindowTitle+` - `+filepath.Base(args[0]))
	}
}

// view loads the image at path and runs the viewer until it is closed.
func view(cmd *cobra.Command, path, title string, opts ...viewer.Option) error {
	h, closeLog, err := newLogHandler()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := slog.New(h)

	stopMetrics, err := serveMetrics(logger)
	if err != nil {
		return err
	}
	defer stopMetrics()

	viewerOpts, err := viewerOptions(cmd)
	if err != nil {
		return err
	}
	img, err := logx.TimeIt2(func() (*rgb.Image, error) { return source.Load(path) }, `decode`, logx.Prov(logger), `path`, path)
	if err != nil {
		return err
	}
	viewerOpts = append(viewerOpts,
		viewer.SetSLogger(h, !silentFlag || len(logFileFlag) > 0),
		viewer.SetTitle(title),
	)
	st, err := viewer.New(img, append(viewerOpts, opts...)...)
	if err != nil {
		return err
	}
	defer st.Close()
	return viewer.Run(st)
}
