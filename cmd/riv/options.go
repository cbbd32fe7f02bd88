package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/util"
	"github.com/srlehn/riv/internal/xdg"
	"github.com/srlehn/riv/viewer"
)

var (
	upScaleFlag       bool
	lowPowerFlag      bool
	backendFlag       string
	resamplerFlag     string
	debounceFlag      time.Duration
	fallbackSizeFlag  string
	screenPercentFlag int
	onRedrawErrFlag   string
	configFlag        string
)

func viewerFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&upScaleFlag, `up-scale`, `u`, false, `enlarge images smaller than the window`)
	fs.BoolVarP(&lowPowerFlag, `low-power`, `l`, false, `prefer software and low power presentation`)
	fs.StringVarP(&backendFlag, `backend`, `b`, ``, `window backend (see "list")`)
	fs.StringVarP(&resamplerFlag, `resampler`, `r`, consts.ResizerDefaultName, `resampling filter (see "list")`)
	fs.DurationVar(&debounceFlag, `debounce`, consts.QuiescenceDefault, `quiet time after the last resize before redrawing`)
	fs.StringVar(&fallbackSizeFlag, `fallback-size`, `1280x720`, `window size without a detected display`)
	fs.IntVar(&screenPercentFlag, `screen-percent`, consts.ScreenPercent, `share of the screen for the initial window`)
	fs.StringVar(&onRedrawErrFlag, `on-redraw-error`, viewer.RedrawFatal.String(), `"fatal" or "skip" failed redraws`)
	fs.StringVar(&configFlag, `config`, ``, `config file (default $XDG_CONFIG_HOME/riv/riv.conf)`)
}

// viewerOptions merges the config file into the flags not set on the
// command line and returns the resulting viewer options.
func viewerOptions(cmd *cobra.Command) ([]viewer.Option, error) {
	cfg, err := xdg.Load(configFlag)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	fromFile := func(flag, key string) bool { return !fl.Changed(flag) && cfg.IsSet(key) }
	if fromFile(`up-scale`, xdg.KeyUpScale) {
		upScaleFlag = cfg.UpScale
	}
	if fromFile(`low-power`, xdg.KeyLowPower) {
		lowPowerFlag = cfg.LowPower
	}
	if fromFile(`backend`, xdg.KeyBackend) {
		backendFlag = cfg.Backend
	}
	if fromFile(`resampler`, xdg.KeyResampler) {
		resamplerFlag = cfg.Resampler
	}
	if fromFile(`debounce`, xdg.KeyDebounce) {
		debounceFlag = cfg.Debounce
	}
	fallbackSize, err := util.ParseSize(fallbackSizeFlag)
	if err != nil {
		return nil, err
	}
	if fromFile(`fallback-size`, xdg.KeyFallbackSize) {
		fallbackSize = cfg.FallbackSize
	}
	if fromFile(`screen-percent`, xdg.KeyScreenPercent) {
		screenPercentFlag = cfg.ScreenPercent
	}
	if fromFile(`on-redraw-error`, xdg.KeyOnRedrawError) {
		onRedrawErrFlag = cfg.OnRedrawError
	}
	policy, err := viewer.ParseRedrawErrorPolicy(onRedrawErrFlag)
	if err != nil {
		return nil, err
	}
	return []viewer.Option{
		viewer.SetUpScale(upScaleFlag),
		viewer.SetLowPower(lowPowerFlag),
		viewer.SetBackend(backendFlag),
		viewer.SetResizer(resamplerFlag),
		viewer.SetQuiescence(debounceFlag),
		viewer.SetFallbackSize(fallbackSize),
		viewer.SetScreenPercent(screenPercentFlag),
		viewer.SetRedrawErrorPolicy(policy),
	}, nil
}
