package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/logx"
	"github.com/srlehn/riv/metrics"

	// resamplers selectable with --resampler
	_ "github.com/srlehn/riv/resize/bild"
	_ "github.com/srlehn/riv/resize/caire"
	_ "github.com/srlehn/riv/resize/gift"
	_ "github.com/srlehn/riv/resize/imaging"
	_ "github.com/srlehn/riv/resize/kimaging"
	_ "github.com/srlehn/riv/resize/nfnt"
	_ "github.com/srlehn/riv/resize/rdefault"
	_ "github.com/srlehn/riv/resize/rez"
	_ "github.com/srlehn/riv/resize/xdraw"
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]) + ` [flags] FILE`,
	Short: `riv shows an image fitted to the screen`,
	Long: `riv shows an image fitted to the screen.

Keys: q/Esc quit, r redraw, u toggle up-scaling.`,
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Args:             cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(1)
		}
		run(showFunc(cmd, args))
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors, log at debug level`)
	pf.BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	pf.StringVar(&logFileFlag, `log-file`, ``, `log file (default stderr)`)
	pf.StringVar(&metricsAddrFlag, `metrics-addr`, ``, `serve prometheus metrics on this address`)
	viewerFlags(pf)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	debugFlag       bool
	silentFlag      bool
	logFileFlag     string
	metricsAddrFlag string
	cpuProfileFlag  string
	cpuProfilefunc  func(profileFile string) func()
)

func run(fn func() error) {
	var err error
	var exitCode int
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					fmt.Fprintln(os.Stderr, r)
					debug.PrintStack()
				}
			}
		}
		os.Exit(exitCode)
	}()
	if fn == nil {
		err = errors.NilParam()
	} else {
		if len(cpuProfileFlag) > 0 && cpuProfilefunc != nil {
			if stop := cpuProfilefunc(cpuProfileFlag); stop != nil {
				defer stop()
			}
		}
		err = fn()
	}
	if err != nil {
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
}

// newLogHandler returns the handler for the viewer logger. The returned
// function closes the log file.
func newLogHandler() (slog.Handler, func(), error) {
	lvl := slog.LevelInfo
	if debugFlag {
		lvl = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if len(logFileFlag) > 0 {
		f, err := os.OpenFile(logFileFlag, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closeFn, errors.New(err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	} else if silentFlag {
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: debugFlag, Level: lvl})
	return h, closeFn, nil
}

// serveMetrics starts the metrics endpoint if requested. The returned
// function stops it.
func serveMetrics(logger *slog.Logger) (func(), error) {
	if len(metricsAddrFlag) == 0 {
		return func() {}, nil
	}
	srv, err := metrics.Serve(metricsAddrFlag, logger)
	if err != nil {
		return func() {}, err
	}
	logx.Info(`serving metrics`, logx.Prov(logger), `addr`, srv.Addr())
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
