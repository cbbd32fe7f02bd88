// Package xdg reads the viewer configuration from the XDG config directory.
//
// The file uses the freedesktop.org key file format:
//
//	[Viewer]
//	UpScale=false
//	LowPower=true
//	Backend=x11
//	Resampler=default
//	Debounce=100
//	FallbackSize=1280x720
//	ScreenPercent=90
//	OnRedrawError=skip
package xdg

import (
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rkoesters/xdg/keyfile"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
	"github.com/srlehn/riv/internal/util"
)

const (
	Group = `Viewer`

	KeyUpScale       = `UpScale`
	KeyLowPower      = `LowPower`
	KeyBackend       = `Backend`
	KeyResampler     = `Resampler`
	KeyDebounce      = `Debounce` // milliseconds
	KeyFallbackSize  = `FallbackSize`
	KeyScreenPercent = `ScreenPercent`
	KeyOnRedrawError = `OnRedrawError`

	configFileName = `riv.conf`
)

// Config holds the values of the config file. Keys missing in the file keep
// the defaults; IsSet tells them apart.
type Config struct {
	UpScale       bool
	LowPower      bool
	Backend       string
	Resampler     string
	Debounce      time.Duration
	FallbackSize  image.Point
	ScreenPercent int
	OnRedrawError string

	set map[string]struct{}
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Resampler:     consts.ResizerDefaultName,
		Debounce:      consts.QuiescenceDefault,
		FallbackSize:  image.Pt(consts.FallbackWidth, consts.FallbackHeight),
		ScreenPercent: consts.ScreenPercent,
		OnRedrawError: `fatal`,
		set:           make(map[string]struct{}),
	}
}

// IsSet reports whether key was present in the parsed file.
func (c *Config) IsSet(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.set[key]
	return ok
}

// ConfigPath returns $XDG_CONFIG_HOME/riv/riv.conf.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ``, errors.New(err)
	}
	return filepath.Join(dir, consts.LibraryName, configFileName), nil
}

// Load reads the config file at path. An empty path loads the default
// location, which may be missing.
func Load(path string) (*Config, error) {
	explicit := len(path) > 0
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.New(err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return cfg, nil
}

// Parse reads a config in key file format. Unknown groups and keys are ignored.
func Parse(r io.Reader) (*Config, error) {
	kf, err := keyfile.New(r)
	if err != nil {
		return nil, errors.New(err)
	}
	cfg := Default()
	if !kf.GroupExists(Group) {
		return cfg, nil
	}
	for _, key := range []string{
		KeyUpScale, KeyLowPower, KeyBackend, KeyResampler,
		KeyDebounce, KeyFallbackSize, KeyScreenPercent, KeyOnRedrawError,
	} {
		if !kf.KeyExists(Group, key) {
			continue
		}
		if err := cfg.parseKey(kf, key); err != nil {
			return nil, errors.WrapPrefix(err, Group+`.`+key, 0)
		}
		cfg.set[key] = struct{}{}
	}
	return cfg, nil
}

func (c *Config) parseKey(kf *keyfile.KeyFile, key string) error {
	var err error
	switch key {
	case KeyUpScale:
		c.UpScale, err = kf.Bool(Group, key)
	case KeyLowPower:
		c.LowPower, err = kf.Bool(Group, key)
	case KeyBackend:
		c.Backend, err = kf.String(Group, key)
	case KeyResampler:
		c.Resampler, err = kf.String(Group, key)
	case KeyOnRedrawError:
		c.OnRedrawError, err = kf.String(Group, key)
	case KeyDebounce:
		var ms float64
		if ms, err = kf.Number(Group, key); err == nil {
			if ms < 0 {
				return errors.Errorf(`negative debounce %v`, ms)
			}
			c.Debounce = time.Duration(ms * float64(time.Millisecond))
		}
	case KeyScreenPercent:
		var pct float64
		if pct, err = kf.Number(Group, key); err == nil {
			c.ScreenPercent = util.Clamp(int(pct), 1, 100)
		}
	case KeyFallbackSize:
		c.FallbackSize, err = util.ParseSize(kf.Value(Group, key))
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}
