//go:build unix && !noX11 && !android && !darwin && !js

package wmimpl

import "github.com/srlehn/riv/wm/x11"

func init() { backends = append(backends, x11.New(``)) }
