//go:build linux

package wmimpl

import "github.com/srlehn/riv/wm/framebuffer"

func init() { backends = append(backends, framebuffer.New(``)) }
