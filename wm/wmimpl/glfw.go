//go:build cgo && !noGLFW && (linux || freebsd || windows || darwin)

package wmimpl

import "github.com/srlehn/riv/wm/glfw"

func init() { backends = append(backends, glfw.New()) }
