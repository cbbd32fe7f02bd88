// Package wmimpl collects the window backends available on this platform.
package wmimpl

import "github.com/srlehn/riv/wm"

var backends []wm.Backend

// Backends returns new instances of the platform's window backends.
func Backends() []wm.Backend {
	return append([]wm.Backend(nil), backends...)
}

// Register registers the platform's window backends with package wm.
func Register() { wm.Register(Backends()...) }
