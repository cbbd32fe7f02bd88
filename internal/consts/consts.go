package consts

import (
	"errors"
	"time"
)

var (
	ErrNotImplemented = errors.New(`not implemented`)
	ErrNilReceiver    = errors.New(`nil receiver`)
	ErrNilParam       = errors.New(`nil parameter`)
	ErrNilImage       = errors.New(`nil image`)

	ErrWindowCreation   = errors.New(`unable to create window`)
	ErrImageDecode      = errors.New(`unable to decode image`)
	ErrImageProcessing  = errors.New(`unable to process image`)
	ErrPresentationInit = errors.New(`unable to initialize presentation`)
	ErrNoDisplay        = errors.New(`no display detected`)
	ErrBufferSize       = errors.New(`frame buffer size mismatch`)
)

const (
	LibraryName = `riv`
	WindowTitle = `RIV`

	// share of the primary monitor used for the initial viewport
	ScreenPercent = 90

	QuiescenceDefault = 100 * time.Millisecond

	FallbackWidth  = 1280
	FallbackHeight = 720

	MaxConsecutiveRedrawErrors = 3

	BackendX11         = `x11`
	BackendGLFW        = `glfw`
	BackendFramebuffer = `framebuffer`
	BackendOffscreen   = `offscreen`

	ResizerDefaultName = `default`
)
