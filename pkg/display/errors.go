package display

import "errors"

var (
	ErrWindowInit  = errors.New("display: could not initialize window")
	ErrSizeChanged = errors.New("display: framebuffer size does not match window")
)
