package gutter

import "errors"

var (
	ErrNilOp          = errors.New("gutter: nil op")
	ErrLeafOutOfRange = errors.New("gutter: leaf index out of range")
	ErrRangeInverted  = errors.New("gutter: inverted leaf range")
)
