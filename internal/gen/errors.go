package gen

import "errors"

var (
	ErrConfig    = errors.New("invalid generator config")
	ErrExhausted = errors.New("no qualifying pattern found")
)
