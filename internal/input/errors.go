package input

import "errors"

var (
	ErrHeader        = errors.New("bad header line")
	ErrCountMismatch = errors.New("wrong number of data lines")
	ErrEmptyPattern  = errors.New("empty pattern")
	ErrAnswerRow     = errors.New("bad answers row")
)
