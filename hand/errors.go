package hand

import "errors"

var (
	ErrDragActive      = errors.New("a drag session is already active")
	ErrIndexOutOfRange = errors.New("card index out of range")
)
