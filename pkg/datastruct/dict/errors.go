package dict

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrImmutableWrite  = errors.New("write rejected, use Set")
)
