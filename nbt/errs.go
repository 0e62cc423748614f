package nbt

import "errors"

var (
	ErrUnknownKind = errors.New("unknown kind")
)
