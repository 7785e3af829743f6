package docbuild

import "errors"

var (
	ErrValidation      = errors.New("docbuild: validation failed")
	ErrLimitExceeded   = errors.New("docbuild: limit exceeded")
	ErrArchiveTooLarge = errors.New("docbuild: archive exceeds 32-bit zip limits")
)
