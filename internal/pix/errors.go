package pix

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChecksum  = errors.New("invalid payload checksum")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrFieldNotFound    = errors.New("field not found")
	ErrInvalidRequest   = errors.New("invalid payment request")
)

type FieldError struct {
	Tag string
	Err error
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", fe.Tag, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}
