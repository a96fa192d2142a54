package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid = errors.New("invalid")

	ErrConnectivity = errors.New("connectivity")
	ErrInvalidData  = errors.New("invalid data")

	ErrCacheRead  = errors.New("cache read failed")
	ErrCacheWrite = errors.New("cache write failed")

	ErrImageDataNotFound = errors.New("image data not found")
	ErrImageDataLoad     = errors.New("image data load failed")
	ErrImageDataSave     = errors.New("image data save failed")
)

// StatusError is returned by mappers for a response status they do not accept.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrInvalidData
}
