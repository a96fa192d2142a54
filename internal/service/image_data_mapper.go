package service

import (
	"fmt"
	"net/http"
)

// MapImageData accepts a non-empty body with status 200.
func MapImageData(body []byte, statusCode int) ([]byte, error) {
	if statusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: statusCode}
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ErrInvalidData)
	}
	return body, nil
}
