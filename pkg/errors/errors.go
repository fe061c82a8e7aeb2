package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedToken    = errors.New("malformed token: payload segment missing")
	ErrDecode            = errors.New("token segment is not valid base64url")
	ErrParse             = errors.New("token segment is not valid JSON")
	ErrEmptyToken        = errors.New("token is empty")
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
	ErrInvalidConfig     = fmt.Errorf("invalid configuration")
)
