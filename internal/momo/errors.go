package momo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid payment input")
	ErrMissingSignature = errors.New("momo callback is missing its signature")
	ErrInvalidSignature = errors.New("momo callback signature does not match")
)

// GatewayError is returned when MoMo answers with a non-2xx status, or with a
// 2xx status whose errorCode is not zero.
type GatewayError struct {
	StatusCode int
	Body       string
	ErrorCode  int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.ErrorCode != 0 {
		return fmt.Sprintf("momo gateway rejected the request: %s (status: %d, error_code: %d)", e.Message, e.StatusCode, e.ErrorCode)
	}
	
	return fmt.Sprintf("momo gateway returned non-success status: %d, body: %s", e.StatusCode, e.Body)
}

// ParseError wraps a response body that could not be decoded.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse momo response: %v, body: %s", e.Err, e.Body)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
