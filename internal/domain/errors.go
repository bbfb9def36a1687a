package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRateLimited = errors.New("meta api rate limited")
	ErrUpstream    = errors.New("meta api error")
)

type UpstreamErrorKind string

const (
	KindRateLimited   UpstreamErrorKind = "RateLimited"
	KindUpstreamError UpstreamErrorKind = "UpstreamError"
)

// UpstreamError é o erro tipado devolvido pelo cliente da Meta.
// O prefixo RATE_LIMIT: da mensagem é mantido porque a UI depende dele.
type UpstreamError struct {
	Kind      UpstreamErrorKind
	Code      int
	Message   string
	Operation string
	Err       error
}

func NewRateLimitedError(operation string, code int, message string) *UpstreamError {
	return &UpstreamError{Kind: KindRateLimited, Code: code, Message: message, Operation: operation}
}

func NewUpstreamError(operation string, code int, message string, err error) *UpstreamError {
	return &UpstreamError{Kind: KindUpstreamError, Code: code, Message: message, Operation: operation, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.Kind == KindRateLimited {
		return fmt.Sprintf("RATE_LIMIT: %s", e.Message)
	}

	return fmt.Sprintf("Meta API Error (%s): %s", e.Operation, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.Kind == KindRateLimited
	case ErrUpstream:
		return true
	}

	return false
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}
