package api

import (
	"errors"
	"fmt"
)

// ErrServerUnreachable marks a transport failure: the request never produced
// an HTTP response. Callers surface a generic message and do not retry.
var ErrServerUnreachable = errors.New("server not reachable")

// ErrSessionExpired marks an HTTP 401. Callers must clear the stored session.
var ErrSessionExpired = errors.New("session expired, please login again")

// ErrTokensExhausted marks an HTTP 402: the account has no scan tokens left.
// The session stays valid.
var ErrTokensExhausted = errors.New("no tokens left, contact admin")

// APIError is any other non-2xx response, carrying the server's detail
// message when one was provided.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
