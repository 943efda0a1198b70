package client

import (
	"errors"
	"fmt"

	"github.com/ifti227i/RideShareX/internal/common"
)

var (
	ErrUnavailable  = fmt.Errorf("server unavailable: %w", common.ErrNetworkUnavailable)
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptyToken   = errors.New("server returned an empty token")
)

// StatusError is a non-2xx response that has no dedicated sentinel.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}
