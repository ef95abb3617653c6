package tts

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/status"
)

// Kind classifies a failure for reporting and metrics
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig       // Invalid, missing or conflicting flags
	KindIO           // Unreadable input or unwritable output
	KindRemote       // Any failure returned by the synthesis service
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Error wraps an underlying failure with its kind and the operation that produced it
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindRemote {
		if s, ok := status.FromError(e.Err); ok {
			return fmt.Sprintf("%s: %s: %s", e.Op, s.Code(), s.Message())
		}
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error
func NewConfigError(op string, err error) error {
	return &Error{Kind: KindConfig, Op: op, Err: err}
}

// NewIOError creates a local I/O error
func NewIOError(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// NewRemoteError creates a remote service error
func NewRemoteError(op string, err error) error {
	return &Error{Kind: KindRemote, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
