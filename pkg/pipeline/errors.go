package pipeline

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotCallable reports a default call step whose target is neither a
	// Func nor a Caller.
	ErrNotCallable = errors.New("step target is not callable")
	// ErrNotResolvable reports an operation step whose target does not
	// expose named operations.
	ErrNotResolvable = errors.New("step target does not expose named operations")
	// ErrUnknownOperation reports an operation step whose target does not
	// know the configured operation name.
	ErrUnknownOperation = errors.New("unknown operation on step target")
)
