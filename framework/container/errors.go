package container

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownService is matched by every UnknownServiceError via errors.Is.
var ErrUnknownService = errors.New("unknown service")

// UnknownServiceError reports a declared dependency with no registered
// instance. It always means a service was never wired up.
type UnknownServiceError struct {
	Target  string
	Service ServiceIdentifier
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("container: [%s] depends on UNKNOWN service [%s]", e.Target, e.Service)
}

// Is makes errors.Is(err, ErrUnknownService) true.
func (e *UnknownServiceError) Is(target error) bool { return target == ErrUnknownService }
