package shoutcast

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required parameter is missing or
// empty. It is raised before any request is made; match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, reason)
}
