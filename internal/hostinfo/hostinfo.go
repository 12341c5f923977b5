package hostinfo

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyHostname is returned when the source reports an empty name.
var ErrEmptyHostname = errors.New("hostname is empty")

// Resolver looks up the machine's network hostname.
type Resolver struct {
	source func() (string, error)
}

// creates a resolver backed by os.Hostname
func NewResolver() *Resolver {
	return &Resolver{source: os.Hostname}
}

// creates a resolver backed by a custom lookup, used in tests
func NewResolverFunc(source func() (string, error)) *Resolver {
	return &Resolver{source: source}
}

// returns the current hostname; it is resolved on every call so a renamed
// pod is reported correctly
func (r *Resolver) Hostname() (string, error) {
	name, err := r.source()
	if err != nil {
		return "", fmt.Errorf("failed to resolve hostname: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("failed to resolve hostname: %w", ErrEmptyHostname)
	}

	return name, nil
}
