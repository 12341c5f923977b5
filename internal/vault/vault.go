package vault

import (
	"errors"
	"io/fs"
	"fmt"
	"os"
)

// DefaultSecretPath is where the Vault agent sidecar renders the service config.
const DefaultSecretPath = "/vault/secrets/config"

// Probe reports whether the secret file has been injected. Only the
// presence of the file is checked; its contents are never read.
type Probe struct {
	path string
}

// creates a probe for path, falling back to DefaultSecretPath when empty
func NewProbe(path string) *Probe {
	if path == "" {
		path = DefaultSecretPath
	}

	return &Probe{path: path}
}

// returns the path being probed
func (p *Probe) Path() string {
	return p.path
}

// reports whether the secret file exists. A missing file is the expected
// state outside the cluster and is not an error; any other stat failure
// reports false together with the cause.
func (p *Probe) Injected() (bool, error) {
	_, err := os.Stat(p.path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("failed to stat vault secret: %w", err)
}
