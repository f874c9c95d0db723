// Package loaders reads the external artifacts the membership verifier
// depends on.
package loaders

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// membershipKeyFile is the verification key artifact produced by the
// membership circuit's trusted setup.
const membershipKeyFile = "membership_verification_key.json"

// VerificationKeyLoader loads the verification key for the membership
// circuit.
type VerificationKeyLoader interface {
	Load() ([]byte, error)
}

// FSKeyLoader reads the key from a directory on the filesystem.
type FSKeyLoader struct {
	Dir string
}

// Load reads the membership circuit verification key.
func (m FSKeyLoader) Load() ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(m.Dir, membershipKeyFile))
	if err != nil {
		return nil, errors.Wrap(err, "read verification key")
	}
	return b, nil
}
