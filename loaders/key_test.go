package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSKeyLoader(t *testing.T) {
	dir := t.TempDir()
	want := []byte(`{"protocol":"groth16"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, membershipKeyFile), want, 0o600))

	got, err := FSKeyLoader{Dir: dir}.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFSKeyLoaderMissing(t *testing.T) {
	_, err := FSKeyLoader{Dir: t.TempDir()}.Load()
	require.Error(t, err)
}
