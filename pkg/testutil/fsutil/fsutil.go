// Package fsutil wraps spf13/afero for test and production filesystem
// access used by the JMdict ingestor.
package fsutil

import "github.com/spf13/afero"

// NewMemoryFS returns an in-memory filesystem for ingestor tests.
func NewMemoryFS() afero.Fs {
	return afero.NewMemMapFs()
}

// NewOSFS returns a filesystem backed by the real OS, for production use.
func NewOSFS() afero.Fs {
	return afero.NewOsFs()
}
