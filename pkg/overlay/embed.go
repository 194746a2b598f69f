package overlay

import (
	"embed"
	"io/fs"
)

//go:embed profiles/*
var embeddedProfiles embed.FS

// EmbeddedFS returns the bundled overlay profiles. Callers may pass this
// filesystem to LoadFS to start from the default profile.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedProfiles, "profiles")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}

// DefaultStore loads the bundled profiles. A failure means the bundle itself
// is broken, so it panics rather than returning an error.
func DefaultStore() *Store {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return store
}
