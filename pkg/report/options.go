package report

import (
	"io/fs"
	"strings"
)

// Option configures the template backed renderers before construction.
type Option func(*config)

type config struct {
	templateDir string
	templateFS  fs.FS
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// embedded bundle. The directory layout mirrors the bundle, so overrides live
// under a templates/ subdirectory.
func WithTemplatesDir(dir string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(dir)
	}
}

// WithTemplatesFS loads templates from the given filesystem instead of the
// embedded bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

func applyOptions(options []Option) config {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
