// Package config holds the functional-options configuration shared by
// semantic/batch and cmd/semanticdump, in the same style as
// analyzer.Option/analyzer/option.go: a struct of defaults plus With*
// constructors that mutate it.
package config

import (
	"path/filepath"
	"strings"
)

// Config controls how a project is walked and how its report is rendered.
type Config struct {
	// Recursive walks nested directories. Mirrors
	// inspector/info.Config.RecursivePackages.
	Recursive bool

	// SkipTests excludes *.test.*/*.spec.* files from the walk.
	SkipTests bool

	// IgnoreDirs names directories never descended into regardless of
	// Recursive (node_modules and .git by default). ShouldSkipDir also
	// skips every dot-directory, whatever this list holds.
	IgnoreDirs []string

	// Format selects the report.Emitter ("yaml" or "json").
	Format string

	// Concurrency bounds how many files are extracted in parallel by
	// semantic/batch. Zero means "pick a sane default".
	Concurrency int
}

// Option mutates a Config under construction.
type Option func(*Config)

// Default returns the baseline configuration: recursive, tests included,
// node_modules and dot-directories skipped, YAML output.
func Default() *Config {
	return &Config{
		Recursive:  true,
		SkipTests:  false,
		IgnoreDirs: []string{"node_modules", ".git"},
		Format:     "yaml",
	}
}

// New builds a Config from Default plus the given options.
func New(opts ...Option) *Config {
	c := Default()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithRecursive toggles whether sub-directories are walked.
func WithRecursive(recursive bool) Option {
	return func(c *Config) { c.Recursive = recursive }
}

// WithSkipTests toggles whether test/spec files are excluded.
func WithSkipTests(skip bool) Option {
	return func(c *Config) { c.SkipTests = skip }
}

// WithIgnoreDirs overrides the set of directories never walked into.
func WithIgnoreDirs(dirs ...string) Option {
	return func(c *Config) { c.IgnoreDirs = dirs }
}

// WithFormat selects the report output format.
func WithFormat(format string) Option {
	return func(c *Config) { c.Format = format }
}

// WithConcurrency bounds per-file extraction parallelism.
func WithConcurrency(n int) Option {
	return func(c *Config) { c.Concurrency = n }
}

// ShouldSkipDir reports whether name (a base name, not a path) must be
// skipped: it is listed in IgnoreDirs or it is a dot-directory. Recursive
// is not consulted here.
func (c *Config) ShouldSkipDir(name string) bool {
	for _, ignored := range c.IgnoreDirs {
		if name == ignored {
			return true
		}
	}
	return len(name) > 1 && name[0] == '.'
}

// IsTestFile reports whether path looks like a test/spec file that
// SkipTests should exclude, following the naming convention JS/TS
// toolchains use (*.test.ts, *.spec.tsx, ...).
func IsTestFile(path string) bool {
	base := filepath.Base(path)
	return strings.Contains(base, ".test.") || strings.Contains(base, ".spec.")
}
