package jsonish

import (
	"github.com/K-Mistele/jsonish-sub001/coerce"
	"github.com/K-Mistele/jsonish-sub001/rawparser"
)

// Config bundles the knobs a caller can tune across the raw-parser
// cascade and the coercer, kept as one struct (rather than the
// rawparser.Options/coerce.Context split the two packages use
// internally) so Parse has a single settings surface.
type Config struct {
	rawparser.Options
	AllowNoneAsNull bool
}

// DefaultConfig mirrors rawparser.DefaultOptions with the coercer's
// None/Null-string relaxation left off, matching §9's Open Question 2
// default.
func DefaultConfig() Config {
	return Config{Options: rawparser.DefaultOptions()}
}

// Option mutates a Config in place; Parse and ParseInto both accept a
// variadic list of these.
type Option func(*Config)

// WithStreaming marks the input as a still-arriving prefix rather than a
// finished document (rawparser.Options.IsDone = false).
func WithStreaming() Option {
	return func(c *Config) { c.IsDone = false }
}

// WithoutMarkdown disables fenced-code-block extraction.
func WithoutMarkdown() Option {
	return func(c *Config) { c.AllowMarkdown = false }
}

// WithoutMultiObject disables the bracket-depth multi-object scan.
func WithoutMultiObject() Option {
	return func(c *Config) { c.AllowMultiObject = false }
}

// WithoutFixes disables the Fixing State Machine as a whole-input
// strategy. The multi-object scan, when enabled, still repairs each
// bracketed chunk it finds, and a fenced block's contents are still
// parsed with fixes on.
func WithoutFixes() Option {
	return func(c *Config) { c.AllowFixes = false }
}

// WithNoneAsNull opts into treating a bare "None"/"null"/"Null" string as
// null when it reaches a Nullable schema position.
func WithNoneAsNull() Option {
	return func(c *Config) { c.AllowNoneAsNull = true }
}

func (c Config) newContext() *coerce.Context {
	ctx := coerce.NewContext(c.IsDone)
	ctx.AllowNoneAsNull = c.AllowNoneAsNull
	return ctx
}
