// Package runtimeconfig holds the view module's runtime configuration and
// its validation rules.
package runtimeconfig

import (
	"errors"
	"strings"
)

// ErrLoggingProviderUnknown indicates an unsupported logging provider name.
var ErrLoggingProviderUnknown = errors.New("mdview config: logging provider is invalid")

// ErrLoggingLevelInvalid indicates an unsupported logging level.
var ErrLoggingLevelInvalid = errors.New("mdview config: logging level is invalid")

// ErrLoggingFormatInvalid indicates an unsupported logging output format.
var ErrLoggingFormatInvalid = errors.New("mdview config: logging format is invalid")

// ErrParserExtensionEmpty indicates a blank entry in the extension list.
var ErrParserExtensionEmpty = errors.New("mdview config: parser extension name is empty")

// Config aggregates parser, image, highlight, and logging settings for the
// view module. Fields intentionally use simple types so host applications
// can unmarshal them from their own configuration sources.
type Config struct {
	Parser    ParserConfig
	Images    ImageConfig
	Highlight HighlightConfig
	Logging   LoggingConfig
}

// ParserConfig captures document parser behaviour.
type ParserConfig struct {
	// Extensions lists named goldmark extensions layered onto the base
	// grammar ("gfm", "table", "strikethrough", ...).
	Extensions []string
	// SuperSub enables the subscript/superscript inline extension set. Off
	// by default: the default extension configuration is empty.
	SuperSub bool
}

// ImageConfig captures image resolution behaviour.
type ImageConfig struct {
	// BaseDir is prefixed to relative local image paths.
	BaseDir string
}

// HighlightConfig captures code block highlighting behaviour.
type HighlightConfig struct {
	Enabled bool
	// Theme names the chroma style used by the default highlighter.
	Theme string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults: GFM tables and strikethrough
// on, supersub inline rules on, highlighting on with the github theme, and
// logging disabled.
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{
			Extensions: []string{"table", "strikethrough", "tasklist"},
			SuperSub:   true,
		},
		Highlight: HighlightConfig{
			Enabled: true,
			Theme:   "github",
		},
		Logging: LoggingConfig{
			Provider: "noop",
			Level:    "info",
			Format:   "json",
		},
	}
}

var (
	validProviders = map[string]struct{}{"": {}, "noop": {}, "gologger": {}}
	validLevels    = map[string]struct{}{"": {}, "trace": {}, "debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {}, "fatal": {}}
	validFormats   = map[string]struct{}{"": {}, "json": {}, "console": {}, "pretty": {}}
)

// Validate checks cross-field consistency and enum membership.
func (c Config) Validate() error {
	for _, name := range c.Parser.Extensions {
		if strings.TrimSpace(name) == "" {
			return ErrParserExtensionEmpty
		}
	}

	if _, ok := validProviders[normalize(c.Logging.Provider)]; !ok {
		return ErrLoggingProviderUnknown
	}
	if _, ok := validLevels[normalize(c.Logging.Level)]; !ok {
		return ErrLoggingLevelInvalid
	}
	if _, ok := validFormats[normalize(c.Logging.Format)]; !ok {
		return ErrLoggingFormatInvalid
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
