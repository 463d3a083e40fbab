package markdownview

import (
	"strings"

	"github.com/goliatone/go-markdown-view/internal/runtimeconfig"
)

var (
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrParserExtensionEmpty   = runtimeconfig.ErrParserExtensionEmpty
)

type (
	Config          = runtimeconfig.Config
	ParserConfig    = runtimeconfig.ParserConfig
	ImageConfig     = runtimeconfig.ImageConfig
	HighlightConfig = runtimeconfig.HighlightConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the module defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}
