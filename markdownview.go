// Package markdownview turns Markdown source into an ordered tree of
// renderable nodes a host UI toolkit can lay out. The View type owns the
// parse/build lifecycle: it re-parses when the source or style configuration
// changes and keeps link interaction handles alive exactly as long as the
// sequence that references them.
package markdownview

import (
	"github.com/goliatone/go-markdown-view/internal/logging"
	"github.com/goliatone/go-markdown-view/internal/logging/gologger"
	"github.com/goliatone/go-markdown-view/internal/runtimeconfig"
	"github.com/goliatone/go-markdown-view/pkg/interfaces"
)

// Logger exports the logging contract for consumers of the view package.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// DocumentParser exports the document parser contract.
type DocumentParser = interfaces.DocumentParser

// SyntaxHighlighter exports the code highlighting contract.
type SyntaxHighlighter = interfaces.SyntaxHighlighter

// ImageSource exports the parsed image source descriptor.
type ImageSource = interfaces.ImageSource

// newLoggerProvider builds the provider selected by the logging config.
func newLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch normalized := normalizeProvider(cfg.Provider); normalized {
	case "", "noop":
		return noopProvider{}, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, runtimeconfig.ErrLoggingProviderUnknown
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
