package markdownview

import (
	"github.com/goliatone/go-markdown-view/internal/logging"
	"github.com/goliatone/go-markdown-view/pkg/interfaces"
	"github.com/goliatone/go-markdown-view/render"
	"github.com/goliatone/go-markdown-view/styles"
)

// Option overrides a collaborator wired by New.
type Option func(*View)

// WithParser substitutes the document parser.
func WithParser(parser interfaces.DocumentParser) Option {
	return func(v *View) {
		if parser != nil {
			v.parser = parser
		}
	}
}

// WithStyleSheet sets the initial style configuration.
func WithStyleSheet(sheet styles.StyleSheet) Option {
	return func(v *View) {
		v.sheet = sheet
	}
}

// WithHighlighter substitutes the syntax-highlight collaborator.
func WithHighlighter(h interfaces.SyntaxHighlighter) Option {
	return func(v *View) {
		v.highlighter = h
	}
}

// WithImageRenderer substitutes the image-loading collaborator.
func WithImageRenderer(r render.ImageRenderer) Option {
	return func(v *View) {
		v.images = r
	}
}

// WithImagePlaceholder substitutes the pending-image renderable.
func WithImagePlaceholder(fn render.PlaceholderFunc) Option {
	return func(v *View) {
		v.imagePlaceholder = fn
	}
}

// WithImageError substitutes the failed-image renderable.
func WithImageError(fn render.ErrorFunc) Option {
	return func(v *View) {
		v.imageError = fn
	}
}

// WithTapLink registers the link-tap callback. It receives the raw href of
// the tapped link, unmodified.
func WithTapLink(fn func(href string)) Option {
	return func(v *View) {
		v.onTapLink = fn
	}
}

// WithTapImage registers the image-tap callback.
func WithTapImage(fn func(src interfaces.ImageSource)) Option {
	return func(v *View) {
		v.onTapImage = fn
	}
}

// WithLoggerProvider wires module loggers from the supplied provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(v *View) {
		v.logger = logging.ViewLogger(provider)
		v.renderLogger = logging.RenderLogger(provider)
	}
}
