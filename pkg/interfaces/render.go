package interfaces

import "net/url"

// ResourceKind classifies an image source string.
type ResourceKind string

const (
	// ResourceKindData is an inline data URI ("data:image/png;base64,...").
	ResourceKindData ResourceKind = "data"
	// ResourceKindFile is a path on the local filesystem.
	ResourceKindFile ResourceKind = "file"
	// ResourceKindHTTP is a remote http/https URL.
	ResourceKindHTTP ResourceKind = "http"
	// ResourceKindResource is a logical resource identifier resolved by the
	// host. Malformed sources degrade to this kind rather than failing.
	ResourceKindResource ResourceKind = "resource"
)

// ImageSource is the parsed form of an image destination handed to image
// collaborators and tap callbacks.
type ImageSource struct {
	Kind ResourceKind
	// Path is the source string with any dimension fragment stripped and,
	// for relative file paths, the configured base directory applied.
	Path string
	// URI is the parsed source; nil when the raw string could not be parsed.
	URI *url.URL
	// Width and Height are optional rendering hints taken from a trailing
	// "#WxH" fragment. Nil when unspecified.
	Width  *float64
	Height *float64
}

// HighlightedSpan is one styled run of code produced by a syntax
// highlighter. Colours are "#rrggbb"; an empty colour means unstyled.
type HighlightedSpan struct {
	Text   string
	Color  string
	Bold   bool
	Italic bool
}

// SyntaxHighlighter formats code block contents. Returning an error makes
// the builder fall back to the plain code style; it never aborts a build.
type SyntaxHighlighter interface {
	Highlight(code string, language string) ([]HighlightedSpan, error)
}
