package render

import (
	"github.com/goliatone/go-markdown-view/pkg/interfaces"
	"github.com/goliatone/go-markdown-view/styles"
)

// Built-in fallback captions used when no placeholder/error collaborator is
// configured.
const (
	placeholderCaption = "Loading image"
	errorCaption       = "Error loading image"
)

// ImageRenderer supplies the renderable content for an image. The builder
// does not wait on loading: implementations return a placeholder immediately
// and refresh the display through their own update mechanism. Errors are
// terminal for the single image and surface through the error fallback.
type ImageRenderer interface {
	RenderImage(src interfaces.ImageSource) (Node, error)
}

// PlaceholderFunc produces the renderable shown while an image is pending.
type PlaceholderFunc func(src interfaces.ImageSource) Node

// ErrorFunc produces the renderable shown when an image failed to load.
type ErrorFunc func(src interfaces.ImageSource, err error) Node

func defaultPlaceholder(interfaces.ImageSource) Node {
	return &Text{Content: placeholderCaption, Style: styles.Style{Italic: styles.Bool(true)}}
}

func defaultError(interfaces.ImageSource, error) Node {
	return &Text{Content: errorCaption, Style: styles.Style{Italic: styles.Bool(true)}}
}
