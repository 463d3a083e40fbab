// Package highlight provides the default syntax-highlight collaborator,
// backed by the chroma lexer library.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/goliatone/go-markdown-view/pkg/interfaces"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "github"

// Config captures the options exposed by the chroma adapter.
type Config struct {
	// Theme names a registered chroma style. New rejects unknown names.
	Theme string
}

// Highlighter implements interfaces.SyntaxHighlighter using chroma.
// Instances are stateless and safe to share across builds.
type Highlighter struct {
	style *chroma.Style
}

var _ interfaces.SyntaxHighlighter = (*Highlighter)(nil)

// New constructs a chroma-backed highlighter.
func New(cfg Config) (*Highlighter, error) {
	theme := strings.TrimSpace(cfg.Theme)
	if theme == "" {
		theme = DefaultTheme
	}
	// Get falls back silently on unknown names, so check the registry
	// directly to surface misconfigured themes.
	style, ok := chromastyles.Registry[theme]
	if !ok {
		return nil, fmt.Errorf("highlight: unknown chroma style %q", theme)
	}
	return &Highlighter{style: style}, nil
}

// Highlight tokenises code with the lexer registered for language and maps
// each token onto a styled span. Unknown languages use chroma's fallback
// lexer, which emits the code as plain spans.
func (h *Highlighter) Highlight(code string, language string) ([]interfaces.HighlightedSpan, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("highlight: tokenise: %w", err)
	}

	var spans []interfaces.HighlightedSpan
	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		entry := h.style.Get(token.Type)
		span := interfaces.HighlightedSpan{
			Text:   token.Value,
			Bold:   entry.Bold == chroma.Yes,
			Italic: entry.Italic == chroma.Yes,
		}
		if entry.Colour.IsSet() {
			span.Color = entry.Colour.String()
		}
		spans = append(spans, span)
	}
	return spans, nil
}
