package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-markdown-view/pkg/interfaces"
	"github.com/goliatone/go-markdown-view/syntax"
)

// Options configures the engine built by NewParser.
type Options struct {
	// Extensions lists named goldmark extensions. Unknown names are ignored;
	// an empty list means no extensions, matching the default extension
	// configuration.
	Extensions []string
	// Syntax is the inline rule bundle layered onto the base grammar.
	Syntax syntax.ExtensionSet
}

// Parser implements interfaces.DocumentParser using the goldmark engine.
// The engine is built once; a Parser is stateless afterwards so callers can
// reuse a single instance across parses without additional locking.
type Parser struct {
	md goldmark.Markdown
}

var _ interfaces.DocumentParser = (*Parser)(nil)

// NewParser constructs a parser honouring the supplied options.
func NewParser(opts Options) *Parser {
	return &Parser{md: newEngine(opts)}
}

// Parse satisfies interfaces.DocumentParser. Windows line endings are
// normalised before line splitting; the returned tree references the
// normalised source.
func (p *Parser) Parse(source []byte) (*interfaces.NodeTree, error) {
	normalized := NormalizeLineEndings(source)
	root := p.md.Parser().Parse(text.NewReader(normalized))
	return &interfaces.NodeTree{Root: root, Source: normalized}, nil
}

// NormalizeLineEndings rewrites \r\n sequences to \n. The returned slice is
// a copy when a rewrite happened and the input otherwise.
func NormalizeLineEndings(source []byte) []byte {
	if !bytes.Contains(source, []byte{'\r', '\n'}) {
		return source
	}
	return bytes.ReplaceAll(source, []byte{'\r', '\n'}, []byte{'\n'})
}

// newEngine builds a goldmark.Markdown from the supplied options. The
// mapping is intentionally conservative; unsupported extension names are
// ignored.
func newEngine(opts Options) goldmark.Markdown {
	extenders := collectExtensions(opts.Extensions)
	if !opts.Syntax.Empty() {
		extenders = append(extenders, opts.Syntax)
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(gparser.WithAttribute()),
	}
	if len(extenders) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(extenders...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
