package syntax

import "github.com/yuin/goldmark/ast"

// KindSpan identifies custom inline span nodes produced by syntax rules.
var KindSpan = ast.NewNodeKind("Span")

// Span is an inline element carrying a tag name ("sub", "sup", ...) with the
// matched content as its text children. The render-tree builder resolves
// styles for it through the same tag lookup as native elements.
type Span struct {
	ast.BaseInline
	Tag string
}

// NewSpan returns a span node for the given element tag.
func NewSpan(tag string) *Span {
	return &Span{Tag: tag}
}

// Kind implements ast.Node.
func (n *Span) Kind() ast.NodeKind {
	return KindSpan
}

// Dump implements ast.Node.
func (n *Span) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Tag": n.Tag}, nil)
}
