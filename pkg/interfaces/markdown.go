package interfaces

import (
	"github.com/yuin/goldmark/ast"
)

// DocumentParser defines how raw Markdown bytes are turned into a block and
// inline node tree. Implementations must normalise Windows line endings
// before line splitting and should be stateless so callers can reuse a
// single instance across parses without additional locking.
type DocumentParser interface {
	// Parse tokenises source into a node tree. The returned source is the
	// normalised input and must be used to resolve node segments; goldmark
	// nodes reference offsets into it rather than carrying their own text.
	Parse(source []byte) (*NodeTree, error)
}

// NodeTree couples a parsed document root with the normalised source bytes
// its segments point into. Trees are immutable once returned.
type NodeTree struct {
	Root   ast.Node
	Source []byte
}
