// Package render builds the displayable tree for a markdown document: an
// ordered sequence of renderable nodes in document order, with per-element
// styles resolved, link interaction handles attached, and image sources
// classified for the host's image collaborator.
package render

import (
	"github.com/goliatone/go-markdown-view/pkg/interfaces"
	"github.com/goliatone/go-markdown-view/styles"
)

// Node is one unit of displayable content. Concrete nodes are plain data;
// a layout container arranges them spatially without further interpretation.
type Node interface {
	renderNode()
}

// Text is an inline run of formatted text. Link is non-nil when the run sits
// inside a link element; tapping the run should call Link.Tap.
type Text struct {
	Content string
	Style   styles.Style
	Link    *Handle
}

// LineBreak is an inline break. Hard breaks come from explicit markdown
// breaks, soft breaks from single newlines inside a paragraph.
type LineBreak struct {
	Hard bool
}

// Paragraph is a block of inline children.
type Paragraph struct {
	Children []Node
	Style    styles.Style
}

// Heading is a level 1-6 heading. AnchorID is a slug derived from the
// heading text, empty when the text does not slugify.
type Heading struct {
	Level    int
	AnchorID string
	Children []Node
	Style    styles.Style
}

// CodeBlock is a fenced or indented code block. Spans carry the highlighted
// runs; without a highlighter there is a single span in the code style.
type CodeBlock struct {
	Language string
	Spans    []Text
	Style    styles.Style
}

// Blockquote wraps nested block children.
type Blockquote struct {
	Children []Node
	Style    styles.Style
}

// List is an ordered or unordered list. Depth starts at zero for top-level
// lists and grows with nesting.
type List struct {
	Ordered bool
	Start   int
	Depth   int
	Items   []ListItem
	Style   styles.Style
}

// ListItem is one list entry. Checked is non-nil for task list items.
type ListItem struct {
	Index    int
	Checked  *bool
	Children []Node
}

// CellAlignment is the column alignment of a table cell.
type CellAlignment int

const (
	AlignNone CellAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// TableCell holds inline children for one cell.
type TableCell struct {
	Children []Node
	Align    CellAlignment
	Style    styles.Style
}

// Table is a GFM table with one header row and zero or more body rows.
type Table struct {
	Header []TableCell
	Rows   [][]TableCell
	Style  styles.Style
}

// Image is an embedded image. Content is the renderable supplied by the
// image collaborator (or a built-in placeholder/error fallback); the host
// swaps it out through its own update mechanism once loading resolves.
type Image struct {
	Source  interfaces.ImageSource
	Alt     string
	Title   string
	Content Node
	Style   styles.Style
}

// Divider is a horizontal rule.
type Divider struct {
	Style styles.Style
}

func (*Text) renderNode()       {}
func (*LineBreak) renderNode()  {}
func (*Paragraph) renderNode()  {}
func (*Heading) renderNode()    {}
func (*CodeBlock) renderNode()  {}
func (*Blockquote) renderNode() {}
func (*List) renderNode()       {}
func (*Table) renderNode()      {}
func (*Image) renderNode()      {}
func (*Divider) renderNode()    {}
