package render

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-slug"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/goliatone/go-markdown-view/internal/logging"
	"github.com/goliatone/go-markdown-view/pkg/interfaces"
	"github.com/goliatone/go-markdown-view/styles"
	"github.com/goliatone/go-markdown-view/syntax"
)

// ErrNilDocument reports a build attempted without a parsed document.
var ErrNilDocument = errors.New("render: document is nil")

const nilDocumentCode = "RENDER_NIL_DOCUMENT"

// Options carries the collaborators for one build pass. Absent optional
// collaborators (highlighter, image renderer, placeholder/error funcs) get
// built-in defaults substituted silently.
type Options struct {
	StyleSheet   styles.StyleSheet
	ImageBaseDir string
	// Handles hands out one interaction handle per link element. The owner
	// of the acquirer is responsible for releasing them.
	Handles     HandleAcquirer
	Highlighter interfaces.SyntaxHighlighter
	Images      ImageRenderer
	Placeholder PlaceholderFunc
	ImageError  ErrorFunc
	Logger      interfaces.Logger
}

// handlerFunc renders one parsed node. parent is the nearest ancestor's
// resolved style; depth is the current list nesting level, carried through
// the recursion rather than kept as ambient state.
type handlerFunc func(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error)

// Builder walks a parsed node tree in document order and produces the
// renderable sequence. Builders hold no mutable state across calls; the
// lifecycle controller creates one per parse pass.
type Builder struct {
	opts     Options
	logger   interfaces.Logger
	handlers map[ast.NodeKind]handlerFunc
}

// NewBuilder constructs a builder for the supplied collaborators.
func NewBuilder(opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	b := &Builder{opts: opts, logger: logger}
	b.handlers = newHandlerTable()
	return b
}

// Build converts the parsed tree rooted at doc into the ordered renderable
// sequence. source must be the normalised bytes the tree's segments point
// into. A nil doc is a precondition violation and fails fast; every other
// irregularity degrades to a best-effort rendering.
func (b *Builder) Build(doc ast.Node, source []byte) ([]Node, error) {
	if doc == nil {
		return nil, goerrors.
			Wrap(ErrNilDocument, goerrors.CategoryValidation, "render tree build requires a parsed document").
			WithTextCode(nilDocumentCode)
	}
	bc := &buildContext{builder: b, source: source}
	return bc.buildChildren(doc, styles.Style{}, 0)
}

// buildContext is the per-call state of one build pass.
type buildContext struct {
	builder *Builder
	source  []byte
	// link is the handle for the innermost enclosing link element, attached
	// to every text run built beneath it.
	link *Handle
}

func (bc *buildContext) resolve(tag string, parent styles.Style) styles.Style {
	return bc.builder.opts.StyleSheet.Resolve(tag, parent)
}

func (bc *buildContext) acquire(href string) *Handle {
	if bc.builder.opts.Handles == nil {
		return nil
	}
	return bc.builder.opts.Handles.Acquire(href)
}

func (bc *buildContext) buildChildren(n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	out := []Node{}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		nodes, err := bc.buildNode(child, parent, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

// buildNode dispatches on the node kind through the handler table. Unknown
// kinds fall through to the default handler, which renders the children with
// the ancestor's resolved style.
func (bc *buildContext) buildNode(n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	handler, ok := bc.builder.handlers[n.Kind()]
	if !ok {
		handler = defaultHandler
	}
	return handler(bc, n, parent, depth)
}

func newHandlerTable() map[ast.NodeKind]handlerFunc {
	return map[ast.NodeKind]handlerFunc{
		ast.KindDocument:        defaultHandler,
		ast.KindParagraph:       paragraphHandler,
		ast.KindTextBlock:       textBlockHandler,
		ast.KindHeading:         headingHandler,
		ast.KindBlockquote:      blockquoteHandler,
		ast.KindList:            listHandler,
		ast.KindFencedCodeBlock: codeBlockHandler,
		ast.KindCodeBlock:       codeBlockHandler,
		ast.KindHTMLBlock:       htmlBlockHandler,
		ast.KindThematicBreak:   dividerHandler,
		ast.KindText:            textHandler,
		ast.KindString:          stringHandler,
		ast.KindEmphasis:        emphasisHandler,
		ast.KindCodeSpan:        codeSpanHandler,
		ast.KindLink:            linkHandler,
		ast.KindAutoLink:        autoLinkHandler,
		ast.KindImage:           imageHandler,
		ast.KindRawHTML:         rawHTMLHandler,
		east.KindTable:          tableHandler,
		east.KindStrikethrough:  strikethroughHandler,
		east.KindTaskCheckBox:   taskCheckBoxHandler,
		syntax.KindSpan:         spanHandler,
	}
}

func defaultHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	return bc.buildChildren(n, parent, depth)
}

func paragraphHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	st := bc.resolve("p", parent)
	children, err := bc.buildChildren(n, st, depth)
	if err != nil {
		return nil, err
	}
	return []Node{&Paragraph{Children: children, Style: st}}, nil
}

// textBlockHandler covers the bare inline containers goldmark emits inside
// tight list items; they inherit the item style without a paragraph lookup.
func textBlockHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	children, err := bc.buildChildren(n, parent, depth)
	if err != nil {
		return nil, err
	}
	return []Node{&Paragraph{Children: children, Style: parent}}, nil
}

func headingHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	heading := n.(*ast.Heading)
	st := bc.resolve("h"+strconv.Itoa(heading.Level), parent)
	children, err := bc.buildChildren(n, st, depth)
	if err != nil {
		return nil, err
	}
	return []Node{&Heading{
		Level:    heading.Level,
		AnchorID: anchorID(textContent(n, bc.source)),
		Children: children,
		Style:    st,
	}}, nil
}

func blockquoteHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	st := bc.resolve("blockquote", parent)
	children, err := bc.buildChildren(n, st, depth)
	if err != nil {
		return nil, err
	}
	return []Node{&Blockquote{Children: children, Style: st}}, nil
}

func listHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	list := n.(*ast.List)
	tag := "ul"
	if list.IsOrdered() {
		tag = "ol"
	}
	st := bc.resolve(tag, parent)
	itemStyle := bc.resolve("li", st)

	out := &List{Ordered: list.IsOrdered(), Depth: depth, Style: st}
	index := 1
	if list.IsOrdered() && list.Start > 0 {
		index = list.Start
	}
	out.Start = index

	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		entry := ListItem{Index: index}
		entry.Checked = taskState(item)
		children, err := bc.buildChildren(item, itemStyle, depth+1)
		if err != nil {
			return nil, err
		}
		entry.Children = children
		out.Items = append(out.Items, entry)
		index++
	}
	return []Node{out}, nil
}

// taskState returns the checkbox state for GFM task list items, nil for
// plain items.
func taskState(item ast.Node) *bool {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	if first.Kind() != ast.KindTextBlock && first.Kind() != ast.KindParagraph {
		return nil
	}
	checkbox, ok := first.FirstChild().(*east.TaskCheckBox)
	if !ok {
		return nil
	}
	checked := checkbox.IsChecked
	return &checked
}

// taskCheckBoxHandler emits nothing: the checkbox state is lifted onto the
// list item by taskState.
func taskCheckBoxHandler(*buildContext, ast.Node, styles.Style, int) ([]Node, error) {
	return nil, nil
}

func codeBlockHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	st := bc.resolve("pre", parent)

	language := ""
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		language = string(fenced.Language(bc.source))
	}
	code := strings.TrimSuffix(linesText(n, bc.source), "\n")

	return []Node{&CodeBlock{
		Language: language,
		Spans:    bc.codeSpans(code, language, st),
		Style:    st,
	}}, nil
}

// codeSpans delegates formatting to the highlighter when one is configured
// and falls back to a single run in the code style otherwise, including when
// the highlighter fails.
func (bc *buildContext) codeSpans(code, language string, st styles.Style) []Text {
	highlighter := bc.builder.opts.Highlighter
	if highlighter == nil {
		return []Text{{Content: code, Style: st}}
	}

	highlighted, err := highlighter.Highlight(code, language)
	if err != nil {
		bc.builder.logger.Warn("syntax highlight failed", "language", language, "error", err)
		return []Text{{Content: code, Style: st}}
	}

	spans := make([]Text, 0, len(highlighted))
	for _, run := range highlighted {
		spanStyle := st
		if run.Color != "" {
			spanStyle.Color = styles.String(run.Color)
		}
		if run.Bold {
			spanStyle.Bold = styles.Bool(true)
		}
		if run.Italic {
			spanStyle.Italic = styles.Bool(true)
		}
		spans = append(spans, Text{Content: run.Text, Style: spanStyle})
	}
	return spans
}

func htmlBlockHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	block := n.(*ast.HTMLBlock)
	var buf bytes.Buffer
	buf.WriteString(linesText(n, bc.source))
	if block.HasClosure() {
		buf.Write(block.ClosureLine.Value(bc.source))
	}
	content := strings.TrimRight(buf.String(), "\n")
	if content == "" {
		return nil, nil
	}
	return []Node{&Paragraph{
		Children: []Node{&Text{Content: content, Style: parent}},
		Style:    parent,
	}}, nil
}

func dividerHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	return []Node{&Divider{Style: bc.resolve("hr", parent)}}, nil
}

func textHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	t := n.(*ast.Text)
	var out []Node
	if content := string(t.Segment.Value(bc.source)); content != "" {
		out = append(out, &Text{Content: content, Style: parent, Link: bc.link})
	}
	switch {
	case t.HardLineBreak():
		out = append(out, &LineBreak{Hard: true})
	case t.SoftLineBreak():
		out = append(out, &LineBreak{})
	}
	return out, nil
}

func stringHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	s := n.(*ast.String)
	if len(s.Value) == 0 {
		return nil, nil
	}
	return []Node{&Text{Content: string(s.Value), Style: parent, Link: bc.link}}, nil
}

func emphasisHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	tag := "em"
	if n.(*ast.Emphasis).Level > 1 {
		tag = "strong"
	}
	return bc.buildChildren(n, bc.resolve(tag, parent), depth)
}

func strikethroughHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	return bc.buildChildren(n, bc.resolve("del", parent), depth)
}

func codeSpanHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	st := bc.resolve("code", parent)
	return []Node{&Text{Content: textContent(n, bc.source), Style: st, Link: bc.link}}, nil
}

// spanHandler renders custom inline spans (sub, sup, ...) by resolving the
// span's tag and passing the style down to its text children.
func spanHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	span := n.(*syntax.Span)
	return bc.buildChildren(n, bc.resolve(span.Tag, parent), depth)
}

func linkHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	link := n.(*ast.Link)
	st := bc.resolve("a", parent)

	prev := bc.link
	bc.link = bc.acquire(string(link.Destination))
	children, err := bc.buildChildren(n, st, depth)
	bc.link = prev

	return children, err
}

func autoLinkHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	autoLink := n.(*ast.AutoLink)
	href := string(autoLink.URL(bc.source))
	return []Node{&Text{
		Content: string(autoLink.Label(bc.source)),
		Style:   bc.resolve("a", parent),
		Link:    bc.acquire(href),
	}}, nil
}

func imageHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	image := n.(*ast.Image)
	src := ClassifyImageSource(string(image.Destination), bc.builder.opts.ImageBaseDir)

	return []Node{&Image{
		Source:  src,
		Alt:     textContent(n, bc.source),
		Title:   string(image.Title),
		Content: bc.renderImage(src),
		Style:   bc.resolve("img", parent),
	}}, nil
}

// renderImage asks the image collaborator for displayable content. The
// builder never waits: pending and failed loads surface as placeholder and
// error renderables, with built-in fallbacks when no funcs are configured.
func (bc *buildContext) renderImage(src interfaces.ImageSource) Node {
	renderer := bc.builder.opts.Images
	if renderer == nil {
		return bc.placeholder(src)
	}
	node, err := renderer.RenderImage(src)
	if err != nil {
		bc.builder.logger.Warn("image render failed", "kind", string(src.Kind), "path", src.Path, "error", err)
		if fn := bc.builder.opts.ImageError; fn != nil {
			return fn(src, err)
		}
		return defaultError(src, err)
	}
	if node == nil {
		return bc.placeholder(src)
	}
	return node
}

func (bc *buildContext) placeholder(src interfaces.ImageSource) Node {
	if fn := bc.builder.opts.Placeholder; fn != nil {
		return fn(src)
	}
	return defaultPlaceholder(src)
}

func rawHTMLHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	raw := n.(*ast.RawHTML)
	var buf bytes.Buffer
	for i := 0; i < raw.Segments.Len(); i++ {
		seg := raw.Segments.At(i)
		buf.Write(seg.Value(bc.source))
	}
	if buf.Len() == 0 {
		return nil, nil
	}
	return []Node{&Text{Content: buf.String(), Style: parent, Link: bc.link}}, nil
}

func tableHandler(bc *buildContext, n ast.Node, parent styles.Style, depth int) ([]Node, error) {
	st := bc.resolve("table", parent)
	headerStyle := bc.resolve("th", st)
	bodyStyle := bc.resolve("td", st)

	out := &Table{Style: st}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		isHeader := row.Kind() == east.KindTableHeader
		cellStyle := bodyStyle
		if isHeader {
			cellStyle = headerStyle
		}

		var cells []TableCell
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			children, err := bc.buildChildren(cell, cellStyle, depth)
			if err != nil {
				return nil, err
			}
			cells = append(cells, TableCell{
				Children: children,
				Align:    cellAlignment(cell),
				Style:    cellStyle,
			})
		}

		if isHeader {
			out.Header = cells
		} else {
			out.Rows = append(out.Rows, cells)
		}
	}
	return []Node{out}, nil
}

func cellAlignment(n ast.Node) CellAlignment {
	cell, ok := n.(*east.TableCell)
	if !ok {
		return AlignNone
	}
	switch cell.Alignment {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

// anchorID slugifies heading text into an anchor identifier; headings whose
// text does not slugify get none.
func anchorID(text string) string {
	normalized, err := slug.Normalize(text)
	if err != nil {
		return ""
	}
	return normalized
}

// textContent flattens the text beneath n in document order.
func textContent(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	collectText(n, source, &buf)
	return buf.String()
}

func collectText(n ast.Node, source []byte, buf *bytes.Buffer) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Text:
			buf.Write(typed.Segment.Value(source))
		case *ast.String:
			buf.Write(typed.Value)
		default:
			collectText(child, source, buf)
		}
	}
}

// linesText joins the block-level line segments of n.
func linesText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
