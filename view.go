package markdownview

import (
	"bytes"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-markdown-view/document"
	"github.com/goliatone/go-markdown-view/internal/highlight"
	"github.com/goliatone/go-markdown-view/internal/logging"
	"github.com/goliatone/go-markdown-view/internal/markdown"
	"github.com/goliatone/go-markdown-view/pkg/interfaces"
	"github.com/goliatone/go-markdown-view/render"
	"github.com/goliatone/go-markdown-view/styles"
	"github.com/goliatone/go-markdown-view/syntax"
)

// ErrViewDisposed reports an operation on a view after teardown.
var ErrViewDisposed = errors.New("mdview: view is disposed")

// ErrNilDocument reports a nil document handed to SetDocument.
var ErrNilDocument = errors.New("mdview: document is nil")

const (
	configInvalidCode = "VIEW_CONFIG_INVALID"
	parseFailedCode   = "VIEW_PARSE_FAILED"
	buildFailedCode   = "VIEW_BUILD_FAILED"
)

// State is the lifecycle phase of a View.
type State int

const (
	// StateIdle means no content has been parsed yet.
	StateIdle State = iota
	// StateParsed means a render sequence and its handles are live.
	StateParsed
	// StateDisposed is terminal; no further transitions happen.
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateParsed:
		return "parsed"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// View owns the markdown parse/build lifecycle. It re-runs the document
// parser and render-tree builder whenever the source text or the effective
// style configuration changes, swaps the renderable sequence in atomically,
// and releases superseded interaction handles exactly once.
//
// Views are confined to a single goroutine, matching the event-thread model
// of the host toolkits they feed.
type View struct {
	cfg    Config
	parser interfaces.DocumentParser
	sheet  styles.StyleSheet

	highlighter      interfaces.SyntaxHighlighter
	images           render.ImageRenderer
	imagePlaceholder render.PlaceholderFunc
	imageError       render.ErrorFunc
	onTapLink        func(href string)
	onTapImage       func(src interfaces.ImageSource)

	logger       interfaces.Logger
	renderLogger interfaces.Logger

	state   State
	source  []byte
	nodes   []render.Node
	handles *render.HandleSet
}

// New constructs a view from the supplied configuration and options.
func New(cfg Config, opts ...Option) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.
			Wrap(err, goerrors.CategoryValidation, "invalid view configuration").
			WithTextCode(configInvalidCode)
	}

	v := &View{
		cfg:   cfg,
		sheet: styles.Default(),
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.logger == nil {
		provider, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, goerrors.
				Wrap(err, goerrors.CategoryValidation, "invalid logging configuration").
				WithTextCode(configInvalidCode)
		}
		v.logger = logging.ViewLogger(provider)
		v.renderLogger = logging.RenderLogger(provider)
	}
	if v.renderLogger == nil {
		v.renderLogger = v.logger
	}

	if v.parser == nil {
		set := syntax.Default()
		if cfg.Parser.SuperSub {
			set = syntax.SuperSub()
		}
		v.parser = markdown.NewParser(markdown.Options{
			Extensions: cfg.Parser.Extensions,
			Syntax:     set,
		})
	}

	if v.highlighter == nil && cfg.Highlight.Enabled {
		h, err := highlight.New(highlight.Config{Theme: cfg.Highlight.Theme})
		if err != nil {
			return nil, goerrors.
				Wrap(err, goerrors.CategoryValidation, "invalid highlight configuration").
				WithTextCode(configInvalidCode)
		}
		v.highlighter = h
	}

	return v, nil
}

// State returns the current lifecycle phase.
func (v *View) State() State {
	return v.state
}

// Source returns the raw source last supplied to the view.
func (v *View) Source() string {
	return string(v.source)
}

// StyleSheet returns the sheet in effect.
func (v *View) StyleSheet() styles.StyleSheet {
	return v.sheet
}

// Nodes returns the current renderable sequence in document order. The
// slice is replaced wholesale on every rebuild; callers must not mutate it.
func (v *View) Nodes() []render.Node {
	return v.nodes
}

// LiveHandles returns the number of interaction handles backing the current
// sequence.
func (v *View) LiveHandles() int {
	return v.handles.Len()
}

// SetSource replaces the markdown source and re-parses when it changed.
// Setting the source a view already displays is a no-op. On failure the
// previous source and sequence stay in effect, so retrying the same input
// is not mistaken for a no-op.
func (v *View) SetSource(source string) error {
	if v.state == StateDisposed {
		return ErrViewDisposed
	}
	next := []byte(source)
	if v.state == StateParsed && bytes.Equal(v.source, next) {
		return nil
	}
	return v.rebuild(next)
}

// SetDocument feeds a loaded document's body into the view.
func (v *View) SetDocument(doc *document.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	return v.SetSource(string(doc.Body))
}

// SetStyleSheet replaces the style configuration. Comparison is structural:
// an equivalent sheet built independently does not trigger a re-parse.
func (v *View) SetStyleSheet(sheet styles.StyleSheet) error {
	if v.state == StateDisposed {
		return ErrViewDisposed
	}
	if err := sheet.Validate(); err != nil {
		return goerrors.
			Wrap(err, goerrors.CategoryValidation, "invalid style sheet").
			WithTextCode(configInvalidCode)
	}
	if v.sheet.Equal(sheet) {
		v.sheet = sheet
		return nil
	}
	v.sheet = sheet
	if v.state != StateParsed {
		return nil
	}
	return v.rebuild(v.source)
}

// TapImage forwards an image tap from the host to the image-tap callback.
func (v *View) TapImage(src interfaces.ImageSource) {
	if v.state == StateParsed && v.onTapImage != nil {
		v.onTapImage(src)
	}
}

// Dispose tears the view down, releasing every live handle. Further calls
// are no-ops; mutating operations afterwards return ErrViewDisposed.
func (v *View) Dispose() error {
	if v.state == StateDisposed {
		return nil
	}
	v.state = StateDisposed
	v.nodes = nil
	handles := v.handles
	v.handles = nil
	if handles == nil {
		return nil
	}
	if err := handles.ReleaseAll(); err != nil {
		v.logger.Error("handle release failed on dispose", "error", err)
		return err
	}
	return nil
}

// rebuild runs one parse/build pass over source. The new sequence and handle
// set are swapped in atomically before the superseded handles are released,
// so the live handle set always matches the displayed sequence; on failure
// the partially acquired handles are released and the previous state,
// including the previous source, stays live.
func (v *View) rebuild(source []byte) error {
	tree, err := v.parser.Parse(source)
	if err != nil {
		return goerrors.
			Wrap(err, goerrors.CategoryValidation, "markdown parse failed").
			WithTextCode(parseFailedCode)
	}

	next := render.NewHandleSet(v.onTapLink)
	builder := render.NewBuilder(render.Options{
		StyleSheet:   v.sheet,
		ImageBaseDir: v.cfg.Images.BaseDir,
		Handles:      next,
		Highlighter:  v.highlighter,
		Images:       v.images,
		Placeholder:  v.imagePlaceholder,
		ImageError:   v.imageError,
		Logger:       v.renderLogger,
	})

	nodes, err := builder.Build(tree.Root, tree.Source)
	if err != nil {
		if releaseErr := next.ReleaseAll(); releaseErr != nil {
			v.logger.Error("handle release failed after build error", "error", releaseErr)
		}
		return goerrors.
			Wrap(err, goerrors.CategoryCommand, "render tree build failed").
			WithTextCode(buildFailedCode)
	}

	prev := v.handles
	v.source = source
	v.nodes = nodes
	v.handles = next
	v.state = StateParsed

	if prev != nil {
		if err := prev.ReleaseAll(); err != nil {
			v.logger.Error("superseded handle release failed", "error", err)
		}
	}

	v.logger.Debug("render tree rebuilt", "nodes", len(nodes), "handles", next.Len())
	return nil
}
