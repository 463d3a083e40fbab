// Command preview parses a markdown file and prints the resulting render
// tree as an indented outline, one line per renderable node.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	markdownview "github.com/goliatone/go-markdown-view"
	"github.com/goliatone/go-markdown-view/document"
	"github.com/goliatone/go-markdown-view/render"
)

func main() {
	var (
		filePath    = flag.String("file", "", "Markdown file to preview")
		supersub    = flag.Bool("supersub", true, "Enable <sub>/<sup> inline syntax")
		extensions  = flag.String("extensions", "table,strikethrough,tasklist", "Comma separated parser extensions")
		highlight   = flag.Bool("highlight", true, "Highlight fenced code blocks")
		theme       = flag.String("theme", "github", "Highlight theme name")
		frontmatter = flag.Bool("frontmatter", false, "Print parsed front matter before the outline")
		logLevel    = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	dir, name := filepath.Split(filepath.Clean(*filePath))
	if dir == "" {
		dir = "."
	}

	loader, err := document.NewLoader(os.DirFS(dir), document.LoaderConfig{})
	if err != nil {
		log.Fatalf("configure loader: %v", err)
	}

	doc, err := loader.LoadFile(context.Background(), name)
	if err != nil {
		log.Fatalf("load markdown document: %v", err)
	}

	cfg := markdownview.DefaultConfig()
	cfg.Parser.Extensions = splitExtensions(*extensions)
	cfg.Parser.SuperSub = *supersub
	cfg.Highlight.Enabled = *highlight
	cfg.Highlight.Theme = *theme
	cfg.Images.BaseDir = dir
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = "console"

	view, err := markdownview.New(cfg,
		markdownview.WithTapLink(func(href string) {
			fmt.Fprintf(os.Stderr, "tap: %s\n", href)
		}),
	)
	if err != nil {
		log.Fatalf("configure view: %v", err)
	}
	defer view.Dispose()

	if err := view.SetDocument(doc); err != nil {
		log.Fatalf("build render tree: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nChecksum: %x\nNodes: %d\nHandles: %d\n\n",
		doc.FilePath, doc.Checksum, len(view.Nodes()), view.LiveHandles())

	if *frontmatter {
		meta, err := json.MarshalIndent(doc.FrontMatter, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", meta)
		}
	}

	printOutline(os.Stdout, view.Nodes(), 0)
}

func splitExtensions(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func printOutline(w io.Writer, nodes []render.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		switch n := node.(type) {
		case *render.Text:
			fmt.Fprintf(w, "%stext %q\n", indent, n.Content)
		case *render.LineBreak:
			fmt.Fprintf(w, "%sbreak hard=%t\n", indent, n.Hard)
		case *render.Paragraph:
			fmt.Fprintf(w, "%sparagraph\n", indent)
			printOutline(w, n.Children, depth+1)
		case *render.Heading:
			fmt.Fprintf(w, "%sheading level=%d anchor=%q\n", indent, n.Level, n.AnchorID)
			printOutline(w, n.Children, depth+1)
		case *render.CodeBlock:
			fmt.Fprintf(w, "%scode lang=%q spans=%d\n", indent, n.Language, len(n.Spans))
		case *render.Blockquote:
			fmt.Fprintf(w, "%sblockquote\n", indent)
			printOutline(w, n.Children, depth+1)
		case *render.List:
			fmt.Fprintf(w, "%slist ordered=%t items=%d\n", indent, n.Ordered, len(n.Items))
			for _, item := range n.Items {
				printOutline(w, item.Children, depth+1)
			}
		case *render.Table:
			fmt.Fprintf(w, "%stable cols=%d rows=%d\n", indent, len(n.Header), len(n.Rows))
		case *render.Image:
			fmt.Fprintf(w, "%simage kind=%s alt=%q\n", indent, n.Source.Kind, n.Alt)
		case *render.Divider:
			fmt.Fprintf(w, "%sdivider\n", indent)
		default:
			fmt.Fprintf(w, "%s%T\n", indent, node)
		}
	}
}
