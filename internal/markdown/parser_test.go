package markdown

import (
	"bytes"
	"testing"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/goliatone/go-markdown-view/syntax"
)

func countKind(t *testing.T, root ast.Node, kind ast.NodeKind) int {
	t.Helper()
	count := 0
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == kind {
			count++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return count
}

func TestParser_Parse(t *testing.T) {
	parser := NewParser(Options{})

	tree, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if tree.Root == nil {
		t.Fatalf("expected a parsed root node")
	}
	if got := countKind(t, tree.Root, ast.KindHeading); got != 1 {
		t.Fatalf("expected one heading, got %d", got)
	}
	if got := countKind(t, tree.Root, ast.KindEmphasis); got != 1 {
		t.Fatalf("expected one emphasis, got %d", got)
	}
}

func TestParser_NormalizesWindowsLineEndings(t *testing.T) {
	parser := NewParser(Options{})

	tree, err := parser.Parse([]byte("a\r\nb"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if bytes.Contains(tree.Source, []byte{'\r'}) {
		t.Fatalf("tree source must not contain carriage returns: %q", tree.Source)
	}

	paragraph := tree.Root.FirstChild()
	if paragraph == nil || paragraph.Kind() != ast.KindParagraph {
		t.Fatalf("expected a single paragraph, got %v", paragraph)
	}

	first, ok := paragraph.FirstChild().(*ast.Text)
	if !ok {
		t.Fatalf("expected a text node, got %T", paragraph.FirstChild())
	}
	if got := string(first.Segment.Value(tree.Source)); got != "a" {
		t.Fatalf("first line mismatch, got %q", got)
	}
	if !first.SoftLineBreak() {
		t.Fatalf("expected a soft line break between the lines")
	}
}

func TestNormalizeLineEndings_NoRewriteReturnsInput(t *testing.T) {
	src := []byte("plain\ntext")
	if got := NormalizeLineEndings(src); &got[0] != &src[0] {
		t.Fatalf("input without CRLF must be returned as-is")
	}
}

func TestParser_TableExtension(t *testing.T) {
	source := []byte("| a | b |\n| --- | --- |\n| 1 | 2 |\n")

	plain := NewParser(Options{})
	tree, err := plain.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := countKind(t, tree.Root, east.KindTable); got != 0 {
		t.Fatalf("tables must be off by default, got %d", got)
	}

	withTables := NewParser(Options{Extensions: []string{"table"}})
	tree, err = withTables.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := countKind(t, tree.Root, east.KindTable); got != 1 {
		t.Fatalf("expected one table, got %d", got)
	}
}

func TestParser_UnknownExtensionIgnored(t *testing.T) {
	parser := NewParser(Options{Extensions: []string{"nope", "", "TABLE", "table"}})

	tree, err := parser.Parse([]byte("| a |\n| --- |\n| 1 |\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := countKind(t, tree.Root, east.KindTable); got != 1 {
		t.Fatalf("expected one table via case-insensitive dedup, got %d", got)
	}
}

func TestParser_SyntaxRules(t *testing.T) {
	parser := NewParser(Options{Syntax: syntax.SuperSub()})

	tree, err := parser.Parse([]byte("H<sub>2</sub>O"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := countKind(t, tree.Root, syntax.KindSpan); got != 1 {
		t.Fatalf("expected one inline span, got %d", got)
	}
}

func TestParser_StrikethroughExtension(t *testing.T) {
	parser := NewParser(Options{Extensions: []string{"strikethrough"}})

	tree, err := parser.Parse([]byte("~~gone~~"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := countKind(t, tree.Root, east.KindStrikethrough); got != 1 {
		t.Fatalf("expected one strikethrough, got %d", got)
	}
}
