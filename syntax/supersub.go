package syntax

import (
	"regexp"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// The content class excludes '<' so spans never nest, neither within
// themselves nor within each other. Non-greedy repetition keeps the match to
// the shortest span containing at least one character.
var (
	subscriptPattern   = regexp.MustCompile(`^<sub>([^<]+?)</sub>`)
	superscriptPattern = regexp.MustCompile(`^<sup>([^<]+?)</sup>`)
)

// Subscript returns the inline rule matching <sub>...</sub> spans.
func Subscript() Rule {
	return spanRule("sub", subscriptPattern)
}

// Superscript returns the inline rule matching <sup>...</sup> spans.
func Superscript() Rule {
	return spanRule("sup", superscriptPattern)
}

// SuperSub returns the extension set bundling the subscript and superscript
// rules with zero block rules. The set is immutable and safe to share
// across concurrent parses.
func SuperSub() ExtensionSet {
	return New(Subscript(), Superscript())
}

func spanRule(tag string, pattern *regexp.Regexp) Rule {
	return Rule{
		Trigger: []byte{'<'},
		Pattern: pattern,
		Build: func(content text.Segment) ast.Node {
			span := NewSpan(tag)
			span.AppendChild(span, ast.NewTextSegment(content))
			return span
		},
	}
}
