// Package syntax implements the inline extension point for the markdown
// view: small (pattern, action) rules that plug into goldmark's inline
// parser, bundled into reusable extension sets.
package syntax

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// inlineRulePriority slots rule parsers ahead of goldmark's raw HTML parser
// so literal markers such as <sub> are claimed before the HTML fallback.
const inlineRulePriority = 150

// Rule is a single inline syntax entry: a trigger byte set, a compiled
// pattern anchored at the match start with one capture group for the span
// content, and an action that maps the captured segment to an inline node.
// Rules are stateless and safe to reuse across concurrent parses.
type Rule struct {
	Trigger []byte
	Pattern *regexp.Regexp
	Build   func(content text.Segment) ast.Node
}

// ExtensionSet is an immutable ordered bundle of inline rules. It implements
// goldmark.Extender so it can be handed straight to the document parser.
// The set carries no block rules.
type ExtensionSet struct {
	inline []Rule
}

// New returns an extension set containing the supplied rules in order.
func New(rules ...Rule) ExtensionSet {
	return ExtensionSet{inline: append([]Rule(nil), rules...)}
}

// Default returns the empty extension set: no inline or block rules.
func Default() ExtensionSet {
	return ExtensionSet{}
}

// Inline returns a copy of the set's inline rules in registration order.
func (s ExtensionSet) Inline() []Rule {
	return append([]Rule(nil), s.inline...)
}

// Empty reports whether the set carries no rules.
func (s ExtensionSet) Empty() bool {
	return len(s.inline) == 0
}

// Extend registers one inline parser per rule with the goldmark engine.
func (s ExtensionSet) Extend(m goldmark.Markdown) {
	if len(s.inline) == 0 {
		return
	}
	registrations := make([]util.PrioritizedValue, 0, len(s.inline))
	for _, rule := range s.inline {
		registrations = append(registrations, util.Prioritized(&ruleParser{rule: rule}, inlineRulePriority))
	}
	m.Parser().AddOptions(parser.WithInlineParsers(registrations...))
}

// ruleParser adapts a Rule to goldmark's parser.InlineParser contract.
type ruleParser struct {
	rule Rule
}

func (p *ruleParser) Trigger() []byte {
	return p.rule.Trigger
}

// Parse matches the rule pattern against the rest of the current line. The
// content segment is derived from the capture group boundaries rather than
// fixed marker offsets, so marker literals can change without breaking the
// rule. No match means the parser falls through to default inline handling.
func (p *ruleParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, segment := block.PeekLine()

	loc := p.rule.Pattern.FindSubmatchIndex(line)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	if len(loc) < 4 || loc[2] < 0 || loc[3] <= loc[2] {
		return nil
	}

	node := p.rule.Build(text.NewSegment(segment.Start+loc[2], segment.Start+loc[3]))
	if node == nil {
		return nil
	}

	block.Advance(loc[1])
	return node
}
