// Package markdown wraps the goldmark engine behind the DocumentParser
// contract: it normalises input, applies the configured extension set, and
// hands back the parsed node tree for the render-tree builder.
package markdown
