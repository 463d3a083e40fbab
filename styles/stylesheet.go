package styles

import (
	"fmt"
	"reflect"
	"sort"
)

// StyleSheet maps element tags to style descriptors. Sheets are value types:
// mutating helpers return a copy, so a sheet handed to a build pass stays
// read-only for its duration.
type StyleSheet struct {
	rules map[string]Style
}

// NewStyleSheet builds a sheet from the supplied tag mapping.
func NewStyleSheet(rules map[string]Style) StyleSheet {
	copied := make(map[string]Style, len(rules))
	for tag, style := range rules {
		copied[tag] = style
	}
	return StyleSheet{rules: copied}
}

// Default returns the built-in sheet covering every element tag the builder
// dispatches on. Scales follow conventional HTML heading sizes.
func Default() StyleSheet {
	return NewStyleSheet(map[string]Style{
		"p":  {},
		"h1": {FontScale: Float64(2.0), Bold: Bool(true), SpacingBefore: Float64(16), SpacingAfter: Float64(8)},
		"h2": {FontScale: Float64(1.5), Bold: Bool(true), SpacingBefore: Float64(14), SpacingAfter: Float64(7)},
		"h3": {FontScale: Float64(1.17), Bold: Bool(true), SpacingBefore: Float64(12), SpacingAfter: Float64(6)},
		"h4": {FontScale: Float64(1.0), Bold: Bool(true), SpacingBefore: Float64(10), SpacingAfter: Float64(5)},
		"h5": {FontScale: Float64(0.83), Bold: Bool(true), SpacingBefore: Float64(8), SpacingAfter: Float64(4)},
		"h6": {FontScale: Float64(0.67), Bold: Bool(true), SpacingBefore: Float64(8), SpacingAfter: Float64(4)},
		"em": {Italic: Bool(true)},
		"strong": {Bold: Bool(true)},
		"del": {Strikethrough: Bool(true)},
		"code": {Monospace: Bool(true), Background: String("#f5f5f5")},
		"pre": {Monospace: Bool(true), Background: String("#f5f5f5"), SpacingAfter: Float64(8)},
		"a": {Color: String("#0366d6"), Underline: Bool(true)},
		"ul": {SpacingAfter: Float64(8)},
		"ol": {SpacingAfter: Float64(8)},
		"li": {},
		"blockquote": {Color: String("#6a737d"), Indent: Float64(16)},
		"table": {SpacingAfter: Float64(8)},
		"th": {Bold: Bool(true)},
		"td": {},
		"hr": {SpacingBefore: Float64(8), SpacingAfter: Float64(8)},
		"img": {},
		"sub": {FontScale: Float64(0.83), Baseline: Shift(BaselineSubscript)},
		"sup": {FontScale: Float64(0.83), Baseline: Shift(BaselineSuperscript)},
	})
}

// Lookup returns the raw (uninherited) style registered for tag.
func (s StyleSheet) Lookup(tag string) (Style, bool) {
	style, ok := s.rules[tag]
	return style, ok
}

// Resolve returns the effective style for tag given the nearest ancestor's
// resolved style. Unknown tags fall back to the ancestor style unchanged.
func (s StyleSheet) Resolve(tag string, parent Style) Style {
	style, ok := s.rules[tag]
	if !ok {
		return parent
	}
	return style.Inherit(parent)
}

// With returns a copy of the sheet with tag bound to style.
func (s StyleSheet) With(tag string, style Style) StyleSheet {
	copied := make(map[string]Style, len(s.rules)+1)
	for existing, rule := range s.rules {
		copied[existing] = rule
	}
	copied[tag] = style
	return StyleSheet{rules: copied}
}

// Equal reports structural equality between two sheets. Pointer fields are
// compared by value, so two independently constructed sheets with the same
// settings compare equal.
func (s StyleSheet) Equal(other StyleSheet) bool {
	if len(s.rules) != len(other.rules) {
		return false
	}
	if len(s.rules) == 0 {
		return true
	}
	return reflect.DeepEqual(s.rules, other.rules)
}

// Tags lists the registered tags in sorted order.
func (s StyleSheet) Tags() []string {
	tags := make([]string, 0, len(s.rules))
	for tag := range s.rules {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Validate checks every registered style.
func (s StyleSheet) Validate() error {
	for _, tag := range s.Tags() {
		if err := s.rules[tag].Validate(); err != nil {
			return fmt.Errorf("stylesheet: tag %q: %w", tag, err)
		}
	}
	return nil
}
