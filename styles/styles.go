// Package styles defines the visual style vocabulary used by the render-tree
// builder. A StyleSheet maps element tags to style descriptors; unresolved
// fields inherit from the nearest ancestor's resolved style.
package styles

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Baseline positions text relative to the surrounding line.
type Baseline int

const (
	// BaselineNormal keeps text on the regular baseline.
	BaselineNormal Baseline = iota
	// BaselineSubscript lowers text below the baseline.
	BaselineSubscript
	// BaselineSuperscript raises text above the baseline.
	BaselineSuperscript
)

// Style describes the visual treatment for one element tag. Nil fields are
// unset and inherit from the parent style during resolution, so a sheet
// entry only has to state what it changes. Styles are read-only during a
// build pass.
type Style struct {
	Color         *string
	Background    *string
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	Monospace     *bool
	// FontScale multiplies the host's base font size.
	FontScale *float64
	Baseline  *Baseline
	// Block spacing hints, in host units.
	SpacingBefore *float64
	SpacingAfter  *float64
	Indent        *float64
}

// Inherit fills every unset field from parent and returns the result.
func (s Style) Inherit(parent Style) Style {
	if s.Color == nil {
		s.Color = parent.Color
	}
	if s.Background == nil {
		s.Background = parent.Background
	}
	if s.Bold == nil {
		s.Bold = parent.Bold
	}
	if s.Italic == nil {
		s.Italic = parent.Italic
	}
	if s.Underline == nil {
		s.Underline = parent.Underline
	}
	if s.Strikethrough == nil {
		s.Strikethrough = parent.Strikethrough
	}
	if s.Monospace == nil {
		s.Monospace = parent.Monospace
	}
	if s.FontScale == nil {
		s.FontScale = parent.FontScale
	}
	if s.Baseline == nil {
		s.Baseline = parent.Baseline
	}
	if s.SpacingBefore == nil {
		s.SpacingBefore = parent.SpacingBefore
	}
	if s.SpacingAfter == nil {
		s.SpacingAfter = parent.SpacingAfter
	}
	if s.Indent == nil {
		s.Indent = parent.Indent
	}
	return s
}

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate checks that set fields carry usable values. Unset fields are
// always valid.
func (s Style) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Color, validation.Match(colorPattern)),
		validation.Field(&s.Background, validation.Match(colorPattern)),
		validation.Field(&s.FontScale, validation.Min(0.0)),
		validation.Field(&s.SpacingBefore, validation.Min(0.0)),
		validation.Field(&s.SpacingAfter, validation.Min(0.0)),
		validation.Field(&s.Indent, validation.Min(0.0)),
	)
}

// Bool returns a pointer to v for use in style literals.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v for use in style literals.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to v for use in style literals.
func String(v string) *string { return &v }

// Shift returns a pointer to b for use in style literals.
func Shift(b Baseline) *Baseline { return &b }
