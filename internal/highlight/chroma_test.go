package highlight

import (
	"strings"
	"testing"
)

func joinSpans(t *testing.T, h *Highlighter, code, language string) string {
	t.Helper()
	spans, err := h.Highlight(code, language)
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

func TestNew_DefaultTheme(t *testing.T) {
	h, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if h == nil {
		t.Fatalf("expected a highlighter")
	}
}

func TestNew_UnknownThemeRejected(t *testing.T) {
	if _, err := New(Config{Theme: "definitely-not-a-theme"}); err == nil {
		t.Fatalf("expected an error for an unregistered theme")
	}
	if _, err := New(Config{Theme: "github"}); err != nil {
		t.Fatalf("registered theme must be accepted: %v", err)
	}
}

func TestHighlight_ReconstructsSource(t *testing.T) {
	h, err := New(Config{Theme: "github"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	code := "func main() {\n\tfmt.Println(\"hi\")\n}"
	if got := joinSpans(t, h, code, "go"); got != code {
		t.Fatalf("concatenated spans must reproduce the source:\n got %q\nwant %q", got, code)
	}
}

func TestHighlight_StylesKnownLanguage(t *testing.T) {
	h, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	spans, err := h.Highlight("func main() {}", "go")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if len(spans) < 2 {
		t.Fatalf("expected multiple token spans for go source, got %d", len(spans))
	}

	styled := false
	for _, span := range spans {
		if span.Color != "" || span.Bold || span.Italic {
			styled = true
		}
	}
	if !styled {
		t.Fatalf("expected at least one styled span: %#v", spans)
	}
}

func TestHighlight_UnknownLanguageFallsBack(t *testing.T) {
	h, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	code := "some opaque ::: content"
	if got := joinSpans(t, h, code, "definitely-not-a-language"); got != code {
		t.Fatalf("fallback lexer must keep the source intact, got %q", got)
	}
}
