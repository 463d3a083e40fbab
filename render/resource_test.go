package render

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-markdown-view/pkg/interfaces"
)

func TestClassifyImageSource_Kinds(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind interfaces.ResourceKind
		path string
	}{
		{"http", "http://example.com/pic.png", interfaces.ResourceKindHTTP, "http://example.com/pic.png"},
		{"https", "https://example.com/pic.png", interfaces.ResourceKindHTTP, "https://example.com/pic.png"},
		{"data uri", "data:image/png;base64,iVBOR=", interfaces.ResourceKindData, "data:image/png;base64,iVBOR="},
		{"file scheme", "file:///tmp/pic.png", interfaces.ResourceKindFile, "/tmp/pic.png"},
		{"relative path", "images/pic.png", interfaces.ResourceKindFile, "images/pic.png"},
		{"bare file name", "pic.png", interfaces.ResourceKindFile, "pic.png"},
		{"logical resource", "avatar_small", interfaces.ResourceKindResource, "avatar_small"},
		{"malformed uri", "not-a-valid-uri###", interfaces.ResourceKindResource, "not-a-valid-uri###"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyImageSource(tc.raw, "")
			if got.Kind != tc.kind {
				t.Fatalf("kind mismatch: got %q want %q", got.Kind, tc.kind)
			}
			if got.Path != tc.path {
				t.Fatalf("path mismatch: got %q want %q", got.Path, tc.path)
			}
		})
	}
}

func TestClassifyImageSource_BaseDir(t *testing.T) {
	got := ClassifyImageSource("images/pic.png", "/srv/docs")
	if got.Kind != interfaces.ResourceKindFile {
		t.Fatalf("kind mismatch: %q", got.Kind)
	}
	if want := filepath.Join("/srv/docs", "images/pic.png"); got.Path != want {
		t.Fatalf("base dir not applied: got %q want %q", got.Path, want)
	}

	abs := ClassifyImageSource("/var/pic.png", "/srv/docs")
	if abs.Path != "/var/pic.png" {
		t.Fatalf("absolute path must not be joined: %q", abs.Path)
	}
}

func TestClassifyImageSource_DimensionHints(t *testing.T) {
	got := ClassifyImageSource("pic.png#200x150", "")
	if got.Path != "pic.png" {
		t.Fatalf("fragment must be stripped: %q", got.Path)
	}
	if got.Width == nil || *got.Width != 200 {
		t.Fatalf("width hint mismatch: %#v", got.Width)
	}
	if got.Height == nil || *got.Height != 150 {
		t.Fatalf("height hint mismatch: %#v", got.Height)
	}

	widthOnly := ClassifyImageSource("pic.png#200x", "")
	if widthOnly.Width == nil || *widthOnly.Width != 200 || widthOnly.Height != nil {
		t.Fatalf("width-only hint mismatch: %#v %#v", widthOnly.Width, widthOnly.Height)
	}

	heightOnly := ClassifyImageSource("pic.png#x150", "")
	if heightOnly.Width != nil || heightOnly.Height == nil || *heightOnly.Height != 150 {
		t.Fatalf("height-only hint mismatch: %#v %#v", heightOnly.Width, heightOnly.Height)
	}
}

func TestClassifyImageSource_NonDimensionFragmentKept(t *testing.T) {
	got := ClassifyImageSource("https://example.com/page.png#section", "")
	if got.Path != "https://example.com/page.png#section" {
		t.Fatalf("non-dimension fragment must stay on the path: %q", got.Path)
	}
	if got.Width != nil || got.Height != nil {
		t.Fatalf("no hints expected: %#v %#v", got.Width, got.Height)
	}
}

func TestClassifyImageSource_TrimsWhitespace(t *testing.T) {
	got := ClassifyImageSource("  pic.png  ", "")
	if got.Path != "pic.png" {
		t.Fatalf("whitespace must be trimmed: %q", got.Path)
	}
}
