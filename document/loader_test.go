package document

import (
	"context"
	"os"
	"testing"
)

func TestLoaderConfig_Validate(t *testing.T) {
	if err := (LoaderConfig{}).Validate(); err != nil {
		t.Fatalf("empty config must validate: %v", err)
	}
	if err := (LoaderConfig{Pattern: "*.md"}).Validate(); err != nil {
		t.Fatalf("glob pattern must validate: %v", err)
	}
	if err := (LoaderConfig{Pattern: "["}).Validate(); err == nil {
		t.Fatalf("malformed glob must be rejected")
	}
}

func TestNewLoader_RequiresFilesystem(t *testing.T) {
	if _, err := NewLoader(nil, LoaderConfig{}); err == nil {
		t.Fatalf("expected an error for a nil filesystem")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	loader, err := NewLoader(os.DirFS("testdata"), LoaderConfig{})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	doc, err := loader.LoadFile(context.Background(), "basic.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.FrontMatter.Title != "Sample Document" {
		t.Fatalf("Title mismatch, got %q", doc.FrontMatter.Title)
	}
	if doc.FilePath != "basic.md" {
		t.Fatalf("FilePath mismatch, got %q", doc.FilePath)
	}
}

func TestLoader_LoadDirectoryNonRecursive(t *testing.T) {
	loader, err := NewLoader(os.DirFS("testdata"), LoaderConfig{})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected two top-level markdown files, got %d", len(docs))
	}
	if docs[0].FilePath != "basic.md" || docs[1].FilePath != "plain.md" {
		t.Fatalf("documents must be sorted by path: %q %q", docs[0].FilePath, docs[1].FilePath)
	}
}

func TestLoader_LoadDirectoryRecursive(t *testing.T) {
	loader, err := NewLoader(os.DirFS("testdata"), LoaderConfig{Recursive: true})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("expected three markdown files, got %d", len(docs))
	}
	found := false
	for _, doc := range docs {
		if doc.FilePath == "nested/inner.md" {
			found = true
			if doc.FrontMatter.Title != "Inner Document" {
				t.Fatalf("nested document title mismatch, got %q", doc.FrontMatter.Title)
			}
		}
	}
	if !found {
		t.Fatalf("recursive walk must include nested documents: %#v", docs)
	}
}

func TestLoader_PatternFiltersFiles(t *testing.T) {
	loader, err := NewLoader(os.DirFS("testdata"), LoaderConfig{Pattern: "basic.*"})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 1 || docs[0].FilePath != "basic.md" {
		t.Fatalf("pattern filter mismatch: %#v", docs)
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	loader, err := NewLoader(os.DirFS("testdata"), LoaderConfig{})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadFile(ctx, "basic.md"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := loader.LoadDirectory(ctx, "."); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
