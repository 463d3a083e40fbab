// Package document loads Markdown files from a filesystem, splitting
// frontmatter metadata from the body the view parses.
package document

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/frontmatter"
)

// Document represents a Markdown file with parsed metadata and content.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so
	// callers can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. The Custom map
// keeps host-specific values without forcing schema changes here.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
}

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured frontmatter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}

	return meta, body, nil
}

// Build assembles a Document from the supplied file path, raw content, and
// modification time.
func Build(path string, source []byte, modified time.Time) (*Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(source)
	return &Document{
		FilePath:     path,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
		Checksum:     sum[:],
	}, nil
}

// Load reads and parses a single Markdown document from the OS filesystem.
func Load(ctx context.Context, path string) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document read %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("document stat %s: %w", path, err)
	}
	return Build(filepath.ToSlash(path), data, info.ModTime())
}
