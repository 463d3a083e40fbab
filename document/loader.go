package document

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoaderConfig configures how Markdown files are discovered within a
// filesystem.
type LoaderConfig struct {
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Validate rejects glob patterns the walker could not apply.
func (cfg LoaderConfig) Validate() error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Pattern, validation.By(func(value any) error {
			pattern, _ := value.(string)
			if strings.TrimSpace(pattern) == "" {
				return nil
			}
			if _, err := filepath.Match(pattern, "probe"); err != nil {
				return validation.NewError("mdview.document.pattern_invalid", "pattern is not a valid glob")
			}
			return nil
		})),
	)
}

// Loader turns filesystem paths into Markdown documents with metadata.
type Loader struct {
	fs        fs.FS
	pattern   string
	recursive bool
}

// NewLoader constructs a Loader using the provided filesystem and
// configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) (*Loader, error) {
	if filesystem == nil {
		return nil, fmt.Errorf("document loader: filesystem is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("document loader: %w", err)
	}

	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
	}, nil
}

// LoadFile reads and parses a single Markdown document.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel := filepath.ToSlash(filepath.Clean(path))

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("document loader read %s: %w", rel, err)
	}
	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("document loader stat %s: %w", rel, err)
	}

	return Build(rel, data, info.ModTime())
}

// LoadDirectory discovers Markdown files under dir and returns parsed
// documents sorted by path.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root := filepath.ToSlash(filepath.Clean(dir))
	var docs []*Document

	walkErr := fs.WalkDir(l.fs, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if !l.recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}

		matched, err := filepath.Match(l.pattern, entry.Name())
		if err != nil || !matched {
			return err
		}

		doc, err := l.LoadFile(ctx, path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("document loader walk %s: %w", root, walkErr)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})
	return docs, nil
}
