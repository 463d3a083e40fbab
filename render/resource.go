package render

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-markdown-view/pkg/interfaces"
)

// ClassifyImageSource parses an image destination string into a resource
// descriptor for the image collaborator. Classification never fails:
// anything that is not inline data, a remote URL, or a recognisable file
// path degrades to the logical resource kind.
//
// A trailing "#WxH" fragment supplies width/height rendering hints and is
// stripped from the path. Relative file paths are prefixed with baseDir when
// one is supplied.
func ClassifyImageSource(raw string, baseDir string) interfaces.ImageSource {
	path, width, height := splitDimensionHints(strings.TrimSpace(raw))

	src := interfaces.ImageSource{
		Kind:   interfaces.ResourceKindResource,
		Path:   path,
		Width:  width,
		Height: height,
	}

	uri, err := url.Parse(path)
	if err != nil {
		return src
	}
	src.URI = uri

	switch strings.ToLower(uri.Scheme) {
	case "http", "https":
		src.Kind = interfaces.ResourceKindHTTP
	case "data":
		src.Kind = interfaces.ResourceKindData
	case "file":
		src.Kind = interfaces.ResourceKindFile
		src.Path = uri.Path
	case "":
		if looksLikeFilePath(path) {
			src.Kind = interfaces.ResourceKindFile
			if baseDir != "" && !filepath.IsAbs(path) {
				src.Path = filepath.Join(baseDir, path)
			}
		}
	}

	return src
}

// splitDimensionHints strips a trailing "#WxH" fragment. Either dimension
// may be omitted ("#200x", "#x150"); a fragment that does not parse as
// dimensions is left on the path untouched.
func splitDimensionHints(raw string) (string, *float64, *float64) {
	idx := strings.LastIndex(raw, "#")
	if idx < 0 {
		return raw, nil, nil
	}

	fragment := raw[idx+1:]
	parts := strings.SplitN(fragment, "x", 2)
	if len(parts) != 2 {
		return raw, nil, nil
	}

	width, okWidth := parseDimension(parts[0])
	height, okHeight := parseDimension(parts[1])
	if !okWidth || !okHeight || (width == nil && height == nil) {
		return raw, nil, nil
	}

	return raw[:idx], width, height
}

func parseDimension(value string) (*float64, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return nil, false
	}
	return &parsed, true
}

// looksLikeFilePath reports whether a schemeless source plausibly names a
// local file: it carries a path separator or a file extension. Everything
// else is treated as a logical resource identifier.
func looksLikeFilePath(path string) bool {
	if strings.ContainsAny(path, `/\`) {
		return true
	}
	return filepath.Ext(path) != ""
}
