package parser

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/oasslice/oasslice/internal/httputil"
)

// SourceFormat represents the format of a source specification document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseFormat converts a caller-supplied format string ("yaml" or "json",
// case-insensitive) into a SourceFormat. The empty string defaults to YAML.
func ParseFormat(s string) (SourceFormat, bool) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return SourceFormatYAML, true
	case "json":
		return SourceFormatJSON, true
	default:
		return SourceFormatUnknown, false
	}
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes.
// JSON documents start with '{' or '['; anything else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL attempts to detect the format from a URL path and
// Content-Type header.
func detectFormatFromURL(urlStr string, contentType string) SourceFormat {
	parsedURL, err := url.Parse(urlStr)
	if err == nil && parsedURL.Path != "" {
		if format := detectFormatFromPath(parsedURL.Path); format != SourceFormatUnknown {
			return format
		}
	}
	switch {
	case httputil.ContentTypeIsJSON(contentType):
		return SourceFormatJSON
	case httputil.ContentTypeIsYAML(contentType):
		return SourceFormatYAML
	}
	return SourceFormatUnknown
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
