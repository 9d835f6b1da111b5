// Package httputil provides HTTP-related validation utilities shared by the
// parser and the MCP tool layer.
package httputil

import (
	"mime"
	"net/url"
	"strings"

	"github.com/oasslice/oasslice/sliceerrors"
)

// HTTP method keys recognized under a path item (OAS 3.x). Everything else
// at the path-item level (parameters, summary, description) is not an
// operation.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// ValidateSpecURL checks that rawURL is an absolute http or https URL with a
// host, the only URL shape accepted for remote specification loading.
func ValidateSpecURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &sliceerrors.InputError{Option: "url", Value: rawURL, Message: "not a valid URL"}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return &sliceerrors.InputError{Option: "url", Value: rawURL, Message: "URL must be absolute"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &sliceerrors.InputError{Option: "url", Value: rawURL, Message: "only HTTP and HTTPS URLs are supported"}
	}
	return nil
}

// ContentTypeIsJSON reports whether a Content-Type header names a JSON media type.
func ContentTypeIsJSON(contentType string) bool {
	mediaType := parseMediaType(contentType)
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// ContentTypeIsYAML reports whether a Content-Type header names a YAML media type.
func ContentTypeIsYAML(contentType string) bool {
	switch parseMediaType(contentType) {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	}
	return false
}

func parseMediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
