package parser

import (
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/oasslice/oasslice"
	"github.com/oasslice/oasslice/internal/nodeutil"
	"github.com/oasslice/oasslice/sliceerrors"
)

// DefaultTimeout is the timeout applied to URL fetches when the Parser does
// not specify one.
const DefaultTimeout = 30 * time.Second

// Parser handles OpenAPI specification loading
type Parser struct {
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "oasslice" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with Timeout is created per fetch.
	HTTPClient *http.Client
	// Timeout bounds URL fetches when HTTPClient is nil.
	// Zero means DefaultTimeout.
	Timeout time.Duration
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UserAgent: oasslice.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// Parse loads an OpenAPI specification from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
// For local files, the file is read and parsed.
func (p *Parser) Parse(specPath string) (*Document, error) {
	var data []byte
	var format SourceFormat

	if isURL(specPath) {
		fetched, contentType, err := p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		data = fetched
		format = detectFormatFromURL(specPath, contentType)
	} else {
		read, err := os.ReadFile(specPath)
		if err != nil {
			return nil, &sliceerrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
		}
		data = read
		format = detectFormatFromPath(specPath)
	}

	doc, err := p.parseBytes(data, specPath)
	if err != nil {
		return nil, err
	}
	if format != SourceFormatUnknown {
		doc.SourceFormat = format
	}
	return doc, nil
}

// ParseBytes loads an OpenAPI specification from a byte slice.
// The SourcePath of the result is synthetic: ParseBytes.yaml or ParseBytes.json.
func (p *Parser) ParseBytes(data []byte) (*Document, error) {
	doc, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	if doc.SourceFormat == SourceFormatJSON {
		doc.SourcePath = "ParseBytes.json"
	} else {
		doc.SourcePath = "ParseBytes.yaml"
	}
	return doc, nil
}

// ParseReader loads an OpenAPI specification from an io.Reader.
// The SourcePath of the result is synthetic: ParseReader.yaml or ParseReader.json.
func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &sliceerrors.ParseError{Message: "failed to read data", Cause: err}
	}
	doc, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	if doc.SourceFormat == SourceFormatJSON {
		doc.SourcePath = "ParseReader.json"
	} else {
		doc.SourcePath = "ParseReader.yaml"
	}
	return doc, nil
}

// parseBytes parses raw bytes into a Document and validates that the result
// is a usable specification: a mapping at the top level carrying a paths key.
func (p *Parser) parseBytes(data []byte, sourcePath string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &sliceerrors.ParseError{Path: sourcePath, Message: "failed to parse YAML/JSON", Cause: err}
	}

	top := nodeutil.Unwrap(&root)
	if top == nil || top.Kind != yaml.MappingNode {
		return nil, &sliceerrors.InvalidSpecError{Path: sourcePath, Message: "document must be a mapping at the top level"}
	}
	if nodeutil.MapValue(top, "paths") == nil {
		return nil, &sliceerrors.InvalidSpecError{Path: sourcePath, Message: "must contain 'paths' section"}
	}

	doc := &Document{
		SourcePath:   sourcePath,
		SourceFormat: detectFormatFromContent(data),
		root:         top,
	}
	p.log().Debug("parsed specification",
		"source", sourcePath,
		"format", string(doc.SourceFormat),
		"paths", doc.PathCount())
	return doc, nil
}
