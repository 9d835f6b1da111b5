package parser

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/oasslice/oasslice"
	"github.com/oasslice/oasslice/internal/httputil"
	"github.com/oasslice/oasslice/sliceerrors"
)

// fetchURL fetches content from a URL and returns the bytes and Content-Type header
func (p *Parser) fetchURL(urlStr string) ([]byte, string, error) {
	if err := httputil.ValidateSpecURL(urlStr); err != nil {
		return nil, "", err
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Use custom client if provided, otherwise create a default with timeout
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", &sliceerrors.InputError{Option: "url", Value: urlStr, Message: "failed to create request"}
	}

	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = oasslice.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, "", &sliceerrors.FetchError{
				URL:     urlStr,
				Timeout: true,
				Message: fmt.Sprintf("request timeout after %s", timeout),
				Cause:   err,
			}
		}
		return nil, "", &sliceerrors.FetchError{URL: urlStr, Message: "network request failed", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &sliceerrors.FetchError{URL: urlStr, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &sliceerrors.FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	p.log().Debug("fetched specification", "url", urlStr, "bytes", len(data))
	return data, resp.Header.Get("Content-Type"), nil
}
