package parser

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasslice/oasslice/sliceerrors"
)

func TestParse_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "oasslice")
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(petstoreYAML))
	}))
	defer server.Close()

	doc, err := New().Parse(server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, doc.SourcePath)
	assert.Equal(t, SourceFormatYAML, doc.SourceFormat)
	assert.Equal(t, "Pet Store", doc.Title())
}

func TestParse_URLJSONContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(petstoreJSON))
	}))
	defer server.Close()

	doc, err := New().Parse(server.URL)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, doc.SourceFormat)
}

func TestParse_URLExtensionBeatsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(petstoreYAML))
	}))
	defer server.Close()

	doc, err := New().Parse(server.URL + "/openapi.yaml")
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, doc.SourceFormat)
}

func TestParse_URLHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New().Parse(server.URL)
	require.Error(t, err)

	var fetchErr *sliceerrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.False(t, fetchErr.Timeout)
}

func TestParse_URLTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	p := New()
	p.Timeout = 50 * time.Millisecond
	_, err := p.Parse(server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sliceerrors.ErrTimeout))

	var fetchErr *sliceerrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, fetchErr.Timeout)
}

func TestParse_URLConnectionRefused(t *testing.T) {
	// A server that is closed immediately gives a connect failure.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New().Parse(url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sliceerrors.ErrFetch))
}

func TestParse_URLInvalidSpecBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("info:\n  title: no paths here\n"))
	}))
	defer server.Close()

	_, err := New().Parse(server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sliceerrors.ErrInvalidSpec))
}
