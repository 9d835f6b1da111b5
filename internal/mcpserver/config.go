package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// FetchTimeout bounds load_spec_from_url requests when the call does
	// not specify its own timeout.
	FetchTimeout time.Duration

	// MaxInlineSize caps the byte length of inline spec content.
	MaxInlineSize int64

	// AllowPrivateIPs disables SSRF protection on URL fetches.
	AllowPrivateIPs bool

	// DefaultFormat is the output format extract_slice uses when the call
	// does not specify one and the loaded document's format is unknown.
	// Empty means follow the loaded document.
	DefaultFormat string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASSLICE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		FetchTimeout:    envDuration("OASSLICE_FETCH_TIMEOUT", 30*time.Second),
		MaxInlineSize:   envInt64("OASSLICE_MAX_INLINE_SIZE", 10*1024*1024),
		AllowPrivateIPs: envBool("OASSLICE_ALLOW_PRIVATE_IPS", false),
		DefaultFormat:   envFormat("OASSLICE_DEFAULT_FORMAT"),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

// envFormat accepts only recognised serialization format names.
func envFormat(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if v != "yaml" && v != "json" {
		slog.Warn("invalid format env var, ignoring", "key", key, "value", v)
		return ""
	}
	return v
}
