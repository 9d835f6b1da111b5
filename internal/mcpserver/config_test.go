package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASSLICEEnv clears all OASSLICE_* env vars to isolate tests from the ambient environment.
func clearOASSLICEEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASSLICE_FETCH_TIMEOUT", "OASSLICE_MAX_INLINE_SIZE",
		"OASSLICE_ALLOW_PRIVATE_IPS", "OASSLICE_DEFAULT_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASSLICEEnv(t)

	c := loadConfig()

	assert.Equal(t, 30*time.Second, c.FetchTimeout)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.Empty(t, c.DefaultFormat)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASSLICEEnv(t)
	t.Setenv("OASSLICE_FETCH_TIMEOUT", "5s")
	t.Setenv("OASSLICE_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OASSLICE_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("OASSLICE_DEFAULT_FORMAT", "json")

	c := loadConfig()

	assert.Equal(t, 5*time.Second, c.FetchTimeout)
	assert.Equal(t, int64(5*1024*1024), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, "json", c.DefaultFormat)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearOASSLICEEnv(t)
	t.Setenv("OASSLICE_FETCH_TIMEOUT", "not-a-duration")
	t.Setenv("OASSLICE_MAX_INLINE_SIZE", "-1")
	t.Setenv("OASSLICE_ALLOW_PRIVATE_IPS", "maybe")
	t.Setenv("OASSLICE_DEFAULT_FORMAT", "xml")

	c := loadConfig()

	assert.Equal(t, 30*time.Second, c.FetchTimeout)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.Empty(t, c.DefaultFormat)
}
