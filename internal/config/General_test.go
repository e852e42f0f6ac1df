package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_USER", "aprcell")
	t.Setenv("DB_NAME", "aprcell")
	t.Setenv("WEB_PORT", "")
	t.Setenv("MAX_LOCK_DURATION", "")
	t.Setenv("APY_CACHE_TTL", "")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "8080", WebPort)
	assert.Equal(t, int64(31536000), MaxLockDuration)
	assert.Equal(t, 30*time.Second, ApyCacheTTL)
	assert.Equal(t, int64(5432), DBPort)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_USER", "aprcell")
	t.Setenv("DB_NAME", "aprcell")
	t.Setenv("WEB_PORT", "9090")
	t.Setenv("MAX_LOCK_DURATION", "604800")
	t.Setenv("APY_CACHE_TTL", "2m")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "9090", WebPort)
	assert.Equal(t, int64(604800), MaxLockDuration)
	assert.Equal(t, 2*time.Minute, ApyCacheTTL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("DB_USER", "aprcell")
	t.Setenv("DB_NAME", "aprcell")

	t.Setenv("MAX_LOCK_DURATION", "forever")
	assert.Error(t, LoadConfig())

	t.Setenv("MAX_LOCK_DURATION", "-5")
	assert.Error(t, LoadConfig())

	t.Setenv("MAX_LOCK_DURATION", "")
	t.Setenv("APY_CACHE_TTL", "soon")
	assert.Error(t, LoadConfig())
}

func TestLoadConfig_InvalidDBPort(t *testing.T) {
	t.Setenv("DB_USER", "aprcell")
	t.Setenv("DB_NAME", "aprcell")
	t.Setenv("MAX_LOCK_DURATION", "")
	t.Setenv("APY_CACHE_TTL", "")

	for _, port := range []string{"54x2", "0", "-1", "70000"} {
		t.Setenv("DB_PORT", port)
		assert.Error(t, LoadConfig(), port)
	}

	t.Setenv("DB_PORT", "6543")
	require.NoError(t, LoadConfig())
	assert.Equal(t, int64(6543), DBPort)
}

func TestGetVaultSettings(t *testing.T) {
	assert.Equal(t, 5000, GetVaultSettings("cakeVault").AutoCompoundFrequency)
	assert.Equal(t, 0, GetVaultSettings("unknown").AutoCompoundFrequency)
}
