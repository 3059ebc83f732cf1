package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeProviderSetTimezone(t *testing.T) {
	provider := &TimeProvider{}

	require.NoError(t, provider.SetTimezone("UTC"))
	require.NoError(t, provider.SetTimezone("Asia/Shanghai"))
	require.NoError(t, provider.SetTimezone("Local"))
	require.NoError(t, provider.SetTimezone(""))

	err := provider.SetTimezone("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone")
}

func TestTimeProviderIn(t *testing.T) {
	provider := &TimeProvider{}
	require.NoError(t, provider.SetTimezone("Asia/Shanghai"))

	utc := time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC)
	local := provider.In(utc)

	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, 16, local.Day())
	assert.True(t, utc.Equal(local))
}

func TestTimeProviderFormat(t *testing.T) {
	provider := &TimeProvider{}
	require.NoError(t, provider.SetTimezone("UTC"))

	moment := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15 10:30", provider.Format(moment, "2006-01-02 15:04"))
}

func TestGetTimeProviderDefaults(t *testing.T) {
	provider := GetTimeProvider()
	require.NotNil(t, provider)
	assert.NotPanics(t, func() { provider.Now() })
}
