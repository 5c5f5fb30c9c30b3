package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	require.NoError(t, os.Setenv("SNAKE_TEST_INT", "42"))
	defer os.Unsetenv("SNAKE_TEST_INT")

	require.Equal(t, 42, getEnvInt("SNAKE_TEST_INT", 7))
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_MISSING", 7))

	require.NoError(t, os.Setenv("SNAKE_TEST_INT", "fast"))
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))
}

func TestGetEnvInt64(t *testing.T) {
	require.NoError(t, os.Setenv("SNAKE_TEST_SEED", "8589934592"))
	defer os.Unsetenv("SNAKE_TEST_SEED")

	require.Equal(t, int64(8589934592), getEnvInt64("SNAKE_TEST_SEED", 0))
	require.Equal(t, int64(3), getEnvInt64("SNAKE_TEST_MISSING", 3))
}

func TestGetEnvString(t *testing.T) {
	require.NoError(t, os.Setenv("SNAKE_TEST_LEVEL", "debug"))
	defer os.Unsetenv("SNAKE_TEST_LEVEL")

	require.Equal(t, "debug", getEnvString("SNAKE_TEST_LEVEL", "info"))
	require.Equal(t, "info", getEnvString("SNAKE_TEST_MISSING", "info"))
}

func TestDefaults(t *testing.T) {
	require.True(t, FrameRate > 0)
	require.True(t, FrameBurst > 0)
}
