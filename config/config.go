package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning how
// the terminal host runs the game.
var (
	FrameRate  = rate.Limit(getEnvInt("SNAKE_FPS", 60))
	FrameBurst = getEnvInt("SNAKE_FRAME_BURST", 1)
	Seed       = getEnvInt64("SNAKE_SEED", 0)
	LogLevel   = getEnvString("SNAKE_LOG_LEVEL", "info")
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvInt64(varName string, defaults int64) int64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaults
	}
	return intVal
}

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
