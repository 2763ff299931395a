package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HTTPAddr    string        // Listen address for the step visualizer
	GinMode     string        // Mode for the Gin framework (release, debug, test)
	LogLevel    string        // logrus level name
	CellSize    int           // Pixel size of one maze cell
	MoveDelay   time.Duration // Interval between robot moves
	WallDensity float64       // Wall probability used when regenerating
	MazeFile    string        // Optional maze file; empty uses the built-in layout
}

// Load reads an optional .env file and then the environment.
// Unset variables fall back to defaults; malformed numbers are errors.
func Load() (Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (Config, error) {
	cellSize, err := getEnvAsInt("CELL_SIZE", 40)
	if err != nil {
		return Config{}, err
	}
	delayMs, err := getEnvAsInt("MOVE_DELAY_MS", 500)
	if err != nil {
		return Config{}, err
	}
	density, err := getEnvAsFloat("WALL_DENSITY", 0.3)
	if err != nil {
		return Config{}, err
	}
	if cellSize <= 0 {
		return Config{}, fmt.Errorf("CELL_SIZE must be positive, got %d", cellSize)
	}
	if delayMs <= 0 {
		return Config{}, fmt.Errorf("MOVE_DELAY_MS must be positive, got %d", delayMs)
	}
	// Generate treats zero as "use the default", so an explicit zero is refused
	if density <= 0 || density >= 1 {
		return Config{}, fmt.Errorf("WALL_DENSITY must be in (0,1), got %v", density)
	}

	return Config{
		HTTPAddr:    getEnvWithDefault("HTTP_ADDR", ":8080"),
		GinMode:     getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		CellSize:    cellSize,
		MoveDelay:   time.Duration(delayMs) * time.Millisecond,
		WallDensity: density,
		MazeFile:    getEnvWithDefault("MAZE_FILE", ""),
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return value, nil
}
