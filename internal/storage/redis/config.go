package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// PuzzleTTL expires saved puzzles; zero keeps them forever
	PuzzleTTL time.Duration

	// HistoryLimit caps the number of finished games kept
	HistoryLimit int64
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     4,
		MinIdleConns: 1,
		PuzzleTTL:    0,
		HistoryLimit: 100,
	}
}
