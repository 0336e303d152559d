package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "wsgame"

// puzzleKey returns the Redis key for a saved puzzle
func puzzleKey(name string) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, name)
}

// puzzleIndexKey returns the Redis key for the SET of puzzle names
func puzzleIndexKey() string {
	return fmt.Sprintf("%s:idx:puzzles", keyPrefix)
}

// historyKey returns the Redis key for the LIST of game summaries, newest first
func historyKey() string {
	return fmt.Sprintf("%s:history", keyPrefix)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
