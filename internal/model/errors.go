package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Configuration errors
	ErrConfigurationMissing   = errors.New("configuration missing")
	ErrConfigurationMalformed = errors.New("configuration malformed")
	ErrConfigNotFound         = errors.New("configuration file not found")

	// Location errors
	ErrUnrecognizedShape   = errors.New("unrecognized location shape")
	ErrLocationOutOfBounds = fmt.Errorf("%w: location out of grid bounds", ErrConfigurationMalformed)
	ErrReversedLocation    = fmt.Errorf("%w: location endpoints are reversed", ErrConfigurationMalformed)

	// Game errors
	ErrGameComplete = errors.New("game is already complete")

	// Storage errors
	ErrPuzzleNotFound = errors.New("puzzle not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrNotEnoughWords      = errors.New("not enough dictionary words fit the grid")
)
