package factory

import (
	"time"

	"github.com/mcoot/wordsearch-go/internal/dependencies/mocks"
	"github.com/mcoot/wordsearch-go/internal/storage/memory"
	"github.com/mcoot/wordsearch-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		"ant", "bat", "cat", "cow", "dog", "eel", "fox", "hen", "owl", "pig", "rat",
		"bear", "crab", "deer", "duck", "frog", "goat", "lion", "mole", "seal", "wolf",
		"eagle", "horse", "mouse", "otter", "sheep", "tiger", "whale", "zebra",
	}
	return t.DictionaryService.LoadWords(words)
}
