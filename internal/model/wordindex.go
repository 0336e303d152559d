package model

// WordEntry tracks the unclaimed occurrences of one hidden word
type WordEntry struct {
	Count     int        // occurrences not yet guessed
	Locations []Location // one is consumed per correct guess, last first
}

// WordIndex maps each hidden word to its entry.
// Words keep the order in which they were first added.
type WordIndex struct {
	entries map[string]*WordEntry
	order   []string
}

// NewWordIndex creates an empty index
func NewWordIndex() *WordIndex {
	return &WordIndex{
		entries: make(map[string]*WordEntry),
	}
}

// Add records one more occurrence of word at loc
func (w *WordIndex) Add(word string, loc Location) {
	entry, ok := w.entries[word]
	if !ok {
		entry = &WordEntry{}
		w.entries[word] = entry
		w.order = append(w.order, word)
	}
	entry.Count++
	entry.Locations = append(entry.Locations, loc)
}

// Get returns the entry for a word
func (w *WordIndex) Get(word string) (*WordEntry, bool) {
	entry, ok := w.entries[word]
	return entry, ok
}

// Claim consumes one occurrence of word and returns its location.
// ok is false when the word is unknown or already exhausted.
func (w *WordIndex) Claim(word string) (Location, bool) {
	entry, found := w.entries[word]
	if !found || entry.Count == 0 {
		return nil, false
	}
	last := len(entry.Locations) - 1
	loc := entry.Locations[last]
	entry.Locations = entry.Locations[:last]
	entry.Count--
	return loc, true
}

// Remaining returns the total number of unclaimed occurrences
func (w *WordIndex) Remaining() int {
	total := 0
	for _, entry := range w.entries {
		total += entry.Count
	}
	return total
}

// Words returns the distinct words in first-seen order
func (w *WordIndex) Words() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// Len returns the number of distinct words
func (w *WordIndex) Len() int {
	return len(w.order)
}
