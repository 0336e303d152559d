package dictionary

// DefaultWords returns the built-in word list used when no dictionary
// file has been loaded
func DefaultWords() []string {
	return []string{
		"ant", "ape", "bat", "bee", "cat", "cow", "dog", "eel", "elk", "emu",
		"fox", "gnu", "hen", "owl", "pig", "ram", "rat", "yak",
		"bear", "boar", "crab", "crow", "deer", "dove", "duck", "frog", "goat",
		"hare", "hawk", "lamb", "lion", "mole", "moth", "mule", "newt", "seal",
		"slug", "swan", "toad", "wasp", "wolf", "worm", "wren",
		"camel", "eagle", "finch", "goose", "horse", "hyena", "koala", "lemur",
		"llama", "moose", "mouse", "otter", "panda", "quail", "raven", "robin",
		"shark", "sheep", "skunk", "sloth", "snail", "snake", "squid", "stork",
		"tiger", "trout", "whale", "zebra",
		"badger", "beaver", "donkey", "falcon", "ferret", "gerbil", "iguana",
		"jaguar", "lizard", "magpie", "monkey", "ostrich", "parrot", "pigeon",
		"rabbit", "salmon", "spider", "turkey", "turtle", "walrus", "weasel",
	}
}
