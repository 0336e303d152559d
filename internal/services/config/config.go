// Package config reads and writes game configuration files.
//
// Files use INI sections:
//
//	[nplayers]
//	nplayers = 2
//
//	[gsize]
//	gsize = 2x3
//
//	[grid]
//	grid = """C A T
//	D O G"""
//
//	[players]
//	players = alice, bob
//
//	[words]
//	w1 = 0 0 0 2
//	w2 = 1 0 1 2
//
// The grid may also be given as one key per row in its section.
// Word keys are read in file order; their names are free-form.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Section and key names
const (
	sectionPlayerCount = "nplayers"
	sectionSize        = "gsize"
	sectionGrid        = "grid"
	sectionPlayers     = "players"
	sectionWords       = "words"
)

// Load reads a configuration file
func Load(path string) (*model.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrConfigNotFound, path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes configuration from INI data
func Parse(data []byte) (*model.GameConfig, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrConfigurationMalformed, err)
	}

	nplayers, err := requiredValue(file, sectionPlayerCount)
	if err != nil {
		return nil, err
	}
	playerCount, err := strconv.Atoi(nplayers)
	if err != nil {
		return nil, fmt.Errorf("%w: nplayers %q is not a number", model.ErrConfigurationMalformed, nplayers)
	}

	gsize, err := requiredValue(file, sectionSize)
	if err != nil {
		return nil, err
	}
	length, breadth, err := ParseSize(gsize)
	if err != nil {
		return nil, err
	}

	gridText, err := readGrid(file)
	if err != nil {
		return nil, err
	}

	players, err := readPlayers(file)
	if err != nil {
		return nil, err
	}
	if len(players) != playerCount {
		return nil, fmt.Errorf("%w: nplayers is %d but %d players are listed",
			model.ErrConfigurationMalformed, playerCount, len(players))
	}

	locations, err := readLocations(file)
	if err != nil {
		return nil, err
	}

	return &model.GameConfig{
		Grid:      gridText,
		Length:    length,
		Breadth:   breadth,
		Players:   players,
		Locations: locations,
	}, nil
}

// ParseSize parses a grid size such as "15x15" into rows and columns
func ParseSize(size string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(size)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: grid size %q must look like 15x15", model.ErrConfigurationMalformed, size)
	}
	length, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	breadth, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || length <= 0 || breadth <= 0 {
		return 0, 0, fmt.Errorf("%w: grid size %q must look like 15x15", model.ErrConfigurationMalformed, size)
	}
	return length, breadth, nil
}

// ParseLocation parses whitespace- or comma-separated coordinates
func ParseLocation(text string) (model.Location, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty location", model.ErrConfigurationMalformed)
	}
	loc := make(model.Location, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: coordinate %q is not a number", model.ErrConfigurationMalformed, f)
		}
		loc = append(loc, n)
	}
	return loc, nil
}

func section(file *ini.File, name string) (*ini.Section, error) {
	sec, err := file.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("%w: section [%s]", model.ErrConfigurationMissing, name)
	}
	return sec, nil
}

// requiredValue reads the key named after its own section
func requiredValue(file *ini.File, name string) (string, error) {
	sec, err := section(file, name)
	if err != nil {
		return "", err
	}
	if !sec.HasKey(name) {
		return "", fmt.Errorf("%w: %s", model.ErrConfigurationMissing, name)
	}
	value := strings.TrimSpace(sec.Key(name).String())
	if value == "" {
		return "", fmt.Errorf("%w: %s", model.ErrConfigurationMissing, name)
	}
	return value, nil
}

func readGrid(file *ini.File) (string, error) {
	sec, err := section(file, sectionGrid)
	if err != nil {
		return "", err
	}

	var text string
	if sec.HasKey(sectionGrid) {
		text = sec.Key(sectionGrid).String()
	} else {
		rows := make([]string, 0, len(sec.Keys()))
		for _, key := range sec.Keys() {
			rows = append(rows, key.String())
		}
		text = strings.Join(rows, "\n")
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: grid", model.ErrConfigurationMissing)
	}
	return text, nil
}

func readPlayers(file *ini.File) ([]string, error) {
	sec, err := section(file, sectionPlayers)
	if err != nil {
		return nil, err
	}
	var players []string
	for _, name := range sec.Key(sectionPlayers).Strings(",") {
		if name != "" {
			players = append(players, name)
		}
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: players", model.ErrConfigurationMissing)
	}
	return players, nil
}

func readLocations(file *ini.File) ([]model.Location, error) {
	sec, err := section(file, sectionWords)
	if err != nil {
		return nil, err
	}
	keys := sec.Keys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: words", model.ErrConfigurationMissing)
	}

	locations := make([]model.Location, 0, len(keys))
	for _, key := range keys {
		loc, err := ParseLocation(key.String())
		if err != nil {
			return nil, fmt.Errorf("word %s: %w", key.Name(), err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// Encode renders a configuration as INI data
func Encode(cfg *model.GameConfig) ([]byte, error) {
	file := ini.Empty()

	set := func(sectionName, key, value string) error {
		sec, err := file.NewSection(sectionName)
		if err != nil {
			return err
		}
		_, err = sec.NewKey(key, value)
		return err
	}

	if err := set(sectionPlayerCount, sectionPlayerCount, strconv.Itoa(len(cfg.Players))); err != nil {
		return nil, err
	}
	if err := set(sectionSize, sectionSize, fmt.Sprintf("%dx%d", cfg.Length, cfg.Breadth)); err != nil {
		return nil, err
	}
	if err := set(sectionGrid, sectionGrid, strings.TrimSpace(cfg.Grid)); err != nil {
		return nil, err
	}
	if err := set(sectionPlayers, sectionPlayers, strings.Join(cfg.Players, ", ")); err != nil {
		return nil, err
	}

	words, err := file.NewSection(sectionWords)
	if err != nil {
		return nil, err
	}
	for i, loc := range cfg.Locations {
		coords := make([]string, len(loc))
		for j, n := range loc {
			coords[j] = strconv.Itoa(n)
		}
		if _, err := words.NewKey(fmt.Sprintf("w%d", i+1), strings.Join(coords, " ")); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes a configuration file, creating parent directories
func Save(path string, cfg *model.GameConfig) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Exists reports whether a configuration file is already present
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DefaultPath returns ~/.wsgame, the file used when no path is given
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wsgame"
	}
	return filepath.Join(home, ".wsgame")
}
