package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordsearch-go/internal/model"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

const validConfig = `[nplayers]
nplayers = 2

[gsize]
gsize = 2x3

[grid]
grid = """C A T
D O G"""

[players]
players = P1, P2

[words]
cat = 0 0 0 2
dog = 1,0,1,2
o = 1 1
`

func (s *ConfigSuite) TestParseValidConfig() {
	cfg, err := Parse([]byte(validConfig))
	s.Require().NoError(err)

	s.Equal("C A T\nD O G", cfg.Grid)
	s.Equal(2, cfg.Length)
	s.Equal(3, cfg.Breadth)
	s.Equal([]string{"P1", "P2"}, cfg.Players)
	s.Equal([]model.Location{{0, 0, 0, 2}, {1, 0, 1, 2}, {1, 1}}, cfg.Locations)
}

func (s *ConfigSuite) TestParseGridRowsAsKeys() {
	data := `[nplayers]
nplayers = 1
[gsize]
gsize = 2x3
[grid]
row1 = C A T
row2 = D O G
[players]
players = solo
[words]
w1 = 0 0 0 2
`
	cfg, err := Parse([]byte(data))
	s.Require().NoError(err)
	s.Equal("C A T\nD O G", cfg.Grid)
}

func (s *ConfigSuite) TestParseMissingSection() {
	data := `[nplayers]
nplayers = 2
[gsize]
gsize = 2x3
[players]
players = P1, P2
[words]
w1 = 0 0 0 2
`
	_, err := Parse([]byte(data))
	s.ErrorIs(err, model.ErrConfigurationMissing)
}

func (s *ConfigSuite) TestParseMissingWords() {
	data := `[nplayers]
nplayers = 1
[gsize]
gsize = 1x3
[grid]
grid = C A T
[players]
players = P1
[words]
`
	_, err := Parse([]byte(data))
	s.ErrorIs(err, model.ErrConfigurationMissing)
}

func (s *ConfigSuite) TestParsePlayerCountMismatch() {
	data := `[nplayers]
nplayers = 3
[gsize]
gsize = 1x3
[grid]
grid = C A T
[players]
players = P1, P2
[words]
w1 = 0 0 0 2
`
	_, err := Parse([]byte(data))
	s.ErrorIs(err, model.ErrConfigurationMalformed)
}

func (s *ConfigSuite) TestParseNonNumericCoordinate() {
	data := `[nplayers]
nplayers = 1
[gsize]
gsize = 1x3
[grid]
grid = C A T
[players]
players = P1
[words]
w1 = 0 zero 0 2
`
	_, err := Parse([]byte(data))
	s.ErrorIs(err, model.ErrConfigurationMalformed)
}

func (s *ConfigSuite) TestParseSize() {
	length, breadth, err := ParseSize("15x12")
	s.Require().NoError(err)
	s.Equal(15, length)
	s.Equal(12, breadth)

	length, breadth, err = ParseSize(" 3 X 4 ")
	s.Require().NoError(err)
	s.Equal(3, length)
	s.Equal(4, breadth)

	for _, bad := range []string{"15", "axb", "0x5", "5x-1", "1x2x3"} {
		_, _, err := ParseSize(bad)
		s.ErrorIs(err, model.ErrConfigurationMalformed, bad)
	}
}

func (s *ConfigSuite) TestParseLocation() {
	loc, err := ParseLocation("0, 1 ,2,3")
	s.Require().NoError(err)
	s.Equal(model.Location{0, 1, 2, 3}, loc)

	_, err = ParseLocation("   ")
	s.ErrorIs(err, model.ErrConfigurationMalformed)
}

func (s *ConfigSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.dir, "nope"))
	s.ErrorIs(err, model.ErrConfigNotFound)
}

func (s *ConfigSuite) TestLoadFromFile() {
	path := filepath.Join(s.dir, ".wsgame")
	s.Require().NoError(os.WriteFile(path, []byte(validConfig), 0600))

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Len(cfg.Locations, 3)
}

func (s *ConfigSuite) TestSaveThenLoad() {
	cfg := &model.GameConfig{
		Grid:      "C A T\nD O G\nE A R",
		Length:    3,
		Breadth:   3,
		Players:   []string{"alice", "bob"},
		Locations: []model.Location{{0, 0, 0, 2}, {0, 0, 2, 2}, {2, 1}},
	}
	path := filepath.Join(s.dir, "nested", "game.ini")

	s.False(Exists(path))
	s.Require().NoError(Save(path, cfg))
	s.True(Exists(path))

	loaded, err := Load(path)
	s.Require().NoError(err)
	s.Equal(cfg, loaded)
}
