package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/config"
)

const catDogINI = `[nplayers]
nplayers = 2

[gsize]
gsize = 2x3

[grid]
grid = """C A T
D O G"""

[players]
players = P1, P2

[words]
w1 = 0 0 0 2
w2 = 1 0 1 2
`

type CLISuite struct {
	suite.Suite
	dir        string
	configPath string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.configPath = filepath.Join(s.dir, "wsgame.ini")
}

func (s *CLISuite) writeConfig(data string) {
	s.Require().NoError(os.WriteFile(s.configPath, []byte(data), 0600))
}

// run executes the root command and returns stdout, stderr and the error
func (s *CLISuite) run(stdin string, args ...string) (string, string, error) {
	cmd := NewRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--storage", "memory",
		"--no-color",
		"--config", s.configPath,
	}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (s *CLISuite) TestPlayToWin() {
	s.writeConfig(catDogINI)

	stdout, _, err := s.run("cat\nCAT\n dog \n", "play")
	s.Require().NoError(err)

	s.Contains(stdout, "P1, enter a word (or PASS): ")
	s.Contains(stdout, "P1: CAT - Correct! 1 left")
	s.Contains(stdout, "P2: CAT - Already identified")
	s.Contains(stdout, "P1: DOG - Correct! 0 left")
	s.Contains(stdout, "Game over: all words found")
	s.Contains(stdout, "Winner: P1 with 2 points")
	s.Contains(stdout, "P1: 2 (CAT, DOG)")
	s.Contains(stdout, " 1 | d  o  g |")
}

func (s *CLISuite) TestPlayPassOutJSON() {
	s.writeConfig(catDogINI)

	stdout, stderr, err := s.run("pass\nPASS\nPass\npass\n", "--output", "json", "play")
	s.Require().NoError(err)

	var result model.GameResult
	s.Require().NoError(json.Unmarshal([]byte(stdout), &result))
	s.True(result.Draw)
	s.Nil(result.Winner)
	s.Equal(model.EndReasonPassedOut, result.Reason)
	s.Len(result.Players, 2)

	// The interactive screen goes to stderr
	s.Contains(stderr, "P2: Passed")
}

func (s *CLISuite) TestPlayWrongGuess() {
	s.writeConfig(catDogINI)

	stdout, _, err := s.run("bird\ncat\npass\ndog\n", "play")
	s.Require().NoError(err)

	s.Contains(stdout, "P1: BIRD - Wrong choice")
	s.Contains(stdout, "Winner: P2 with 2 points")
}

func (s *CLISuite) TestPlayInputEndsEarly() {
	s.writeConfig(catDogINI)

	_, _, err := s.run("cat\n", "play")
	s.Error(err)
	s.Contains(err.Error(), "prompting P2")
}

func (s *CLISuite) TestPlayMissingConfig() {
	_, _, err := s.run("", "play")
	s.ErrorIs(err, model.ErrConfigNotFound)
}

func (s *CLISuite) TestPlayRejectsLShape() {
	s.writeConfig(strings.Replace(catDogINI, "w2 = 1 0 1 2", "w2 = 0 0 0 1 1 1", 1))

	_, _, err := s.run("", "play")
	s.ErrorIs(err, model.ErrUnrecognizedShape)
}

func (s *CLISuite) TestPlayUnknownPuzzle() {
	_, _, err := s.run("", "play", "--puzzle", "nope")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *CLISuite) TestMakeWritesPlayableConfig() {
	stdout, _, err := s.run("", "make", "--np", "3", "--gsize", "6x7", "--words", "1", "--seed", "7")
	s.Require().NoError(err)
	s.Contains(stdout, "Generated 6x7 puzzle with 1 words for P1, P2, P3")

	cfg, err := config.Load(s.configPath)
	s.Require().NoError(err)
	s.Equal(6, cfg.Length)
	s.Equal(7, cfg.Breadth)
	s.Equal([]string{"P1", "P2", "P3"}, cfg.Players)
	s.Len(cfg.Locations, 1)
}

func (s *CLISuite) TestMakeSeedIsReproducible() {
	_, _, err := s.run("", "make", "--gsize", "8x8", "--words", "3", "--seed", "99")
	s.Require().NoError(err)
	first, err := os.ReadFile(s.configPath)
	s.Require().NoError(err)

	_, _, err = s.run("", "make", "--gsize", "8x8", "--words", "3", "--seed", "99", "--force")
	s.Require().NoError(err)
	second, err := os.ReadFile(s.configPath)
	s.Require().NoError(err)

	s.Equal(string(first), string(second))
}

func (s *CLISuite) TestMakeAsksBeforeOverwrite() {
	s.writeConfig(catDogINI)

	_, stderr, err := s.run("n\n", "make", "--gsize", "5x5", "--words", "1", "--seed", "1")
	s.ErrorIs(err, errNotOverwritten)
	s.Contains(stderr, "already exists. Overwrite? [y/N]: ")

	data, err := os.ReadFile(s.configPath)
	s.Require().NoError(err)
	s.Equal(catDogINI, string(data))

	_, _, err = s.run("y\n", "make", "--gsize", "5x5", "--words", "1", "--seed", "1")
	s.Require().NoError(err)

	cfg, err := config.Load(s.configPath)
	s.Require().NoError(err)
	s.Equal(5, cfg.Length)
}

func (s *CLISuite) TestMakeNamedPlayers() {
	_, _, err := s.run("", "make", "--players", "alice,bob", "--gsize", "5x5", "--words", "1", "--seed", "3")
	s.Require().NoError(err)

	cfg, err := config.Load(s.configPath)
	s.Require().NoError(err)
	s.Equal([]string{"alice", "bob"}, cfg.Players)

	_, _, err = s.run("", "make", "--np", "3", "--players", "alice,bob", "--force")
	s.Error(err)
}

func (s *CLISuite) TestMakeBadSize() {
	_, _, err := s.run("", "make", "--gsize", "big")
	s.ErrorIs(err, model.ErrConfigurationMalformed)
}

func (s *CLISuite) TestMakeJSONNoFile() {
	stdout, _, err := s.run("", "--output", "json", "make", "--gsize", "5x5", "--words", "1", "--seed", "5", "--no-file")
	s.Require().NoError(err)

	var made MadePuzzle
	s.Require().NoError(json.Unmarshal([]byte(stdout), &made))
	s.Equal(5, made.Rows)
	s.Equal(1, made.Words)
	s.Empty(made.Path)
	s.False(config.Exists(s.configPath))
}

func (s *CLISuite) TestHistoryEmpty() {
	stdout, _, err := s.run("", "history")
	s.Require().NoError(err)
	s.Contains(stdout, "No games played yet")
}

func (s *CLISuite) TestPuzzlesListEmpty() {
	stdout, _, err := s.run("", "puzzles", "list")
	s.Require().NoError(err)
	s.Contains(stdout, "No saved puzzles")
}

func (s *CLISuite) TestUnknownOutputFormat() {
	_, _, err := s.run("", "--output", "yaml", "history")
	s.Error(err)
}

func (s *CLISuite) TestMemoryStorageWarnsHistoryIsLost() {
	_, stderr, err := s.run("", "history")
	s.Require().NoError(err)
	s.Contains(stderr, "game history is not kept between runs with memory storage")

	s.writeConfig(catDogINI)
	_, stderr, err = s.run("cat\ndog\n", "play")
	s.Require().NoError(err)
	s.Contains(stderr, "the result of this game is not kept between runs")
}

func (s *CLISuite) TestPrintErrorFormats() {
	var stdout, stderr bytes.Buffer
	NewOutput("json", &stdout, &stderr).PrintError(model.ErrConfigNotFound)

	var payload map[string]map[string]string
	s.Require().NoError(json.Unmarshal(stderr.Bytes(), &payload))
	s.Equal("configuration file not found", payload["error"]["message"])
	s.Empty(stdout.String())

	stderr.Reset()
	NewOutput("text", &stdout, &stderr).PrintError(model.ErrConfigNotFound)
	s.Equal("Error: configuration file not found\n", stderr.String())
}
