package console

import (
	"bytes"
	"context"
	"github.com/lefinal/scoreboard/errors"
	"github.com/lefinal/scoreboard/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"strings"
	"testing"
	"time"
)

const timeout = 3 * time.Second

// registryStub mocks Registry.
type registryStub struct {
	mock.Mock
}

func (stub *registryStub) StartMatch(homeTeam string, awayTeam string) (scoreboard.Match, error) {
	args := stub.Called(homeTeam, awayTeam)
	return args.Get(0).(scoreboard.Match), args.Error(1)
}

func (stub *registryStub) UpdateScore(homeTeam string, awayTeam string, homeScore int, awayScore int) (scoreboard.Match, error) {
	args := stub.Called(homeTeam, awayTeam, homeScore, awayScore)
	return args.Get(0).(scoreboard.Match), args.Error(1)
}

func (stub *registryStub) FinishMatch(homeTeam string, awayTeam string) (scoreboard.Match, error) {
	args := stub.Called(homeTeam, awayTeam)
	return args.Get(0).(scoreboard.Match), args.Error(1)
}

func (stub *registryStub) Summary() []scoreboard.Match {
	args := stub.Called()
	return args.Get(0).([]scoreboard.Match)
}

func TestNew(t *testing.T) {
	logger := zap.New(zapcore.NewNopCore())
	registry := &registryStub{}
	in := strings.NewReader("")
	var out bytes.Buffer
	c := New(logger, registry, in, &out).(*console)
	require.NotNil(t, c, "should create")
	assert.Equal(t, logger, c.logger, "should set correct logger")
	assert.Equal(t, registry, c.registry, "should set correct registry")
	assert.Equal(t, in, c.in, "should set correct input")
	assert.Equal(t, &out, c.out, "should set correct output")
}

// consoleExecuteSuite tests console.execute.
type consoleExecuteSuite struct {
	suite.Suite
	registry *registryStub
	console  *console
}

func (suite *consoleExecuteSuite) SetupTest() {
	suite.registry = &registryStub{}
	suite.console = New(zap.New(zapcore.NewNopCore()), suite.registry, strings.NewReader(""), io.Discard).(*console)
}

func (suite *consoleExecuteSuite) TearDownTest() {
	suite.registry.AssertExpectations(suite.T())
}

func (suite *consoleExecuteSuite) TestEmptyLine() {
	out, quit := suite.console.execute("")
	suite.Equal("", out)
	suite.False(quit)
}

func (suite *consoleExecuteSuite) TestStart() {
	suite.registry.On("StartMatch", "Costa Rica", "Peru").
		Return(scoreboard.Match{HomeTeam: "Costa Rica", AwayTeam: "Peru"}, nil).Once()
	out, quit := suite.console.execute(`start "Costa Rica" Peru`)
	suite.Equal("started Costa Rica 0 - Peru 0", out)
	suite.False(quit)
}

func (suite *consoleExecuteSuite) TestStartFail() {
	suite.registry.On("StartMatch", "Mexico", "Canada").
		Return(scoreboard.Match{}, errors.NewMatchAlreadyExistsError("Mexico", "Canada")).Once()
	out, quit := suite.console.execute("start Mexico Canada")
	suite.Equal("error: start match: match Mexico vs Canada already exists", out)
	suite.False(quit)
}

func (suite *consoleExecuteSuite) TestUpdate() {
	suite.registry.On("UpdateScore", "Mexico", "Canada", 0, 5).
		Return(scoreboard.Match{HomeTeam: "Mexico", AwayTeam: "Canada", AwayScore: 5}, nil).Once()
	out, _ := suite.console.execute("update Mexico Canada 0 5")
	suite.Equal("updated Mexico 0 - Canada 5", out)
}

func (suite *consoleExecuteSuite) TestUpdateFail() {
	suite.registry.On("UpdateScore", "Mexico", "Canada", 0, 5).
		Return(scoreboard.Match{}, errors.NewMatchNotFoundError("Mexico", "Canada")).Once()
	out, _ := suite.console.execute("update Mexico Canada 0 5")
	suite.Equal("error: update score: match Mexico vs Canada not found", out)
}

func (suite *consoleExecuteSuite) TestUpdateInvalidScore() {
	out, _ := suite.console.execute("update Mexico Canada zero 5")
	suite.Contains(out, "error: ")
	suite.Contains(out, "home score must be an integer")
}

func (suite *consoleExecuteSuite) TestFinish() {
	suite.registry.On("FinishMatch", "Mexico", "Canada").
		Return(scoreboard.Match{HomeTeam: "Mexico", AwayTeam: "Canada", HomeScore: 1}, nil).Once()
	out, _ := suite.console.execute("finish Mexico Canada")
	suite.Equal("finished Mexico 1 - Canada 0", out)
}

func (suite *consoleExecuteSuite) TestSummaryEmpty() {
	suite.registry.On("Summary").Return([]scoreboard.Match{}).Once()
	out, _ := suite.console.execute("summary")
	suite.Equal("no matches in progress", out)
}

func (suite *consoleExecuteSuite) TestSummary() {
	suite.registry.On("Summary").Return([]scoreboard.Match{
		{HomeTeam: "Uruguay", AwayTeam: "Italy", HomeScore: 6, AwayScore: 6},
		{HomeTeam: "Spain", AwayTeam: "Brazil", HomeScore: 10, AwayScore: 2},
	}).Once()
	out, _ := suite.console.execute("summary")
	suite.Equal("1. Uruguay 6 - Italy 6\n2. Spain 10 - Brazil 2", out)
}

func (suite *consoleExecuteSuite) TestHelp() {
	out, quit := suite.console.execute("help")
	suite.Equal(usage, out)
	suite.False(quit)
}

func (suite *consoleExecuteSuite) TestQuit() {
	_, quit := suite.console.execute("quit")
	suite.True(quit)
	_, quit = suite.console.execute("exit")
	suite.True(quit)
}

func (suite *consoleExecuteSuite) TestUnknown() {
	out, quit := suite.console.execute("kickoff")
	suite.Contains(out, `unknown command "kickoff"`)
	suite.False(quit)
}

func TestConsole_execute(t *testing.T) {
	suite.Run(t, new(consoleExecuteSuite))
}

func runConsole(t *testing.T, input string) string {
	var out bytes.Buffer
	c := New(zap.New(zapcore.NewNopCore()), scoreboard.NewRegistry(nil), strings.NewReader(input), &out)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := c.Run(ctx)
	require.Nilf(t, err, "should not fail but got: %s", errors.Prettify(err))
	require.Nil(t, ctx.Err(), "should not time out")
	return out.String()
}

func TestConsole_RunWorldCup(t *testing.T) {
	input := strings.Join([]string{
		"start Mexico Canada",
		"start Spain Brazil",
		"start Germany France",
		"start Uruguay Italy",
		"start Argentina Australia",
		"update Mexico Canada 0 5",
		"update Spain Brazil 10 2",
		"update Germany France 2 2",
		"update Uruguay Italy 6 6",
		"update Argentina Australia 3 1",
		"summary",
	}, "\n")
	out := runConsole(t, input)
	assert.Contains(t, out, strings.Join([]string{
		"1. Uruguay 6 - Italy 6",
		"2. Spain 10 - Brazil 2",
		"3. Mexico 0 - Canada 5",
		"4. Argentina 3 - Australia 1",
		"5. Germany 2 - France 2",
	}, "\n"))
}

func TestConsole_RunStopsOnQuit(t *testing.T) {
	out := runConsole(t, "start Mexico Canada\nquit\nstart Spain Brazil\n")
	assert.Contains(t, out, "started Mexico 0 - Canada 0")
	assert.Contains(t, out, "bye")
	assert.NotContains(t, out, "Spain", "should not execute commands after quit")
}

func TestConsole_RunReportsErrors(t *testing.T) {
	out := runConsole(t, "start Mexico Mexico\nfinish Mexico Canada\n")
	assert.Contains(t, out, "error: start match: team cannot play against itself")
	assert.Contains(t, out, "error: finish match: match Mexico vs Canada not found")
}

func TestConsole_RunStopsOnContextDone(t *testing.T) {
	in, inWriter := io.Pipe()
	defer func() { _ = inWriter.Close() }()
	c := New(zap.NewNop(), scoreboard.NewRegistry(nil), in, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- c.Run(ctx)
	}()
	cancel()
	select {
	case <-time.After(timeout):
		t.Fatal("timeout while waiting for console to stop")
	case err := <-done:
		assert.Nil(t, err, "should not fail")
	}
}
