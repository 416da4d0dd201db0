package turn

import (
	"testing"

	diceMocks "github.com/KirkDiggler/weatheryacht/internal/dice/mocks"
	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ControllerTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	controller     *Controller
}

func (s *ControllerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)

	controller, err := New(&Config{
		DiceRoller: s.mockDiceRoller,
	})
	s.Require().NoError(err)
	s.controller = controller
}

func (s *ControllerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

// expectRolls queues die values in the order they will be rolled
func (s *ControllerTestSuite) expectRolls(values ...int) {
	var prev *gomock.Call
	for _, v := range values {
		call := s.mockDiceRoller.EXPECT().Roll(6).Return(v)
		if prev != nil {
			call.After(prev)
		}
		prev = call
	}
}

func (s *ControllerTestSuite) newGame(condition models.WeatherCondition, names ...string) *models.Game {
	game, err := s.controller.NewGame(names, &models.Weather{
		City:      "Seoul",
		Condition: condition,
	})
	s.Require().NoError(err)
	return game
}

// rolledGame returns a one-player game with the given dice already rolled once
func (s *ControllerTestSuite) rolledGame(condition models.WeatherCondition, values ...int) *models.Game {
	game := s.newGame(condition, "Ann")
	s.expectRolls(values...)
	s.Require().NoError(s.controller.Roll(game))
	return game
}

func (s *ControllerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilDiceRoller)
}

func (s *ControllerTestSuite) TestNewGame_SeatsPlayersAndStartsTurn() {
	game := s.newGame(models.WeatherSunny, "Ann", "  ", "Cho")

	s.Equal(models.GameStatusInProgress, game.Status)
	s.Require().Len(game.Players, 3)
	s.Equal("Ann", game.Players[0].Name)
	s.Equal("Player 2", game.Players[1].Name)
	s.Equal("Cho", game.Players[2].Name)
	s.Equal(0, game.CurrentPlayerIndex)
	s.Equal(models.RollsPerTurn, game.RollsLeft)
	s.Equal(1, game.Turn)
	s.False(game.HasRolled())
}

func (s *ControllerTestSuite) TestNewGame_PlayerCount() {
	_, err := s.controller.NewGame(nil, nil)
	s.ErrorIs(err, ErrNoPlayers)

	_, err = s.controller.NewGame([]string{"a", "b", "c", "d", "e"}, nil)
	s.ErrorIs(err, ErrTooManyPlayers)
}

func (s *ControllerTestSuite) TestRoll_RerollsOnlyUnheldDice() {
	game := s.rolledGame(models.WeatherCloudy, 1, 2, 3, 4, 5)
	s.Equal([5]int{1, 2, 3, 4, 5}, game.Dice)
	s.Equal(2, game.RollsLeft)

	s.Require().NoError(s.controller.ToggleHold(game, 0))
	s.Require().NoError(s.controller.ToggleHold(game, 4))

	s.expectRolls(6, 6, 6)
	s.Require().NoError(s.controller.Roll(game))

	s.Equal([5]int{1, 6, 6, 6, 5}, game.Dice)
	s.Equal(1, game.RollsLeft)
}

func (s *ControllerTestSuite) TestRoll_NoRollsLeftLeavesStateUnchanged() {
	game := s.rolledGame(models.WeatherCloudy, 1, 2, 3, 4, 5)
	s.expectRolls(2, 2, 2, 2, 2, 3, 3, 3, 3, 3)
	s.Require().NoError(s.controller.Roll(game))
	s.Require().NoError(s.controller.Roll(game))
	s.Equal(0, game.RollsLeft)

	before := game.Clone()
	err := s.controller.Roll(game)

	s.ErrorIs(err, ErrNoRollsLeft)
	s.Equal(before.Dice, game.Dice)
	s.Equal(0, game.RollsLeft)
}

func (s *ControllerTestSuite) TestToggleHold() {
	game := s.newGame(models.WeatherCloudy, "Ann")

	// unrolled dice cannot be held
	s.Require().NoError(s.controller.ToggleHold(game, 2))
	s.False(game.Held[2])

	s.expectRolls(1, 2, 3, 4, 5)
	s.Require().NoError(s.controller.Roll(game))

	s.Require().NoError(s.controller.ToggleHold(game, 2))
	s.True(game.Held[2])
	s.Require().NoError(s.controller.ToggleHold(game, 2))
	s.False(game.Held[2])

	s.ErrorIs(s.controller.ToggleHold(game, -1), ErrInvalidDieIndex)
	s.ErrorIs(s.controller.ToggleHold(game, 5), ErrInvalidDieIndex)
}

func (s *ControllerTestSuite) TestApplyAbility_Sunny() {
	game := s.rolledGame(models.WeatherSunny, 1, 2, 3, 4, 5)

	err := s.controller.ApplyAbility(game, AbilityParams{Positions: []int{2}})

	s.Require().NoError(err)
	s.Equal([5]int{1, 6, 3, 4, 5}, game.Dice)
	s.True(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_SunnyRejectsBadSelection() {
	game := s.rolledGame(models.WeatherSunny, 1, 2, 3, 4, 5)

	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{}), ErrInvalidAbilityParams)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{1, 2}}), ErrInvalidAbilityParams)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{6}}), ErrInvalidDieIndex)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{0}}), ErrInvalidDieIndex)

	s.Equal([5]int{1, 2, 3, 4, 5}, game.Dice)
	s.False(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_CloudyRerollsChosenDice() {
	game := s.rolledGame(models.WeatherCloudy, 1, 2, 3, 4, 5)
	s.Require().NoError(s.controller.ToggleHold(game, 0))
	s.Require().NoError(s.controller.ToggleHold(game, 3))

	s.expectRolls(6, 6)
	err := s.controller.ApplyAbility(game, AbilityParams{Positions: []int{1, 3}})

	s.Require().NoError(err)
	s.Equal([5]int{6, 2, 6, 4, 5}, game.Dice)
	s.False(game.Held[0], "rerolled die is released")
	s.True(game.Held[3], "other holds are kept")
	s.Equal(2, game.RollsLeft, "ability does not consume a roll")
	s.True(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_CloudyRejectsBadSelection() {
	game := s.rolledGame(models.WeatherCloudy, 1, 2, 3, 4, 5)

	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{}), ErrInvalidAbilityParams)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{1, 2, 3}}), ErrInvalidAbilityParams)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{2, 2}}), ErrInvalidAbilityParams)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{1, 9}}), ErrInvalidDieIndex)

	s.False(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_RainQueuesBonus() {
	game := s.rolledGame(models.WeatherRain, 1, 2, 3, 4, 5)

	s.Require().NoError(s.controller.ApplyAbility(game, AbilityParams{}))

	s.Equal(AbilityBonus, game.Players[0].PendingBonus)
	s.Equal([5]int{1, 2, 3, 4, 5}, game.Dice)
	s.True(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_SnowSwapsDice() {
	game := s.rolledGame(models.WeatherSnow, 1, 2, 3, 4, 5)

	s.Require().NoError(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{2, 5}}))

	s.Equal([5]int{1, 5, 3, 4, 2}, game.Dice)
	s.True(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_SnowRejectsBadSelection() {
	game := s.rolledGame(models.WeatherSnow, 1, 2, 3, 4, 5)

	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{2}}), ErrInvalidAbilityParams)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{3, 3}}), ErrInvalidAbilityParams)
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{0, 3}}), ErrInvalidDieIndex)

	s.Equal([5]int{1, 2, 3, 4, 5}, game.Dice)
	s.False(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_StormIgnoresRollLimit() {
	game := s.rolledGame(models.WeatherStorm, 1, 2, 3, 4, 5)
	s.expectRolls(1, 1, 1, 1, 1, 2, 2, 2, 2)
	s.Require().NoError(s.controller.Roll(game))
	s.Require().NoError(s.controller.ToggleHold(game, 1))
	s.Require().NoError(s.controller.Roll(game))
	s.Require().Equal(0, game.RollsLeft)

	s.expectRolls(6, 5, 4, 3, 2)
	s.Require().NoError(s.controller.ApplyAbility(game, AbilityParams{}))

	s.Equal([5]int{6, 5, 4, 3, 2}, game.Dice)
	s.Equal([5]bool{}, game.Held)
	s.Equal(0, game.RollsLeft)
	s.True(game.Players[0].AbilityUsed)
}

func (s *ControllerTestSuite) TestApplyAbility_RequiresRolledDice() {
	for _, condition := range []models.WeatherCondition{
		models.WeatherSunny,
		models.WeatherCloudy,
		models.WeatherRain,
		models.WeatherSnow,
		models.WeatherStorm,
	} {
		game := s.newGame(condition, "Ann")

		err := s.controller.ApplyAbility(game, AbilityParams{Positions: []int{1, 2}})

		s.ErrorIs(err, ErrNoDiceRolled, string(condition))
		s.False(game.Players[0].AbilityUsed, string(condition))
		s.Zero(game.Players[0].PendingBonus, string(condition))
	}
}

func (s *ControllerTestSuite) TestApplyAbility_OncePerGame() {
	game := s.rolledGame(models.WeatherRain, 1, 2, 3, 4, 5)
	s.Require().NoError(s.controller.ApplyAbility(game, AbilityParams{}))

	err := s.controller.ApplyAbility(game, AbilityParams{})

	s.ErrorIs(err, ErrAbilityUsed)
	s.Equal(AbilityBonus, game.Players[0].PendingBonus)

	// still refused on a later turn
	_, err = s.controller.RecordScore(game, models.CategoryChance)
	s.Require().NoError(err)
	s.expectRolls(1, 1, 1, 1, 1)
	s.Require().NoError(s.controller.Roll(game))
	s.ErrorIs(s.controller.ApplyAbility(game, AbilityParams{}), ErrAbilityUsed)
}

func (s *ControllerTestSuite) TestRecordScore_AdvancesToNextPlayer() {
	game := s.newGame(models.WeatherCloudy, "Ann", "Bo")
	s.expectRolls(2, 2, 2, 3, 3)
	s.Require().NoError(s.controller.Roll(game))
	s.Require().NoError(s.controller.ToggleHold(game, 0))

	result, err := s.controller.RecordScore(game, models.CategoryFullHouse)

	s.Require().NoError(err)
	s.Equal(25, result.Score)
	s.Equal(25, result.Base)
	s.Zero(result.Bonus)
	s.Equal(0, result.PlayerIndex)
	s.False(result.GameOver)
	s.Nil(result.Standings)
	s.Equal(25, game.Players[0].Scores[models.CategoryFullHouse])

	s.Equal(1, game.CurrentPlayerIndex)
	s.Equal(models.RollsPerTurn, game.RollsLeft)
	s.Equal([5]int{}, game.Dice)
	s.Equal([5]bool{}, game.Held)
	s.Equal(2, game.Turn)
}

func (s *ControllerTestSuite) TestRecordScore_RequiresRolledDice() {
	game := s.newGame(models.WeatherCloudy, "Ann")

	_, err := s.controller.RecordScore(game, models.CategoryChance)

	s.ErrorIs(err, ErrNoDiceRolled)
	s.Empty(game.Players[0].Scores)
}

func (s *ControllerTestSuite) TestRecordScore_RejectsUnknownCategory() {
	game := s.rolledGame(models.WeatherCloudy, 1, 2, 3, 4, 5)

	_, err := s.controller.RecordScore(game, models.Category("bonus"))

	s.ErrorIs(err, ErrInvalidCategory)
}

func (s *ControllerTestSuite) TestRecordScore_SameCategoryTwiceRejected() {
	game := s.rolledGame(models.WeatherCloudy, 6, 6, 6, 6, 6)
	_, err := s.controller.RecordScore(game, models.CategoryYacht)
	s.Require().NoError(err)

	s.expectRolls(1, 1, 1, 1, 1)
	s.Require().NoError(s.controller.Roll(game))
	_, err = s.controller.RecordScore(game, models.CategoryYacht)

	s.ErrorIs(err, ErrCategoryRecorded)
	s.Equal(50, game.Players[0].Scores[models.CategoryYacht])
	s.Equal([5]int{1, 1, 1, 1, 1}, game.Dice, "turn is not ended by a rejected recording")
}

func (s *ControllerTestSuite) TestRecordScore_PendingBonusAppliedOnce() {
	game := s.rolledGame(models.WeatherRain, 1, 2, 3, 4, 6)
	s.Require().NoError(s.controller.ApplyAbility(game, AbilityParams{}))

	result, err := s.controller.RecordScore(game, models.CategorySmallStraight)
	s.Require().NoError(err)
	s.Equal(30, result.Base)
	s.Equal(AbilityBonus, result.Bonus)
	s.Equal(35, game.Players[0].Scores[models.CategorySmallStraight])
	s.Zero(game.Players[0].PendingBonus)

	s.expectRolls(1, 2, 3, 4, 6)
	s.Require().NoError(s.controller.Roll(game))
	result, err = s.controller.RecordScore(game, models.CategoryChance)
	s.Require().NoError(err)
	s.Zero(result.Bonus)
	s.Equal(16, game.Players[0].Scores[models.CategoryChance])
}

// playOut records every category for every seat. faceFor returns the face
// each die shows for the given seat.
func (s *ControllerTestSuite) playOut(game *models.Game, faceFor func(seat int) int) *RecordResult {
	s.mockDiceRoller.EXPECT().Roll(6).DoAndReturn(func(int) int {
		return faceFor(game.CurrentPlayerIndex)
	}).AnyTimes()

	var last *RecordResult
	for _, category := range models.AllCategories() {
		for range game.Players {
			s.Require().False(game.Status.IsFinished())
			s.Require().NoError(s.controller.Roll(game))
			result, err := s.controller.RecordScore(game, category)
			s.Require().NoError(err)
			last = result
		}
	}
	return last
}

func (s *ControllerTestSuite) TestFullGame_SingleWinner() {
	game := s.newGame(models.WeatherCloudy, "Ann", "Bo")

	last := s.playOut(game, func(seat int) int {
		if seat == 0 {
			return 6
		}
		return 1
	})

	s.Require().True(last.GameOver)
	s.Equal(models.GameStatusFinished, game.Status)
	s.Require().NotNil(last.Standings)
	s.Equal(140, last.Standings.Totals[0].Total)
	s.Equal(65, last.Standings.Totals[1].Total)
	s.Require().Len(last.Standings.Winners, 1)
	s.Equal("Ann", last.Standings.Winners[0].Name)
	s.Equal(140, last.Standings.TopScore)
	s.False(last.Standings.IsTie())

	s.ErrorIs(s.controller.Roll(game), ErrGameFinished)
	_, err := s.controller.RecordScore(game, models.CategoryChance)
	s.ErrorIs(err, ErrGameFinished)

	game.Status = models.GameStatusAbandoned
	s.ErrorIs(s.controller.Roll(game), ErrGameNotInProgress)
}

func (s *ControllerTestSuite) TestFullGame_TieProducesSeveralWinners() {
	game := s.newGame(models.WeatherCloudy, "Ann", "Bo", "Cho")

	last := s.playOut(game, func(int) int { return 3 })

	s.Require().True(last.GameOver)
	s.True(last.Standings.IsTie())
	s.Len(last.Standings.Winners, 3)
}

func (s *ControllerTestSuite) TestGameEndsOnlyWhenAllScorecardsFull() {
	game := s.newGame(models.WeatherCloudy, "Ann", "Bo")
	game.Players[0].Scores = fullScorecard(1)

	for _, c := range models.AllCategories()[:11] {
		game.Players[1].Scores[c] = 1
	}
	game.CurrentPlayerIndex = 1

	s.expectRolls(4, 4, 4, 4, 4)
	s.Require().NoError(s.controller.Roll(game))
	result, err := s.controller.RecordScore(game, models.CategoryChance)

	s.Require().NoError(err)
	s.True(result.GameOver)
	s.Equal(models.GameStatusFinished, game.Status)
	s.Equal(12, result.Standings.Totals[0].Total)
	s.Equal(31, result.Standings.Totals[1].Total)
}

func (s *ControllerTestSuite) TestRematch_ResetsSeats() {
	game := s.newGame(models.WeatherRain, "Ann", "Bo")
	for _, p := range game.Players {
		p.Scores = fullScorecard(2)
		p.AbilityUsed = true
		p.PendingBonus = 5
	}
	game.Status = models.GameStatusFinished
	game.CurrentPlayerIndex = 1
	turnBefore := game.Turn

	s.Require().NoError(s.controller.Rematch(game))

	s.Equal(models.GameStatusInProgress, game.Status)
	s.Equal(0, game.CurrentPlayerIndex)
	s.Equal(turnBefore+1, game.Turn)
	s.Equal(models.RollsPerTurn, game.RollsLeft)
	s.Equal(models.WeatherRain, game.Weather.Condition)
	for _, p := range game.Players {
		s.Empty(p.Scores)
		s.False(p.AbilityUsed)
		s.Zero(p.PendingBonus)
	}
}

func (s *ControllerTestSuite) TestRematch_TurnNumberNeverRepeats() {
	game := s.newGame(models.WeatherSunny, "Ann")
	seen := map[int]bool{game.Turn: true}

	for i := 0; i < 3; i++ {
		game.Players[0].Scores = fullScorecard(1)
		game.Status = models.GameStatusFinished

		s.Require().NoError(s.controller.Rematch(game))

		s.False(seen[game.Turn], "turn %d repeated after rematch", game.Turn)
		seen[game.Turn] = true
	}
}

func fullScorecard(value int) map[models.Category]int {
	scores := make(map[models.Category]int, models.CategoryCount)
	for _, c := range models.AllCategories() {
		scores[c] = value
	}
	return scores
}

func (s *ControllerTestSuite) TestAbilityReady() {
	game := s.newGame(models.WeatherSunny, "Ann")
	s.ErrorIs(AbilityReady(game), ErrNoDiceRolled)

	s.expectRolls(1, 2, 3, 4, 5)
	s.Require().NoError(s.controller.Roll(game))
	s.NoError(AbilityReady(game))

	s.Require().NoError(s.controller.ApplyAbility(game, AbilityParams{Positions: []int{1}}))
	s.ErrorIs(AbilityReady(game), ErrAbilityUsed)

	s.ErrorIs(AbilityReady(nil), ErrNilGame)
}
