// Package turn applies the Yacht turn rules and weather abilities to a game.
//
// Every operation takes the game it acts on explicitly and either mutates it
// completely or returns a RuleError and leaves it untouched.
package turn

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/weatheryacht/internal/dice"
	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/KirkDiggler/weatheryacht/internal/scoring"
)

// DefaultMaxPlayers is the table size used when Config.MaxPlayers is unset
const DefaultMaxPlayers = 4

// AbilityBonus is the flat bonus queued by the rain ability
const AbilityBonus = 5

// Config holds the controller dependencies
type Config struct {
	// DiceRoller produces die values
	DiceRoller dice.Roller

	// MaxPlayers caps the table size
	MaxPlayers int
}

// Controller owns the turn rules
type Controller struct {
	roller     dice.Roller
	maxPlayers int
}

// New creates a new turn controller
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	return &Controller{
		roller:     cfg.DiceRoller,
		maxPlayers: maxPlayers,
	}, nil
}

// AbilityParams are the already-chosen inputs of an ability
type AbilityParams struct {
	// Positions are 1-based die positions
	Positions []int
}

// RecordResult describes a recorded score
type RecordResult struct {
	// PlayerIndex is the seat that recorded
	PlayerIndex int

	// Category is where the score was written
	Category models.Category

	// Base is the rule score of the dice
	Base int

	// Bonus is the pending bonus that was consumed
	Bonus int

	// Score is what was written to the scorecard
	Score int

	// GameOver is true when this recording finished the game
	GameOver bool

	// Standings is set when GameOver is true
	Standings *Standings
}

// PlayerTotal is one row of the final standings
type PlayerTotal struct {
	PlayerIndex int
	Name        string
	Total       int
}

// Standings are the summed scorecards and the winner set
type Standings struct {
	// Totals are in seat order
	Totals []PlayerTotal

	// Winners are every seat tied at the top total
	Winners []PlayerTotal

	// TopScore is the highest total
	TopScore int
}

// IsTie reports whether more than one player shares the top score
func (s *Standings) IsTie() bool {
	return len(s.Winners) > 1
}

// NewGame seats the named players and starts the first turn.
// Blank names become "Player N".
func (c *Controller) NewGame(names []string, weather *models.Weather) (*models.Game, error) {
	if len(names) == 0 {
		return nil, ErrNoPlayers
	}
	if len(names) > c.maxPlayers {
		return nil, fmt.Errorf("%w: %d seats, limit is %d", ErrTooManyPlayers, len(names), c.maxPlayers)
	}

	players := make([]*models.Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players[i] = models.NewPlayer(name)
	}

	game := &models.Game{
		Status:  models.GameStatusInProgress,
		Weather: weather,
		Players: players,
	}
	c.StartTurn(game)
	return game, nil
}

// StartTurn clears the dice and gives the current player three rolls
func (c *Controller) StartTurn(game *models.Game) {
	game.Dice = [models.DiceCount]int{}
	game.Held = [models.DiceCount]bool{}
	game.RollsLeft = models.RollsPerTurn
	game.Turn++
}

// Roll rerolls every die that is not held
func (c *Controller) Roll(game *models.Game) error {
	if err := checkInProgress(game); err != nil {
		return err
	}
	if game.RollsLeft <= 0 {
		return ErrNoRollsLeft
	}

	for i := range game.Dice {
		if !game.Held[i] {
			game.Dice[i] = c.roller.Roll(dice.Sides)
		}
	}
	game.RollsLeft--
	return nil
}

// ToggleHold flips the held flag of the die at the 0-based index.
// Unrolled dice cannot be held, so toggling one is a no-op.
func (c *Controller) ToggleHold(game *models.Game, index int) error {
	if err := checkInProgress(game); err != nil {
		return err
	}
	if index < 0 || index >= models.DiceCount {
		return ErrInvalidDieIndex
	}
	if game.Dice[index] == 0 {
		return nil
	}

	game.Held[index] = !game.Held[index]
	return nil
}

// AbilityReady reports why the current player cannot use the ability yet, or nil.
// Callers use it before asking the player to pick dice.
func AbilityReady(game *models.Game) error {
	if err := checkInProgress(game); err != nil {
		return err
	}
	if game.CurrentPlayer().AbilityUsed {
		return ErrAbilityUsed
	}
	if !game.HasRolled() {
		return ErrNoDiceRolled
	}
	return nil
}

// ApplyAbility applies the weather ability of the game for the current player.
// The ability is only consumed when it applies.
func (c *Controller) ApplyAbility(game *models.Game, params AbilityParams) error {
	if err := AbilityReady(game); err != nil {
		return err
	}
	player := game.CurrentPlayer()

	ability := game.Condition().Ability()
	var indexes []int
	if ability.NeedsPositions() {
		var err error
		indexes, err = selectDice(params.Positions, ability.MinPositions, ability.MaxPositions)
		if err != nil {
			return err
		}
	}

	switch game.Condition() {
	case models.WeatherSunny:
		game.Dice[indexes[0]] = 6
	case models.WeatherCloudy:
		for _, idx := range indexes {
			game.Held[idx] = false
			game.Dice[idx] = c.roller.Roll(dice.Sides)
		}
	case models.WeatherRain:
		player.PendingBonus += AbilityBonus
	case models.WeatherSnow:
		a, b := indexes[0], indexes[1]
		game.Dice[a], game.Dice[b] = game.Dice[b], game.Dice[a]
	case models.WeatherStorm:
		for i := range game.Dice {
			game.Held[i] = false
			game.Dice[i] = c.roller.Roll(dice.Sides)
		}
	}

	player.AbilityUsed = true
	return nil
}

// selectDice validates 1-based positions and returns them as 0-based indexes
func selectDice(positions []int, minCount, maxCount int) ([]int, error) {
	if len(positions) < minCount || len(positions) > maxCount {
		return nil, ErrInvalidAbilityParams
	}

	indexes := make([]int, 0, len(positions))
	seen := make(map[int]bool, len(positions))
	for _, pos := range positions {
		if pos < 1 || pos > models.DiceCount {
			return nil, ErrInvalidDieIndex
		}
		if seen[pos] {
			return nil, ErrInvalidAbilityParams
		}
		seen[pos] = true
		indexes = append(indexes, pos-1)
	}
	return indexes, nil
}

// RecordScore writes the current dice (plus any pending bonus) into the
// category, then advances to the next player or finishes the game.
func (c *Controller) RecordScore(game *models.Game, category models.Category) (*RecordResult, error) {
	if err := checkInProgress(game); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	player := game.CurrentPlayer()
	if player.HasRecorded(category) {
		return nil, ErrCategoryRecorded
	}
	if !game.HasRolled() {
		return nil, ErrNoDiceRolled
	}

	base := scoring.Score(category, game.Dice)
	bonus := player.PendingBonus
	player.Scores[category] = base + bonus
	player.PendingBonus = 0

	result := &RecordResult{
		PlayerIndex: game.CurrentPlayerIndex,
		Category:    category,
		Base:        base,
		Bonus:       bonus,
		Score:       base + bonus,
	}

	if game.AllComplete() {
		game.Status = models.GameStatusFinished
		game.Dice = [models.DiceCount]int{}
		game.Held = [models.DiceCount]bool{}
		game.RollsLeft = 0
		result.GameOver = true
		result.Standings = c.Standings(game)
		return result, nil
	}

	game.CurrentPlayerIndex = (game.CurrentPlayerIndex + 1) % len(game.Players)
	c.StartTurn(game)
	return result, nil
}

// Standings sums every scorecard and collects all players tied at the top
func (c *Controller) Standings(game *models.Game) *Standings {
	standings := &Standings{}
	for i, p := range game.Players {
		total := PlayerTotal{
			PlayerIndex: i,
			Name:        p.Name,
			Total:       p.Total(),
		}
		standings.Totals = append(standings.Totals, total)
		if i == 0 || total.Total > standings.TopScore {
			standings.TopScore = total.Total
		}
	}

	for _, total := range standings.Totals {
		if total.Total == standings.TopScore {
			standings.Winners = append(standings.Winners, total)
		}
	}
	return standings
}

// Rematch resets every scorecard and starts a new game with the same seats and weather.
// Turn keeps counting so a turn number never repeats at the same table.
func (c *Controller) Rematch(game *models.Game) error {
	if game == nil {
		return ErrNilGame
	}
	for _, p := range game.Players {
		p.Reset()
	}
	game.Status = models.GameStatusInProgress
	game.CurrentPlayerIndex = 0
	c.StartTurn(game)
	return nil
}

func checkInProgress(game *models.Game) error {
	if game == nil {
		return ErrNilGame
	}
	if game.Status.IsFinished() {
		return ErrGameFinished
	}
	if !game.Status.IsInProgress() || game.CurrentPlayer() == nil {
		return ErrGameNotInProgress
	}
	return nil
}
