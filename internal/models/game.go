package models

import (
	"time"
)

// DiceCount is the number of dice in a Yacht hand
const DiceCount = 5

// RollsPerTurn is the number of rolls a player gets each turn
const RollsPerTurn = 3

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusInProgress indicates turns are being played
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusFinished indicates every player has a full scorecard
	GameStatusFinished GameStatus = "finished"

	// GameStatusAbandoned indicates the table was closed before the game finished
	GameStatusAbandoned GameStatus = "abandoned"
)

// IsInProgress returns true if turns are being played
func (s GameStatus) IsInProgress() bool {
	return s == GameStatusInProgress
}

// IsFinished returns true if the game reached its end
func (s GameStatus) IsFinished() bool {
	return s == GameStatusFinished
}

// Game is the full state of one Yacht table
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// ChannelID is the Discord channel the table lives in
	ChannelID string

	// CreatorID is the Discord user who started the game
	CreatorID string

	// Status is the current state of the game
	Status GameStatus

	// Weather is the reading resolved at game start; it fixes the ability for the whole game
	Weather *Weather

	// Players are the seats in turn order
	Players []*Player

	// CurrentPlayerIndex is the seat whose turn it is
	CurrentPlayerIndex int

	// RollsLeft is the number of rolls remaining this turn, in [0,3]
	RollsLeft int

	// Dice holds the current values; 0 means not rolled yet
	Dice [DiceCount]int

	// Held marks dice excluded from the next reroll
	Held [DiceCount]bool

	// Turn counts turns played at this table, starting at 1. Rematches keep counting,
	// so a turn number is never reused within one game ID.
	Turn int

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time

	// MessageID is the ID of the table message in Discord
	MessageID string
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// HasRolled reports whether any die has been rolled this turn
func (g *Game) HasRolled() bool {
	for _, v := range g.Dice {
		if v != 0 {
			return true
		}
	}
	return false
}

// Condition returns the weather condition of the game, cloudy when unknown
func (g *Game) Condition() WeatherCondition {
	if g.Weather == nil {
		return WeatherCloudy
	}
	return g.Weather.Condition.OrDefault()
}

// AllComplete reports whether every player has recorded all twelve categories
func (g *Game) AllComplete() bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, p := range g.Players {
		if !p.IsComplete() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Weather = g.Weather.Clone()
	out.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p.Clone()
	}
	return &out
}
