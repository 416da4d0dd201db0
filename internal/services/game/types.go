package game

import (
	"github.com/KirkDiggler/weatheryacht/internal/common/clock"
	"github.com/KirkDiggler/weatheryacht/internal/common/uuid"
	"github.com/KirkDiggler/weatheryacht/internal/dice"
	"github.com/KirkDiggler/weatheryacht/internal/models"
	gameRepo "github.com/KirkDiggler/weatheryacht/internal/repositories/game"
	"github.com/KirkDiggler/weatheryacht/internal/scoring"
	"github.com/KirkDiggler/weatheryacht/internal/turn"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game
	MaxPlayers int

	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        logrus.FieldLogger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// ChannelID is the Discord channel ID where the game is being played
	ChannelID string

	// CreatorID is the Discord user ID of the player who started the game
	CreatorID string

	// PlayerNames are the seats in turn order; blank names get a default
	PlayerNames []string

	// Weather is the resolved weather the game is themed on
	Weather *models.Weather
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the retrieved game
type GetGameOutput struct {
	Game *models.Game
}

// GetGameByChannelInput contains parameters for retrieving a channel's game
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameByChannelOutput contains the channel's game
type GetGameByChannelOutput struct {
	Game *models.Game
}

// GetActiveGamesInput contains parameters for listing tables in progress
type GetActiveGamesInput struct{}

// GetActiveGamesOutput contains the tables in progress, oldest first
type GetActiveGamesOutput struct {
	Games []*models.Game
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	GameID string
}

// RollDiceOutput contains the result of a dice roll
type RollDiceOutput struct {
	Game *models.Game

	// PlayerName is who rolled
	PlayerName string

	// Dice are the values after the roll
	Dice [models.DiceCount]int

	// RollsLeft is the number of rolls remaining this turn
	RollsLeft int
}

// ToggleHoldInput contains parameters for holding or releasing a die
type ToggleHoldInput struct {
	GameID string

	// Index is the 0-based die index
	Index int
}

// ToggleHoldOutput contains the game after the toggle
type ToggleHoldOutput struct {
	Game *models.Game

	// Held is the new held flag of the die
	Held bool
}

// UseAbilityInput contains parameters for using the weather ability
type UseAbilityInput struct {
	GameID string

	// Positions are the 1-based die positions the ability targets, if any
	Positions []int
}

// UseAbilityOutput contains the result of the ability
type UseAbilityOutput struct {
	Game *models.Game

	// PlayerName is who used the ability
	PlayerName string

	// Ability is what was applied
	Ability models.Ability
}

// RecordScoreInput contains parameters for recording a score
type RecordScoreInput struct {
	GameID   string
	Category models.Category
}

// RecordScoreOutput contains the result of recording a score
type RecordScoreOutput struct {
	Game *models.Game

	// PlayerName is who recorded
	PlayerName string

	// Result carries the score, consumed bonus and, on game over, the standings
	Result *turn.RecordResult
}

// PreviewScoresInput contains parameters for previewing scores
type PreviewScoresInput struct {
	GameID string
}

// PreviewScoresOutput contains one entry per open category, empty before the first roll
type PreviewScoresOutput struct {
	Entries []scoring.PreviewEntry
}

// RematchInput contains parameters for a rematch
type RematchInput struct {
	GameID string
}

// RematchOutput contains the restarted game
type RematchOutput struct {
	Game *models.Game
}

// AbandonGameInput contains parameters for closing a table
type AbandonGameInput struct {
	GameID string
}

// AbandonGameOutput contains the closed game
type AbandonGameOutput struct {
	Game *models.Game

	// Standings are the totals at the time the table was closed
	Standings *turn.Standings
}

// UpdateGameMessageInput contains parameters for updating the table message ID
type UpdateGameMessageInput struct {
	GameID    string
	MessageID string
}

// UpdateGameMessageOutput contains the result of updating the message ID
type UpdateGameMessageOutput struct {
	Success bool
}
