package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/weatheryacht/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame seats the players at a new table in a Discord channel
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByChannel retrieves the game bound to a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error)

	// GetActiveGames lists every table still in progress, oldest first
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)

	// RollDice rerolls the current player's unheld dice
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ToggleHold flips the held flag of one die
	ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error)

	// UseAbility applies the weather ability for the current player
	UseAbility(ctx context.Context, input *UseAbilityInput) (*UseAbilityOutput, error)

	// RecordScore writes the current dice into a category and ends the turn
	RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error)

	// PreviewScores lists what each open category would score right now
	PreviewScores(ctx context.Context, input *PreviewScoresInput) (*PreviewScoresOutput, error)

	// Rematch restarts a game with the same players and weather
	Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error)

	// AbandonGame closes a table and frees its channel
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)

	// UpdateGameMessage remembers the Discord message that renders the table
	UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error)
}
