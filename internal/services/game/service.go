package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/weatheryacht/internal/common/clock"
	"github.com/KirkDiggler/weatheryacht/internal/common/uuid"
	"github.com/KirkDiggler/weatheryacht/internal/models"
	gameRepo "github.com/KirkDiggler/weatheryacht/internal/repositories/game"
	"github.com/KirkDiggler/weatheryacht/internal/scoring"
	"github.com/KirkDiggler/weatheryacht/internal/turn"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	turns         *turn.Controller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           logrus.FieldLogger

	// Discord delivers interactions concurrently; every load-modify-save runs under mu
	mu sync.Mutex
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	turns, err := turn.New(&turn.Config{
		DiceRoller: cfg.DiceRoller,
		MaxPlayers: cfg.MaxPlayers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create turn controller: %w", err)
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		turns:         turns,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		log:           cfg.Logger.WithField("component", "game"),
	}, nil
}

// CreateGame seats the players at a new table in a Discord channel
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	if input.Weather == nil {
		return nil, ErrNilWeather
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check if a game already exists for this channel
	existingGame, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, err
	}

	if existingGame != nil {
		if existingGame.Status.IsInProgress() {
			return nil, ErrGameAlreadyExists
		}

		// A finished table is replaced by the new one
		err = s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
			GameID: existingGame.ID,
		})
		if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, err
		}
	}

	game, err := s.turns.NewGame(input.PlayerNames, input.Weather.Clone())
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	game.ID = s.uuidGenerator.NewUUID()
	game.ChannelID = input.ChannelID
	game.CreatorID = input.CreatorID
	game.CreatedAt = now
	game.UpdatedAt = now

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":    game.ID,
		"channel_id": game.ChannelID,
		"players":    len(game.Players),
		"condition":  game.Condition(),
	}).Info("game created")

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// GetGameByChannel retrieves the game bound to a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	game, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &GetGameByChannelOutput{
		Game: game,
	}, nil
}

// GetActiveGames lists every table still in progress, oldest first
func (s *service) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	output, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, err
	}

	return &GetActiveGamesOutput{
		Games: output.Games,
	}, nil
}

// RollDice rerolls the current player's unheld dice
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	var playerName string
	game, err := s.update(ctx, input.GameID, func(game *models.Game) error {
		if player := game.CurrentPlayer(); player != nil {
			playerName = player.Name
		}
		return s.turns.Roll(game)
	})
	if err != nil {
		return nil, err
	}

	return &RollDiceOutput{
		Game:       game,
		PlayerName: playerName,
		Dice:       game.Dice,
		RollsLeft:  game.RollsLeft,
	}, nil
}

// ToggleHold flips the held flag of one die
func (s *service) ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	game, err := s.update(ctx, input.GameID, func(game *models.Game) error {
		return s.turns.ToggleHold(game, input.Index)
	})
	if err != nil {
		return nil, err
	}

	return &ToggleHoldOutput{
		Game: game,
		Held: game.Held[input.Index],
	}, nil
}

// UseAbility applies the weather ability for the current player
func (s *service) UseAbility(ctx context.Context, input *UseAbilityInput) (*UseAbilityOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	var playerName string
	game, err := s.update(ctx, input.GameID, func(game *models.Game) error {
		if player := game.CurrentPlayer(); player != nil {
			playerName = player.Name
		}
		return s.turns.ApplyAbility(game, turn.AbilityParams{
			Positions: input.Positions,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":   game.ID,
		"player":    playerName,
		"condition": game.Condition(),
	}).Debug("ability used")

	return &UseAbilityOutput{
		Game:       game,
		PlayerName: playerName,
		Ability:    game.Condition().Ability(),
	}, nil
}

// RecordScore writes the current dice into a category and ends the turn
func (s *service) RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	var (
		playerName string
		result     *turn.RecordResult
	)
	game, err := s.update(ctx, input.GameID, func(game *models.Game) error {
		if player := game.CurrentPlayer(); player != nil {
			playerName = player.Name
		}
		var err error
		result, err = s.turns.RecordScore(game, input.Category)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.GameOver {
		s.log.WithFields(logrus.Fields{
			"game_id":    game.ID,
			"channel_id": game.ChannelID,
			"top_score":  result.Standings.TopScore,
			"winners":    len(result.Standings.Winners),
		}).Info("game finished")
	}

	return &RecordScoreOutput{
		Game:       game,
		PlayerName: playerName,
		Result:     result,
	}, nil
}

// PreviewScores lists what each open category would score right now
func (s *service) PreviewScores(ctx context.Context, input *PreviewScoresInput) (*PreviewScoresOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &PreviewScoresOutput{
		Entries: scoring.Preview(game),
	}, nil
}

// Rematch restarts a game with the same players and weather
func (s *service) Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	game, err := s.update(ctx, input.GameID, s.turns.Rematch)
	if err != nil {
		return nil, err
	}

	s.log.WithField("game_id", game.ID).Info("rematch started")

	return &RematchOutput{
		Game: game,
	}, nil
}

// AbandonGame closes a table and frees its channel
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.Status.IsFinished() {
		game.Status = models.GameStatusAbandoned
	}
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: game.ID,
	})
	if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"game_id":    game.ID,
		"channel_id": game.ChannelID,
	}).Info("game closed")

	return &AbandonGameOutput{
		Game:      game,
		Standings: s.turns.Standings(game),
	}, nil
}

// UpdateGameMessage remembers the Discord message that renders the table
func (s *service) UpdateGameMessage(ctx context.Context, input *UpdateGameMessageInput) (*UpdateGameMessageOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrEmptyGameID
	}

	_, err := s.update(ctx, input.GameID, func(game *models.Game) error {
		game.MessageID = input.MessageID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateGameMessageOutput{
		Success: true,
	}, nil
}

// load fetches a game and maps the repository's not-found error
func (s *service) load(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// update runs fn against the stored game and saves the result.
// Nothing is saved when fn fails, so rule errors leave the table untouched.
func (s *service) update(ctx context.Context, gameID string, fn func(*models.Game) error) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.load(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := fn(game); err != nil {
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()
	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}
