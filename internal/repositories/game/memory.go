package game

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/weatheryacht/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// memoryRepository keeps games for the lifetime of the process.
// Games are cloned on the way in and out so callers never share state with the store.
type memoryRepository struct {
	mu        sync.RWMutex
	games     map[string]*models.Game
	byChannel map[string]string
}

// NewMemory creates a new in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games:     make(map[string]*models.Game),
		byChannel: make(map[string]string),
	}
}

// SaveGame stores a copy of the game
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// A channel moving to a new game drops the old mapping
	if prev, ok := r.games[input.Game.ID]; ok && prev.ChannelID != input.Game.ChannelID {
		if r.byChannel[prev.ChannelID] == prev.ID {
			delete(r.byChannel, prev.ChannelID)
		}
	}

	r.games[input.Game.ID] = input.Game.Clone()
	if input.Game.ChannelID != "" {
		r.byChannel[input.Game.ChannelID] = input.Game.ID
	}

	return nil
}

// GetGame retrieves a copy of a game by ID
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game.Clone(), nil
}

// GetGameByChannel retrieves a copy of the channel's game
func (r *memoryRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	gameID, ok := r.byChannel[input.ChannelID]
	if !ok {
		return nil, ErrGameNotFound
	}

	game, ok := r.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game.Clone(), nil
}

// DeleteGame removes a game and its channel mapping
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[input.GameID]
	if !ok {
		return ErrGameNotFound
	}

	delete(r.games, input.GameID)
	if r.byChannel[game.ChannelID] == game.ID {
		delete(r.byChannel, game.ChannelID)
	}

	return nil
}

// GetActiveGames returns copies of every in-progress game, oldest first
func (r *memoryRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*models.Game, 0, len(r.games))
	for _, game := range r.games {
		if game.Status.IsInProgress() {
			games = append(games, game.Clone())
		}
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}
