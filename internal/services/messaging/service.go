package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/KirkDiggler/weatheryacht/internal/scoring"
	gameService "github.com/KirkDiggler/weatheryacht/internal/services/game"
	weatherService "github.com/KirkDiggler/weatheryacht/internal/services/weather"
	"github.com/KirkDiggler/weatheryacht/internal/turn"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetWelcomeMessage introduces the weather and the ability when a table opens
func (s *service) GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error) {
	if input == nil || input.Weather == nil {
		return nil, errors.New("input and weather cannot be nil")
	}

	condition := input.Weather.Condition.OrDefault()
	theme := condition.Theme()
	ability := condition.Ability()

	var forecast string
	switch condition {
	case models.WeatherSunny:
		forecast = s.pick([]string{
			"Clear skies over %s. The dice are warm and ready.",
			"The sun is out in %s. Perfect weather for a Yacht.",
			"Not a cloud above %s. Sixes are in season.",
		})
	case models.WeatherRain:
		forecast = s.pick([]string{
			"It's raining in %s. Every drop counts.",
			"Grab an umbrella, %s is wet today.",
			"Rain over %s. Good day to stay in and roll.",
		})
	case models.WeatherSnow:
		forecast = s.pick([]string{
			"Snow is falling on %s. Time to shuffle things around.",
			"%s is white today. Bundle up and roll.",
		})
	case models.WeatherStorm:
		forecast = s.pick([]string{
			"A storm is rolling through %s. Expect lightning on the table.",
			"Thunder over %s! Hold on to your dice.",
		})
	default:
		forecast = s.pick([]string{
			"Grey skies over %s. The wind might change your luck.",
			"Clouds over %s. Something's blowing in.",
			"%s is overcast. A gust could go either way.",
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, forecast, input.Weather.City)
	if input.Weather.Temperature != nil {
		fmt.Fprintf(&b, " (%.1f°C)", *input.Weather.Temperature)
	}
	fmt.Fprintf(&b, "\n\n**%s**: %s Each player can use it once per game.", ability.Name, ability.Description)
	if len(input.PlayerNames) > 0 {
		fmt.Fprintf(&b, "\n\nAt the table: %s. %s rolls first.", strings.Join(input.PlayerNames, ", "), input.PlayerNames[0])
	}

	return &GetWelcomeMessageOutput{
		Title:   fmt.Sprintf("%s Weather Yacht in %s", theme.Emoji, input.Weather.City),
		Message: b.String(),
	}, nil
}

// GetRollMessage returns a comment on a player's roll
func (s *service) GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := ToneNeutral

	switch {
	case scoring.Score(models.CategoryYacht, input.Dice) > 0:
		tone = ToneCelebration
		messages = []string{
			"%s rolled a YACHT! Five of a kind!",
			"Five matching dice for %s! Somebody write that down.",
			"%s just made the whole table jealous. Yacht!",
		}
	case scoring.Score(models.CategoryLargeStraight, input.Dice) > 0:
		tone = ToneCelebration
		messages = []string{
			"%s lined up a large straight!",
			"Straight as an arrow, %s. Five in a row.",
		}
	case scoring.Score(models.CategoryFullHouse, input.Dice) > 0:
		tone = ToneEncouraging
		messages = []string{
			"Full house for %s. The neighbours are impressed.",
			"%s has a full house on the table.",
		}
	case input.RollsLeft == 0:
		tone = ToneFunny
		messages = []string{
			"That's the last roll for %s. Pick a category!",
			"No rolls left, %s. Time to commit.",
			"%s is out of rolls. Choose wisely.",
		}
	default:
		messages = []string{
			"%s rolls the dice.",
			"The dice tumble for %s.",
			"%s gives it a shake.",
			"Here we go, %s!",
		}
	}

	return &GetRollMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName),
		Tone:    tone,
	}, nil
}

// GetAbilityMessage announces a used weather ability
func (s *service) GetAbilityMessage(ctx context.Context, input *GetAbilityMessageInput) (*GetAbilityMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	condition := input.Condition.OrDefault()
	ability := condition.Ability()

	var messages []string
	switch condition {
	case models.WeatherSunny:
		messages = []string{
			"%s catches a sunbeam. One die turns to 6!",
			"The sun smiles on %s. A fresh 6 appears.",
		}
	case models.WeatherRain:
		messages = []string{
			"%s collects the rain. +5 on the next score!",
			"Raindrops fill %s's bucket. Five bonus points are waiting.",
		}
	case models.WeatherSnow:
		messages = []string{
			"%s blows a snowflake across the table. Two dice trade places.",
			"A flurry from %s swaps two dice.",
		}
	case models.WeatherStorm:
		messages = []string{
			"Lightning strikes for %s! Every die is rerolled.",
			"%s calls down the storm. All five dice fly again!",
		}
	default:
		messages = []string{
			"A gust of wind from %s sends some dice tumbling.",
			"%s rides the breeze and rerolls.",
		}
	}

	return &GetAbilityMessageOutput{
		Message: fmt.Sprintf("%s %s (%s)", condition.Theme().Emoji, fmt.Sprintf(s.pick(messages), input.PlayerName), ability.Name),
	}, nil
}

// GetScoreMessage announces a recorded score
func (s *service) GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("input and result cannot be nil")
	}

	result := input.Result
	category := result.Category.DisplayName()

	var (
		message string
		tone    MessageTone
	)
	switch {
	case result.Category == models.CategoryYacht && result.Base > 0:
		tone = ToneCelebration
		message = fmt.Sprintf(s.pick([]string{
			"%s banks a Yacht for %d points!",
			"Yacht! %s takes %d points.",
		}), input.PlayerName, result.Score)
	case result.Base == 0 && result.Bonus == 0:
		tone = ToneFunny
		message = fmt.Sprintf(s.pick([]string{
			"%s scratches %s. Zero points, no regrets.",
			"%s takes a 0 in %s. Brave.",
		}), input.PlayerName, category)
	default:
		tone = ToneNeutral
		message = fmt.Sprintf("%s records %d in %s.", input.PlayerName, result.Score, category)
	}

	if result.Bonus > 0 {
		message += fmt.Sprintf(" (%d + %d rain bonus)", result.Base, result.Bonus)
	}

	return &GetScoreMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetGameOverMessage announces the winners
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil || input.Standings == nil {
		return nil, errors.New("input and standings cannot be nil")
	}

	standings := input.Standings
	names := make([]string, len(standings.Winners))
	for i, winner := range standings.Winners {
		names[i] = winner.Name
	}

	var title string
	switch {
	case len(standings.Totals) == 1:
		title = fmt.Sprintf("🏁 %s finishes with %d points", names[0], standings.TopScore)
	case standings.IsTie():
		title = fmt.Sprintf("🤝 It's a tie at %d points!", standings.TopScore)
	default:
		title = fmt.Sprintf("🏆 %s wins with %d points!", names[0], standings.TopScore)
	}

	ranked := make([]turn.PlayerTotal, len(standings.Totals))
	copy(ranked, standings.Totals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	var b strings.Builder
	for i, total := range ranked {
		fmt.Fprintf(&b, "%d. **%s**: %d\n", i+1, total.Name, total.Total)
	}
	if standings.IsTie() {
		fmt.Fprintf(&b, "\nShared victory for %s.", strings.Join(names, " and "))
	} else if len(standings.Totals) > 1 {
		b.WriteString("\n")
		b.WriteString(s.pick([]string{
			"Well played, everyone.",
			"The dice have spoken.",
			"Rematch? The weather is still the same.",
		}))
	}

	return &GetGameOverMessageOutput{
		Title:   title,
		Message: strings.TrimRight(b.String(), "\n"),
	}, nil
}

// GetRulesMessage returns the rules and the five weather abilities
func (s *service) GetRulesMessage(ctx context.Context, input *GetRulesMessageInput) (*GetRulesMessageOutput, error) {
	var b strings.Builder
	b.WriteString("Each turn you get up to 3 rolls. Hold dice between rolls, then record the dice in one open category. ")
	b.WriteString("The game ends when every player has filled all 12 categories; the highest total wins.\n\n")

	b.WriteString("**Categories**\n")
	b.WriteString("Ones to Sixes: sum of dice showing that face\n")
	b.WriteString("Four of a Kind: sum of all dice when at least four match\n")
	fmt.Fprintf(&b, "Full House: %d for three of one face and two of another\n", scoring.FullHouseScore)
	fmt.Fprintf(&b, "Small Straight: %d for four in a row\n", scoring.SmallStraightScore)
	fmt.Fprintf(&b, "Large Straight: %d for five in a row\n", scoring.LargeStraightScore)
	fmt.Fprintf(&b, "Yacht: %d for five of a kind\n", scoring.YachtScore)
	b.WriteString("Chance: sum of all dice\n\n")

	b.WriteString("**Weather abilities** (once per player, after rolling)\n")
	for _, condition := range []models.WeatherCondition{
		models.WeatherSunny,
		models.WeatherCloudy,
		models.WeatherRain,
		models.WeatherSnow,
		models.WeatherStorm,
	} {
		ability := condition.Ability()
		marker := ""
		if input != nil && input.Condition == condition {
			marker = " ⬅ today"
		}
		fmt.Fprintf(&b, "%s %s: %s%s\n", condition.Theme().Emoji, ability.Name, ability.Description, marker)
	}

	return &GetRulesMessageOutput{
		Title:   "📖 How to play Weather Yacht",
		Message: strings.TrimRight(b.String(), "\n"),
	}, nil
}

// classifyError maps service errors onto the copy shown to players
func classifyError(err error) ErrorType {
	switch {
	case errors.Is(err, turn.ErrNoRollsLeft):
		return ErrorTypeNoRollsLeft
	case errors.Is(err, turn.ErrNoDiceRolled):
		return ErrorTypeNoDiceRolled
	case errors.Is(err, turn.ErrAbilityUsed):
		return ErrorTypeAbilityUsed
	case errors.Is(err, turn.ErrInvalidAbilityParams), errors.Is(err, turn.ErrInvalidDieIndex):
		return ErrorTypeInvalidSelection
	case errors.Is(err, turn.ErrCategoryRecorded), errors.Is(err, turn.ErrInvalidCategory):
		return ErrorTypeCategoryRecorded
	case errors.Is(err, turn.ErrGameFinished), errors.Is(err, turn.ErrGameNotInProgress):
		return ErrorTypeGameOver
	case errors.Is(err, gameService.ErrGameNotFound):
		return ErrorTypeGameNotFound
	case errors.Is(err, gameService.ErrGameAlreadyExists):
		return ErrorTypeGameExists
	case errors.Is(err, turn.ErrNoPlayers), errors.Is(err, turn.ErrTooManyPlayers):
		return ErrorTypePlayerCount
	case errors.Is(err, weatherService.ErrCityNotFound), errors.Is(err, weatherService.ErrEmptyCity):
		return ErrorTypeCityNotFound
	case errors.Is(err, weatherService.ErrWeatherUnavailable):
		return ErrorTypeWeatherDown
	case errors.Is(err, weatherService.ErrLocationUnavailable):
		return ErrorTypeLocationNotFound
	}
	return ErrorTypeUnknown
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	errorType := classifyError(input.Err)

	var messages []string
	switch errorType {
	case ErrorTypeNoRollsLeft:
		messages = []string{
			"Three rolls is all you get! Pick a category.",
			"The dice are tired. No rolls left this turn.",
		}
	case ErrorTypeNoDiceRolled:
		messages = []string{
			"Roll the dice first!",
			"Nothing on the table yet. Give the dice a roll.",
		}
	case ErrorTypeAbilityUsed:
		messages = []string{
			"You've already used your weather ability this game.",
			"The weather only helps once per player!",
		}
	case ErrorTypeInvalidSelection:
		messages = []string{
			"That dice selection doesn't work for this ability. Try again.",
			"Pick the right number of different dice for this ability.",
		}
	case ErrorTypeCategoryRecorded:
		messages = []string{
			"That category is already filled. Pick another one.",
			"You've scored that one already!",
		}
	case ErrorTypeGameOver:
		messages = []string{
			"This game is over! Hit Play again for a rematch.",
			"The final scores are in. Start a rematch to keep rolling.",
		}
	case ErrorTypeGameNotFound:
		messages = []string{
			"There's no game at this table. Start one with `/yacht start`.",
			"No dice on this table. Use `/yacht start` to open a game.",
		}
	case ErrorTypeGameExists:
		messages = []string{
			"A game is already running here. Finish it or use `/yacht end`.",
			"This table is taken! Use `/yacht end` to close the current game first.",
		}
	case ErrorTypePlayerCount:
		messages = []string{
			"A table seats 1 to 4 players.",
			"Check the player list: between 1 and 4 names, separated by commas.",
		}
	case ErrorTypeCityNotFound:
		messages = []string{
			"I couldn't find that city. Check the spelling and try again.",
			"That city isn't on any map I have. Try another name.",
		}
	case ErrorTypeWeatherDown:
		messages = []string{
			"I couldn't reach the weather service. Check the connection and try again.",
			"The forecast is unavailable right now. Please try again in a moment.",
		}
	case ErrorTypeLocationNotFound:
		messages = []string{
			"I couldn't work out where you are. Enter a city instead.",
			"Location detection failed. Please type a city name.",
		}
	default:
		messages = []string{
			"Something went wrong. Please try again.",
			"The dice slipped off the table. Try that again.",
		}
	}

	return &GetErrorMessageOutput{
		Message:   s.pick(messages),
		ErrorType: errorType,
		Tone:      tone,
	}, nil
}
