package messaging

import (
	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/KirkDiggler/weatheryacht/internal/turn"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType classifies errors for the copy shown to players
type ErrorType string

const (
	ErrorTypeNoRollsLeft      ErrorType = "no_rolls_left"
	ErrorTypeNoDiceRolled     ErrorType = "no_dice_rolled"
	ErrorTypeAbilityUsed      ErrorType = "ability_used"
	ErrorTypeInvalidSelection ErrorType = "invalid_selection"
	ErrorTypeCategoryRecorded ErrorType = "category_recorded"
	ErrorTypeGameOver         ErrorType = "game_over"
	ErrorTypeGameNotFound     ErrorType = "game_not_found"
	ErrorTypeGameExists       ErrorType = "game_exists"
	ErrorTypePlayerCount      ErrorType = "player_count"
	ErrorTypeCityNotFound     ErrorType = "city_not_found"
	ErrorTypeWeatherDown      ErrorType = "weather_unavailable"
	ErrorTypeLocationNotFound ErrorType = "location_unavailable"
	ErrorTypeUnknown          ErrorType = "unknown"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the message selection, zero seeds from the clock
	Seed int64
}

// GetWelcomeMessageInput contains parameters for the table intro
type GetWelcomeMessageInput struct {
	Weather     *models.Weather
	PlayerNames []string
}

// GetWelcomeMessageOutput contains the table intro
type GetWelcomeMessageOutput struct {
	Title   string
	Message string
}

// GetRollMessageInput contains parameters for a roll comment
type GetRollMessageInput struct {
	PlayerName string
	Dice       [models.DiceCount]int
	RollsLeft  int
}

// GetRollMessageOutput contains the roll comment
type GetRollMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetAbilityMessageInput contains parameters for an ability announcement
type GetAbilityMessageInput struct {
	PlayerName string
	Condition  models.WeatherCondition
}

// GetAbilityMessageOutput contains the ability announcement
type GetAbilityMessageOutput struct {
	Message string
}

// GetScoreMessageInput contains parameters for a score announcement
type GetScoreMessageInput struct {
	PlayerName string
	Result     *turn.RecordResult
}

// GetScoreMessageOutput contains the score announcement
type GetScoreMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput contains parameters for the final announcement
type GetGameOverMessageInput struct {
	Standings *turn.Standings
}

// GetGameOverMessageOutput contains the final announcement
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetRulesMessageInput contains parameters for the rules text
type GetRulesMessageInput struct {
	// Condition highlights the ability of the current table, if any
	Condition models.WeatherCondition
}

// GetRulesMessageOutput contains the rules text
type GetRulesMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// ErrorType is how the error was classified
	ErrorType ErrorType

	// Tone is the tone of the message
	Tone MessageTone
}
