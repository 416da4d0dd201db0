package models

// AbilityKey identifies the effect bound to a weather condition
type AbilityKey string

const (
	AbilitySetDieToSix    AbilityKey = "set_die_to_six"
	AbilityRerollSelected AbilityKey = "reroll_selected"
	AbilityAddFivePoints  AbilityKey = "add_five_points"
	AbilitySwapDice       AbilityKey = "swap_dice"
	AbilityFullReroll     AbilityKey = "full_reroll"
)

// Ability describes the one-time-per-player effect unlocked by the weather
type Ability struct {
	// Key identifies the effect
	Key AbilityKey

	// Name is the display name of the ability
	Name string

	// Description explains the effect to players
	Description string

	// MinPositions is the minimum number of die positions the player must choose
	MinPositions int

	// MaxPositions is the maximum number of die positions the player may choose
	MaxPositions int
}

// NeedsPositions reports whether the player has to choose dice before the ability applies
func (a Ability) NeedsPositions() bool {
	return a.MaxPositions > 0
}

// Theme is the presentation theme bound to a weather condition
type Theme struct {
	// Color is the embed colour
	Color int

	// Emoji represents the weather in messages
	Emoji string
}

var abilities = map[WeatherCondition]Ability{
	WeatherSunny: {
		Key:          AbilitySetDieToSix,
		Name:         "Sunshine Chance",
		Description:  "Turn any one die into a 6.",
		MinPositions: 1,
		MaxPositions: 1,
	},
	WeatherCloudy: {
		Key:          AbilityRerollSelected,
		Name:         "Gust Chance",
		Description:  "Reroll up to two dice of your choice.",
		MinPositions: 1,
		MaxPositions: 2,
	},
	WeatherRain: {
		Key:         AbilityAddFivePoints,
		Name:        "Raindrop Chance",
		Description: "Add 5 points to the next score you record.",
	},
	WeatherSnow: {
		Key:          AbilitySwapDice,
		Name:         "Snowflake Chance",
		Description:  "Swap the values of two dice.",
		MinPositions: 2,
		MaxPositions: 2,
	},
	WeatherStorm: {
		Key:         AbilityFullReroll,
		Name:        "Lightning Chance",
		Description: "Reroll all five dice, ignoring the roll limit.",
	},
}

var themes = map[WeatherCondition]Theme{
	WeatherSunny:  {Color: 0xffe27a, Emoji: "☀️"},
	WeatherCloudy: {Color: 0xd6e4f0, Emoji: "☁️"},
	WeatherRain:   {Color: 0x9ec5f8, Emoji: "🌧️"},
	WeatherSnow:   {Color: 0xf3f8ff, Emoji: "❄️"},
	WeatherStorm:  {Color: 0x494166, Emoji: "⛈️"},
}

// Ability returns the ability bound to the condition; unknown conditions use cloudy
func (c WeatherCondition) Ability() Ability {
	return abilities[c.OrDefault()]
}

// Theme returns the presentation theme bound to the condition; unknown conditions use cloudy
func (c WeatherCondition) Theme() Theme {
	return themes[c.OrDefault()]
}
