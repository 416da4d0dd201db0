package turn

// RuleError is returned when an operation violates the rules of the game.
// The game is left unchanged whenever one is returned.
type RuleError string

// Error implements the error interface
func (e RuleError) Error() string {
	return string(e)
}

const (
	ErrNilConfig            RuleError = "config cannot be nil"
	ErrNilDiceRoller        RuleError = "dice roller cannot be nil"
	ErrNilGame              RuleError = "game cannot be nil"
	ErrNoPlayers            RuleError = "at least one player is required"
	ErrTooManyPlayers       RuleError = "too many players"
	ErrGameNotInProgress    RuleError = "game is not in progress"
	ErrGameFinished         RuleError = "game is already finished"
	ErrNoRollsLeft          RuleError = "no rolls left this turn"
	ErrNoDiceRolled         RuleError = "dice have not been rolled this turn"
	ErrInvalidDieIndex      RuleError = "die position is out of range"
	ErrAbilityUsed          RuleError = "ability already used this game"
	ErrInvalidAbilityParams RuleError = "invalid dice selection for this ability"
	ErrCategoryRecorded     RuleError = "category already recorded"
	ErrInvalidCategory      RuleError = "unknown category"
)
