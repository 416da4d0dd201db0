package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/weatheryacht/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetWelcomeMessage introduces the weather and the ability when a table opens
	GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error)

	// GetRollMessage returns a comment on a player's roll
	GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error)

	// GetAbilityMessage announces a used weather ability
	GetAbilityMessage(ctx context.Context, input *GetAbilityMessageInput) (*GetAbilityMessageOutput, error)

	// GetScoreMessage announces a recorded score
	GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error)

	// GetGameOverMessage announces the winners
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetRulesMessage returns the rules and the five weather abilities
	GetRulesMessage(ctx context.Context, input *GetRulesMessageInput) (*GetRulesMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
