package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	gameService "github.com/KirkDiggler/weatheryacht/internal/services/game"
	weatherService "github.com/KirkDiggler/weatheryacht/internal/services/weather"
	"github.com/KirkDiggler/weatheryacht/internal/turn"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	messagingService Service
	ctx              context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.messagingService = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetWelcomeMessage() {
	temperature := 21.3
	output, err := s.messagingService.GetWelcomeMessage(s.ctx, &GetWelcomeMessageInput{
		Weather: &models.Weather{
			City:        "Seoul",
			Temperature: &temperature,
			Condition:   models.WeatherSnow,
		},
		PlayerNames: []string{"Ann", "Bo"},
	})

	s.Require().NoError(err)
	s.Contains(output.Title, "Seoul")
	s.Contains(output.Title, "❄️")
	s.Contains(output.Message, "Seoul")
	s.Contains(output.Message, "21.3°C")
	s.Contains(output.Message, "Snowflake Chance")
	s.Contains(output.Message, "Ann, Bo")
}

func (s *MessagingServiceTestSuite) TestGetWelcomeMessage_UnknownConditionIsCloudy() {
	output, err := s.messagingService.GetWelcomeMessage(s.ctx, &GetWelcomeMessageInput{
		Weather: &models.Weather{City: "Busan", Condition: "fog"},
	})

	s.Require().NoError(err)
	s.Contains(output.Message, "Gust Chance")
	s.NotContains(output.Message, "°C")
}

func (s *MessagingServiceTestSuite) TestGetWelcomeMessage_NilWeather() {
	_, err := s.messagingService.GetWelcomeMessage(s.ctx, &GetWelcomeMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetRollMessage() {
	tests := []struct {
		dice      [models.DiceCount]int
		rollsLeft int
		tone      MessageTone
	}{
		{[models.DiceCount]int{6, 6, 6, 6, 6}, 2, ToneCelebration},
		{[models.DiceCount]int{2, 3, 4, 5, 6}, 2, ToneCelebration},
		{[models.DiceCount]int{2, 2, 5, 5, 5}, 2, ToneEncouraging},
		{[models.DiceCount]int{1, 2, 2, 4, 6}, 0, ToneFunny},
		{[models.DiceCount]int{1, 2, 2, 4, 6}, 1, ToneNeutral},
	}

	for _, tt := range tests {
		output, err := s.messagingService.GetRollMessage(s.ctx, &GetRollMessageInput{
			PlayerName: "Ann",
			Dice:       tt.dice,
			RollsLeft:  tt.rollsLeft,
		})

		s.Require().NoError(err)
		s.Contains(output.Message, "Ann")
		s.Equal(tt.tone, output.Tone, "dice %v", tt.dice)
	}
}

func (s *MessagingServiceTestSuite) TestGetAbilityMessage() {
	for _, condition := range []models.WeatherCondition{
		models.WeatherSunny,
		models.WeatherCloudy,
		models.WeatherRain,
		models.WeatherSnow,
		models.WeatherStorm,
	} {
		output, err := s.messagingService.GetAbilityMessage(s.ctx, &GetAbilityMessageInput{
			PlayerName: "Bo",
			Condition:  condition,
		})

		s.Require().NoError(err)
		s.Contains(output.Message, "Bo")
		s.Contains(output.Message, condition.Ability().Name)
		s.Contains(output.Message, condition.Theme().Emoji)
	}
}

func (s *MessagingServiceTestSuite) TestGetScoreMessage() {
	output, err := s.messagingService.GetScoreMessage(s.ctx, &GetScoreMessageInput{
		PlayerName: "Ann",
		Result: &turn.RecordResult{
			Category: models.CategoryFullHouse,
			Base:     25,
			Bonus:    5,
			Score:    30,
		},
	})

	s.Require().NoError(err)
	s.Equal("Ann records 30 in Full House. (25 + 5 rain bonus)", output.Message)
	s.Equal(ToneNeutral, output.Tone)
}

func (s *MessagingServiceTestSuite) TestGetScoreMessage_YachtAndScratch() {
	output, err := s.messagingService.GetScoreMessage(s.ctx, &GetScoreMessageInput{
		PlayerName: "Ann",
		Result:     &turn.RecordResult{Category: models.CategoryYacht, Base: 50, Score: 50},
	})
	s.Require().NoError(err)
	s.Equal(ToneCelebration, output.Tone)
	s.Contains(output.Message, "50")

	output, err = s.messagingService.GetScoreMessage(s.ctx, &GetScoreMessageInput{
		PlayerName: "Bo",
		Result:     &turn.RecordResult{Category: models.CategoryYacht},
	})
	s.Require().NoError(err)
	s.Equal(ToneFunny, output.Tone)
	s.Contains(output.Message, "Yacht")
}

func (s *MessagingServiceTestSuite) TestGetGameOverMessage_SingleWinner() {
	ann := turn.PlayerTotal{PlayerIndex: 0, Name: "Ann", Total: 140}
	bo := turn.PlayerTotal{PlayerIndex: 1, Name: "Bo", Total: 165}

	output, err := s.messagingService.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{
		Standings: &turn.Standings{
			Totals:   []turn.PlayerTotal{ann, bo},
			Winners:  []turn.PlayerTotal{bo},
			TopScore: 165,
		},
	})

	s.Require().NoError(err)
	s.Equal("🏆 Bo wins with 165 points!", output.Title)
	s.Contains(output.Message, "1. **Bo**: 165")
	s.Contains(output.Message, "2. **Ann**: 140")
}

func (s *MessagingServiceTestSuite) TestGetGameOverMessage_Tie() {
	ann := turn.PlayerTotal{PlayerIndex: 0, Name: "Ann", Total: 99}
	bo := turn.PlayerTotal{PlayerIndex: 1, Name: "Bo", Total: 99}

	output, err := s.messagingService.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{
		Standings: &turn.Standings{
			Totals:   []turn.PlayerTotal{ann, bo},
			Winners:  []turn.PlayerTotal{ann, bo},
			TopScore: 99,
		},
	})

	s.Require().NoError(err)
	s.Contains(output.Title, "tie at 99")
	s.Contains(output.Message, "Ann and Bo")
}

func (s *MessagingServiceTestSuite) TestGetRulesMessage() {
	output, err := s.messagingService.GetRulesMessage(s.ctx, &GetRulesMessageInput{
		Condition: models.WeatherStorm,
	})

	s.Require().NoError(err)
	for _, name := range []string{"Sunshine Chance", "Gust Chance", "Raindrop Chance", "Snowflake Chance", "Lightning Chance"} {
		s.Contains(output.Message, name)
	}
	s.Contains(output.Message, "Lightning Chance: Reroll all five dice, ignoring the roll limit. ⬅ today")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_Classification() {
	tests := []struct {
		err  error
		want ErrorType
	}{
		{turn.ErrNoRollsLeft, ErrorTypeNoRollsLeft},
		{turn.ErrNoDiceRolled, ErrorTypeNoDiceRolled},
		{turn.ErrAbilityUsed, ErrorTypeAbilityUsed},
		{turn.ErrInvalidAbilityParams, ErrorTypeInvalidSelection},
		{turn.ErrInvalidDieIndex, ErrorTypeInvalidSelection},
		{turn.ErrCategoryRecorded, ErrorTypeCategoryRecorded},
		{turn.ErrGameFinished, ErrorTypeGameOver},
		{fmt.Errorf("%w: 5 seats, limit is 4", turn.ErrTooManyPlayers), ErrorTypePlayerCount},
		{gameService.ErrGameNotFound, ErrorTypeGameNotFound},
		{gameService.ErrGameAlreadyExists, ErrorTypeGameExists},
		{weatherService.ErrCityNotFound, ErrorTypeCityNotFound},
		{fmt.Errorf("%w: %w", weatherService.ErrWeatherUnavailable, errors.New("timeout")), ErrorTypeWeatherDown},
		{weatherService.ErrLocationUnavailable, ErrorTypeLocationNotFound},
		{errors.New("boom"), ErrorTypeUnknown},
	}

	for _, tt := range tests {
		output, err := s.messagingService.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tt.err})

		s.Require().NoError(err)
		s.Equal(tt.want, output.ErrorType, "error %v", tt.err)
		s.NotEmpty(output.Message)
		s.Equal(ToneFunny, output.Tone)
	}
}
