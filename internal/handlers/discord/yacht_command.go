package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/KirkDiggler/weatheryacht/internal/services/game"
	"github.com/KirkDiggler/weatheryacht/internal/services/messaging"
	"github.com/KirkDiggler/weatheryacht/internal/services/weather"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// YachtCommand handles the /yacht command
type YachtCommand struct {
	BaseCommand
	gameService      game.Service
	weatherService   weather.Service
	messagingService messaging.Service
	defaultCity      string
	log              logrus.FieldLogger
}

// YachtCommandConfig holds the dependencies of the /yacht command
type YachtCommandConfig struct {
	GameService      game.Service
	WeatherService   weather.Service
	MessagingService messaging.Service

	// DefaultCity is used when no city is given and detection fails
	DefaultCity string

	Logger logrus.FieldLogger
}

// NewYachtCommand creates a new yacht command handler
func NewYachtCommand(cfg *YachtCommandConfig) *YachtCommand {
	return &YachtCommand{
		BaseCommand: BaseCommand{
			Name:        "yacht",
			Description: "Weather Yacht dice game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Open a table themed on today's weather",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Player names separated by commas, or a number of players",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "city",
							Description: "City whose weather sets the ability (detected when omitted)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "refresh",
							Description: "Fetch fresh weather instead of the cached reading",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "locate",
					Description: "Detect the city the bot is running in",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rules",
					Description: "Show the rules and the weather abilities",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "Close the table in this channel",
				},
			},
		},
		gameService:      cfg.GameService,
		weatherService:   cfg.WeatherService,
		messagingService: cfg.MessagingService,
		defaultCity:      cfg.DefaultCity,
		log:              cfg.Logger,
	}
}

// Handle processes a Discord interaction for the yacht command
func (c *YachtCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "start":
		return c.handleStart(s, i, sub.Options)
	case "locate":
		return c.handleLocate(s, i)
	case "rules":
		return c.handleRules(s, i)
	case "end":
		return c.handleEnd(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleStart resolves the weather, seats the players and posts the table
func (c *YachtCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	var rawPlayers, city string
	var refresh bool
	for _, opt := range options {
		switch opt.Name {
		case "players":
			rawPlayers = opt.StringValue()
		case "city":
			city = opt.StringValue()
		case "refresh":
			refresh = opt.BoolValue()
		}
	}

	names, err := parsePlayerNames(rawPlayers)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "Tell me who is playing, for example `Ann, Bo` or `2`.")
	}

	// Refuse early so a busy channel does not cost a weather lookup
	existing, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil && !errors.Is(err, game.ErrGameNotFound) {
		return c.respondError(ctx, s, i, err)
	}
	if existing != nil && existing.Game.Status.IsInProgress() {
		return c.respondError(ctx, s, i, game.ErrGameAlreadyExists)
	}

	// Weather lookups can exceed the response window
	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer start response: %w", err)
	}

	var detected *models.Location
	if city == "" {
		detectOutput, err := c.weatherService.DetectLocation(ctx, &weather.DetectLocationInput{
			Silent: true,
		})
		if err == nil && detectOutput.Location != nil {
			detected = detectOutput.Location
			city = detected.City
		} else {
			city = c.defaultCity
		}
	}

	log := c.log.WithFields(logrus.Fields{
		"channel_id": i.ChannelID,
		"city":       city,
	})

	resolveOutput, err := c.weatherService.ResolveWeather(ctx, &weather.ResolveWeatherInput{
		City:     city,
		Detected: detected,
		Refresh:  refresh,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to resolve weather")
		return EditResponseWithError(s, i, c.errorText(ctx, err))
	}

	createOutput, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		ChannelID:   i.ChannelID,
		CreatorID:   interactionUserID(i),
		PlayerNames: names,
		Weather:     resolveOutput.Weather,
	})
	if err != nil {
		return EditResponseWithError(s, i, c.errorText(ctx, err))
	}
	created := createOutput.Game

	playerNames := make([]string, len(created.Players))
	for idx, player := range created.Players {
		playerNames[idx] = player.Name
	}

	note := ""
	welcome, err := c.messagingService.GetWelcomeMessage(ctx, &messaging.GetWelcomeMessageInput{
		Weather:     created.Weather,
		PlayerNames: playerNames,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to get welcome message")
	} else {
		note = fmt.Sprintf("**%s**\n%s", welcome.Title, welcome.Message)
	}

	embeds, components := renderTable(created, nil, note)
	msg, err := EditResponse(s, i, embeds, components)
	if err != nil {
		return fmt.Errorf("failed to post table: %w", err)
	}

	if _, err := c.gameService.UpdateGameMessage(ctx, &game.UpdateGameMessageInput{
		GameID:    created.ID,
		MessageID: msg.ID,
	}); err != nil {
		log.WithError(err).Error("Failed to store table message")
	}

	log.WithFields(logrus.Fields{
		"game_id": created.ID,
		"cached":  resolveOutput.Cached,
	}).Info("Table opened")

	return nil
}

// handleLocate runs an explicit detection and reports the result
func (c *YachtCommand) handleLocate(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.weatherService.DetectLocation(ctx, &weather.DetectLocationInput{})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	location := output.Location
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"📍 Looks like **%s** (%.2f, %.2f). Start a table there with `/yacht start players:Ann, Bo city:%s`.",
		location.City, location.Latitude, location.Longitude, location.City))
}

// handleRules shows the rules, highlighting the ability of the channel's table
func (c *YachtCommand) handleRules(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return respondRules(context.Background(), c.gameService, c.messagingService, s, i)
}

// handleEnd closes the channel's table and shows the standings so far
func (c *YachtCommand) handleEnd(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	existing, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	output, err := c.gameService.AbandonGame(ctx, &game.AbandonGameInput{
		GameID: existing.Game.ID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	closed := output.Game
	if closed.MessageID != "" {
		embeds, components := renderClosedTable(closed, "This table was closed.")
		if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    closed.ChannelID,
			ID:         closed.MessageID,
			Embeds:     &embeds,
			Components: &components,
		}); err != nil {
			c.log.WithError(err).WithField("game_id", closed.ID).Warn("Failed to close table message")
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Table closed. %s", standingsLine(output.Standings)),
		},
	})
}

func (c *YachtCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return RespondWithEphemeralMessage(s, i, c.errorText(ctx, err))
}

func (c *YachtCommand) errorText(ctx context.Context, err error) string {
	return errorText(ctx, c.messagingService, c.log, err)
}
