package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/KirkDiggler/weatheryacht/internal/scoring"
	"github.com/KirkDiggler/weatheryacht/internal/services/game"
	"github.com/KirkDiggler/weatheryacht/internal/services/messaging"
	"github.com/KirkDiggler/weatheryacht/internal/services/weather"
	"github.com/KirkDiggler/weatheryacht/internal/turn"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	gameService      game.Service
	weatherService   weather.Service
	messagingService messaging.Service
	config           *Config
	log              logrus.FieldLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// DefaultCity is used when /yacht start has no city and detection fails
	DefaultCity string

	GameService      game.Service
	WeatherService   weather.Service
	MessagingService messaging.Service

	Logger logrus.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.WeatherService == nil {
		return nil, errors.New("weather service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		weatherService:   cfg.WeatherService,
		messagingService: cfg.MessagingService,
		config:           cfg,
		log:              cfg.Logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	yachtCmd := NewYachtCommand(&YachtCommandConfig{
		GameService:      b.gameService,
		WeatherService:   b.weatherService,
		MessagingService: b.messagingService,
		DefaultCity:      b.config.DefaultCity,
		Logger:           b.log,
	})
	if err := b.RegisterCommand(yachtCmd); err != nil {
		return fmt.Errorf("failed to register yacht command: %w", err)
	}

	b.log.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the tables in progress and shuts down the Discord connection
func (b *Bot) Stop() error {
	b.closeTables(context.Background())

	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		log := b.log.WithFields(logrus.Fields{
			"command":    cmdName,
			"command_id": cmdID,
		})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).Warn("Failed to delete command")
		} else {
			log.Info("Deleted command")
		}
	}

	return b.session.Close()
}

// closeTables ends every table in progress. Games live in memory only,
// so their controls would stop working once the process exits.
func (b *Bot) closeTables(ctx context.Context) {
	output, err := b.gameService.GetActiveGames(ctx, &game.GetActiveGamesInput{})
	if err != nil {
		b.log.WithError(err).Warn("Failed to list active tables")
		return
	}

	b.log.WithField("tables", len(output.Games)).Info("Closing active tables")

	for _, active := range output.Games {
		log := b.log.WithFields(logrus.Fields{
			"game_id":    active.ID,
			"channel_id": active.ChannelID,
		})

		closed, err := b.gameService.AbandonGame(ctx, &game.AbandonGameInput{
			GameID: active.ID,
		})
		if err != nil {
			log.WithError(err).Warn("Failed to close table")
			continue
		}

		if closed.Game.MessageID == "" {
			continue
		}

		note := strings.TrimSpace("The bot went offline, so this table has ended. " + standingsLine(closed.Standings))
		embeds, components := renderClosedTable(closed.Game, note)
		if _, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    closed.Game.ChannelID,
			ID:         closed.Game.MessageID,
			Embeds:     &embeds,
			Components: &components,
		}); err != nil {
			log.WithError(err).Warn("Failed to close table message")
		}
	}
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// An empty guild ID registers the command globally
	log := b.log.WithFields(logrus.Fields{
		"command":  cmd.GetName(),
		"guild_id": b.config.GuildID,
	})

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.WithField("command_id", createdCmd.ID).Info("Registered command")

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.WithError(err).WithField("command", name).Error("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.log.WithError(err).WithFields(logrus.Fields{
				"custom_id":  i.MessageComponentData().CustomID,
				"channel_id": i.ChannelID,
			}).Error("Error handling component interaction")
		}
	}
}

// handleComponentInteraction routes button clicks and select menus
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	if index, ok := parseHoldIndex(customID); ok {
		return b.handleHoldButton(s, i, index)
	}

	if gameID, turnNumber, ok := parsePickerID(customID); ok {
		return b.handleAbilityDiceSelect(s, i, gameID, turnNumber)
	}

	switch customID {
	case ButtonRoll:
		return b.handleRollButton(s, i)
	case ButtonAbility:
		return b.handleAbilityButton(s, i)
	case ButtonRules:
		return respondRules(context.Background(), b.gameService, b.messagingService, s, i)
	case ButtonRematch:
		return b.handleRematchButton(s, i)
	case ButtonClose:
		return b.handleCloseButton(s, i)
	case SelectCategory:
		return b.handleCategorySelect(s, i)
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown control: %s", customID))
	}
}

// tableGame loads the channel's game for a control on its table message.
// It replies and returns nil when there is nothing to act on.
func (b *Bot) tableGame(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) (*models.Game, error) {
	output, err := b.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return nil, b.respondError(ctx, s, i, err)
	}

	current := output.Game
	if i.Message != nil && current.MessageID != "" && i.Message.ID != current.MessageID {
		return nil, RespondWithEphemeralMessage(s, i, "This table is no longer active. Use the newest table in this channel.")
	}

	return current, nil
}

// handleHoldButton holds or releases one die
func (b *Bot) handleHoldButton(s *discordgo.Session, i *discordgo.InteractionCreate, index int) error {
	ctx := context.Background()

	current, err := b.tableGame(ctx, s, i)
	if current == nil {
		return err
	}

	output, err := b.gameService.ToggleHold(ctx, &game.ToggleHoldInput{
		GameID: current.ID,
		Index:  index,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	return b.respondTable(ctx, s, i, output.Game, "")
}

// handleRollButton rolls the dice that are not held
func (b *Bot) handleRollButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	current, err := b.tableGame(ctx, s, i)
	if current == nil {
		return err
	}

	output, err := b.gameService.RollDice(ctx, &game.RollDiceInput{
		GameID: current.ID,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	note := ""
	rollMsg, err := b.messagingService.GetRollMessage(ctx, &messaging.GetRollMessageInput{
		PlayerName: output.PlayerName,
		Dice:       output.Dice,
		RollsLeft:  output.RollsLeft,
	})
	if err != nil {
		b.log.WithError(err).Warn("Failed to get roll message")
	} else {
		note = rollMsg.Message
	}

	return b.respondTable(ctx, s, i, output.Game, note)
}

// handleAbilityButton applies abilities without targets at once and opens a
// dice picker for the rest
func (b *Bot) handleAbilityButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	current, err := b.tableGame(ctx, s, i)
	if current == nil {
		return err
	}

	if err := turn.AbilityReady(current); err != nil {
		return b.respondError(ctx, s, i, err)
	}

	ability := current.Condition().Ability()
	if ability.NeedsPositions() {
		return RespondWithEphemeralComponents(s, i,
			fmt.Sprintf("%s: %s", ability.Name, ability.Description),
			renderAbilityPicker(current))
	}

	output, err := b.gameService.UseAbility(ctx, &game.UseAbilityInput{
		GameID: current.ID,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	return b.respondTable(ctx, s, i, output.Game, b.abilityNote(ctx, output))
}

// handleAbilityDiceSelect applies the ability to the dice chosen in the picker.
// The picker is ephemeral, so the table message is edited separately.
func (b *Bot) handleAbilityDiceSelect(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string, turnNumber int) error {
	ctx := context.Background()

	existing, err := b.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	if !pickerMatches(existing.Game, gameID, turnNumber) {
		return RespondWithUpdatedContent(s, i, "This picker has expired. Press the ability button again.")
	}

	positions, err := parsePositions(i.MessageComponentData().Values)
	if err != nil {
		return b.respondError(ctx, s, i, turn.ErrInvalidAbilityParams)
	}

	output, err := b.gameService.UseAbility(ctx, &game.UseAbilityInput{
		GameID:    existing.Game.ID,
		Positions: positions,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	note := b.abilityNote(ctx, output)
	b.editTable(ctx, s, output.Game, note)

	return RespondWithUpdatedContent(s, i, fmt.Sprintf("%s used.", output.Ability.Name))
}

// handleCategorySelect records the chosen category and passes the turn
func (b *Bot) handleCategorySelect(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	current, err := b.tableGame(ctx, s, i)
	if current == nil {
		return err
	}

	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return b.respondError(ctx, s, i, turn.ErrInvalidCategory)
	}

	output, err := b.gameService.RecordScore(ctx, &game.RecordScoreInput{
		GameID:   current.ID,
		Category: models.Category(values[0]),
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	var note strings.Builder
	scoreMsg, err := b.messagingService.GetScoreMessage(ctx, &messaging.GetScoreMessageInput{
		PlayerName: output.PlayerName,
		Result:     output.Result,
	})
	if err != nil {
		b.log.WithError(err).Warn("Failed to get score message")
	} else {
		note.WriteString(scoreMsg.Message)
	}

	if output.Result.GameOver {
		overMsg, err := b.messagingService.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
			Standings: output.Result.Standings,
		})
		if err != nil {
			b.log.WithError(err).Warn("Failed to get game over message")
		} else {
			fmt.Fprintf(&note, "\n\n**%s**\n%s", overMsg.Title, overMsg.Message)
		}

		b.log.WithFields(logrus.Fields{
			"game_id":    output.Game.ID,
			"channel_id": output.Game.ChannelID,
			"top_score":  output.Result.Standings.TopScore,
		}).Info("Game finished")
	}

	return b.respondTable(ctx, s, i, output.Game, note.String())
}

// handleRematchButton restarts a finished table with the same players and weather
func (b *Bot) handleRematchButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	current, err := b.tableGame(ctx, s, i)
	if current == nil {
		return err
	}

	output, err := b.gameService.Rematch(ctx, &game.RematchInput{
		GameID: current.ID,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	playerNames := make([]string, len(output.Game.Players))
	for idx, player := range output.Game.Players {
		playerNames[idx] = player.Name
	}

	note := "Rematch!"
	welcome, err := b.messagingService.GetWelcomeMessage(ctx, &messaging.GetWelcomeMessageInput{
		Weather:     output.Game.Weather,
		PlayerNames: playerNames,
	})
	if err != nil {
		b.log.WithError(err).Warn("Failed to get welcome message")
	} else {
		note = fmt.Sprintf("**Rematch! %s**\n%s", welcome.Title, welcome.Message)
	}

	return b.respondTable(ctx, s, i, output.Game, note)
}

// handleCloseButton closes a table from its own controls
func (b *Bot) handleCloseButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	current, err := b.tableGame(ctx, s, i)
	if current == nil {
		return err
	}

	output, err := b.gameService.AbandonGame(ctx, &game.AbandonGameInput{
		GameID: current.ID,
	})
	if err != nil {
		return b.respondError(ctx, s, i, err)
	}

	embeds, components := renderClosedTable(output.Game, "Thanks for playing! Start another table with `/yacht start`.")
	return RespondWithUpdate(s, i, embeds, components)
}

func (b *Bot) abilityNote(ctx context.Context, output *game.UseAbilityOutput) string {
	msg, err := b.messagingService.GetAbilityMessage(ctx, &messaging.GetAbilityMessageInput{
		PlayerName: output.PlayerName,
		Condition:  output.Game.Condition(),
	})
	if err != nil {
		b.log.WithError(err).Warn("Failed to get ability message")
		return ""
	}
	return msg.Message
}

// respondTable re-renders the table in reply to one of its own controls
func (b *Bot) respondTable(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, current *models.Game, note string) error {
	embeds, components := renderTable(current, b.previews(ctx, current), note)
	return RespondWithUpdate(s, i, embeds, components)
}

// editTable re-renders the table outside of an interaction on it
func (b *Bot) editTable(ctx context.Context, s *discordgo.Session, current *models.Game, note string) {
	log := b.log.WithFields(logrus.Fields{
		"game_id":    current.ID,
		"channel_id": current.ChannelID,
	})

	if current.MessageID == "" {
		log.Warn("Table has no message to edit")
		return
	}

	embeds, components := renderTable(current, b.previews(ctx, current), note)
	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    current.ChannelID,
		ID:         current.MessageID,
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		log.WithError(err).Error("Failed to edit table message")
	}
}

func (b *Bot) previews(ctx context.Context, current *models.Game) []scoring.PreviewEntry {
	if !current.Status.IsInProgress() {
		return nil
	}
	output, err := b.gameService.PreviewScores(ctx, &game.PreviewScoresInput{
		GameID: current.ID,
	})
	if err != nil {
		b.log.WithError(err).WithField("game_id", current.ID).Warn("Failed to preview scores")
		return nil
	}
	return output.Entries
}

func (b *Bot) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return RespondWithEphemeralMessage(s, i, errorText(ctx, b.messagingService, b.log, err))
}

// respondRules shows the rules, highlighting the ability of the channel's table if any
func respondRules(ctx context.Context, gameService game.Service, messagingService messaging.Service, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	var condition models.WeatherCondition
	if existing, err := gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	}); err == nil {
		condition = existing.Game.Condition()
	}

	rules, err := messagingService.GetRulesMessage(ctx, &messaging.GetRulesMessageInput{
		Condition: condition,
	})
	if err != nil {
		return fmt.Errorf("failed to get rules: %w", err)
	}

	return RespondWithEphemeralEmbed(s, i, rules.Title, rules.Message, condition.Theme().Color)
}

// errorText turns a service error into the copy shown to players
func errorText(ctx context.Context, messagingService messaging.Service, log logrus.FieldLogger, err error) string {
	output, msgErr := messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		log.WithError(msgErr).Error("Failed to get error message")
		return "Something went wrong. Please try again."
	}

	if output.ErrorType == messaging.ErrorTypeUnknown {
		log.WithError(err).Error("Unexpected error")
	}

	return output.Message
}
