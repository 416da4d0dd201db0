package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/KirkDiggler/weatheryacht/internal/scoring"
	"github.com/KirkDiggler/weatheryacht/internal/turn"
	"github.com/bwmarrin/discordgo"
)

// Component custom IDs
const (
	ButtonHoldPrefix = "hold:"
	ButtonRoll       = "roll"
	ButtonAbility    = "ability"
	ButtonRules      = "rules"
	ButtonRematch    = "rematch"
	ButtonClose      = "close"

	// Select menu custom IDs
	SelectCategory = "category"

	// SelectAbilityDicePrefix is followed by "<game ID>:<turn>" of the turn the picker was opened on
	SelectAbilityDicePrefix = "ability_dice:"
)

const (
	colorClosed = 0x99aab5
	colorError  = 0xff0000
)

// scoreboard columns are truncated so four players fit a code block on mobile
const scoreboardNameWidth = 6

// renderTable builds the embed and controls of a table that is still being played
// or just finished. note is the latest event, shown above the turn summary.
func renderTable(game *models.Game, previews []scoring.PreviewEntry, note string) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	condition := game.Condition()
	theme := condition.Theme()
	ability := condition.Ability()

	var description strings.Builder
	if note != "" {
		description.WriteString(note)
		description.WriteString("\n\n")
	}

	if player := game.CurrentPlayer(); player != nil && game.Status.IsInProgress() {
		fmt.Fprintf(&description, "**%s**'s turn · Round %d · Rolls left: %d",
			player.Name, round(game), game.RollsLeft)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Weather",
			Value:  weatherLine(game.Weather),
			Inline: true,
		},
		{
			Name:   ability.Name,
			Value:  ability.Description,
			Inline: true,
		},
	}

	if game.Status.IsInProgress() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Dice",
			Value: diceLine(game),
		})
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  "Scoreboard",
		Value: scoreboard(game),
	})

	embeds := []*discordgo.MessageEmbed{
		{
			Title:       fmt.Sprintf("%s Weather Yacht · %s", theme.Emoji, cityName(game.Weather)),
			Description: strings.TrimSpace(description.String()),
			Color:       theme.Color,
			Fields:      fields,
		},
	}

	switch {
	case game.Status.IsInProgress():
		return embeds, playComponents(game, previews)
	case game.Status.IsFinished():
		return embeds, finishedComponents()
	default:
		return embeds, []discordgo.MessageComponent{}
	}
}

// renderClosedTable replaces the table once it has been closed
func renderClosedTable(game *models.Game, note string) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embeds := []*discordgo.MessageEmbed{
		{
			Title:       fmt.Sprintf("Weather Yacht · %s (closed)", cityName(game.Weather)),
			Description: note,
			Color:       colorClosed,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "Scoreboard",
					Value: scoreboard(game),
				},
			},
		},
	}
	return embeds, []discordgo.MessageComponent{}
}

// renderAbilityPicker asks the current player which dice the ability targets
func renderAbilityPicker(game *models.Game) []discordgo.MessageComponent {
	ability := game.Condition().Ability()
	minValues := ability.MinPositions

	options := make([]discordgo.SelectMenuOption, 0, models.DiceCount)
	for i, value := range game.Dice {
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("Die %d: %d", i+1, value),
			Value: strconv.Itoa(i + 1),
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		})
	}

	placeholder := fmt.Sprintf("Choose %d dice", ability.MaxPositions)
	if ability.MinPositions != ability.MaxPositions {
		placeholder = fmt.Sprintf("Choose %d to %d dice", ability.MinPositions, ability.MaxPositions)
	} else if ability.MaxPositions == 1 {
		placeholder = "Choose a die"
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    pickerID(game),
					Placeholder: placeholder,
					MinValues:   &minValues,
					MaxValues:   ability.MaxPositions,
					Options:     options,
				},
			},
		},
	}
}

func playComponents(game *models.Game, previews []scoring.PreviewEntry) []discordgo.MessageComponent {
	rolled := game.HasRolled()

	holds := make([]discordgo.MessageComponent, 0, models.DiceCount)
	for i, value := range game.Dice {
		label := "–"
		style := discordgo.SecondaryButton
		if value > 0 {
			label = strconv.Itoa(value)
		}
		if game.Held[i] {
			label += " 🔒"
			style = discordgo.SuccessButton
		}
		holds = append(holds, discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: fmt.Sprintf("%s%d", ButtonHoldPrefix, i),
			Disabled: !rolled,
		})
	}

	ability := game.Condition().Ability()
	abilityUsed := true
	if player := game.CurrentPlayer(); player != nil {
		abilityUsed = player.AbilityUsed
	}

	rollLabel := "Roll"
	if !rolled {
		rollLabel = "Roll dice"
	}

	actions := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    rollLabel,
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonRoll,
			Disabled: game.RollsLeft <= 0,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		},
		discordgo.Button{
			Label:    ability.Name,
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonAbility,
			Disabled: abilityUsed || !rolled,
			Emoji: &discordgo.ComponentEmoji{
				Name: game.Condition().Theme().Emoji,
			},
		},
		discordgo.Button{
			Label:    "Rules",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonRules,
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: holds},
		discordgo.ActionsRow{Components: actions},
	}

	if len(previews) > 0 {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{categorySelect(previews)},
		})
	}

	return components
}

func categorySelect(previews []scoring.PreviewEntry) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(previews))
	for _, entry := range previews {
		label := fmt.Sprintf("%s: %d", entry.Category.DisplayName(), entry.Total)
		description := "Record this score"
		if entry.Bonus > 0 {
			description = fmt.Sprintf("%d + %d rain bonus", entry.Base, entry.Bonus)
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       label,
			Value:       string(entry.Category),
			Description: description,
		})
	}

	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    SelectCategory,
		Placeholder: "Record a category",
		Options:     options,
	}
}

func finishedComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Play again",
					Style:    discordgo.SuccessButton,
					CustomID: ButtonRematch,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🔁",
					},
				},
				discordgo.Button{
					Label:    "Close",
					Style:    discordgo.DangerButton,
					CustomID: ButtonClose,
				},
				discordgo.Button{
					Label:    "Rules",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonRules,
				},
			},
		},
	}
}

// round is the 1-based round; every seat records one category per round
func round(game *models.Game) int {
	player := game.CurrentPlayer()
	if player == nil {
		return 1
	}
	return len(player.Scores) + 1
}

func cityName(weather *models.Weather) string {
	if weather == nil || weather.City == "" {
		return "somewhere"
	}
	return weather.City
}

func weatherLine(weather *models.Weather) string {
	if weather == nil {
		return "Unknown"
	}
	condition := weather.Condition.OrDefault()
	line := fmt.Sprintf("%s %s", condition.Theme().Emoji, titleCondition(condition))
	if weather.Temperature != nil {
		line += fmt.Sprintf(", %.1f°C", *weather.Temperature)
	}
	return line
}

func titleCondition(condition models.WeatherCondition) string {
	s := string(condition)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func diceLine(game *models.Game) string {
	if !game.HasRolled() {
		return "Not rolled yet"
	}
	parts := make([]string, 0, models.DiceCount)
	for i, value := range game.Dice {
		part := fmt.Sprintf("`%d`", value)
		if game.Held[i] {
			part += "🔒"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "  ")
}

// scoreboard renders every category for every player as a fixed-width table
func scoreboard(game *models.Game) string {
	var b strings.Builder
	b.WriteString("```\n")
	fmt.Fprintf(&b, "%-15s", "")
	for _, player := range game.Players {
		fmt.Fprintf(&b, " %*s", scoreboardNameWidth, truncate(player.Name, scoreboardNameWidth))
	}
	b.WriteString("\n")

	for _, category := range models.AllCategories() {
		fmt.Fprintf(&b, "%-15s", category.DisplayName())
		for _, player := range game.Players {
			cell := "-"
			if score, ok := player.Scores[category]; ok {
				cell = strconv.Itoa(score)
			}
			fmt.Fprintf(&b, " %*s", scoreboardNameWidth, cell)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%-15s", "Total")
	for _, player := range game.Players {
		fmt.Fprintf(&b, " %*d", scoreboardNameWidth, player.Total())
	}
	b.WriteString("\n```")
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

// parseHoldIndex extracts the 0-based die index from a hold button ID
func parseHoldIndex(customID string) (int, bool) {
	if !strings.HasPrefix(customID, ButtonHoldPrefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(customID, ButtonHoldPrefix))
	if err != nil {
		return 0, false
	}
	return index, true
}

// pickerID binds an ability picker to the game and turn it was opened on
func pickerID(game *models.Game) string {
	return fmt.Sprintf("%s%s:%d", SelectAbilityDicePrefix, game.ID, game.Turn)
}

// parsePickerID extracts the game ID and turn an ability picker belongs to
func parsePickerID(customID string) (string, int, bool) {
	if !strings.HasPrefix(customID, SelectAbilityDicePrefix) {
		return "", 0, false
	}
	rest := strings.TrimPrefix(customID, SelectAbilityDicePrefix)
	sep := strings.LastIndex(rest, ":")
	if sep <= 0 {
		return "", 0, false
	}
	turnNumber, err := strconv.Atoi(rest[sep+1:])
	if err != nil {
		return "", 0, false
	}
	return rest[:sep], turnNumber, true
}

// parsePositions converts select menu values into 1-based die positions
func parsePositions(values []string) ([]int, error) {
	positions := make([]int, 0, len(values))
	for _, value := range values {
		position, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid die position %q: %w", value, err)
		}
		positions = append(positions, position)
	}
	return positions, nil
}

// parsePlayerNames reads the players option. A bare number seats that many
// unnamed players; otherwise names are separated by commas and blank entries
// get a default name later.
func parsePlayerNames(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("no players given")
	}

	if count, err := strconv.Atoi(raw); err == nil {
		if count < 1 {
			return nil, errors.New("player count must be positive")
		}
		return make([]string, count), nil
	}

	parts := strings.Split(raw, ",")
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = strings.TrimSpace(part)
	}
	return names, nil
}

// standingsLine summarises totals in seat order on one line
func standingsLine(standings *turn.Standings) string {
	if standings == nil || len(standings.Totals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(standings.Totals))
	for _, total := range standings.Totals {
		parts = append(parts, fmt.Sprintf("%s %d", total.Name, total.Total))
	}
	return "Scores: " + strings.Join(parts, ", ")
}

// pickerMatches reports whether a picker opened on gameID at turnNumber still
// belongs to the turn being played
func pickerMatches(game *models.Game, gameID string, turnNumber int) bool {
	return game.ID == gameID && game.Turn == turnNumber && game.Status.IsInProgress()
}
