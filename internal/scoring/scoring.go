// Package scoring implements the fixed Yacht scoring rules.
package scoring

import (
	"github.com/KirkDiggler/weatheryacht/internal/models"
)

const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YachtScore         = 50
)

var smallStraights = [][]int{
	{1, 2, 3, 4},
	{2, 3, 4, 5},
	{3, 4, 5, 6},
}

// Score returns the points the dice are worth in the given category.
// Dice values are expected in [1,6]; unknown categories score 0.
func Score(category models.Category, dice [models.DiceCount]int) int {
	var counts [7]int
	total := 0
	for _, v := range dice {
		if v >= 1 && v <= 6 {
			counts[v]++
		}
		total += v
	}

	if face := category.FaceValue(); face != 0 {
		return face * counts[face]
	}

	switch category {
	case models.CategoryFourKind:
		for face := 1; face <= 6; face++ {
			if counts[face] >= 4 {
				return total
			}
		}
		return 0
	case models.CategoryFullHouse:
		hasThree, hasTwo := false, false
		for face := 1; face <= 6; face++ {
			switch counts[face] {
			case 3:
				hasThree = true
			case 2:
				hasTwo = true
			case 0:
			default:
				return 0
			}
		}
		if hasThree && hasTwo {
			return FullHouseScore
		}
		return 0
	case models.CategorySmallStraight:
		for _, run := range smallStraights {
			if containsAll(counts, run) {
				return SmallStraightScore
			}
		}
		return 0
	case models.CategoryLargeStraight:
		// five distinct faces that skip either 1 or 6
		distinct := 0
		for face := 1; face <= 6; face++ {
			if counts[face] > 0 {
				distinct++
			}
		}
		if distinct == 5 && (counts[1] == 0 || counts[6] == 0) {
			return LargeStraightScore
		}
		return 0
	case models.CategoryYacht:
		for face := 1; face <= 6; face++ {
			if counts[face] == models.DiceCount {
				return YachtScore
			}
		}
		return 0
	case models.CategoryChance:
		return total
	}
	return 0
}

func containsAll(counts [7]int, faces []int) bool {
	for _, face := range faces {
		if counts[face] == 0 {
			return false
		}
	}
	return true
}

// PreviewEntry is the score a category would receive if recorded now
type PreviewEntry struct {
	Category models.Category

	// Base is the rule score of the dice
	Base int

	// Bonus is the pending bonus that would be added
	Bonus int

	// Total is Base plus Bonus
	Total int
}

// Preview returns the score every unrecorded category of the current player
// would receive with the current dice. It returns nil until the dice are rolled.
func Preview(game *models.Game) []PreviewEntry {
	if game == nil || !game.HasRolled() {
		return nil
	}
	player := game.CurrentPlayer()
	if player == nil {
		return nil
	}

	var entries []PreviewEntry
	for _, c := range models.AllCategories() {
		if player.HasRecorded(c) {
			continue
		}
		base := Score(c, game.Dice)
		entries = append(entries, PreviewEntry{
			Category: c,
			Base:     base,
			Bonus:    player.PendingBonus,
			Total:    base + player.PendingBonus,
		})
	}
	return entries
}
