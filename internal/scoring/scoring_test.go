package scoring

import (
	"testing"

	"github.com/KirkDiggler/weatheryacht/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dice = [models.DiceCount]int

// forEachHand calls fn for all 6^5 possible hands
func forEachHand(fn func(d dice)) {
	var d dice
	var walk func(pos int)
	walk = func(pos int) {
		if pos == models.DiceCount {
			fn(d)
			return
		}
		for v := 1; v <= 6; v++ {
			d[pos] = v
			walk(pos + 1)
		}
	}
	walk(0)
}

func sum(d dice) int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		dice     dice
		want     int
	}{
		{"ones counts faces", models.CategoryOnes, dice{1, 1, 2, 3, 1}, 3},
		{"twos", models.CategoryTwos, dice{2, 2, 2, 3, 1}, 6},
		{"threes none", models.CategoryThrees, dice{1, 2, 4, 5, 6}, 0},
		{"fours", models.CategoryFours, dice{4, 4, 1, 1, 1}, 8},
		{"fives", models.CategoryFives, dice{5, 5, 5, 5, 5}, 25},
		{"sixes", models.CategorySixes, dice{6, 1, 6, 2, 6}, 18},
		{"four of a kind", models.CategoryFourKind, dice{3, 3, 3, 3, 6}, 18},
		{"four of a kind with yacht", models.CategoryFourKind, dice{2, 2, 2, 2, 2}, 10},
		{"four of a kind missing", models.CategoryFourKind, dice{3, 3, 3, 6, 6}, 0},
		{"full house", models.CategoryFullHouse, dice{2, 2, 2, 3, 3}, 25},
		{"full house shuffled", models.CategoryFullHouse, dice{5, 1, 5, 1, 5}, 25},
		{"two pair is not a full house", models.CategoryFullHouse, dice{1, 1, 2, 2, 3}, 0},
		{"yacht is not a full house", models.CategoryFullHouse, dice{4, 4, 4, 4, 4}, 0},
		{"small straight low", models.CategorySmallStraight, dice{1, 2, 3, 4, 6}, 30},
		{"small straight with pair", models.CategorySmallStraight, dice{3, 4, 5, 6, 3}, 30},
		{"small straight middle", models.CategorySmallStraight, dice{5, 4, 2, 3, 2}, 30},
		{"small straight missing", models.CategorySmallStraight, dice{1, 2, 3, 5, 6}, 0},
		{"large straight low", models.CategoryLargeStraight, dice{5, 4, 3, 2, 1}, 40},
		{"large straight high", models.CategoryLargeStraight, dice{2, 3, 4, 5, 6}, 40},
		{"large straight broken", models.CategoryLargeStraight, dice{1, 2, 3, 4, 6}, 0},
		{"yacht", models.CategoryYacht, dice{6, 6, 6, 6, 6}, 50},
		{"not a yacht", models.CategoryYacht, dice{6, 6, 6, 6, 5}, 0},
		{"chance", models.CategoryChance, dice{1, 3, 5, 6, 2}, 17},
		{"unknown category", models.Category("bogus"), dice{1, 1, 1, 1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.category, tt.dice))
		})
	}
}

func TestScore_NeverNegative(t *testing.T) {
	forEachHand(func(d dice) {
		for _, c := range models.AllCategories() {
			if got := Score(c, d); got < 0 {
				t.Fatalf("Score(%s, %v) = %d, want >= 0", c, d, got)
			}
		}
	})
}

func TestScore_YachtIffAllEqual(t *testing.T) {
	forEachHand(func(d dice) {
		allEqual := d[0] == d[1] && d[1] == d[2] && d[2] == d[3] && d[3] == d[4]
		got := Score(models.CategoryYacht, d)
		if allEqual && got != YachtScore {
			t.Fatalf("Score(yacht, %v) = %d, want %d", d, got, YachtScore)
		}
		if !allEqual && got != 0 {
			t.Fatalf("Score(yacht, %v) = %d, want 0", d, got)
		}
	})
}

func TestScore_ChanceIsSum(t *testing.T) {
	forEachHand(func(d dice) {
		if got := Score(models.CategoryChance, d); got != sum(d) {
			t.Fatalf("Score(chance, %v) = %d, want %d", d, got, sum(d))
		}
	})
}

func TestScore_UpperSectionBounded(t *testing.T) {
	forEachHand(func(d dice) {
		for _, c := range models.AllCategories()[:6] {
			got := Score(c, d)
			if got%c.FaceValue() != 0 || got > c.FaceValue()*models.DiceCount {
				t.Fatalf("Score(%s, %v) = %d out of range", c, d, got)
			}
		}
	})
}

func TestPreview_NotRolled(t *testing.T) {
	game := &models.Game{
		Players: []*models.Player{models.NewPlayer("Ann")},
	}
	assert.Nil(t, Preview(game))
	assert.Nil(t, Preview(nil))
}

func TestPreview_SkipsRecordedAndAddsBonus(t *testing.T) {
	player := models.NewPlayer("Ann")
	player.Scores[models.CategoryChance] = 20
	player.PendingBonus = 5
	game := &models.Game{
		Players: []*models.Player{player},
		Dice:    dice{2, 2, 2, 3, 3},
	}

	entries := Preview(game)
	require.Len(t, entries, models.CategoryCount-1)

	byCategory := make(map[models.Category]PreviewEntry, len(entries))
	for _, e := range entries {
		byCategory[e.Category] = e
	}
	assert.NotContains(t, byCategory, models.CategoryChance)

	fullHouse := byCategory[models.CategoryFullHouse]
	assert.Equal(t, 25, fullHouse.Base)
	assert.Equal(t, 5, fullHouse.Bonus)
	assert.Equal(t, 30, fullHouse.Total)

	assert.Equal(t, models.CategoryOnes, entries[0].Category)
}
