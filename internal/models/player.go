package models

// Player is a seat at the table
type Player struct {
	// Name is the display name entered when the game was created
	Name string

	// Scores holds the recorded score per category; a category is written at most once
	Scores map[Category]int

	// AbilityUsed is set once the player has used the weather ability this game
	AbilityUsed bool

	// PendingBonus is added to the next recorded score and then cleared
	PendingBonus int
}

// NewPlayer creates a player with an empty scorecard
func NewPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Scores: make(map[Category]int, CategoryCount),
	}
}

// HasRecorded reports whether the category already holds a score
func (p *Player) HasRecorded(category Category) bool {
	_, ok := p.Scores[category]
	return ok
}

// Total sums every recorded score
func (p *Player) Total() int {
	total := 0
	for _, score := range p.Scores {
		total += score
	}
	return total
}

// IsComplete reports whether all twelve categories are recorded
func (p *Player) IsComplete() bool {
	return len(p.Scores) == CategoryCount
}

// Reset clears the scorecard, ability flag and pending bonus
func (p *Player) Reset() {
	p.Scores = make(map[Category]int, CategoryCount)
	p.AbilityUsed = false
	p.PendingBonus = 0
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	scores := make(map[Category]int, len(p.Scores))
	for c, v := range p.Scores {
		scores[c] = v
	}
	return &Player{
		Name:         p.Name,
		Scores:       scores,
		AbilityUsed:  p.AbilityUsed,
		PendingBonus: p.PendingBonus,
	}
}
