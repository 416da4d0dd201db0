package models

// Category is one of the twelve fixed Yacht scoring slots
type Category string

const (
	CategoryOnes          Category = "ones"
	CategoryTwos          Category = "twos"
	CategoryThrees        Category = "threes"
	CategoryFours         Category = "fours"
	CategoryFives         Category = "fives"
	CategorySixes         Category = "sixes"
	CategoryFourKind      Category = "four_kind"
	CategoryFullHouse     Category = "full_house"
	CategorySmallStraight Category = "small_straight"
	CategoryLargeStraight Category = "large_straight"
	CategoryYacht         Category = "yacht"
	CategoryChance        Category = "chance"
)

// categories holds every category in display order
var categories = []Category{
	CategoryOnes,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
	CategoryFourKind,
	CategoryFullHouse,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryYacht,
	CategoryChance,
}

var categoryNames = map[Category]string{
	CategoryOnes:          "Ones",
	CategoryTwos:          "Twos",
	CategoryThrees:        "Threes",
	CategoryFours:         "Fours",
	CategoryFives:         "Fives",
	CategorySixes:         "Sixes",
	CategoryFourKind:      "Four of a Kind",
	CategoryFullHouse:     "Full House",
	CategorySmallStraight: "Small Straight",
	CategoryLargeStraight: "Large Straight",
	CategoryYacht:         "Yacht",
	CategoryChance:        "Chance",
}

// AllCategories returns the twelve categories in display order.
// The returned slice is a copy and may be modified by the caller.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryCount is the number of categories on a full scorecard
const CategoryCount = 12

// IsValid reports whether c is one of the twelve categories
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human readable name of the category
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// FaceValue returns the die face counted by an upper-section category
// (ones through sixes) and 0 for every other category
func (c Category) FaceValue() int {
	switch c {
	case CategoryOnes:
		return 1
	case CategoryTwos:
		return 2
	case CategoryThrees:
		return 3
	case CategoryFours:
		return 4
	case CategoryFives:
		return 5
	case CategorySixes:
		return 6
	default:
		return 0
	}
}
