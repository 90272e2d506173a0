// Package levels holds the static difficulty preset table and its lookup
// accessors. The table is configuration data, not algorithm: every entry is
// a complete chaingen.Config a command or screen can hand straight to the
// generator.
package levels

import (
	"fmt"
	"sort"

	"github.com/abhisek/chainiz/internal/chaingen"
)

// Category groups levels by the operations they emphasize.
type Category string

const (
	CategoryAddition       Category = "addition"
	CategorySubtraction    Category = "subtraction"
	CategoryMultiplication Category = "multiplication"
	CategoryDivision       Category = "division"
	CategoryMixed          Category = "mixed"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAddition,
		CategorySubtraction,
		CategoryMultiplication,
		CategoryDivision,
		CategoryMixed,
	}
}

// DisplayName returns a human-readable label for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAddition:
		return "Addition"
	case CategorySubtraction:
		return "Subtraction"
	case CategoryMultiplication:
		return "Multiplication"
	case CategoryDivision:
		return "Division"
	case CategoryMixed:
		return "Mixed Practice"
	default:
		return string(c)
	}
}

// Level is one difficulty preset.
type Level struct {
	Number      int
	Name        string
	Category    Category
	Description string
	Config      chaingen.Config
}

var (
	byNumber   map[int]*Level
	byCategory map[Category][]Level
)

func init() {
	byNumber = make(map[int]*Level, len(table))
	byCategory = make(map[Category][]Level)
	for i := range table {
		byNumber[table[i].Number] = &table[i]
		byCategory[table[i].Category] = append(byCategory[table[i].Category], table[i])
	}
	for _, ls := range byCategory {
		sort.Slice(ls, func(i, j int) bool { return ls[i].Number < ls[j].Number })
	}
}

// All returns every level in number order.
func All() []Level {
	out := make([]Level, len(table))
	copy(out, table)
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Get returns a level by number, or an error if it does not exist.
func Get(number int) (Level, error) {
	l, ok := byNumber[number]
	if !ok {
		return Level{}, fmt.Errorf("no such level: %d", number)
	}
	return *l, nil
}

// ByCategory returns all levels in a category, in number order.
func ByCategory(c Category) []Level {
	ls := byCategory[c]
	out := make([]Level, len(ls))
	copy(out, ls)
	return out
}

// Recommended returns the next levels to attempt after the highest
// completed one, capped at three. Pass 0 when nothing is completed yet.
func Recommended(highestCompleted int) []Level {
	var out []Level
	for _, l := range All() {
		if l.Number > highestCompleted {
			out = append(out, l)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}
