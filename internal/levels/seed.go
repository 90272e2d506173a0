package levels

import "github.com/abhisek/chainiz/internal/chaingen"

// preset builds a level config. ChainCount is fixed at 5 across the table;
// difficulty is expressed through bounds, length, and the operation mix.
func preset(maxResult, chainLength int, negative bool, mix chaingen.Mix, add, sub, mul, div [2]int) chaingen.Config {
	return chaingen.Config{
		MaxResult:     maxResult,
		ChainLength:   chainLength,
		ChainCount:    5,
		AllowNegative: negative,
		Add:           opPreset(mix.Add, add),
		Subtract:      opPreset(mix.Subtract, sub),
		Multiply:      opPreset(mix.Multiply, mul),
		Divide:        opPreset(mix.Divide, div),
		Mix:           mix,
	}
}

func opPreset(weight float64, bounds [2]int) chaingen.OperationConfig {
	return chaingen.OperationConfig{
		Enabled:   weight > 0,
		Frequency: frequencyFor(weight),
		MinValue:  bounds[0],
		MaxValue:  bounds[1],
	}
}

func frequencyFor(weight float64) chaingen.Frequency {
	switch {
	case weight <= 0:
		return chaingen.FrequencyNever
	case weight < 15:
		return chaingen.FrequencyRare
	case weight < 40:
		return chaingen.FrequencyNormal
	default:
		return chaingen.FrequencyOften
	}
}

// table is the full 39-level progression. Numbers are globally unique and
// ordered easiest-first within each category.
var table = []Level{
	// Addition (1-8)
	{1, "First Sums", CategoryAddition, "Tiny additions up to 20.",
		preset(20, 5, false, chaingen.Mix{Add: 100}, [2]int{1, 9}, [2]int{1, 9}, [2]int{2, 5}, [2]int{2, 5})},
	{2, "Crossing Ten", CategoryAddition, "Single-digit sums that cross ten.",
		preset(30, 6, false, chaingen.Mix{Add: 100}, [2]int{3, 9}, [2]int{1, 9}, [2]int{2, 5}, [2]int{2, 5})},
	{3, "Teens and Twenties", CategoryAddition, "Adding up to 50.",
		preset(50, 6, false, chaingen.Mix{Add: 100}, [2]int{4, 19}, [2]int{2, 9}, [2]int{2, 6}, [2]int{2, 6})},
	{4, "Sums to 100", CategoryAddition, "Two-digit addition up to 100.",
		preset(100, 7, false, chaingen.Mix{Add: 100}, [2]int{5, 39}, [2]int{2, 19}, [2]int{2, 8}, [2]int{2, 8})},
	{5, "Add and Check", CategoryAddition, "Addition with occasional take-backs.",
		preset(100, 8, false, chaingen.Mix{Add: 80, Subtract: 20}, [2]int{5, 49}, [2]int{2, 19}, [2]int{2, 8}, [2]int{2, 8})},
	{6, "Bigger Steps", CategoryAddition, "Larger addends, results to 200.",
		preset(200, 8, false, chaingen.Mix{Add: 80, Subtract: 20}, [2]int{11, 89}, [2]int{5, 39}, [2]int{2, 9}, [2]int{2, 9})},
	{7, "Three-Digit Climb", CategoryAddition, "Climbing toward 500.",
		preset(500, 9, false, chaingen.Mix{Add: 75, Subtract: 25}, [2]int{25, 199}, [2]int{10, 99}, [2]int{2, 9}, [2]int{2, 9})},
	{8, "Summit Sums", CategoryAddition, "Long chains of big additions to 1000.",
		preset(1000, 10, false, chaingen.Mix{Add: 75, Subtract: 25}, [2]int{50, 399}, [2]int{20, 199}, [2]int{2, 9}, [2]int{2, 9})},

	// Subtraction (9-16)
	{9, "First Differences", CategorySubtraction, "Tiny subtractions, no negatives.",
		preset(20, 5, false, chaingen.Mix{Add: 30, Subtract: 70}, [2]int{1, 9}, [2]int{1, 9}, [2]int{2, 5}, [2]int{2, 5})},
	{10, "Borrowing Basics", CategorySubtraction, "Crossing ten downward.",
		preset(40, 6, false, chaingen.Mix{Add: 30, Subtract: 70}, [2]int{2, 15}, [2]int{3, 15}, [2]int{2, 5}, [2]int{2, 5})},
	{11, "Down from Fifty", CategorySubtraction, "Two-digit differences under 50.",
		preset(50, 6, false, chaingen.Mix{Add: 25, Subtract: 75}, [2]int{2, 19}, [2]int{4, 24}, [2]int{2, 6}, [2]int{2, 6})},
	{12, "Down from a Hundred", CategorySubtraction, "Two-digit differences under 100.",
		preset(100, 7, false, chaingen.Mix{Add: 25, Subtract: 75}, [2]int{3, 29}, [2]int{5, 49}, [2]int{2, 8}, [2]int{2, 8})},
	{13, "Below Zero", CategorySubtraction, "First negative results allowed.",
		preset(50, 7, true, chaingen.Mix{Add: 35, Subtract: 65}, [2]int{2, 19}, [2]int{4, 29}, [2]int{2, 6}, [2]int{2, 6})},
	{14, "Deep Freeze", CategorySubtraction, "Negatives down to -100.",
		preset(100, 8, true, chaingen.Mix{Add: 35, Subtract: 65}, [2]int{3, 39}, [2]int{5, 59}, [2]int{2, 8}, [2]int{2, 8})},
	{15, "Long Way Down", CategorySubtraction, "Big drops, results to 500.",
		preset(500, 9, false, chaingen.Mix{Add: 30, Subtract: 70}, [2]int{10, 99}, [2]int{15, 199}, [2]int{2, 9}, [2]int{2, 9})},
	{16, "Freefall", CategorySubtraction, "Large signed chains to ±500.",
		preset(500, 10, true, chaingen.Mix{Add: 30, Subtract: 70}, [2]int{10, 149}, [2]int{20, 249}, [2]int{2, 9}, [2]int{2, 9})},

	// Multiplication (17-24)
	{17, "Double Up", CategoryMultiplication, "Times 2 to 5 with small helpers.",
		preset(50, 5, false, chaingen.Mix{Add: 30, Subtract: 10, Multiply: 60}, [2]int{1, 9}, [2]int{1, 9}, [2]int{2, 5}, [2]int{2, 5})},
	{18, "Times Tables", CategoryMultiplication, "The 2-9 tables under 100.",
		preset(100, 6, false, chaingen.Mix{Add: 25, Subtract: 10, Multiply: 65}, [2]int{2, 15}, [2]int{2, 15}, [2]int{2, 9}, [2]int{2, 9})},
	{19, "Table Mastery", CategoryMultiplication, "Full tables with longer chains.",
		preset(144, 7, false, chaingen.Mix{Add: 20, Subtract: 15, Multiply: 65}, [2]int{2, 19}, [2]int{2, 19}, [2]int{2, 12}, [2]int{2, 12})},
	{20, "Beyond the Tables", CategoryMultiplication, "Products to 200.",
		preset(200, 7, false, chaingen.Mix{Add: 20, Subtract: 15, Multiply: 65}, [2]int{3, 29}, [2]int{3, 29}, [2]int{2, 12}, [2]int{2, 12})},
	{21, "Factor Focus", CategoryMultiplication, "Multiplying with occasional division.",
		preset(200, 8, false, chaingen.Mix{Add: 15, Subtract: 10, Multiply: 55, Divide: 20}, [2]int{3, 29}, [2]int{3, 29}, [2]int{2, 12}, [2]int{2, 12})},
	{22, "Big Products", CategoryMultiplication, "Products to 500.",
		preset(500, 8, false, chaingen.Mix{Add: 15, Subtract: 10, Multiply: 60, Divide: 15}, [2]int{5, 49}, [2]int{5, 49}, [2]int{2, 15}, [2]int{2, 15})},
	{23, "Thousand Club", CategoryMultiplication, "Products to 1000.",
		preset(1000, 9, false, chaingen.Mix{Add: 15, Subtract: 10, Multiply: 60, Divide: 15}, [2]int{10, 99}, [2]int{10, 99}, [2]int{2, 15}, [2]int{2, 15})},
	{24, "Multiplier Marathon", CategoryMultiplication, "Long multiplication-heavy chains.",
		preset(1000, 10, false, chaingen.Mix{Add: 10, Subtract: 10, Multiply: 60, Divide: 20}, [2]int{10, 99}, [2]int{10, 99}, [2]int{2, 20}, [2]int{2, 20})},

	// Division (25-31)
	{25, "Fair Shares", CategoryDivision, "Halving and thirds under 50.",
		preset(50, 5, false, chaingen.Mix{Add: 30, Subtract: 10, Multiply: 10, Divide: 50}, [2]int{1, 9}, [2]int{1, 9}, [2]int{2, 5}, [2]int{2, 3})},
	{26, "Clean Splits", CategoryDivision, "Dividing by 2-5 under 100.",
		preset(100, 6, false, chaingen.Mix{Add: 25, Subtract: 10, Multiply: 10, Divide: 55}, [2]int{2, 15}, [2]int{2, 15}, [2]int{2, 6}, [2]int{2, 5})},
	{27, "Table Splits", CategoryDivision, "Division across the full tables.",
		preset(144, 7, false, chaingen.Mix{Add: 20, Subtract: 10, Multiply: 10, Divide: 60}, [2]int{2, 19}, [2]int{2, 19}, [2]int{2, 9}, [2]int{2, 12})},
	{28, "Divide and Conquer", CategoryDivision, "Division-heavy chains to 200.",
		preset(200, 7, false, chaingen.Mix{Add: 15, Subtract: 10, Multiply: 15, Divide: 60}, [2]int{3, 29}, [2]int{3, 29}, [2]int{2, 10}, [2]int{2, 12})},
	{29, "Quotient Quest", CategoryDivision, "Mixed multiply/divide to 500.",
		preset(500, 8, false, chaingen.Mix{Add: 10, Subtract: 10, Multiply: 25, Divide: 55}, [2]int{5, 49}, [2]int{5, 49}, [2]int{2, 12}, [2]int{2, 15})},
	{30, "Long Division Lane", CategoryDivision, "Bigger dividends to 1000.",
		preset(1000, 8, false, chaingen.Mix{Add: 10, Subtract: 10, Multiply: 25, Divide: 55}, [2]int{10, 99}, [2]int{10, 99}, [2]int{2, 15}, [2]int{2, 20})},
	{31, "Divisor Drill", CategoryDivision, "Long division-dominated chains.",
		preset(1000, 10, false, chaingen.Mix{Add: 10, Subtract: 5, Multiply: 25, Divide: 60}, [2]int{10, 99}, [2]int{10, 99}, [2]int{2, 15}, [2]int{2, 25})},

	// Mixed (32-39)
	{32, "All Together Now", CategoryMixed, "Gentle four-operation mix under 50.",
		preset(50, 6, false, chaingen.Mix{Add: 35, Subtract: 35, Multiply: 15, Divide: 15}, [2]int{2, 15}, [2]int{2, 15}, [2]int{2, 5}, [2]int{2, 5})},
	{33, "Everyday Mix", CategoryMixed, "Balanced mix under 100.",
		preset(100, 7, false, chaingen.Mix{Add: 30, Subtract: 30, Multiply: 20, Divide: 20}, [2]int{2, 29}, [2]int{2, 29}, [2]int{2, 9}, [2]int{2, 9})},
	{34, "Even Split", CategoryMixed, "All four operations equally weighted.",
		preset(100, 8, false, chaingen.Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25}, [2]int{2, 29}, [2]int{2, 29}, [2]int{2, 10}, [2]int{2, 10})},
	{35, "Signed Mix", CategoryMixed, "Balanced mix with negatives allowed.",
		preset(100, 8, true, chaingen.Mix{Add: 30, Subtract: 30, Multiply: 20, Divide: 20}, [2]int{3, 39}, [2]int{3, 39}, [2]int{2, 9}, [2]int{2, 9})},
	{36, "Two Hundred Medley", CategoryMixed, "Balanced mix to 200.",
		preset(200, 9, false, chaingen.Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25}, [2]int{3, 49}, [2]int{3, 49}, [2]int{2, 12}, [2]int{2, 12})},
	{37, "Five Hundred Medley", CategoryMixed, "Balanced mix to 500.",
		preset(500, 9, false, chaingen.Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25}, [2]int{5, 99}, [2]int{5, 99}, [2]int{2, 15}, [2]int{2, 15})},
	{38, "Grand Medley", CategoryMixed, "Balanced mix to 1000.",
		preset(1000, 10, false, chaingen.Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25}, [2]int{10, 199}, [2]int{10, 199}, [2]int{2, 20}, [2]int{2, 20})},
	{39, "Master Chain", CategoryMixed, "Everything at once, signed, to ±1000.",
		preset(1000, 12, true, chaingen.Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25}, [2]int{10, 249}, [2]int{10, 249}, [2]int{2, 20}, [2]int{2, 25})},
}
