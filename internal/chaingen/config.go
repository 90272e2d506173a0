package chaingen

// Frequency is a coarse how-often hint carried by difficulty presets.
//
// Presets populate it alongside Enabled, but generation reads only the Mix
// percentages — these fields ride along for preset display and editing.
type Frequency string

const (
	FrequencyNever  Frequency = "never"
	FrequencyRare   Frequency = "rare"
	FrequencyNormal Frequency = "normal"
	FrequencyOften  Frequency = "often"
)

// OperationConfig bounds the operand magnitude considered during search for
// one operation. MinValue/MaxValue constrain the operand, not the result.
type OperationConfig struct {
	Enabled   bool
	Frequency Frequency
	MinValue  int
	MaxValue  int
}

// Mix holds the relative percentage weights for weighted-random operation
// selection. The four weights are intended to sum to 100, but selection
// stays well-defined when UI rebalancing leaves rounding drift.
type Mix struct {
	Add      float64
	Subtract float64
	Multiply float64
	Divide   float64
}

// Weight returns the mix weight for an operation.
func (m Mix) Weight(op Operation) float64 {
	switch op {
	case OpAdd:
		return m.Add
	case OpSubtract:
		return m.Subtract
	case OpMultiply:
		return m.Multiply
	case OpDivide:
		return m.Divide
	default:
		return 0
	}
}

// Total returns the sum of all four weights.
func (m Mix) Total() float64 {
	return m.Add + m.Subtract + m.Multiply + m.Divide
}

// Config aggregates everything one generation request needs. It is treated
// as immutable for the duration of the call.
type Config struct {
	// MaxResult is the upper bound for every intermediate and final value.
	MaxResult int

	// ChainLength is the target number of problems per chain.
	ChainLength int

	// ChainCount is the target number of chains per worksheet.
	ChainCount int

	// AllowNegative permits subtraction to yield intermediate values down
	// to -MaxResult. When false every result stays >= 1.
	AllowNegative bool

	Add      OperationConfig
	Subtract OperationConfig
	Multiply OperationConfig
	Divide   OperationConfig

	Mix Mix
}

// OpConfig returns the operand bounds for an operation.
func (c Config) OpConfig(op Operation) OperationConfig {
	switch op {
	case OpAdd:
		return c.Add
	case OpSubtract:
		return c.Subtract
	case OpMultiply:
		return c.Multiply
	case OpDivide:
		return c.Divide
	default:
		return OperationConfig{}
	}
}

// DefaultConfig returns a balanced mixed-operation configuration suitable
// for a first practice run.
func DefaultConfig() Config {
	return Config{
		MaxResult:   100,
		ChainLength: 8,
		ChainCount:  5,
		Add:         OperationConfig{Enabled: true, Frequency: FrequencyNormal, MinValue: 2, MaxValue: 50},
		Subtract:    OperationConfig{Enabled: true, Frequency: FrequencyNormal, MinValue: 2, MaxValue: 50},
		Multiply:    OperationConfig{Enabled: true, Frequency: FrequencyNormal, MinValue: 2, MaxValue: 10},
		Divide:      OperationConfig{Enabled: true, Frequency: FrequencyNormal, MinValue: 2, MaxValue: 10},
		Mix:         Mix{Add: 35, Subtract: 35, Multiply: 15, Divide: 15},
	}
}
