package chaingen

import "time"

// Operation is one of the four arithmetic operations a chain step can apply.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// AllOperations returns the four operations in their canonical order.
// The order matters for weighted selection tie-breaking, not fairness.
func AllOperations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Symbol returns the display symbol for an operation.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// Apply computes the result of applying the operation to start and operand.
// Division is integer division; callers guarantee exact divisibility.
func (o Operation) Apply(start, operand int) int {
	switch o {
	case OpAdd:
		return start + operand
	case OpSubtract:
		return start - operand
	case OpMultiply:
		return start * operand
	case OpDivide:
		return start / operand
	default:
		return start
	}
}

// Problem is a single arithmetic step in a chain.
// Result always equals Op.Apply(StartValue, Operand); for division the
// quotient is exact. Immutable once created.
type Problem struct {
	ID         string
	StartValue int
	Op         Operation
	Operand    int
	Result     int
}

// Chain is an ordered sequence of problems where each problem's result is
// the next problem's start value. Append-only during construction, then
// frozen.
type Chain struct {
	ID             string
	StartingNumber int
	Problems       []Problem
}

// Worksheet is a set of chains generated together under one configuration.
// It is created once per generation request and never mutated afterward;
// the next request replaces it wholesale.
type Worksheet struct {
	ID        string
	Chains    []Chain
	Config    Config
	CreatedAt time.Time
}

// TotalProblems returns the number of problems across all chains.
func (w Worksheet) TotalProblems() int {
	n := 0
	for _, c := range w.Chains {
		n += len(c.Problems)
	}
	return n
}

// Short reports whether the worksheet came back with fewer chains than the
// configuration asked for. This is a soft degradation, not an error.
func (w Worksheet) Short() bool {
	return len(w.Chains) < w.Config.ChainCount
}
