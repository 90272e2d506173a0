package chaingen

import "github.com/google/uuid"

// buildProblem constructs one validated problem continuing from current.
// Returns false when no valid operand exists or the computed result falls
// outside bounds; retry policy lives with the caller.
func (g *Generator) buildProblem(current int, op Operation, oc OperationConfig) (Problem, bool) {
	operand, ok := g.searchOperand(op, current, oc)
	if !ok {
		return Problem{}, false
	}

	result := op.Apply(current, operand)
	if !g.resultValid(result) {
		return Problem{}, false
	}
	// Re-check exactness even though the divisor search already enforced it.
	if op == OpDivide && current%operand != 0 {
		return Problem{}, false
	}

	return Problem{
		ID:         uuid.New().String(),
		StartValue: current,
		Op:         op,
		Operand:    operand,
		Result:     result,
	}, true
}

// resultValid checks the intermediate-value bounds: [1, MaxResult], widened
// to [-MaxResult, MaxResult] when negative results are allowed.
func (g *Generator) resultValid(result int) bool {
	if result > g.cfg.MaxResult {
		return false
	}
	if g.cfg.AllowNegative {
		return result >= -g.cfg.MaxResult
	}
	return result >= 1
}
