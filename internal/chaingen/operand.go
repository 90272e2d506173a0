package chaingen

// searchOperand finds an operand for applying op to current such that the
// result stays within the configured bounds, and for division divides
// evenly. The boolean is false when no valid operand exists — an expected
// outcome the caller handles, not an error.
//
// Bounds come in as a parameter rather than off g.cfg so the fallback
// ladder can retry with narrowed operand ranges.
func (g *Generator) searchOperand(op Operation, current int, oc OperationConfig) (int, bool) {
	switch op {
	case OpAdd:
		hi := min(oc.MaxValue, g.cfg.MaxResult-current)
		return g.randBetween(oc.MinValue, hi)

	case OpSubtract:
		minResult := 1
		if g.cfg.AllowNegative {
			minResult = -g.cfg.MaxResult
		}
		hi := min(oc.MaxValue, current-minResult)
		return g.randBetween(oc.MinValue, hi)

	case OpMultiply:
		if current == 0 {
			// Anything times zero stays zero and in bounds.
			return g.randBetween(oc.MinValue, oc.MaxValue)
		}
		hi := min(oc.MaxValue, g.cfg.MaxResult/current)
		return g.randBetween(oc.MinValue, hi)

	case OpDivide:
		return g.searchDivisor(current, oc)

	default:
		return 0, false
	}
}

// searchDivisor enumerates every divisor of current within the operand
// bounds whose quotient lands in [1, MaxResult] and picks one uniformly.
// Divisibility is not interval-expressible, so unlike the other three
// operations this one cannot draw from a closed-form range.
func (g *Generator) searchDivisor(current int, oc OperationConfig) (int, bool) {
	if current <= 0 {
		// Zero and negative dividends are never divided.
		return 0, false
	}

	lo := max(oc.MinValue, 1)
	hi := min(oc.MaxValue, current)

	var divisors []int
	for d := lo; d <= hi; d++ {
		if current%d != 0 {
			continue
		}
		q := current / d
		if q >= 1 && q <= g.cfg.MaxResult {
			divisors = append(divisors, d)
		}
	}
	if len(divisors) == 0 {
		return 0, false
	}
	return divisors[g.rng.Intn(len(divisors))], true
}

// randBetween draws uniformly from [lo, hi], failing on an empty range.
func (g *Generator) randBetween(lo, hi int) (int, bool) {
	if hi < lo {
		return 0, false
	}
	return lo + g.rng.Intn(hi-lo+1), true
}
