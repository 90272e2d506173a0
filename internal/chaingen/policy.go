package chaingen

import "sort"

// pickOperation draws an operation at random, weighted by the configured
// mix. The draw walks the operations in canonical order accumulating their
// weights; divide is the implicit catch-all so rounding drift in the mix
// (weights not summing exactly to 100) never leaves the draw unmatched.
func (g *Generator) pickOperation() Operation {
	total := g.cfg.Mix.Total()
	if total <= 0 {
		return OpDivide
	}

	draw := g.rng.Float64() * total
	cumulative := 0.0
	for _, op := range AllOperations() {
		cumulative += g.cfg.Mix.Weight(op)
		if draw < cumulative {
			return op
		}
	}
	return OpDivide
}

// priorityOrder returns the four operations sorted by descending mix
// weight. The sort is stable over the canonical order so equal weights
// resolve deterministically.
func (g *Generator) priorityOrder() []Operation {
	ops := AllOperations()
	sort.SliceStable(ops, func(i, j int) bool {
		return g.cfg.Mix.Weight(ops[i]) > g.cfg.Mix.Weight(ops[j])
	})
	return ops
}
