package chaingen

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// maxProblemAttempts bounds the weighted-random tier of the fallback
	// ladder for a single chain step.
	maxProblemAttempts = 20

	// minChainProblems is the shortest chain worth keeping. A chain that
	// stalls before reaching it fails outright instead of being returned
	// short.
	minChainProblems = 3

	// chainAttemptFactor scales the worksheet retry budget: up to
	// ChainCount*chainAttemptFactor chain attempts per worksheet.
	chainAttemptFactor = 3
)

// compositeStarts are small highly-composite starting numbers favored for
// multiplication/division-heavy mixes, where clean divisibility makes or
// breaks perceived problem quality.
var compositeStarts = []int{12, 18, 20, 24, 30, 36, 40, 48, 60, 72, 80, 90, 100}

// Generator produces problem chains and worksheets for one configuration.
//
// A Generator is stateless across calls apart from its random source and is
// not safe for concurrent use; parallel callers should create independent
// Generators.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator. A nil rng means a time-seeded source; tests pass
// a seeded one for deterministic output.
func New(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{cfg: cfg, rng: rng}
}

// Config returns the configuration the Generator was created with.
func (g *Generator) Config() Config {
	return g.cfg
}

// nextProblem produces one valid problem continuing from current, trying
// three tiers in order:
//
//  1. bounded weighted-random draws against the configured mix
//  2. every operation once, in descending mix-weight order
//  3. add then subtract with operand bounds narrowed to [1, 5]
//
// The boolean is false only when all three tiers fail — e.g. a current
// value of 1 under a divide-heavy mix with no valid small divisors.
func (g *Generator) nextProblem(current int) (Problem, bool) {
	for i := 0; i < maxProblemAttempts; i++ {
		op := g.pickOperation()
		if p, ok := g.buildProblem(current, op, g.cfg.OpConfig(op)); ok {
			return p, true
		}
	}

	for _, op := range g.priorityOrder() {
		if p, ok := g.buildProblem(current, op, g.cfg.OpConfig(op)); ok {
			return p, true
		}
	}

	// Last resort: tiny additions and subtractions almost always fit.
	narrowed := OperationConfig{MinValue: 1, MaxValue: 5}
	for _, op := range []Operation{OpAdd, OpSubtract} {
		if p, ok := g.buildProblem(current, op, narrowed); ok {
			return p, true
		}
	}

	return Problem{}, false
}

// startingValue picks the first number of a chain. For mixes that are at
// least half multiplication/division it biases toward small
// highly-composite numbers; otherwise it draws from a mid-range window
// scaled off MaxResult. A heuristic for problem quality, never correctness.
func (g *Generator) startingValue() int {
	if g.cfg.Mix.Multiply+g.cfg.Mix.Divide >= 50 {
		var candidates []int
		for _, n := range compositeStarts {
			if n <= g.cfg.MaxResult/2 {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) > 0 {
			return candidates[g.rng.Intn(len(candidates))]
		}
		return g.uniformStart(10, min(50, g.cfg.MaxResult/3))
	}
	return g.uniformStart(max(5, g.cfg.MaxResult/10), min(g.cfg.MaxResult*4/10, 100))
}

// uniformStart draws from [lo, hi], clamping an inverted window (tiny
// MaxResult values) down to a constant instead of failing.
func (g *Generator) uniformStart(lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// GenerateChain builds one chain of up to ChainLength problems, feeding
// each result forward as the next start value. If a step stalls after at
// least minChainProblems problems the partial chain is returned as a
// success; stalling earlier returns nil.
func (g *Generator) GenerateChain() *Chain {
	start := g.startingValue()
	current := start

	problems := make([]Problem, 0, g.cfg.ChainLength)
	for i := 0; i < g.cfg.ChainLength; i++ {
		p, ok := g.nextProblem(current)
		if !ok {
			if len(problems) >= minChainProblems {
				break
			}
			return nil
		}
		problems = append(problems, p)
		current = p.Result
	}

	if len(problems) < minChainProblems {
		return nil
	}
	return &Chain{
		ID:             uuid.New().String(),
		StartingNumber: start,
		Problems:       problems,
	}
}

// GenerateWorksheet builds up to ChainCount chains, retrying failed chain
// attempts within a budget of ChainCount*chainAttemptFactor. Exhausting the
// budget yields a worksheet with fewer chains than requested — valid
// output, observable via Short().
func (g *Generator) GenerateWorksheet() Worksheet {
	budget := g.cfg.ChainCount * chainAttemptFactor

	chains := make([]Chain, 0, g.cfg.ChainCount)
	for attempt := 0; attempt < budget && len(chains) < g.cfg.ChainCount; attempt++ {
		c := g.GenerateChain()
		if c == nil || len(c.Problems) < minChainProblems {
			continue
		}
		chains = append(chains, *c)
	}

	return Worksheet{
		ID:        uuid.New().String(),
		Chains:    chains,
		Config:    g.cfg,
		CreatedAt: time.Now(),
	}
}
