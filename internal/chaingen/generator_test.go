package chaingen

import (
	"math/rand"
	"testing"
)

func TestGenerateChain_Continuity(t *testing.T) {
	g := newTestGen(DefaultConfig(), 1)

	for i := 0; i < 25; i++ {
		c := g.GenerateChain()
		if c == nil {
			t.Fatal("expected a chain under the default config")
		}
		if c.Problems[0].StartValue != c.StartingNumber {
			t.Fatalf("first problem starts at %d, chain starts at %d",
				c.Problems[0].StartValue, c.StartingNumber)
		}
		for j := 1; j < len(c.Problems); j++ {
			if c.Problems[j].StartValue != c.Problems[j-1].Result {
				t.Fatalf("problem %d starts at %d, previous result was %d",
					j, c.Problems[j].StartValue, c.Problems[j-1].Result)
			}
		}
	}
}

func TestGenerateChain_ResultsAndArithmetic(t *testing.T) {
	g := newTestGen(DefaultConfig(), 2)

	for i := 0; i < 25; i++ {
		c := g.GenerateChain()
		if c == nil {
			t.Fatal("expected a chain under the default config")
		}
		for _, p := range c.Problems {
			if p.Result != p.Op.Apply(p.StartValue, p.Operand) {
				t.Fatalf("%d %s %d recorded result %d", p.StartValue, p.Op, p.Operand, p.Result)
			}
			if p.Result < 1 || p.Result > 100 {
				t.Fatalf("result %d outside [1,100]", p.Result)
			}
			if p.Op == OpDivide && p.StartValue%p.Operand != 0 {
				t.Fatalf("division %d/%d has a remainder", p.StartValue, p.Operand)
			}
		}
	}
}

func TestGenerateChain_NegativeBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowNegative = true
	cfg.Mix = Mix{Add: 30, Subtract: 70}
	g := newTestGen(cfg, 3)

	sawNegative := false
	for i := 0; i < 50; i++ {
		c := g.GenerateChain()
		if c == nil {
			continue
		}
		for _, p := range c.Problems {
			if p.Result < -100 || p.Result > 100 {
				t.Fatalf("result %d outside [-100,100]", p.Result)
			}
			if p.Result < 0 {
				sawNegative = true
			}
		}
	}
	if !sawNegative {
		t.Error("subtract-heavy signed config never produced a negative result")
	}
}

func TestGenerateChain_ImpossibleConfigReturnsNil(t *testing.T) {
	// MaxResult 1 leaves no room to move: addition overshoots, subtraction
	// cannot land on 1 from the heuristic start, multiplication and
	// division have no in-range operands.
	cfg := Config{
		MaxResult:   1,
		ChainLength: 8,
		ChainCount:  5,
		Add:         OperationConfig{MinValue: 1, MaxValue: 5},
		Subtract:    OperationConfig{MinValue: 1, MaxValue: 5},
		Multiply:    OperationConfig{MinValue: 2, MaxValue: 4},
		Divide:      OperationConfig{MinValue: 2, MaxValue: 4},
		Mix:         Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25},
	}
	g := newTestGen(cfg, 4)

	for i := 0; i < 10; i++ {
		if c := g.GenerateChain(); c != nil {
			t.Fatalf("expected nil chain, got %d problems", len(c.Problems))
		}
	}
}

func TestGenerateChain_NeverShorterThanMinimum(t *testing.T) {
	g := newTestGen(DefaultConfig(), 5)
	for i := 0; i < 50; i++ {
		if c := g.GenerateChain(); c != nil && len(c.Problems) < minChainProblems {
			t.Fatalf("chain returned with %d problems", len(c.Problems))
		}
	}
}

func TestGenerateChain_FallbackRescuesDivideHeavyMix(t *testing.T) {
	// A pure-divide mix strands the chain on prime or small values; the
	// ladder's narrowed add/subtract tier must keep it moving.
	cfg := DefaultConfig()
	cfg.Mix = Mix{Divide: 100}
	g := newTestGen(cfg, 6)

	made := 0
	for i := 0; i < 10; i++ {
		c := g.GenerateChain()
		if c == nil {
			continue
		}
		made++
		for _, p := range c.Problems {
			if p.Op == OpDivide {
				if p.StartValue%p.Operand != 0 {
					t.Fatalf("division %d/%d has a remainder", p.StartValue, p.Operand)
				}
				if p.Result < 1 || p.Result > cfg.MaxResult {
					t.Fatalf("quotient %d out of range", p.Result)
				}
			}
		}
	}
	if made == 0 {
		t.Fatal("divide-only mix never produced a chain")
	}
}

func TestGenerateChain_SmallBoundEdgeCase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResult = 20
	cfg.Mix = Mix{Add: 50, Subtract: 50}
	cfg.Add = OperationConfig{MinValue: 1, MaxValue: 10}
	cfg.Subtract = OperationConfig{MinValue: 1, MaxValue: 10}
	g := newTestGen(cfg, 7)

	for i := 0; i < 10; i++ {
		c := g.GenerateChain()
		if c == nil {
			t.Fatal("expected chain generation to succeed at MaxResult 20")
		}
		for _, p := range c.Problems {
			if p.Result < 1 || p.Result > 20 {
				t.Fatalf("result %d outside [1,20]", p.Result)
			}
		}
	}
}

func TestGenerateWorksheet_Counts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChainCount = 4
	g := newTestGen(cfg, 8)

	ws := g.GenerateWorksheet()
	if len(ws.Chains) > cfg.ChainCount {
		t.Fatalf("worksheet has %d chains, budget was %d", len(ws.Chains), cfg.ChainCount)
	}
	for _, c := range ws.Chains {
		if len(c.Problems) < minChainProblems {
			t.Fatalf("accepted chain with %d problems", len(c.Problems))
		}
	}
	total := 0
	for _, c := range ws.Chains {
		total += len(c.Problems)
	}
	if ws.TotalProblems() != total {
		t.Errorf("TotalProblems() = %d, want %d", ws.TotalProblems(), total)
	}
}

func TestGenerateWorksheet_DegradesWithoutError(t *testing.T) {
	cfg := Config{
		MaxResult:   1,
		ChainLength: 8,
		ChainCount:  5,
		Add:         OperationConfig{MinValue: 1, MaxValue: 5},
		Subtract:    OperationConfig{MinValue: 1, MaxValue: 5},
		Multiply:    OperationConfig{MinValue: 2, MaxValue: 4},
		Divide:      OperationConfig{MinValue: 2, MaxValue: 4},
		Mix:         Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25},
	}
	g := newTestGen(cfg, 9)

	ws := g.GenerateWorksheet()
	if len(ws.Chains) != 0 {
		t.Fatalf("expected zero chains, got %d", len(ws.Chains))
	}
	if !ws.Short() {
		t.Error("degraded worksheet should report Short()")
	}
}

func TestGenerateWorksheet_IDUniqueness(t *testing.T) {
	g := newTestGen(DefaultConfig(), 10)
	ws := g.GenerateWorksheet()

	chainIDs := map[string]bool{}
	problemIDs := map[string]bool{}
	for _, c := range ws.Chains {
		if chainIDs[c.ID] {
			t.Fatalf("duplicate chain id %s", c.ID)
		}
		chainIDs[c.ID] = true
		for _, p := range c.Problems {
			if problemIDs[p.ID] {
				t.Fatalf("duplicate problem id %s", p.ID)
			}
			problemIDs[p.ID] = true
		}
	}
}

func TestMixResponsiveness_AddHeavy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChainLength = 10
	cfg.Mix = Mix{Add: 70, Subtract: 10, Multiply: 10, Divide: 10}
	g := newTestGen(cfg, 11)

	total, adds := 0, 0
	for i := 0; i < 15; i++ {
		c := g.GenerateChain()
		if c == nil {
			continue
		}
		for _, p := range c.Problems {
			total++
			if p.Op == OpAdd {
				adds++
			}
		}
	}
	if total == 0 {
		t.Fatal("no problems generated")
	}
	if frac := float64(adds) / float64(total); frac <= 0.30 {
		t.Errorf("add fraction %.3f under an add-heavy mix, want > 0.30", frac)
	}
}

func TestMixResponsiveness_MultiplicativeHeavy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChainLength = 10
	cfg.Mix = Mix{Add: 10, Subtract: 10, Multiply: 40, Divide: 40}
	g := newTestGen(cfg, 12)

	total, multDiv := 0, 0
	for i := 0; i < 15; i++ {
		c := g.GenerateChain()
		if c == nil {
			continue
		}
		for _, p := range c.Problems {
			total++
			if p.Op == OpMultiply || p.Op == OpDivide {
				multDiv++
			}
		}
	}
	if total == 0 {
		t.Fatal("no problems generated")
	}
	if frac := float64(multDiv) / float64(total); frac <= 0.20 {
		t.Errorf("multiply+divide fraction %.3f, want > 0.20", frac)
	}
}

func TestStartingValue_CompositeBias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mix = Mix{Multiply: 50, Divide: 50}
	g := newTestGen(cfg, 13)

	allowed := map[int]bool{}
	for _, n := range compositeStarts {
		if n <= cfg.MaxResult/2 {
			allowed[n] = true
		}
	}
	for i := 0; i < 100; i++ {
		if s := g.startingValue(); !allowed[s] {
			t.Fatalf("starting value %d not in the composite candidate list", s)
		}
	}
}

func TestStartingValue_TinyMaxResultDoesNotPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResult = 12
	cfg.Mix = Mix{Multiply: 60, Divide: 40}
	g := newTestGen(cfg, 14)

	// Composite candidates filter to nothing at MaxResult/2 = 6 and the
	// fallback window inverts; the draw must clamp, not panic.
	for i := 0; i < 50; i++ {
		if s := g.startingValue(); s < 1 {
			t.Fatalf("starting value %d", s)
		}
	}
}

func TestGenerator_SeededDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	a := New(cfg, rand.New(rand.NewSource(42)))
	b := New(cfg, rand.New(rand.NewSource(42)))

	wa := a.GenerateWorksheet()
	wb := b.GenerateWorksheet()
	if len(wa.Chains) != len(wb.Chains) {
		t.Fatalf("chain counts differ: %d vs %d", len(wa.Chains), len(wb.Chains))
	}
	for i := range wa.Chains {
		pa, pb := wa.Chains[i].Problems, wb.Chains[i].Problems
		if len(pa) != len(pb) {
			t.Fatalf("chain %d lengths differ", i)
		}
		for j := range pa {
			if pa[j].Op != pb[j].Op || pa[j].StartValue != pb[j].StartValue ||
				pa[j].Operand != pb[j].Operand || pa[j].Result != pb[j].Result {
				t.Fatalf("chain %d problem %d differs: %+v vs %+v", i, j, pa[j], pb[j])
			}
		}
	}
}
