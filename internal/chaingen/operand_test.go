package chaingen

import (
	"math/rand"
	"testing"
)

func newTestGen(cfg Config, seed int64) *Generator {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

func TestSearchOperand_Add(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResult = 100
	g := newTestGen(cfg, 1)
	oc := OperationConfig{MinValue: 1, MaxValue: 50}

	for i := 0; i < 200; i++ {
		operand, ok := g.searchOperand(OpAdd, 95, oc)
		if !ok {
			t.Fatal("expected a valid operand for add at 95")
		}
		if operand < 1 || operand > 5 {
			t.Fatalf("operand %d outside [1,5]", operand)
		}
	}

	// No headroom left.
	if _, ok := g.searchOperand(OpAdd, 100, oc); ok {
		t.Error("expected failure when R - current < minValue")
	}
}

func TestSearchOperand_Subtract(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResult = 100
	g := newTestGen(cfg, 2)
	oc := OperationConfig{MinValue: 1, MaxValue: 50}

	for i := 0; i < 200; i++ {
		operand, ok := g.searchOperand(OpSubtract, 5, oc)
		if !ok {
			t.Fatal("expected a valid operand for subtract at 5")
		}
		if operand < 1 || operand > 4 {
			t.Fatalf("operand %d outside [1,4]", operand)
		}
	}

	// From 1 there is nowhere to go without negatives.
	if _, ok := g.searchOperand(OpSubtract, 1, oc); ok {
		t.Error("expected failure subtracting from 1 with negatives disallowed")
	}

	// Negatives widen the range down to -MaxResult.
	cfg.AllowNegative = true
	g = newTestGen(cfg, 3)
	seen := 0
	for i := 0; i < 200; i++ {
		operand, ok := g.searchOperand(OpSubtract, 5, oc)
		if !ok {
			t.Fatal("expected a valid operand with negatives allowed")
		}
		if operand > 50 {
			t.Fatalf("operand %d above configured max 50", operand)
		}
		if operand > 4 {
			seen++
		}
	}
	if seen == 0 {
		t.Error("expected some operands above 4 once negatives are allowed")
	}
}

func TestSearchOperand_Multiply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResult = 100
	g := newTestGen(cfg, 4)
	oc := OperationConfig{MinValue: 2, MaxValue: 10}

	for i := 0; i < 200; i++ {
		operand, ok := g.searchOperand(OpMultiply, 7, oc)
		if !ok {
			t.Fatal("expected a valid operand for multiply at 7")
		}
		if operand < 2 || operand > 10 {
			t.Fatalf("operand %d outside [2,10]", operand)
		}
		if 7*operand > 100 {
			t.Fatalf("7*%d exceeds max result", operand)
		}
	}

	// Zero stays zero regardless of operand.
	operand, ok := g.searchOperand(OpMultiply, 0, oc)
	if !ok {
		t.Fatal("expected multiply at 0 to succeed")
	}
	if operand < 2 || operand > 10 {
		t.Errorf("operand %d outside configured bounds", operand)
	}

	// Too large to multiply without overshooting.
	if _, ok := g.searchOperand(OpMultiply, 60, oc); ok {
		t.Error("expected failure: 60*2 > 100")
	}
}

func TestSearchOperand_Divide(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResult = 100
	g := newTestGen(cfg, 5)
	oc := OperationConfig{MinValue: 2, MaxValue: 10}

	want := map[int]bool{2: true, 3: true, 4: true, 6: true}
	got := map[int]bool{}
	for i := 0; i < 500; i++ {
		d, ok := g.searchOperand(OpDivide, 12, oc)
		if !ok {
			t.Fatal("expected a valid divisor of 12")
		}
		if !want[d] {
			t.Fatalf("unexpected divisor %d of 12 in [2,10]", d)
		}
		got[d] = true
	}
	if len(got) != len(want) {
		t.Errorf("expected all divisors %v to appear, got %v", want, got)
	}

	// Zero and negative dividends are never divided.
	if _, ok := g.searchOperand(OpDivide, 0, oc); ok {
		t.Error("expected failure dividing 0")
	}
	if _, ok := g.searchOperand(OpDivide, -12, oc); ok {
		t.Error("expected failure dividing a negative")
	}

	// No divisor in range.
	if _, ok := g.searchOperand(OpDivide, 13, oc); ok {
		t.Error("expected failure: 13 has no divisor in [2,10]")
	}

	// Quotient bound: every divisor of 100 in [2,10] quotients above 5.
	cfg.MaxResult = 5
	g = newTestGen(cfg, 6)
	if _, ok := g.searchOperand(OpDivide, 100, oc); ok {
		t.Error("expected failure when every quotient exceeds MaxResult")
	}
}

func TestRandBetween_EmptyRange(t *testing.T) {
	g := newTestGen(DefaultConfig(), 7)
	if _, ok := g.randBetween(5, 4); ok {
		t.Error("expected failure on empty range")
	}
	v, ok := g.randBetween(3, 3)
	if !ok || v != 3 {
		t.Errorf("randBetween(3,3) = %d, %v; want 3, true", v, ok)
	}
}
