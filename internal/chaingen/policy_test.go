package chaingen

import "testing"

func TestPickOperation_SingleWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mix = Mix{Add: 100}
	g := newTestGen(cfg, 1)

	for i := 0; i < 100; i++ {
		if op := g.pickOperation(); op != OpAdd {
			t.Fatalf("mix {add:100} picked %s", op)
		}
	}
}

func TestPickOperation_ZeroTotalFallsBackToDivide(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mix = Mix{}
	g := newTestGen(cfg, 2)

	if op := g.pickOperation(); op != OpDivide {
		t.Errorf("zero mix picked %s, want divide catch-all", op)
	}
}

func TestPickOperation_DriftDoesNotCrash(t *testing.T) {
	// UI rebalancing can leave the weights summing to 99 or 101.
	cfg := DefaultConfig()
	cfg.Mix = Mix{Add: 33, Subtract: 33, Multiply: 33, Divide: 0.5}
	g := newTestGen(cfg, 3)

	for i := 0; i < 1000; i++ {
		op := g.pickOperation()
		switch op {
		case OpAdd, OpSubtract, OpMultiply, OpDivide:
		default:
			t.Fatalf("invalid operation %q", op)
		}
	}
}

func TestPickOperation_RoughProportions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mix = Mix{Add: 70, Subtract: 10, Multiply: 10, Divide: 10}
	g := newTestGen(cfg, 4)

	counts := map[Operation]int{}
	const draws = 5000
	for i := 0; i < draws; i++ {
		counts[g.pickOperation()]++
	}
	if frac := float64(counts[OpAdd]) / draws; frac < 0.6 || frac > 0.8 {
		t.Errorf("add fraction %.3f, want near 0.7", frac)
	}
}

func TestPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		mix  Mix
		want []Operation
	}{
		{
			name: "distinct weights",
			mix:  Mix{Add: 10, Subtract: 40, Multiply: 30, Divide: 20},
			want: []Operation{OpSubtract, OpMultiply, OpDivide, OpAdd},
		},
		{
			name: "ties resolve in canonical order",
			mix:  Mix{Add: 25, Subtract: 25, Multiply: 25, Divide: 25},
			want: []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide},
		},
		{
			name: "partial tie",
			mix:  Mix{Add: 10, Subtract: 10, Multiply: 40, Divide: 40},
			want: []Operation{OpMultiply, OpDivide, OpAdd, OpSubtract},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mix = tt.mix
			g := newTestGen(cfg, 5)
			got := g.priorityOrder()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("priorityOrder() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
