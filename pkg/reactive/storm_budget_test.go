package reactive

import (
	"errors"
	"testing"
)

func TestStormBudgetNil(t *testing.T) {
	var budget *StormBudget

	if err := budget.CheckEffectRun(); err != nil {
		t.Errorf("CheckEffectRun on nil should return nil, got %v", err)
	}
	budget.ResetTick()
	if budget.Stats() != (StormBudgetStats{}) {
		t.Error("nil budget should report zero stats")
	}
	if NewStormBudget(nil) != nil {
		t.Error("nil config should yield a nil budget")
	}
}

func TestStormBudgetEffectLimit(t *testing.T) {
	budget := NewStormBudget(&StormBudgetConfig{MaxEffectRunsPerTick: 2})

	for i := 0; i < 2; i++ {
		if err := budget.CheckEffectRun(); err != nil {
			t.Errorf("run %d should be allowed, got %v", i+1, err)
		}
	}

	err := budget.CheckEffectRun()
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("expected ErrBudgetExceeded, got %v", err)
	}

	budget.ResetTick()
	if err := budget.CheckEffectRun(); err != nil {
		t.Errorf("run after reset should be allowed, got %v", err)
	}
	if stats := budget.Stats(); stats.EffectRunsThisTick != 1 || stats.Exceeded != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestStormBudgetUnlimited(t *testing.T) {
	budget := NewStormBudget(&StormBudgetConfig{})
	for i := 0; i < 1000; i++ {
		if err := budget.CheckEffectRun(); err != nil {
			t.Fatalf("unlimited budget rejected run %d: %v", i, err)
		}
	}
}
