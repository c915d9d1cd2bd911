package reactive

import (
	"sync"

	"github.com/vango-dev/signaled/internal/errors"
)

// StormBudgetChecker is consulted by Owner.RunPendingEffects before each
// effect run. Implementations must be safe for concurrent use.
type StormBudgetChecker interface {
	// CheckEffectRun returns an error matching ErrBudgetExceeded when no
	// more effects may run this tick.
	CheckEffectRun() error

	// ResetTick starts a new tick.
	ResetTick()
}

// StormBudgetConfig holds configuration for storm budgets.
type StormBudgetConfig struct {
	// MaxEffectRunsPerTick limits effect runs per tick. 0 means unlimited.
	MaxEffectRunsPerTick int
}

// StormBudget limits how many effects may run in one tick. It protects
// against amplification bugs where effects cascade into more effects
// through shared cells.
type StormBudget struct {
	maxEffectRuns      int
	effectRunsThisTick int
	exceeded           int
	mu                 sync.Mutex
}

// StormBudgetStats is a snapshot of a StormBudget.
type StormBudgetStats struct {
	// EffectRunsThisTick counts effect runs allowed since the last ResetTick.
	EffectRunsThisTick int

	// Exceeded counts rejected effect runs since creation.
	Exceeded int
}

// NewStormBudget creates a storm budget with the given configuration.
// Returns nil when cfg is nil; a nil *StormBudget allows everything.
func NewStormBudget(cfg *StormBudgetConfig) *StormBudget {
	if cfg == nil {
		return nil
	}
	return &StormBudget{maxEffectRuns: cfg.MaxEffectRunsPerTick}
}

// CheckEffectRun checks if another effect can run this tick.
// Returns nil if allowed, an error matching ErrBudgetExceeded otherwise.
func (b *StormBudget) CheckEffectRun() error {
	if b == nil || b.maxEffectRuns == 0 {
		return nil
	}

	b.mu.Lock()
	if b.effectRunsThisTick < b.maxEffectRuns {
		b.effectRunsThisTick++
		b.mu.Unlock()
		return nil
	}
	b.exceeded++
	b.mu.Unlock()

	err := errors.New(errors.CodeBudgetExceeded).
		WithDetailf("%d effect runs per tick", b.maxEffectRuns).
		WithSuggestion("Check for effects that write cells they also read.")
	logger().Warn("reactive: storm budget exceeded", "error", err)
	return err
}

// ResetTick resets the per-tick effect counter.
func (b *StormBudget) ResetTick() {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.effectRunsThisTick = 0
	b.mu.Unlock()
}

// Stats returns the current budget counters.
func (b *StormBudget) Stats() StormBudgetStats {
	if b == nil {
		return StormBudgetStats{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return StormBudgetStats{
		EffectRunsThisTick: b.effectRunsThisTick,
		Exceeded:           b.exceeded,
	}
}

var _ StormBudgetChecker = (*StormBudget)(nil)
