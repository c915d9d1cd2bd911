package reactive

import "github.com/vango-dev/signaled/internal/errors"

// Sentinel errors for the reactive runtime. Compare with errors.Is.
var (
	// ErrBudgetExceeded is reported when an effect storm exceeds its budget.
	ErrBudgetExceeded = errors.New(errors.CodeBudgetExceeded)

	// ErrCircularDependency is reported when a memo reads itself while computing.
	ErrCircularDependency = errors.New(errors.CodeCircularDependency)
)
