package errors

// Registered error codes.
const (
	// CodeIndexOutOfRange: a List position outside 0 <= i < Len(), or
	// outside 0 <= i <= Len() for inserts.
	CodeIndexOutOfRange = "E101"

	// CodeBudgetExceeded: too many effect runs in one tick, or an effect
	// that kept invalidating itself. Refused runs are re-scheduled.
	CodeBudgetExceeded = "E102"

	// CodeCircularDependency: a memo read its own value while recomputing.
	// The stale value is returned.
	CodeCircularDependency = "E103"
)

// template defines a registered error type.
type template struct {
	Category Category
	Message  string
}

var registry = map[string]template{
	CodeIndexOutOfRange: {
		Category: CategoryCollection,
		Message:  "Index out of range",
	},
	CodeBudgetExceeded: {
		Category: CategoryRuntime,
		Message:  "Effect storm budget exceeded",
	},
	CodeCircularDependency: {
		Category: CategoryRuntime,
		Message:  "Circular dependency detected",
	},
}
