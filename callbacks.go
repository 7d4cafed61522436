package mapskema

import "context"

// Validator is the capability interface for per-value checks. Check receives
// the (possibly transformed) value and its enclosing data container; a nil
// return means pass, any error is recorded as an issue at the value's path.
type Validator interface {
	Check(ctx context.Context, value any, parent any) error
}

// ValidatorFunc adapts a plain function into a Validator.
type ValidatorFunc func(ctx context.Context, value any, parent any) error

func (f ValidatorFunc) Check(ctx context.Context, value any, parent any) error {
	return f(ctx, value, parent)
}

// Transformer rewrites a data value before Value and Validator checks run.
// The returned value replaces the original in place inside its enclosing
// container. Returning an error records an issue at the value's path and
// skips the remaining checks for that value.
type Transformer func(ctx context.Context, value any, parent any) (any, error)
