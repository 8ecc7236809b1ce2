// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActionKey is the context key for the user action being served.
type ActionKey struct{}

// WithAction returns a context carrying the name of the user action
// (e.g. "add", "filter-status") that triggered the store calls below it.
func WithAction(ctx context.Context, action string) context.Context {
	return context.WithValue(ctx, ActionKey{}, action)
}

// ActionFromContext returns the action name from context, or empty string if not set.
func ActionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActionKey{}).(string); ok {
		return v
	}
	return ""
}
