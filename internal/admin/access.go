// Package admin provides the operator command registry and the HTTP surface of itemforge.
package admin

import "context"

// Access levels of operator keys.
// Level 0 has no access, 1 may inspect, 2 may generate, give and delete.
const (
	AccessNone     int32 = 0
	AccessViewer   int32 = 1
	AccessOperator int32 = 2
)

// Caller identifies who runs a command (API key name and its level).
type Caller struct {
	Name        string
	AccessLevel int32
}

// CanUse reports whether the caller's level satisfies required.
func (c Caller) CanUse(required int32) bool {
	return c.AccessLevel > AccessNone && c.AccessLevel >= required
}

type callerKey struct{}

// WithCaller stores the authenticated caller in ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller stored by WithCaller.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}
