package groomkit

import "context"

type staffIDContextKey struct{}
type roleContextKey struct{}

// WithStaffID attaches a staff identifier to ctx. When present it overrides
// the [AuditContext] staff identifier for events recorded during that call,
// which lets request-scoped identity win over the process-wide session.
func WithStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffIDContextKey{}, staffID)
}

// WithRole attaches a role name to ctx. When present it overrides the
// [AuditContext] role for events recorded during that call.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleContextKey{}, role)
}

func staffIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	staffID, _ := ctx.Value(staffIDContextKey{}).(string)
	if staffID == "" {
		return "", false
	}

	return staffID, true
}

func roleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	role, _ := ctx.Value(roleContextKey{}).(string)
	if role == "" {
		return "", false
	}

	return role, true
}
