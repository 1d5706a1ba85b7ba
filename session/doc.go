// Package session binds a verified staff identity to the shared audit context.
//
// It is the only writer of [groomkit.AuditContext]: Login verifies a signed
// staff token and applies its role and staff id claims; Logout clears them.
// Recorders elsewhere only read snapshots.
package session
