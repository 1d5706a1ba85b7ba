package groomkit

import "sync"

// AuditContext holds the process-wide identity values stamped onto every
// recorded event: the signed-in staff member's role and identifier plus the
// component name of the recorder reading it.
//
// Only the session subsystem writes it — Set on login, Reset on logout.
// Recorders never mutate it; they take value snapshots at record time.
// Writes are serialized by an internal mutex, so a Record racing a login
// observes either the old identity or the new one, never a torn mix.
type AuditContext struct {
	mu      sync.RWMutex
	role    string
	staffID string
}

// NewAuditContext describes the newauditcontext operation and its observable behavior.
//
// NewAuditContext does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewAuditContext() *AuditContext {
	return &AuditContext{}
}

// Set assigns the current staff identity. Called by the session subsystem
// at session start.
func (a *AuditContext) Set(role, staffID string) {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.role = role
	a.staffID = staffID
	a.mu.Unlock()
}

// Reset clears the staff identity. Called by the session subsystem on logout.
func (a *AuditContext) Reset() {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.role = ""
	a.staffID = ""
	a.mu.Unlock()
}

// Snapshot returns the identity values as they are right now. The returned
// strings are copies; later Set or Reset calls do not affect them.
func (a *AuditContext) Snapshot() (role, staffID string) {
	if a == nil {
		return "", ""
	}
	a.mu.RLock()
	role, staffID = a.role, a.staffID
	a.mu.RUnlock()
	return role, staffID
}
