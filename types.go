package groomkit

import "time"

// EventRecord is one immutable entry in a recorder's audit trail.
//
// All fields are fixed at record time: the audit fields are snapshots of the
// [AuditContext] as it was when Record ran, and Escalate is computed exactly
// once. A record never changes after it has been appended, even if the audit
// context is reset later.
type EventRecord struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Name      string            `json:"name"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Role      string            `json:"role,omitempty"`
	StaffID   string            `json:"staff_id,omitempty"`
	Component string            `json:"component,omitempty"`
	Escalate  bool              `json:"escalate"`
}

func cloneMetadata(metadata map[string]string) map[string]string {
	if len(metadata) == 0 {
		return nil
	}
	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	return out
}
