package groomkit

import "strings"

// Escalation keywords. Substring match against the lower-cased event name and
// every lower-cased metadata value. The set is fixed: callers that need a
// different taxonomy should encode it in event names.
var escalationKeywords = []string{"danger", "critical", "delete"}

// classifyEscalation reports whether an event is high-severity. Pure and
// total: absent metadata contributes nothing, and no input can fail.
func classifyEscalation(name string, metadata map[string]string) bool {
	lowered := strings.ToLower(name)
	for _, kw := range escalationKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}

	for _, v := range metadata {
		lowered = strings.ToLower(v)
		for _, kw := range escalationKeywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
	}

	return false
}
