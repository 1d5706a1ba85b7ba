package groomkit

import "testing"

func TestClassifyEscalation(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		metadata map[string]string
		want     bool
	}{
		{"plain event", "appointment_booked", nil, false},
		{"delete in name", "delete_customer", nil, true},
		{"critical in name", "critical_alert_raised", nil, true},
		{"danger in name", "dangerous_breed_flagged", nil, true},
		{"case insensitive name", "DELETE_Customer", nil, true},
		{"keyword inside longer word", "undeleteable_record", nil, true},
		{"benign metadata", "normal_event", map[string]string{"note": "all good"}, false},
		{"critical metadata value", "sync_error", map[string]string{"error": "Critical failure"}, true},
		{"danger metadata value", "grooming_note", map[string]string{"note": "DANGER: bites"}, true},
		{"keyword in metadata key only", "event", map[string]string{"delete": "no"}, false},
		{"empty name", "", nil, false},
		{"empty name with keyword metadata", "", map[string]string{"k": "delete"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyEscalation(tt.event, tt.metadata); got != tt.want {
				t.Fatalf("classifyEscalation(%q, %v) = %v, want %v", tt.event, tt.metadata, got, tt.want)
			}
		})
	}
}
