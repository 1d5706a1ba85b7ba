package groomkit

import (
	"sort"
	"strings"
	"time"
)

const timestampLayout = time.RFC3339

// RenderRecords renders one human-readable line per record, oldest first,
// for diagnostics display or audit export. Each line carries all seven
// fields: timestamp, name, metadata, role, staff id, component, escalation.
func RenderRecords(records []EventRecord) string {
	if len(records) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, record := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(renderRecord(record))
	}
	return sb.String()
}

func renderRecord(record EventRecord) string {
	var sb strings.Builder
	sb.WriteString(record.Timestamp.UTC().Format(timestampLayout))
	sb.WriteByte(' ')
	sb.WriteString(record.Name)
	sb.WriteByte(' ')
	sb.WriteString(renderMetadata(record.Metadata))
	sb.WriteString(" | role:")
	sb.WriteString(orDash(record.Role))
	sb.WriteString(" staffID:")
	sb.WriteString(orDash(record.StaffID))
	sb.WriteString(" context:")
	sb.WriteString(orDash(record.Component))
	sb.WriteString(" escalate:")
	if record.Escalate {
		sb.WriteString("YES")
	} else {
		sb.WriteString("NO")
	}
	return sb.String()
}

// renderMetadata joins "key: value" pairs with ", " in sorted key order so
// rendered output is deterministic. Absent metadata renders as "none".
func renderMetadata(metadata map[string]string) string {
	if len(metadata) == 0 {
		return "none"
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(metadata[k])
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
