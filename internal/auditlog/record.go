package auditlog

import (
	"strings"
	"time"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Resource types recorded for a run.
const (
	ResourceDashboard = "dashboard"
	ResourceClusters  = "clusters"
)

// AuditEntry is one recorded autodash run.
type AuditEntry struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Command      string    `json:"command"`
	Args         string    `json:"args,omitempty"`
	Region       string    `json:"region,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	Resource     string    `json:"resource,omitempty"`
	Inserted     int       `json:"inserted"`
	DryRun       bool      `json:"dry_run,omitempty"`
	Outcome      string    `json:"outcome"`
	Detail       string    `json:"detail,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
}

// Filter narrows List results. Zero fields match everything.
type Filter struct {
	Command  string
	Resource string
	Limit    int
}

// NewEntry builds the entry for a finished run that started at start.
// A non-nil err marks the run as failed and becomes its detail.
func NewEntry(command string, args []string, meta Metadata, err error, start time.Time) *AuditEntry {
	entry := &AuditEntry{
		Timestamp:    start.UTC(),
		Command:      command,
		Args:         strings.Join(args, " "),
		Region:       meta.Region,
		ResourceType: meta.ResourceType,
		Resource:     meta.Resource,
		Inserted:     meta.Inserted,
		DryRun:       meta.DryRun,
		Outcome:      OutcomeSuccess,
		Detail:       meta.Detail,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if err != nil {
		entry.Outcome = OutcomeError
		entry.Detail = err.Error()
	}
	return entry
}
