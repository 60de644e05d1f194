package audit

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dataTrevor/automatic-create-dashboard/internal/auditlog"
	"github.com/dataTrevor/automatic-create-dashboard/internal/database"
)

// useTempDB points the audit repository at a fresh database and seeds it.
func useTempDB(t *testing.T, entries ...*auditlog.AuditEntry) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "autodash.db"))
	t.Cleanup(database.ResetPath)

	repo, err := auditlog.Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer repo.Close()
	for _, e := range entries {
		if err := repo.Save(e); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
}

func execAudit(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), err
}

func seed() []*auditlog.AuditEntry {
	now := time.Now().UTC()
	return []*auditlog.AuditEntry{
		{
			Timestamp:    now.Add(-2 * time.Minute),
			Command:      "autodash update",
			Region:       "us-east-1",
			ResourceType: auditlog.ResourceDashboard,
			Resource:     "aurora-uat",
			Inserted:     3,
			Outcome:      auditlog.OutcomeSuccess,
			DurationMs:   1500,
		},
		{
			Timestamp:    now.Add(-time.Minute),
			Command:      "autodash update",
			Region:       "us-east-1",
			ResourceType: auditlog.ResourceDashboard,
			Resource:     "aurora-uat",
			DryRun:       true,
			Outcome:      auditlog.OutcomeSuccess,
			DurationMs:   20,
		},
		{
			Timestamp:    now,
			Command:      "autodash tag add",
			Region:       "us-east-1",
			ResourceType: auditlog.ResourceClusters,
			Resource:     "c1,c2",
			Outcome:      auditlog.OutcomeError,
			Detail:       "unauthorized",
			DurationMs:   40,
		},
		{
			Timestamp: now.Add(-40 * 24 * time.Hour),
			Command:   "autodash init",
			Resource:  "aurora-old",
			Outcome:   auditlog.OutcomeSuccess,
		},
	}
}

func TestList_Table(t *testing.T) {
	useTempDB(t, seed()...)

	out, err := execAudit(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{
		"TIME", "INSERTED",
		"dashboard:aurora-uat", "clusters:c1,c2",
		"0 (dry run)", "1.5s", "unauthorized",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.Contains(lines[2], "autodash tag add") {
		t.Errorf("expected newest run first, got %q", lines[2])
	}
}

func TestList_FilterJSON(t *testing.T) {
	useTempDB(t, seed()...)

	out, err := execAudit(t, "list", "--resource", "aurora-uat", "-o", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var entries []auditlog.AuditEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].DryRun || entries[1].Inserted != 3 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestList_Empty(t *testing.T) {
	useTempDB(t)

	out, err := execAudit(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "No runs recorded.") {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = execAudit(t, "list", "-o", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty JSON array, got %q", out)
	}
}

func TestList_InvalidFlags(t *testing.T) {
	useTempDB(t)

	if _, err := execAudit(t, "list", "--limit", "0"); err == nil {
		t.Error("expected error for zero limit")
	}
	if _, err := execAudit(t, "list", "-o", "yaml"); err == nil {
		t.Error("expected error for unsupported output")
	}
}

func TestPrune(t *testing.T) {
	useTempDB(t, seed()...)

	out, err := execAudit(t, "prune", "--older-than", "30d")
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if !strings.Contains(out, "Removed 1 recorded run(s).") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "30d", want: 30 * 24 * time.Hour},
		{input: "2w", want: 14 * 24 * time.Hour},
		{input: "72h", want: 72 * time.Hour},
		{input: "90m", want: 90 * time.Minute},
		{input: "xd", wantErr: true},
		{input: "-1d", wantErr: true},
		{input: "-5h", wantErr: true},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDuration(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
