package widget

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

var clusterBatch = []domain.Instance{
	{ClusterID: "c1", InstanceID: "i1", Role: domain.RoleWriter},
	{ClusterID: "c1", InstanceID: "i2", Role: domain.RoleReader},
}

func titles(widgets []Widget) []string {
	var out []string
	for _, w := range widgets {
		title := w.Title()
		if title == "" {
			title, _ = w["type"].(string)
		}
		out = append(out, title)
	}
	return out
}

func TestApplyBatch_MovesUpdatedWidgetsToEnd(t *testing.T) {
	body := mustParse(t, exampleBody)

	report := ApplyBatch(body, Batch{
		Namespace: "AWS/RDS",
		Region:    "us-east-1",
		Instances: clusterBatch,
	}, discardLogger())

	want := []string{"text", "CPU", "Memory"}
	if diff := cmp.Diff(want, titles(body.Widgets)); diff != "" {
		t.Errorf("widget order mismatch (-want +got):\n%s", diff)
	}

	wantReport := Report{Metrics: []MetricResult{
		{Metric: "CPUUtilization", Found: true, Title: "CPU", Stats: MergeStats{Considered: 2, Inserted: 1, Skipped: 1}},
		{Metric: "FreeableMemory", Found: true, Title: "Memory", Backfilled: 1, Stats: MergeStats{Considered: 2, Inserted: 1, Skipped: 1}},
	}}
	if diff := cmp.Diff(wantReport, report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
	if report.Inserted() != 2 {
		t.Errorf("expected 2 inserted, got %d", report.Inserted())
	}
}

func TestApplyBatch_Idempotent(t *testing.T) {
	body := mustParse(t, exampleBody)
	batch := Batch{Namespace: "AWS/RDS", Region: "us-east-1", Instances: clusterBatch}

	ApplyBatch(body, batch, discardLogger())
	first, err := body.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	report := ApplyBatch(body, batch, discardLogger())
	second, err := body.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	if diff := cmp.Diff(decodeJSON(t, string(first)), decodeJSON(t, string(second))); diff != "" {
		t.Errorf("second application changed the body (-first +second):\n%s", diff)
	}
	if report.Inserted() != 0 {
		t.Errorf("expected nothing inserted on second pass, got %d", report.Inserted())
	}
}

func TestApplyBatch_PreservesUnrelatedWidgets(t *testing.T) {
	body := mustParse(t, `{"widgets": [
	  {"properties": {"title": "CPU", "period": 60, "metrics": [["AWS/RDS", "CPUUtilization", {"region": "us-east-1", "label": "i1-WRITER"}]]}},
	  {"properties": {"title": "EC2", "metrics": [["AWS/EC2", "CPUUtilization", "InstanceId", "i-0abc", {"region": "us-east-1"}]]}},
	  {"properties": {"title": "Math", "metrics": [[{"expression": "SUM(METRICS())", "id": "e1"}]]}}
	]}`)
	ec2Before := normalize(t, body.Widgets[1])
	mathBefore := normalize(t, body.Widgets[2])

	ApplyBatch(body, Batch{Namespace: "AWS/RDS", Region: "us-east-1", Instances: clusterBatch}, discardLogger())

	if diff := cmp.Diff([]string{"EC2", "Math", "CPU"}, titles(body.Widgets)); diff != "" {
		t.Fatalf("widget order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ec2Before, normalize(t, body.Widgets[0])); diff != "" {
		t.Errorf("unrelated widget changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(mathBefore, normalize(t, body.Widgets[1])); diff != "" {
		t.Errorf("expression widget changed (-before +after):\n%s", diff)
	}
}

func TestApplyBatch_ReinitializeFromTemplate(t *testing.T) {
	body := mustParse(t, `{"widgets": [
	  {"properties": {"title": "CPU", "period": 60, "region": "ap-northeast-1", "metrics": [
	    ["AWS/RDS", "CPUUtilization", "Role", "WRITER", "DBClusterIdentifier", "template-cluster", {"label": "placeholder"}],
	    ["AWS/RDS", "CPUUtilization", "Role", "READER", "DBClusterIdentifier", "template-cluster", {"label": "placeholder-2"}]
	  ]}},
	  {"properties": {"title": "Latency", "period": 60, "region": "ap-northeast-1", "metrics": [
	    ["AWS/RDS", "SelectLatency", "Role", "WRITER", "DBClusterIdentifier", "template-cluster"]
	  ]}}
	]}`)

	report := ApplyBatch(body, Batch{
		Namespace:    "AWS/RDS",
		Region:       "ap-northeast-1",
		Instances:    clusterBatch,
		Reinitialize: true,
	}, discardLogger())

	for _, w := range body.Widgets {
		if n := len(w.Metrics()); n != 2 {
			t.Errorf("widget %v: expected 2 entries, got %d", w.Properties()["title"], n)
		}
		for _, e := range w.Entries() {
			if e[5] != "c1" {
				t.Errorf("expected template entries to be replaced, found %v", e)
			}
		}
	}
	if report.Inserted() != 4 {
		t.Errorf("expected 4 inserted, got %d", report.Inserted())
	}
}

func TestApplyBatch_SkipsMetricWhoseWidgetDisappeared(t *testing.T) {
	// Both metrics live on one widget; reinitializing for the first wipes
	// the second, so the second can no longer be located.
	body := mustParse(t, `{"widgets": [
	  {"properties": {"title": "Shared", "period": 60, "metrics": [
	    ["AWS/RDS", "ReadIOPS", {"region": "us-east-1"}],
	    ["AWS/RDS", "WriteIOPS", {"region": "us-east-1"}]
	  ]}}
	]}`)

	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)

	report := ApplyBatch(body, Batch{
		Namespace:    "AWS/RDS",
		Region:       "us-east-1",
		Instances:    clusterBatch,
		Reinitialize: true,
	}, log)

	if diff := cmp.Diff([]string{"WriteIOPS"}, report.Missing()); diff != "" {
		t.Errorf("missing metrics mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "widget not found") {
		t.Errorf("expected a diagnostic for the missing widget, got:\n%s", logs.String())
	}
	if n := len(body.Widgets); n != 1 {
		t.Errorf("expected widget count unchanged, got %d", n)
	}
}

func TestApplyBatch_LogsSummary(t *testing.T) {
	body := mustParse(t, scenarioWidget)

	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)

	ApplyBatch(body, Batch{Namespace: "AWS/RDS", Region: "us-east-1", Instances: clusterBatch}, log)

	for _, want := range []string{"metric=CPUUtilization", "inserted=1", "skipped=1", "2 instance(s) considered"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected %q in log output, got:\n%s", want, logs.String())
		}
	}
}

func TestApplyBatch_NoMatchingNamespace(t *testing.T) {
	body := mustParse(t, exampleBody)
	before := normalize(t, body)

	report := ApplyBatch(body, Batch{Namespace: "AWS/DocDB", Region: "us-east-1", Instances: clusterBatch}, discardLogger())

	if len(report.Metrics) != 0 {
		t.Errorf("expected no metrics processed, got %+v", report.Metrics)
	}
	if diff := cmp.Diff(before, normalize(t, body)); diff != "" {
		t.Errorf("body changed (-before +after):\n%s", diff)
	}
}
