package util

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateDashboardName_Valid(t *testing.T) {
	valid := []string{
		"a",
		"Aurora_monitor",
		"aurora-prod-01",
		"UPPERCASE",
		"123numeric",
		"a_b-c",
		strings.Repeat("x", 255),
	}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateDashboardName(name); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", name, err)
			}
		})
	}
}

func TestValidateDashboardName_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		wantMsg string
	}{
		{"", "must not be empty"},
		{strings.Repeat("x", 256), "at most 255 characters"},
		{"my dashboard", "invalid characters"},
		{"prod.aurora", "invalid characters"},
		{"aurora/prod", "invalid characters"},
		{"name:tag", "invalid characters"},
		{"tab\tname", "invalid characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDashboardName(tt.name)
			if err == nil {
				t.Errorf("expected %q to be invalid, got nil", tt.name)
				return
			}
			if got := err.Error(); !strings.Contains(got, tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"cluster1", []string{"cluster1"}},
		{"cluster1,cluster2,cluster3", []string{"cluster1", "cluster2", "cluster3"}},
		{" cluster1 , ,cluster2,", []string{"cluster1", "cluster2"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitList(tt.in)); diff != "" {
				t.Errorf("SplitList(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestValidateRegion(t *testing.T) {
	tests := []struct {
		region  string
		wantErr bool
	}{
		{region: "us-east-1"},
		{region: "ap-northeast-1"},
		{region: "us-gov-west-1"},
		{region: "eu-central-2"},
		{region: "", wantErr: true},
		{region: "US-EAST-1", wantErr: true},
		{region: "us-east", wantErr: true},
		{region: "useast1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			err := ValidateRegion(tt.region)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegion(%q) error = %v, wantErr %v", tt.region, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNamespace(t *testing.T) {
	tests := []struct {
		namespace string
		wantErr   bool
	}{
		{namespace: "AWS/RDS"},
		{namespace: "AWS/DocDB"},
		{namespace: "Custom/app-metrics"},
		{namespace: "", wantErr: true},
		{namespace: "/RDS", wantErr: true},
		{namespace: "1AWS", wantErr: true},
		{namespace: "AWS RDS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			err := ValidateNamespace(tt.namespace)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNamespace(%q) error = %v, wantErr %v", tt.namespace, err, tt.wantErr)
			}
		})
	}
}
