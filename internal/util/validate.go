package util

import (
	"fmt"
	"regexp"
	"strings"
)

// maxDashboardNameLen is the longest dashboard name CloudWatch accepts.
const maxDashboardNameLen = 255

// validDashboardChars matches only alphanumeric characters, hyphens, and underscores.
var validDashboardChars = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

// ValidateDashboardName checks that a dashboard name conforms to the
// CloudWatch naming rules:
//   - Between 1 and 255 characters
//   - Only alphanumeric characters (a-z, A-Z, 0-9), hyphens (-), and underscores (_)
func ValidateDashboardName(name string) error {
	if name == "" {
		return fmt.Errorf("dashboard name must not be empty")
	}

	if len(name) > maxDashboardNameLen {
		return fmt.Errorf("dashboard name must be at most %d characters, got %d", maxDashboardNameLen, len(name))
	}

	if !validDashboardChars.MatchString(name) {
		return fmt.Errorf("dashboard name %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, and underscores are allowed)", name)
	}

	return nil
}

// SplitList splits a comma-separated flag value, trimming whitespace and
// dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// regionPattern matches AWS region codes such as us-east-1, ap-northeast-1
// and us-gov-west-1.
var regionPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d+$`)

// ValidateRegion checks that s looks like an AWS region code.
func ValidateRegion(s string) error {
	if !regionPattern.MatchString(s) {
		return fmt.Errorf("region %q is not a valid region code (e.g. us-east-1)", s)
	}
	return nil
}

// namespacePattern matches metric namespaces such as AWS/RDS or Custom/App.
// The first character must be a letter, as the widget merge ignores
// entries whose namespace does not start with one.
var namespacePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_./#:\-]*$`)

// ValidateNamespace checks that s is a usable metric namespace.
func ValidateNamespace(s string) error {
	if !namespacePattern.MatchString(s) {
		return fmt.Errorf("namespace %q is invalid: it must start with a letter (e.g. AWS/RDS)", s)
	}
	return nil
}
