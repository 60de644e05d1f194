// Package templatefile reads and writes dashboard templates on disk.
//
// A template is a dashboard body of the form {"widgets": [...]}. Files with a
// .yaml or .yml extension are stored as YAML and converted on the fly.
package templatefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dataTrevor/automatic-create-dashboard/internal/widget"

	"sigs.k8s.io/yaml"
)

// DefaultPath is the template file used when none is configured.
const DefaultPath = "Aurora_monitor_DashboardBody.json"

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the template at path.
func Load(path string) (*widget.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: failed to read %s: %w", path, err)
	}

	if isYAML(path) {
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("template: failed to convert %s from YAML: %w", path, err)
		}
	}

	body, err := widget.ParseBody(data)
	if err != nil {
		return nil, fmt.Errorf("template: %s: %w", path, err)
	}
	return body, nil
}

// Save writes the widgets of body to path, creating the parent directory if
// needed. Only the widget list is written.
func Save(path string, body *widget.Body) error {
	data, err := body.WidgetsOnly().MarshalJSON()
	if err != nil {
		return fmt.Errorf("template: failed to encode widgets: %w", err)
	}

	if isYAML(path) {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return fmt.Errorf("template: failed to convert widgets to YAML: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("template: failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("template: failed to write %s: %w", path, err)
	}
	return nil
}
