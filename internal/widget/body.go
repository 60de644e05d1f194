// Package widget implements the dashboard widget model and the merge of
// per-instance metric series into it.
//
// Dashboard bodies are handled as generic JSON trees so that every field the
// tool does not understand survives a read-merge-write cycle unchanged.
package widget

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const widgetsKey = "widgets"

// Body is a parsed dashboard body. Widgets is the only field the tool
// interprets; all other top-level fields are kept opaque.
type Body struct {
	Widgets []Widget

	rest map[string]any
}

// ParseBody decodes a dashboard body. It accepts the canonical
// {"widgets": [...]} object as well as a bare widget array.
// Numbers are decoded as json.Number so they re-encode exactly.
func ParseBody(data []byte) (*Body, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("widget: failed to parse dashboard body: %w", err)
	}

	switch v := doc.(type) {
	case []any:
		widgets, err := toWidgets(v)
		if err != nil {
			return nil, err
		}
		return &Body{Widgets: widgets}, nil
	case map[string]any:
		body := &Body{rest: make(map[string]any, len(v))}
		for k, val := range v {
			if k == widgetsKey {
				continue
			}
			body.rest[k] = val
		}
		if raw, ok := v[widgetsKey]; ok && raw != nil {
			list, ok := raw.([]any)
			if !ok {
				return nil, fmt.Errorf("widget: %q must be an array, got %T", widgetsKey, raw)
			}
			widgets, err := toWidgets(list)
			if err != nil {
				return nil, err
			}
			body.Widgets = widgets
		}
		return body, nil
	default:
		return nil, fmt.Errorf("widget: dashboard body must be an object or array, got %T", doc)
	}
}

func toWidgets(list []any) ([]Widget, error) {
	widgets := make([]Widget, 0, len(list))
	for i, raw := range list {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("widget: widget %d must be an object, got %T", i, raw)
		}
		widgets = append(widgets, Widget(m))
	}
	return widgets, nil
}

// MarshalJSON encodes the body with its opaque fields and the current
// widget sequence. HTML characters are not escaped so metric expressions
// such as "m1 > 5" are written as-is.
func (b *Body) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.rest)+1)
	for k, v := range b.rest {
		out[k] = v
	}
	widgets := b.Widgets
	if widgets == nil {
		widgets = []Widget{}
	}
	out[widgetsKey] = widgets

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WidgetsOnly returns a body holding the same widgets and none of the
// other top-level fields. Template files are written in this form.
func (b *Body) WidgetsOnly() *Body {
	return &Body{Widgets: b.Widgets}
}
