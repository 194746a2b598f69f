package report

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONRenderer marshals report data directly; no template involved.
type JSONRenderer struct{}

// NewJSON constructs the JSON renderer.
func NewJSON() *JSONRenderer { return &JSONRenderer{} }

// Name identifies the renderer inside a Registry.
func (r *JSONRenderer) Name() string { return "json" }

// ContentType reports the MIME type of the rendered output.
func (r *JSONRenderer) ContentType() string { return "application/json" }

// Render marshals the report data as indented JSON.
func (r *JSONRenderer) Render(_ context.Context, data Data) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: marshal json: %w", err)
	}
	return append(out, '\n'), nil
}
