package report

import "context"

// Renderer converts report data into a byte representation (text, HTML,
// JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, data Data) ([]byte, error)
}
