package report

import "context"

// TextTemplate is the template path the text renderer executes.
const TextTemplate = "templates/report.text.tpl"

// TextRenderer renders report data as a plain text summary.
type TextRenderer struct {
	engine *engine
}

// NewText constructs the text renderer. Without options it renders the
// embedded template bundle.
func NewText(options ...Option) (*TextRenderer, error) {
	eng, err := newEngine(applyOptions(options))
	if err != nil {
		return nil, err
	}
	return &TextRenderer{engine: eng}, nil
}

// Name identifies the renderer inside a Registry.
func (r *TextRenderer) Name() string { return "text" }

// ContentType reports the MIME type of the rendered output.
func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render executes the text template over the report data.
func (r *TextRenderer) Render(_ context.Context, data Data) ([]byte, error) {
	return r.engine.render(TextTemplate, data)
}
