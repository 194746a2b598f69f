package report

import "context"

// HTMLTemplate is the template path the HTML renderer executes.
const HTMLTemplate = "templates/report.html.tpl"

// HTMLRenderer renders report data as an HTML fragment suitable for embedding
// in a host page. Legend and badge markup arrive pre-sanitized from the
// overlay loader and render unescaped; everything else is escaped.
type HTMLRenderer struct {
	engine *engine
}

// NewHTML constructs the HTML renderer. Without options it renders the
// embedded template bundle.
func NewHTML(options ...Option) (*HTMLRenderer, error) {
	eng, err := newEngine(applyOptions(options))
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{engine: eng}, nil
}

// Name identifies the renderer inside a Registry.
func (r *HTMLRenderer) Name() string { return "html" }

// ContentType reports the MIME type of the rendered output.
func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render executes the HTML template over the report data.
func (r *HTMLRenderer) Render(_ context.Context, data Data) ([]byte, error) {
	return r.engine.render(HTMLTemplate, data)
}
