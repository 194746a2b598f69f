package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// engine wraps a pongo2 template set with a parse cache shared by the text
// and HTML renderers.
type engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

func newEngine(cfg config) (*engine, error) {
	var loaders []pongo2.TemplateLoader
	if cfg.templateDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.templateDir)
		if err != nil {
			return nil, fmt.Errorf("report: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	files := cfg.templateFS
	if files == nil && cfg.templateDir == "" {
		files = TemplatesFS()
	}
	if files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(files))
	}

	registerReportFilters()

	return &engine{
		templateSet: pongo2.NewSet("formcompare", loaders...),
		templates:   make(map[string]*pongo2.Template),
	}, nil
}

func (e *engine) render(path string, data Data) ([]byte, error) {
	tmpl, err := e.template(path)
	if err != nil {
		return nil, err
	}

	viewContext, err := convertToContext(data)
	if err != nil {
		return nil, fmt.Errorf("report: convert data: %w", err)
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()

	if err != nil {
		return nil, fmt.Errorf("report: execute template %q: %w", path, err)
	}
	return buf.Bytes(), nil
}

func (e *engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

// convertToContext exposes the data under its JSON field names, so templates
// address rows the same way API consumers do.
func convertToContext(data Data) (pongo2.Context, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return pongo2.Context(out), nil
}
