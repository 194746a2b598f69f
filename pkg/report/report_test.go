package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcompare/pkg/comparison"
	"github.com/goliatone/go-formcompare/pkg/copyop"
	"github.com/goliatone/go-formcompare/pkg/metrics"
	"github.com/goliatone/go-formcompare/pkg/overlay"
	"github.com/goliatone/go-formcompare/pkg/report"
	"github.com/goliatone/go-formcompare/pkg/testsupport"
)

const overlayDoc = `{
  "comparisons": {
    "order-review": {
      "leftLabel": "Expected Order",
      "rightLabel": "Extracted Order",
      "legend": "<strong>Similarity legend</strong>",
      "fields": {
        "internal_notes": {"exclude": true},
        "status": {"badge": "<em>QA</em>"}
      }
    }
  }
}`

func testComparison(t *testing.T) *comparison.Comparison {
	t.Helper()

	store, err := overlay.Load([]byte(overlayDoc))
	if err != nil {
		t.Fatalf("load overlay: %v", err)
	}
	c, err := comparison.New("order-review",
		comparison.Pane{Schema: "Order"},
		comparison.Pane{Schema: "Order"},
		comparison.WithOverlay(store),
	)
	if err != nil {
		t.Fatalf("new comparison: %v", err)
	}
	return c
}

func testData(t *testing.T) report.Data {
	t.Helper()

	dict := metrics.Dict{
		"name":           {Metric: 1, Color: "green", Comment: "Values match exactly"},
		"status":         {Metric: 0.5, Color: "yellow", Comment: "String similarity: 50%"},
		"internal_notes": {Metric: 0, Color: "orange", Comment: "One value is missing"},
		"reviews.rating": {Metric: 0, Comment: "Different values: 4 vs 5"},
	}
	decisions := []copyop.Decision{
		copyop.Decide("reviews[0].rating"),
		copyop.Decide("name"),
		copyop.Decide("name"),
	}
	return report.BuildData(testComparison(t), dict, decisions)
}

func TestBuildData(t *testing.T) {
	data := testData(t)

	want := report.Data{
		Name:       "order-review",
		LeftLabel:  "Expected Order",
		RightLabel: "Extracted Order",
		Legend:     "<strong>Similarity legend</strong>",
		Rows: []report.Row{
			{Path: "name", Label: "Name", Kind: "plain", Behavior: "standardCopy", Metric: 1, Color: "green", Comment: "Values match exactly"},
			{Path: "reviews[0].rating", Label: "Rating", Kind: "subfield", Behavior: "updateExistingSubfield", Comment: "Different values: 4 vs 5"},
			{Path: "status", Label: "Status", Kind: "plain", Behavior: "standardCopy", Metric: 0.5, Color: "yellow", Comment: "String similarity: 50%", Badge: "<em>QA</em>"},
		},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("report data mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDataWithoutMetrics(t *testing.T) {
	data := report.BuildData(testComparison(t), nil, []copyop.Decision{copyop.Decide("reviews[2]")})

	want := []report.Row{
		{Path: "reviews[2]", Label: "Reviews 3", Kind: "fullItem", Behavior: "addNewItem"},
	}
	if diff := cmp.Diff(want, data.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRendererRender(t *testing.T) {
	renderer, err := report.NewText()
	if err != nil {
		t.Fatalf("new text renderer: %v", err)
	}
	if got := renderer.ContentType(); got != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}

	out, err := renderer.Render(testsupport.Context(), testData(t))
	if err != nil {
		t.Fatalf("render text: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"order-review: Expected Order vs Extracted Order",
		"########## 100%  standardCopy  Name [name] :: Values match exactly",
		"#####----- 50%  standardCopy  Status [status] :: String similarity: 50%",
		"---------- 0%  updateExistingSubfield  Rating [reviews[0].rating] :: Different values: 4 vs 5",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("text output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "internal_notes") {
		t.Fatalf("excluded field leaked into text output:\n%s", text)
	}
}

func TestTextRendererGolden(t *testing.T) {
	renderer, err := report.NewText()
	if err != nil {
		t.Fatalf("new text renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), testData(t))
	if err != nil {
		t.Fatalf("render text: %v", err)
	}

	goldenPath := filepath.Join("testdata", "report.golden.txt")
	if testsupport.WriteMaybeGolden(t, goldenPath, out) {
		return
	}

	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, string(out)); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestHTMLRendererRender(t *testing.T) {
	renderer, err := report.NewHTML()
	if err != nil {
		t.Fatalf("new html renderer: %v", err)
	}
	if got := renderer.ContentType(); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}

	out, err := renderer.Render(testsupport.Context(), testData(t))
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`data-comparison="order-review"`,
		"<strong>Similarity legend</strong>",
		`class="metric-yellow"`,
		"<em>QA</em>",
		"<code>reviews[0].rating</code>",
		"updateExistingSubfield",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html output missing %q:\n%s", want, html)
		}
	}
}

func TestHTMLRendererEscapesValues(t *testing.T) {
	renderer, err := report.NewHTML()
	if err != nil {
		t.Fatalf("new html renderer: %v", err)
	}

	data := report.Data{
		Name:       "escape-check",
		LeftLabel:  "L",
		RightLabel: "R",
		Rows: []report.Row{
			{Path: "notes", Label: "Notes", Kind: "plain", Behavior: "standardCopy", Comment: `Different values: a<b vs "c"`},
		},
	}
	out, err := renderer.Render(testsupport.Context(), data)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}

	if !strings.Contains(string(out), "Different values: a&lt;b vs &quot;c&quot;") {
		t.Fatalf("comment was not escaped:\n%s", out)
	}
}

func TestJSONRendererRender(t *testing.T) {
	renderer := report.NewJSON()
	if got := renderer.ContentType(); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	data := testData(t)
	out, err := renderer.Render(testsupport.Context(), data)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}

	var decoded report.Data
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal rendered json: %v", err)
	}
	if diff := cmp.Diff(data, decoded); diff != "" {
		t.Fatalf("json roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRendererTemplateOverrides(t *testing.T) {
	data := testData(t)

	cases := map[string]report.Option{
		"fs":  report.WithTemplatesFS(os.DirFS("testdata/override")),
		"dir": report.WithTemplatesDir("testdata/override"),
	}
	for name, option := range cases {
		t.Run(name, func(t *testing.T) {
			renderer, err := report.NewText(option)
			if err != nil {
				t.Fatalf("new text renderer: %v", err)
			}
			out, err := renderer.Render(testsupport.Context(), data)
			if err != nil {
				t.Fatalf("render text: %v", err)
			}
			if got := strings.TrimSpace(string(out)); got != "custom order-review rows=3" {
				t.Fatalf("unexpected override output %q", got)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry, err := report.DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}

	if diff := cmp.Diff([]string{"html", "json", "text"}, registry.List()); diff != "" {
		t.Fatalf("renderer names mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("text") {
		t.Fatal("expected text renderer to be registered")
	}
	if _, err := registry.Get("yaml"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := report.NewRegistry()
	if err := registry.Register(report.NewJSON()); err != nil {
		t.Fatalf("register json renderer: %v", err)
	}

	err := registry.Register(report.NewJSON())
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate registration error, got %v", err)
	}
}
