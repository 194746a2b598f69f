// Package report renders a resolved comparison into inspectable summaries.
// BuildData flattens a comparison, its metrics and its copy decisions into a
// row per control path; renderers turn that into plain text, HTML or JSON.
// Renderers register by name in a Registry so callers can pick the output
// format at runtime, and the text/HTML formats render through pongo2
// templates that can be swapped out per renderer.
package report
