// Package overlay loads declarative comparison profiles from JSON or YAML
// documents. A profile tunes a named comparison without code changes: pane
// labels, a legend, and per field rules controlling copy permission, badge
// markup, metric color overrides, and exclusion. Rule keys are normalized to
// their index free form, so a rule written against "reviews[0].rating" also
// governs "reviews[new_42].rating". Later documents override earlier ones per
// field, which lets a site profile layer over the embedded default.
package overlay
