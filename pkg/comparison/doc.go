// Package comparison composes two form panes over a shared schema into a
// named side by side comparison. It owns the policy around copying values
// between panes: whether a side accepts copies at all, whether a specific
// control may be copied, and how a copy trigger expands into a concrete plan.
// Scoring delegates to pkg/metrics and declarative tuning to pkg/overlay;
// rendering stays out of scope, so the package works equally for a web layer
// or the CLI.
package comparison
