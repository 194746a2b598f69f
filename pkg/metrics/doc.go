// Package metrics scores field level differences between two form snapshots.
// Each compared path yields an Entry: a similarity metric in [0, 1], a color
// for the badge rendered next to the control, and a short comment. Scoring is
// equality first, then a string similarity ratio backed by diff-match-patch,
// with colors drawn from a palette that can be derived from a theme manifest.
package metrics
