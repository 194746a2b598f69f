package metrics

// Entry carries one field's comparison verdict.
type Entry struct {
	Metric  float64 `json:"metric" yaml:"metric"`
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
	Comment string  `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Dict maps field paths to their comparison entries. Keys follow the module's
// dotted path grammar, so nested fields ("author.name") and list items
// ("tags[0]") address entries the same way controls are addressed.
type Dict map[string]Entry
