package overlay

// Copy permission values accepted by FieldRule.Copy. The empty string leaves
// the comparison's own policy untouched.
const (
	CopyAllow = "allow"
	CopyDeny  = "deny"
)

// FieldRule tunes a single field within a comparison profile.
type FieldRule struct {
	Copy         string `json:"copy,omitempty" yaml:"copy,omitempty"`
	Color        string `json:"color,omitempty" yaml:"color,omitempty"`
	Badge        string `json:"badge,omitempty" yaml:"badge,omitempty"`
	Exclude      bool   `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	OriginalPath string `json:"-" yaml:"-"`
}

// Profile collects the presentation and policy overrides for one named
// comparison. Fields is keyed by normalized path.
type Profile struct {
	Comparison string
	Source     string
	LeftLabel  string
	RightLabel string
	Legend     string
	Fields     map[string]FieldRule
}

// Store holds the profiles merged from one or more overlay documents.
type Store struct {
	profiles map[string]Profile
}
