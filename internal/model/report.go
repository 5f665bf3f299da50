package model

// Rewrite represents a single asset reference that was replaced.
type Rewrite struct {
	Tag         Tag      `yaml:"tag"`
	Attr        string   `yaml:"attr"`
	Original    string   `yaml:"original"`
	Resolved    string   `yaml:"resolved"` // category-rooted path inside the expression
	Category    Category `yaml:"category"`
	Replacement string   `yaml:"replacement"`
}

// Result holds the outcome of rewriting one document.
type Result struct {
	Source   Path      `yaml:"source"`
	Output   Path      `yaml:"output"`
	Rewrites []Rewrite `yaml:"rewrites"`
	Skipped  int       `yaml:"skipped"` // external or template references left as is
	DryRun   bool      `yaml:"dry_run"`
	Diff     string    `yaml:"-"`
}

// Changed reports whether at least one reference was rewritten.
func (r Result) Changed() bool {
	return len(r.Rewrites) > 0
}
