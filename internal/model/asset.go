package model

// Category represents the kind of static asset a reference points at.
type Category string

const (
	// CategoryJS represents script assets.
	CategoryJS Category = "js"
	// CategoryCSS represents stylesheet assets.
	CategoryCSS Category = "css"
	// CategoryImage is the fallback for everything that is neither a script nor a stylesheet.
	CategoryImage Category = "image"
)

// ReferenceKind classifies the value of an asset reference attribute.
type ReferenceKind int

const (
	// ReferenceMissing indicates the element has no reference attribute.
	ReferenceMissing ReferenceKind = iota
	// ReferenceExternal indicates an absolute URL that is left untouched.
	ReferenceExternal
	// ReferenceTemplate indicates a value already wrapped in template delimiters.
	ReferenceTemplate
	// ReferenceLocal indicates a local path that gets rewritten.
	ReferenceLocal
)

// String returns the lower-case name of the reference kind.
func (k ReferenceKind) String() string {
	switch k {
	case ReferenceMissing:
		return "missing"
	case ReferenceExternal:
		return "external"
	case ReferenceTemplate:
		return "template"
	case ReferenceLocal:
		return "local"
	}

	return "unknown"
}
