// Package model defines the data structures for asset link rewriting.
package model

// Path represents a file system path.
type Path string

// Tag is the lower-case name of an HTML element, e.g. "link".
type Tag string

// Tags carrying asset references.
const (
	TagLink   Tag = "link"
	TagScript Tag = "script"
	TagImg    Tag = "img"
)
