package formaters

import "io"

type Formatter struct {
	Writer io.Writer
	Output string
	Color  bool
}

// Document is the structured form of a described object.
type Document struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Object   interface{} `json:"object" yaml:"object"`
	Sections interface{} `json:"sections" yaml:"sections"`
}
