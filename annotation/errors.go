package annotation

import (
	"errors"
	"fmt"
)

var (
	errNoDataset     = errors.New("no dataset")
	errNoAnnotations = errors.New("no annotations object")
)

// LoadError is returned if a dataset cannot be read at all: the file is
// missing or unreadable, it is not valid JSON or YAML, or it does not
// contain an annotations object.
type LoadError struct {
	Source string // file name or other description of the input
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("cannot load annotation dataset: %v", e.Err)
	}
	return fmt.Sprintf("cannot load annotation dataset %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FormatError is returned for a dataset entry which does not have the
// expected shape, e.g. an entry without labels.
type FormatError struct {
	Source string // file name or other description of the input
	Emoji  string // key of the offending entry
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed annotation in %s: entry %+q: %s", e.sourceName(), e.Emoji, e.Reason)
}

func (e *FormatError) sourceName() string {
	if e.Source == "" {
		return "dataset"
	}
	return e.Source
}
