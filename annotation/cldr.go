package annotation

import (
	"errors"
	"fmt"
	"io"

	"github.com/buger/jsonparser"
)

// ReadCLDR reads a dataset in CLDR annotation JSON format. The labels of an
// entry are taken from field "tts", with "labels" accepted instead. Keywords
// are taken from field "default". source names the input in error messages.
func ReadCLDR(r io.Reader, source string) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	ds := &Dataset{Source: source}
	if lang, err := jsonparser.GetString(data, "annotations", "identity", "language"); err == nil {
		ds.Locale = lang
	}
	err = jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		emoji := string(key)
		if vt != jsonparser.Object {
			return &FormatError{Source: source, Emoji: emoji, Reason: "annotation is not an object"}
		}
		entry := Entry{Emoji: emoji}
		var found bool
		var err error
		for _, field := range labelFields {
			if entry.Labels, found, err = jsonStrings(value, field); err != nil {
				return &FormatError{Source: source, Emoji: emoji, Reason: err.Error()}
			} else if found {
				break
			}
		}
		if entry.Keywords, _, err = jsonStrings(value, keywordField); err != nil {
			return &FormatError{Source: source, Emoji: emoji, Reason: err.Error()}
		}
		ds.Entries = append(ds.Entries, entry)
		return nil
	}, "annotations", "annotations")
	if err != nil {
		var ferr *FormatError
		if errors.As(err, &ferr) {
			return nil, ferr
		}
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			err = errNoAnnotations
		}
		return nil, &LoadError{Source: source, Err: err}
	}
	tracer().Infof("read %d annotations from %s", len(ds.Entries), source)
	return ds, nil
}

// Field names within an annotation object.
var labelFields = []string{"tts", "labels"}

const keywordField = "default"

// jsonStrings extracts an array of strings. found is false if the field is
// absent.
func jsonStrings(obj []byte, field string) (list []string, found bool, err error) {
	value, vt, _, err := jsonparser.Get(obj, field)
	if vt == jsonparser.NotExist || errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, false, nil
	} else if err != nil {
		return nil, true, err
	}
	if vt != jsonparser.Array {
		return nil, true, fmt.Errorf("field %q is not a list", field)
	}
	var inner error
	_, err = jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, _ error) {
		if inner != nil {
			return
		}
		if t != jsonparser.String {
			inner = fmt.Errorf("field %q holds a non-string value", field)
			return
		}
		s, e := jsonparser.ParseString(v)
		if e != nil {
			inner = e
			return
		}
		list = append(list, s)
	})
	if inner != nil {
		return nil, true, inner
	}
	if err != nil {
		return nil, true, err
	}
	return list, true, nil
}
