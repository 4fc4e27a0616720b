package annotation

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML reads a dataset from YAML with the same structure as the CLDR JSON
// files (see ReadCLDR). Entries keep the order of the document.
func ReadYAML(r io.Reader, source string) (*Dataset, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &LoadError{Source: source, Err: err}
	}
	root := deref(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = deref(root.Content[0])
	}
	outer := mappingValue(root, "annotations")
	anns := mappingValue(outer, "annotations")
	if anns == nil || anns.Kind != yaml.MappingNode {
		return nil, &LoadError{Source: source, Err: errNoAnnotations}
	}
	ds := &Dataset{Source: source}
	if lang := mappingValue(mappingValue(outer, "identity"), "language"); lang != nil && lang.Kind == yaml.ScalarNode {
		ds.Locale = lang.Value
	}
	for i := 0; i+1 < len(anns.Content); i += 2 {
		emoji := deref(anns.Content[i]).Value
		value := deref(anns.Content[i+1])
		if value.Kind != yaml.MappingNode {
			return nil, &FormatError{Source: source, Emoji: emoji, Reason: "annotation is not an object"}
		}
		entry := Entry{Emoji: emoji}
		var found bool
		var err error
		for _, field := range labelFields {
			if entry.Labels, found, err = yamlStrings(value, field); err != nil {
				return nil, &FormatError{Source: source, Emoji: emoji, Reason: err.Error()}
			} else if found {
				break
			}
		}
		if entry.Keywords, _, err = yamlStrings(value, keywordField); err != nil {
			return nil, &FormatError{Source: source, Emoji: emoji, Reason: err.Error()}
		}
		ds.Entries = append(ds.Entries, entry)
	}
	tracer().Infof("read %d annotations from %s", len(ds.Entries), source)
	return ds, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if deref(n.Content[i]).Value == key {
			return deref(n.Content[i+1])
		}
	}
	return nil
}

func yamlStrings(obj *yaml.Node, field string) ([]string, bool, error) {
	seq := mappingValue(obj, field)
	if seq == nil {
		return nil, false, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, true, fmt.Errorf("field %q is not a list", field)
	}
	list := make([]string, 0, len(seq.Content))
	for _, item := range seq.Content {
		item = deref(item)
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return nil, true, fmt.Errorf("field %q holds a non-string value", field)
		}
		list = append(list, item.Value)
	}
	return list, true, nil
}
