package fs

import (
	"io"

	"github.com/fwojciec/tenders"
	"gopkg.in/yaml.v3"
)

// WriteYAML writes records as a YAML sequence of mappings. Keys follow
// tenders.RecordFields order and every value except item_id is a string.
func WriteYAML(w io.Writer, records []*tenders.Record) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range records {
		doc.Content = append(doc.Content, recordNode(r))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func recordNode(r *tenders.Record) *yaml.Node {
	values := r.Values()
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, field := range tenders.RecordFields {
		tag := "!!str"
		if i == 0 {
			tag = "!!int"
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: values[i]},
		)
	}
	return node
}
