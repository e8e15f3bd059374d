package plan

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/slidecraft/deckplan/ir"
)

// ExportYAML renders the document as standard YAML with entry order
// preserved. Comments do not survive export.
func (d *Document) ExportYAML() ([]byte, error) {
	return yaml.Marshal(orderedValue(d.root))
}

// ExportJSON renders the document as compact JSON with entry order
// preserved.
func (d *Document) ExportJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, d.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// orderedValue converts a tree to the yaml package's ordered form:
// objects become MapSlices so export keeps the document's entry order.
func orderedValue(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, len(n.Values))
		for _, v := range n.Values {
			ms = append(ms, yaml.MapItem{Key: v.Key, Value: orderedValue(v)})
		}
		return ms
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = orderedValue(v)
		}
		return res
	}
	return ir.ToAny(n)
}

func writeJSON(buf *bytes.Buffer, n *ir.Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Type {
	case ir.ObjectType:
		buf.WriteByte('{')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(v.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.StringType:
		s, err := json.Marshal(n.Str)
		if err != nil {
			return err
		}
		buf.Write(s)
	default:
		buf.WriteString(n.ScalarString())
	}
	return nil
}
