package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/slidecraft/deckplan/ir"
)

// ApplyPatch applies an RFC 6902 JSON patch to the document natively,
// so entries the patch never touches keep their bytes and comments.
// The patch is atomic: it applies to a copy, and the document is only
// swapped on full success.
func (d *Document) ApplyPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	clone, err := d.clone()
	if err != nil {
		return err
	}
	for i, op := range ops {
		if err := clone.applyOp(op); err != nil {
			return fmt.Errorf("patch op %d: %w", i, err)
		}
	}
	*d = *clone
	return nil
}

func (d *Document) applyOp(op jsonpatch.Operation) error {
	kind, err := opString(op, "op")
	if err != nil {
		return err
	}
	path, err := opString(op, "path")
	if err != nil {
		return err
	}
	tokens, err := pointerTokens(path)
	if err != nil {
		return err
	}
	switch kind {
	case "add":
		v, err := opValue(op)
		if err != nil {
			return err
		}
		return d.patchAdd(tokens, v)
	case "replace":
		v, err := opValue(op)
		if err != nil {
			return err
		}
		return d.patchReplace(tokens, v)
	case "remove":
		return d.patchRemove(tokens)
	case "move":
		node, err := d.patchTake(op)
		if err != nil {
			return err
		}
		// the node re-renders at its new location; comments and
		// spellings travel, line spans do not
		clearSpans(node)
		return d.patchAdd(tokens, node)
	case "copy":
		from, err := opString(op, "from")
		if err != nil {
			return err
		}
		fromToks, err := pointerTokens(from)
		if err != nil {
			return err
		}
		node, err := d.resolveTokens(fromToks)
		if err != nil {
			return err
		}
		return d.patchAdd(tokens, node.Clone())
	case "test":
		v, err := opValue(op)
		if err != nil {
			return err
		}
		node, err := d.resolveTokens(tokens)
		if err != nil {
			return err
		}
		if !ir.Equal(node, v) {
			return fmt.Errorf("test failed at %q", path)
		}
		return nil
	}
	return fmt.Errorf("unsupported patch op %q", kind)
}

// patchTake removes and returns the node at the op's from pointer.
func (d *Document) patchTake(op jsonpatch.Operation) (*ir.Node, error) {
	from, err := opString(op, "from")
	if err != nil {
		return nil, err
	}
	fromToks, err := pointerTokens(from)
	if err != nil {
		return nil, err
	}
	if len(fromToks) == 0 {
		return nil, fmt.Errorf("cannot move the document root")
	}
	node, err := d.resolveTokens(fromToks)
	if err != nil {
		return nil, err
	}
	parent := node.Parent
	oldFirst := firstValue(parent)
	parent.RemoveAt(node.ParentIndex)
	parent.Touch()
	fixInlineFirst(parent, oldFirst)
	return node, nil
}

func (d *Document) patchAdd(tokens []string, v *ir.Node) error {
	if len(tokens) == 0 {
		d.root = v
		v.Parent = nil
		v.Touch()
		return nil
	}
	parent, err := d.resolveTokens(tokens[:len(tokens)-1])
	if err != nil {
		return err
	}
	last := tokens[len(tokens)-1]
	switch parent.Type {
	case ir.ObjectType:
		if v.Key != last {
			v.Key = last
			v.KeyRaw = ""
			v.Span = nil
		}
		if existing := parent.Get(last); existing != nil {
			replaceValue(existing, v)
			return nil
		}
		parent.Append(v)
		parent.Touch()
		return nil
	case ir.ArrayType:
		idx := len(parent.Values)
		if last != "-" {
			idx, err = arrayIndex(last, len(parent.Values)+1)
			if err != nil {
				return err
			}
		}
		v.Key = ""
		v.KeyRaw = ""
		if v.Type == ir.ObjectType && len(v.Values) > 0 {
			v.InlineFirst = true
		}
		oldFirst := firstValue(parent)
		parent.InsertAt(idx, v)
		parent.Touch()
		fixInlineFirst(parent, oldFirst)
		return nil
	}
	return fmt.Errorf("cannot add below a %s value", parent.Type)
}

func (d *Document) patchReplace(tokens []string, v *ir.Node) error {
	if len(tokens) == 0 {
		d.root = v
		v.Parent = nil
		v.Touch()
		return nil
	}
	node, err := d.resolveTokens(tokens)
	if err != nil {
		return err
	}
	replaceValue(node, v)
	return nil
}

func (d *Document) patchRemove(tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("cannot remove the document root")
	}
	parent, err := d.resolveTokens(tokens[:len(tokens)-1])
	if err != nil {
		return err
	}
	last := tokens[len(tokens)-1]
	var idx int
	switch parent.Type {
	case ir.ObjectType:
		child := parent.Get(last)
		if child == nil {
			return fmt.Errorf("no value at %q", last)
		}
		idx = child.ParentIndex
	case ir.ArrayType:
		if idx, err = arrayIndex(last, len(parent.Values)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot remove below a %s value", parent.Type)
	}
	oldFirst := firstValue(parent)
	parent.RemoveAt(idx)
	parent.Touch()
	fixInlineFirst(parent, oldFirst)
	return nil
}

// resolveTokens walks JSON pointer tokens to a node, erroring on any
// absent step.
func (d *Document) resolveTokens(tokens []string) (*ir.Node, error) {
	n := d.root
	if n == nil {
		return nil, fmt.Errorf("empty document")
	}
	for _, t := range tokens {
		switch n.Type {
		case ir.ObjectType:
			n = n.Get(t)
			if n == nil {
				return nil, fmt.Errorf("no value at %q", t)
			}
		case ir.ArrayType:
			idx, err := arrayIndex(t, len(n.Values))
			if err != nil {
				return nil, err
			}
			n = n.At(idx)
		default:
			return nil, fmt.Errorf("cannot descend %q into a %s value", t, n.Type)
		}
	}
	return n, nil
}

func arrayIndex(tok string, n int) (int, error) {
	idx, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad array index %q", tok)
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("array index %d out of range", idx)
	}
	return idx, nil
}

func pointerTokens(p string) ([]string, error) {
	if p == "" {
		return nil, nil
	}
	if p[0] != '/' {
		return nil, fmt.Errorf("invalid JSON pointer %q", p)
	}
	toks := strings.Split(p[1:], "/")
	for i, t := range toks {
		t = strings.ReplaceAll(t, "~1", "/")
		toks[i] = strings.ReplaceAll(t, "~0", "~")
	}
	return toks, nil
}

func opString(op jsonpatch.Operation, key string) (string, error) {
	raw, ok := op[key]
	if !ok || raw == nil {
		return "", fmt.Errorf("patch op missing %q", key)
	}
	var s string
	if err := json.Unmarshal(*raw, &s); err != nil {
		return "", fmt.Errorf("patch op field %q: %w", key, err)
	}
	return s, nil
}

func opValue(op jsonpatch.Operation) (*ir.Node, error) {
	raw, ok := op["value"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("patch op missing \"value\"")
	}
	var v any
	if err := json.Unmarshal(*raw, &v); err != nil {
		return nil, fmt.Errorf("patch op value: %w", err)
	}
	return ir.FromAny(v)
}

func clearSpans(n *ir.Node) {
	n.Visit(func(x *ir.Node, post bool) (bool, error) {
		if !post {
			x.Span = nil
		}
		return true, nil
	})
}
