package plan

import (
	"fmt"

	"github.com/slidecraft/deckplan/ir"
)

// Get resolves path to a node. A path that leads nowhere returns nil;
// out-of-range indices and fields of non-objects are absent, not
// errors.
func (d *Document) Get(path ir.Path) *ir.Node {
	n := d.root
	for _, seg := range path {
		if n == nil {
			return nil
		}
		if seg.IsIndex() {
			n = n.At(*seg.Index)
		} else {
			n = n.Get(*seg.Field)
		}
	}
	return n
}

// Has reports whether path resolves to a node.
func (d *Document) Has(path ir.Path) bool {
	return d.Get(path) != nil
}

// Set writes v at path, taking ownership of v. Intermediate objects
// are created as needed, and a scalar or null in the middle of the
// path is converted to an object; sequences are never created or
// extended implicitly. The write is atomic: on error the document is
// unchanged. Writing a value equal to the existing one is a no-op, so
// the entry keeps its source bytes.
func (d *Document) Set(path ir.Path, v *ir.Node) error {
	if v == nil {
		v = ir.Null()
	}
	if len(path) == 0 {
		d.root = v
		v.Parent = nil
		v.Touch()
		return nil
	}
	if err := d.checkSet(path); err != nil {
		return err
	}
	if cur := d.Get(path); cur != nil && ir.Equal(cur, v) {
		return nil
	}
	cur := d.root
	if cur == nil {
		cur = ir.NewObject()
		d.root = cur
	}
	for i, seg := range path {
		last := i == len(path)-1
		if seg.IsIndex() {
			child := cur.At(*seg.Index)
			if last {
				replaceValue(child, v)
				return nil
			}
			cur = child
			continue
		}
		if cur.Type != ir.ObjectType {
			morphToObject(cur)
		}
		child := cur.Get(*seg.Field)
		if child == nil {
			if last {
				child = v
			} else {
				child = ir.NewObject()
			}
			child.Key = *seg.Field
			child.Span = nil
			cur.Append(child)
			cur.Touch()
			if last {
				return nil
			}
			cur = child
			continue
		}
		if last {
			replaceValue(child, v)
			return nil
		}
		cur = child
	}
	return nil
}

// checkSet validates the whole path before Set mutates anything.
func (d *Document) checkSet(path ir.Path) error {
	cur := d.root
	creating := cur == nil
	for _, seg := range path {
		if seg.IsIndex() {
			if creating || cur == nil || cur.Type != ir.ArrayType {
				return fmt.Errorf("%w at %s", ErrNotASequence, path)
			}
			if *seg.Index < 0 || *seg.Index >= len(cur.Values) {
				return fmt.Errorf("%w: [%d] at %s", ErrIndexOutOfRange, *seg.Index, path)
			}
			cur = cur.At(*seg.Index)
			continue
		}
		if creating {
			continue
		}
		if cur.Type == ir.ArrayType {
			return fmt.Errorf("cannot set field %q on a sequence at %s", *seg.Field, path)
		}
		if cur.Type != ir.ObjectType {
			creating = true
			continue
		}
		next := cur.Get(*seg.Field)
		if next == nil {
			creating = true
			continue
		}
		cur = next
	}
	return nil
}

// Delete removes the entry or element at path, reporting whether
// anything was removed. Absent paths are a no-op; comments attached to
// the removed entry go with it.
func (d *Document) Delete(path ir.Path) bool {
	if len(path) == 0 {
		return false
	}
	parent := d.Get(path[:len(path)-1])
	if parent == nil {
		return false
	}
	seg := path[len(path)-1]
	var idx int
	if seg.IsIndex() {
		if parent.Type != ir.ArrayType || *seg.Index < 0 || *seg.Index >= len(parent.Values) {
			return false
		}
		idx = *seg.Index
	} else {
		child := parent.Get(*seg.Field)
		if child == nil {
			return false
		}
		idx = child.ParentIndex
	}
	oldFirst := firstValue(parent)
	parent.RemoveAt(idx)
	parent.Touch()
	fixInlineFirst(parent, oldFirst)
	return true
}

// replaceValue overwrites dst's value with v's in place, keeping dst's
// key, comments, and position. The raw spelling is dropped so the
// printer renders the new value canonically.
func replaceValue(dst, v *ir.Node) {
	dst.Type = v.Type
	dst.Values = v.Values
	for i, c := range dst.Values {
		c.Parent = dst
		c.ParentIndex = i
	}
	dst.Str = v.Str
	dst.Bool = v.Bool
	dst.Int64 = v.Int64
	dst.Float64 = v.Float64
	dst.Raw = ""
	dst.InlineFirst = dst.InlineFirst || v.InlineFirst
	dst.Touch()
}

// morphToObject turns a scalar or null node into an empty object so a
// deeper path can be created through it.
func morphToObject(n *ir.Node) {
	n.Type = ir.ObjectType
	n.Values = nil
	n.Str = ""
	n.Bool = false
	n.Int64 = nil
	n.Float64 = nil
	n.Raw = ""
	n.Touch()
}

func firstValue(n *ir.Node) *ir.Node {
	if len(n.Values) == 0 {
		return nil
	}
	return n.Values[0]
}

// fixInlineFirst repairs the dash-line layout of a node whose first
// child changed: the old first child's span still contains the dash
// line and the new first child's span lacks one, so both must be
// rendered canonically.
func fixInlineFirst(n *ir.Node, oldFirst *ir.Node) {
	if !n.InlineFirst {
		return
	}
	if len(n.Values) == 0 {
		n.InlineFirst = false
		return
	}
	if n.Values[0] != oldFirst {
		if oldFirst != nil {
			oldFirst.Span = nil
		}
		n.Values[0].Span = nil
	}
}
