package ir

import (
	"slices"
	"strconv"
	"strings"
)

// Comment holds the trivia attached to a node. Lines are the verbatim
// full lines (comments and blank lines) above the node's entry; Inline
// is the trailing same-line comment including its separating spaces.
type Comment struct {
	Lines  []string
	Inline string
}

func (c *Comment) Empty() bool {
	return c == nil || len(c.Lines) == 0 && c.Inline == ""
}

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Key and KeyRaw are set when Parent is an object: the entry's key
	// travels on the value node. KeyRaw is the key exactly as written
	// (it may be quoted); empty means render Key canonically.
	Key    string
	KeyRaw string

	Values []*Node

	Str     string
	Bool    bool
	Int64   *int64
	Float64 *float64

	// Raw is the scalar value text exactly as written. It is cleared
	// when the value is replaced, which switches the printer to
	// canonical rendering for this node.
	Raw     string
	Comment *Comment

	// Span covers the entry's source lines, leading trivia included.
	// It is nil for programmatically built nodes and is cleared on this
	// node's ancestors whenever the node is edited.
	Span *Span

	// Indent is the column of the entry's first content character at
	// parse time, -1 when the node was built programmatically.
	Indent int

	// InlineFirst marks a sequence element whose first entry shares the
	// dash line ("- number: 1" as opposed to a dash on its own line).
	InlineFirst bool
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Str: v, Indent: -1}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v, Indent: -1}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f, Indent: -1}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v, Indent: -1}
}

func Null() *Node {
	return &Node{Type: NullType, Indent: -1}
}

func NewObject() *Node {
	return &Node{Type: ObjectType, Indent: -1}
}

func NewArray() *Node {
	return &Node{Type: ArrayType, Indent: -1}
}

// Get returns the value of the named entry of an object node, or nil.
func (n *Node) Get(field string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for _, v := range n.Values {
		if v.Key == field {
			return v
		}
	}
	return nil
}

// At returns the i'th element of an array node, or nil.
func (n *Node) At(i int) *Node {
	if n == nil || n.Type != ArrayType || i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

// Append adds child as the last entry or element of n.
func (n *Node) Append(child *Node) {
	child.Parent = n
	child.ParentIndex = len(n.Values)
	n.Values = append(n.Values, child)
}

// InsertAt places child at index i, shifting later children up.
func (n *Node) InsertAt(i int, child *Node) {
	child.Parent = n
	n.Values = append(n.Values, nil)
	copy(n.Values[i+1:], n.Values[i:])
	n.Values[i] = child
	n.Reindex()
}

// RemoveAt deletes the child at index i, shifting later children down.
// The removed node keeps its comments but loses its parent.
func (n *Node) RemoveAt(i int) *Node {
	child := n.Values[i]
	n.Values = append(n.Values[:i], n.Values[i+1:]...)
	child.Parent = nil
	n.Reindex()
	return child
}

// Reindex restores ParentIndex on all children after a splice.
func (n *Node) Reindex() {
	for i, v := range n.Values {
		v.ParentIndex = i
	}
}

// Touch invalidates the source spans of n and every ancestor, so the
// printer regenerates this entry while siblings keep their bytes.
func (n *Node) Touch() {
	for x := n; x != nil; x = x.Parent {
		x.Span = nil
	}
}

// Clone returns a deep copy of n detached from any parent. Spans are
// dropped since the copy has no position in the retained source;
// comments and raw spellings travel with it.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Type:        n.Type,
		Key:         n.Key,
		KeyRaw:      n.KeyRaw,
		Str:         n.Str,
		Bool:        n.Bool,
		Raw:         n.Raw,
		Indent:      -1,
		InlineFirst: n.InlineFirst,
	}
	if n.Int64 != nil {
		v := *n.Int64
		c.Int64 = &v
	}
	if n.Float64 != nil {
		v := *n.Float64
		c.Float64 = &v
	}
	if n.Comment != nil {
		c.Comment = &Comment{
			Lines:  slices.Clone(n.Comment.Lines),
			Inline: n.Comment.Inline,
		}
	}
	for _, v := range n.Values {
		c.Append(v.Clone())
	}
	return c
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks n and its descendants in document order. f is called
// before and after each node's children; returning false from the pre
// call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// ScalarString returns a node's scalar value in canonical text form,
// without quoting. Composite nodes return "".
func (n *Node) ScalarString() string {
	switch n.Type {
	case StringType:
		return n.Str
	case BoolType:
		return strconv.FormatBool(n.Bool)
	case NumberType:
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10)
		}
		if n.Float64 != nil {
			return formatFloat(*n.Float64)
		}
		return "0"
	case NullType:
		return "null"
	}
	return ""
}

func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'f', -1, 64)
	// whole floats keep a fractional part so they re-parse as floats
	if !strings.Contains(v, ".") {
		v += ".0"
	}
	return v
}
