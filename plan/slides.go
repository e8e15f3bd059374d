package plan

import (
	"fmt"

	"github.com/slidecraft/deckplan/ir"
)

// Field and key names the slide editor uses unless overridden.
const (
	DefaultField     = "slides"
	DefaultNumberKey = "number"
	DefaultGroupKey  = "group"
)

// SlideList edits the slide sequence of a document: renumbering,
// insertion, deletion, and reordering, all keeping untouched slides
// byte for byte.
type SlideList struct {
	doc      *Document
	field    string
	numKey   string
	groupKey string
}

type SlideOption func(*SlideList)

// WithField names the top-level field holding the slide sequence.
func WithField(name string) SlideOption {
	return func(s *SlideList) { s.field = name }
}

// WithNumberKey names the per-slide position key.
func WithNumberKey(name string) SlideOption {
	return func(s *SlideList) { s.numKey = name }
}

// WithGroupKey names the per-slide group key.
func WithGroupKey(name string) SlideOption {
	return func(s *SlideList) { s.groupKey = name }
}

// Slides returns a slide editor over d.
func Slides(d *Document, opts ...SlideOption) *SlideList {
	s := &SlideList{
		doc:      d,
		field:    DefaultField,
		numKey:   DefaultNumberKey,
		groupKey: DefaultGroupKey,
	}
	for _, f := range opts {
		f(s)
	}
	return s
}

// list resolves the slide sequence node. An absent or null field is an
// empty list (nil, nil); any other non-sequence value is an error.
func (s *SlideList) list() (*ir.Node, error) {
	n := s.doc.Get(ir.Path{ir.Key(s.field)})
	if n == nil || n.Type == ir.NullType {
		return nil, nil
	}
	if n.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: field %q holds a %s", ErrNotASequence, s.field, n.Type)
	}
	return n, nil
}

// materialize resolves the slide sequence, creating it when the field
// is absent or null.
func (s *SlideList) materialize() (*ir.Node, error) {
	path := ir.Path{ir.Key(s.field)}
	n := s.doc.Get(path)
	switch {
	case n == nil:
		if err := s.doc.Set(path, ir.NewArray()); err != nil {
			return nil, err
		}
		return s.doc.Get(path), nil
	case n.Type == ir.ArrayType:
		return n, nil
	case n.Type == ir.NullType:
		replaceValue(n, ir.NewArray())
		return n, nil
	}
	return nil, fmt.Errorf("%w: field %q holds a %s", ErrNotASequence, s.field, n.Type)
}

// Len returns the number of slides.
func (s *SlideList) Len() (int, error) {
	list, err := s.list()
	if err != nil || list == nil {
		return 0, err
	}
	return len(list.Values), nil
}

// Items returns the slide nodes in order. The returned slice is live:
// the nodes belong to the document.
func (s *SlideList) Items() ([]*ir.Node, error) {
	list, err := s.list()
	if err != nil || list == nil {
		return nil, err
	}
	return list.Values, nil
}

// Renumber rewrites every slide's position key to its 1-based index.
// Slides already carrying the right number keep their bytes, so
// renumbering is idempotent; a slide without the key gets it prepended.
// Elements that are not mappings are left alone.
func (s *SlideList) Renumber() error {
	list, err := s.list()
	if err != nil || list == nil {
		return err
	}
	for i, elt := range list.Values {
		s.setNumber(elt, int64(i+1))
	}
	return nil
}

func (s *SlideList) setNumber(elt *ir.Node, n int64) {
	if elt.Type != ir.ObjectType {
		return
	}
	num := elt.Get(s.numKey)
	if num == nil {
		entry := ir.FromInt(n)
		entry.Key = s.numKey
		oldFirst := firstValue(elt)
		elt.InsertAt(0, entry)
		elt.Touch()
		fixInlineFirst(elt, oldFirst)
		return
	}
	if num.Type == ir.NumberType && num.Int64 != nil && *num.Int64 == n {
		return
	}
	replaceValue(num, ir.FromInt(n))
}

// Insert places slide at index i, shifting later slides up, and
// renumbers. i may equal the current length to append. The slide field
// is created when absent. Insert takes ownership of slide; nil inserts
// an empty mapping.
func (s *SlideList) Insert(i int, slide *ir.Node) error {
	list, err := s.list()
	if err != nil {
		return err
	}
	n := 0
	if list != nil {
		n = len(list.Values)
	}
	if i < 0 || i > n {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, n)
	}
	if list, err = s.materialize(); err != nil {
		return err
	}
	if slide == nil {
		slide = ir.NewObject()
	}
	slide.Span = nil
	if slide.Type == ir.ObjectType && len(slide.Values) > 0 {
		slide.InlineFirst = true
	}
	oldFirst := firstValue(list)
	list.InsertAt(i, slide)
	list.Touch()
	fixInlineFirst(list, oldFirst)
	return s.Renumber()
}

// Delete removes the slide at index i, its comments included, and
// renumbers the rest.
func (s *SlideList) Delete(i int) error {
	list, err := s.list()
	if err != nil {
		return err
	}
	n := 0
	if list != nil {
		n = len(list.Values)
	}
	if i < 0 || i >= n {
		return fmt.Errorf("%w: delete %d of %d", ErrIndexOutOfRange, i, n)
	}
	oldFirst := firstValue(list)
	list.RemoveAt(i)
	list.Touch()
	fixInlineFirst(list, oldFirst)
	return s.Renumber()
}

type moveOpts struct {
	group *string
}

type MoveOption func(*moveOpts)

// MoveToGroup also sets the moved slide's group key.
func MoveToGroup(g string) MoveOption {
	return func(o *moveOpts) { o.group = &g }
}

// Move takes the slide at from and reinserts it at insertion point to,
// where to addresses a gap in the pre-move list: 0 is before the first
// slide and len is after the last. Moving to the slide's own position
// is a no-op apart from options. On success the renumbered document
// text is returned; on error the document is untouched.
func (s *SlideList) Move(from, to int, opts ...MoveOption) ([]byte, error) {
	mo := &moveOpts{}
	for _, f := range opts {
		f(mo)
	}
	list, err := s.list()
	if err != nil {
		return nil, err
	}
	n := 0
	if list != nil {
		n = len(list.Values)
	}
	if from < 0 || from >= n {
		return nil, fmt.Errorf("%w: move from %d of %d", ErrIndexOutOfRange, from, n)
	}
	if to < 0 || to > n {
		return nil, fmt.Errorf("%w: move to %d of %d", ErrIndexOutOfRange, to, n)
	}
	target := to
	if to > from {
		// the removal below shifts everything after from down one
		target = to - 1
	}
	slide := list.Values[from]
	if target != from {
		oldFirst := firstValue(list)
		list.RemoveAt(from)
		list.InsertAt(target, slide)
		list.Touch()
		fixInlineFirst(list, oldFirst)
	}
	if mo.group != nil {
		s.setGroup(slide, *mo.group)
	}
	if err := s.Renumber(); err != nil {
		return nil, err
	}
	return s.doc.Serialize(), nil
}

func (s *SlideList) setGroup(slide *ir.Node, group string) {
	if slide.Type != ir.ObjectType {
		return
	}
	g := slide.Get(s.groupKey)
	if g == nil {
		entry := ir.FromString(group)
		entry.Key = s.groupKey
		slide.Append(entry)
		slide.Touch()
		return
	}
	if g.Type == ir.StringType && g.Str == group {
		return
	}
	replaceValue(g, ir.FromString(group))
}
