package plan

import (
	"fmt"

	"github.com/slidecraft/deckplan/encode"
	"github.com/slidecraft/deckplan/ir"
	"github.com/slidecraft/deckplan/parse"
)

// Document is an editable deck plan. It keeps the tree together with
// the source text it was parsed from, so serialization reproduces
// every line no edit has touched.
type Document struct {
	root     *ir.Node
	src      *ir.Source
	trailing []string
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Parse builds a Document from plan text. Errors carry positions and
// unwrap to ErrSyntax.
func Parse(d []byte, opts ...parse.ParseOption) (*Document, error) {
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return &Document{root: res.Root, src: res.Source, trailing: res.Trailing}, nil
}

// Root returns the document's root node, nil for an empty document.
func (d *Document) Root() *ir.Node {
	return d.root
}

// Serialize renders the document to text. A document serialized right
// after parsing is byte-identical to its input.
func (d *Document) Serialize() []byte {
	return encode.Encode(d.root,
		encode.Source(d.src), encode.Trailing(d.trailing))
}

// Format re-renders the whole document from the tree instead of the
// retained source, normalizing spacing after colons and dashes while
// keeping comments, value spellings, and indentation columns.
func (d *Document) Format() []byte {
	return encode.Encode(d.root, encode.Trailing(d.trailing))
}

// clone deep-copies the document by round-tripping it through its own
// text form.
func (d *Document) clone() (*Document, error) {
	return Parse(d.Serialize())
}
