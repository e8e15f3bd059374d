// Package ir provides the tree representation for deck plan documents.
//
// A plan document is a tree of Nodes: objects (ordered key/value
// entries), arrays (ordered elements), and scalar leaves. Map entries
// are single subtrees: the value node carries its key, its leading
// comment lines, its inline trailing comment, and the span of source
// lines the entry occupied at parse time. The printer emits spans
// verbatim for subtrees that were never edited, which is what makes
// unmodified input round-trip byte for byte.
package ir
