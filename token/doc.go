// Package token provides line-level scanning for deck plan documents.
//
// Plan documents are indentation-significant, so the scanner works on
// physical lines rather than a character stream: each Line records its
// verbatim text, its indentation, and its 1-based line number. The
// parser consumes Lines; the printer re-emits Line text verbatim for
// regions that were not edited.
package token
