package encode

import "github.com/slidecraft/deckplan/ir"

type encOpts struct {
	src      *ir.Source
	trailing []string
}

type EncodeOption func(*encOpts)

// Source supplies the retained source lines that pristine node spans
// index into. Without it every node renders canonically.
func Source(src *ir.Source) EncodeOption {
	return func(o *encOpts) { o.src = src }
}

// Trailing supplies the verbatim trivia lines that followed the last
// content line of the parsed document.
func Trailing(lines []string) EncodeOption {
	return func(o *encOpts) { o.trailing = lines }
}
