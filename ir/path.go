package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slidecraft/deckplan/token"
)

// Segment is one step of a Path: either an object field name or an
// array index, never both.
type Segment struct {
	Field *string
	Index *int
}

func Key(name string) Segment {
	return Segment{Field: &name}
}

func Index(i int) Segment {
	return Segment{Index: &i}
}

func (s Segment) IsIndex() bool {
	return s.Index != nil
}

// String returns the segment in path syntax: a field name (quoted when
// needed) or "[i]".
func (s Segment) String() string {
	if s.Index != nil {
		return fmt.Sprintf("[%d]", *s.Index)
	}
	if s.Field == nil {
		return ""
	}
	f := *s.Field
	if token.NeedsQuote(f) || strings.ContainsAny(f, ".[") {
		return token.Quote(f)
	}
	return f
}

// Path addresses a node in a document tree. Paths are transient query
// arguments; they hold no references into the tree.
type Path []Segment

// String returns the path in "a.b[0].c" syntax.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && !seg.IsIndex() {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// ParsePath parses "a.b[0].c" syntax into a Path. Field names may be
// quoted to include '.', '[' or other special characters.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	var p Path
	i := 0
	for i < len(s) {
		switch s[i] {
		case '.':
			if i == 0 || i == len(s)-1 {
				return nil, fmt.Errorf("invalid path %q: empty segment", s)
			}
			i++
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("invalid path %q: unclosed '['", s)
			}
			idx, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("invalid path %q: bad index %q", s, s[i+1:i+j])
			}
			p = append(p, Index(idx))
			i += j + 1
		case '\'', '"':
			n, err := token.ScanQuoted(s[i:], token.Pos{Line: 1, Col: i + 1})
			if err != nil {
				return nil, fmt.Errorf("invalid path %q: %w", s, err)
			}
			f, err := token.Unquote(s[i : i+n])
			if err != nil {
				return nil, fmt.Errorf("invalid path %q: %w", s, err)
			}
			p = append(p, Key(f))
			i += n
		default:
			j := strings.IndexAny(s[i:], ".[")
			if j < 0 {
				p = append(p, Key(s[i:]))
				i = len(s)
				break
			}
			if j == 0 {
				return nil, fmt.Errorf("invalid path %q: empty segment", s)
			}
			p = append(p, Key(s[i:i+j]))
			i += j
		}
	}
	return p, nil
}
