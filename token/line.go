package token

import (
	"strings"
)

// Line is one physical line of input with its trailing newline stripped.
type Line struct {
	Raw    string
	Indent int // leading space count, -1 for blank lines
	Num    int // 1-based
}

// Blank reports whether the line has no content at all.
func (l *Line) Blank() bool {
	return l.Indent < 0
}

// IsComment reports whether the first content character is '#'.
func (l *Line) IsComment() bool {
	return !l.Blank() && l.Raw[l.Indent] == '#'
}

// Content returns the line text after indentation.
func (l *Line) Content() string {
	if l.Blank() {
		return ""
	}
	return l.Raw[l.Indent:]
}

// Pos returns the position of the first content character.
func (l *Line) Pos() Pos {
	col := l.Indent
	if col < 0 {
		col = 0
	}
	return Pos{Line: l.Num, Col: col + 1}
}

// Scan splits d into Lines. The second result reports whether the
// input ended with a newline, which Serialize must reproduce. Content
// lines indented with tabs are rejected; blank lines may contain any
// whitespace.
func Scan(d []byte) ([]Line, bool, error) {
	if len(d) == 0 {
		return nil, false, nil
	}
	s := string(d)
	trailingNL := strings.HasSuffix(s, "\n")
	if trailingNL {
		s = s[:len(s)-1]
	}
	raws := strings.Split(s, "\n")
	lines := make([]Line, len(raws))
	for i, raw := range raws {
		raw = strings.TrimSuffix(raw, "\r")
		ln := Line{Raw: raw, Num: i + 1, Indent: -1}
		for j := 0; j < len(raw); j++ {
			c := raw[j]
			if c == ' ' {
				continue
			}
			if c == '\t' {
				if strings.TrimSpace(raw) == "" {
					break
				}
				return nil, false, NewScanErr(ErrTabIndent, Pos{Line: i + 1, Col: j + 1})
			}
			ln.Indent = j
			break
		}
		lines[i] = ln
	}
	return lines, trailingNL, nil
}
