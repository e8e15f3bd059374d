package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v cannot be written as a plain scalar
// without changing its meaning.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null", "~":
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	switch v[0] {
	case '#', '-', '?', ':', ',', '{', '}', '[', ']', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`', ' ':
		return true
	}
	if v[len(v)-1] == ' ' {
		return true
	}
	if strings.ContainsAny(v, "\n\t") {
		return true
	}
	if strings.Contains(v, " #") {
		return true
	}
	if strings.Contains(v, ": ") || strings.HasSuffix(v, ":") {
		return true
	}
	return false
}

// Quote returns v as a double-quoted scalar.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, []byte(fmt.Sprintf("\\u%04x", r))...)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, '"'))
}

// ScanQuoted returns the byte length of the quoted scalar at the start
// of s, including both quote characters. s[0] must be ' or ".
func ScanQuoted(s string, pos Pos) (int, error) {
	q := s[0]
	if q == '\'' {
		// single-quoted: '' escapes a quote, no other escapes
		for i := 1; i < len(s); i++ {
			if s[i] != '\'' {
				continue
			}
			if i+1 < len(s) && s[i+1] == '\'' {
				i++
				continue
			}
			return i + 1, nil
		}
		return 0, NewScanErr(ErrUnterminated, pos)
	}
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		if escaped {
			switch c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if i+4 >= len(s) {
					return 0, NewScanErr(ErrBadUnicode, Pos{Line: pos.Line, Col: pos.Col + i})
				}
				for j := i + 1; j <= i+4; j++ {
					if !isHex(s[j]) {
						return 0, NewScanErr(ErrBadUnicode, Pos{Line: pos.Line, Col: pos.Col + j})
					}
				}
				i += 4
			default:
				return 0, NewScanErr(ErrBadEscape, Pos{Line: pos.Line, Col: pos.Col + i})
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			return i + 1, nil
		}
	}
	return 0, NewScanErr(ErrUnterminated, pos)
}

// Unquote decodes a quoted scalar, quotes included.
func Unquote(raw string) (string, error) {
	if len(raw) < 2 {
		return "", ErrUnterminated
	}
	body := raw[1 : len(raw)-1]
	if raw[0] == '\'' {
		return strings.ReplaceAll(body, "''", "'"), nil
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", ErrBadEscape
		}
		switch body[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+4 >= len(body) {
				return "", ErrBadUnicode
			}
			u, err := strconv.ParseUint(body[i+1:i+5], 16, 32)
			if err != nil {
				return "", ErrBadUnicode
			}
			b.WriteRune(rune(u))
			i += 4
		default:
			return "", ErrBadEscape
		}
	}
	return b.String(), nil
}

// SplitInline splits unquoted line content into the value text and the
// trailing comment. The comment begins at the first '#' preceded by a
// space; the returned inline text keeps the separating spaces so it can
// be re-emitted verbatim.
func SplitInline(s string) (val, inline string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && i > 0 && s[i-1] == ' ' {
			val = strings.TrimRight(s[:i], " ")
			return val, s[len(val):]
		}
	}
	return strings.TrimRight(s, " "), ""
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
