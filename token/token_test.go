package token

import (
	"errors"
	"testing"
)

func TestScan(t *testing.T) {
	lines, trailingNL, err := Scan([]byte("a: 1\n  b: 2\n\n# c"))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if trailingNL {
		t.Errorf("input has no trailing newline")
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0].Indent != 0 || lines[0].Content() != "a: 1" {
		t.Errorf("line 1: %+v", lines[0])
	}
	if lines[1].Indent != 2 || lines[1].Content() != "b: 2" {
		t.Errorf("line 2: %+v", lines[1])
	}
	if !lines[2].Blank() {
		t.Errorf("line 3 should be blank")
	}
	if !lines[3].IsComment() {
		t.Errorf("line 4 should be a comment")
	}
	if got := lines[1].Pos(); got.Line != 2 || got.Col != 3 {
		t.Errorf("line 2 pos: %v", got)
	}
}

func TestScanTrailingNL(t *testing.T) {
	_, trailingNL, err := Scan([]byte("a: 1\n"))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !trailingNL {
		t.Errorf("trailing newline not reported")
	}
}

func TestScanTabIndent(t *testing.T) {
	_, _, err := Scan([]byte("a:\n\tb: 2\n"))
	if !errors.Is(err, ErrTabIndent) {
		t.Errorf("expected ErrTabIndent, got %v", err)
	}
	// whitespace-only lines may contain tabs
	if _, _, err := Scan([]byte("a: 1\n\t\n")); err != nil {
		t.Errorf("blank line with tab: %v", err)
	}
}

func TestNeedsQuote(t *testing.T) {
	quoted := []string{
		"", "true", "false", "null", "~", "3", "3.5", "1e14",
		"- x", ": y", "#z", "a: b", "a:", "trailing ", " leading",
		"has\ttab", "has\nnewline", "a #b", "|block", "'q",
	}
	for _, v := range quoted {
		if !NeedsQuote(v) {
			t.Errorf("NeedsQuote(%q) = false", v)
		}
	}
	plain := []string{"hello", "a-b", "a#b", "First slide", "x2", "a.b"}
	for _, v := range plain {
		if NeedsQuote(v) {
			t.Errorf("NeedsQuote(%q) = true", v)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, v := range []string{
		"", "plain", "with \"quotes\"", "line\nbreak", "tab\there",
		"back\\slash", "control\x01char", "ünïcode",
	} {
		got, err := Unquote(Quote(v))
		if err != nil {
			t.Errorf("Unquote(Quote(%q)): %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("Quote/Unquote %q -> %q", v, got)
		}
	}
}

func TestScanQuoted(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
		e    error
	}{
		{in: `"ab" rest`, n: 4, want: "ab"},
		{in: `"a\"b"`, n: 6, want: `a"b`},
		{in: `'it''s'`, n: 7, want: "it's"},
		{in: `"a\u0041"`, n: 9, want: "aA"},
		{in: `"open`, e: ErrUnterminated},
		{in: `'open`, e: ErrUnterminated},
		{in: `"bad\q"`, e: ErrBadEscape},
		{in: `"bad\u00g0"`, e: ErrBadUnicode},
	}
	for _, tt := range tests {
		n, err := ScanQuoted(tt.in, Pos{Line: 1, Col: 1})
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("ScanQuoted(%q) err = %v, want %v", tt.in, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("ScanQuoted(%q): %v", tt.in, err)
			continue
		}
		if n != tt.n {
			t.Errorf("ScanQuoted(%q) = %d, want %d", tt.in, n, tt.n)
			continue
		}
		got, err := Unquote(tt.in[:n])
		if err != nil || got != tt.want {
			t.Errorf("Unquote(%q) = %q, %v, want %q", tt.in[:n], got, err, tt.want)
		}
	}
}

func TestSplitInline(t *testing.T) {
	tests := []struct {
		in, val, inline string
	}{
		{in: "v", val: "v"},
		{in: "v  # c", val: "v", inline: "  # c"},
		{in: "a#b", val: "a#b"},
		{in: "v   ", val: "v"},
		{in: "# c", val: "# c"},
	}
	for _, tt := range tests {
		val, inline := SplitInline(tt.in)
		if val != tt.val || inline != tt.inline {
			t.Errorf("SplitInline(%q) = %q, %q, want %q, %q",
				tt.in, val, inline, tt.val, tt.inline)
		}
	}
}
