package parse

import (
	"errors"
	"testing"

	"github.com/slidecraft/deckplan/ir"
)

func TestParseDeck(t *testing.T) {
	in := `title: Demo Deck  # the deck
slides:
  - number: 1
    description: First
  - number: 2
    description: Second
`
	res, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := res.Root
	if root.Type != ir.ObjectType || len(root.Values) != 2 {
		t.Fatalf("root: %+v", root)
	}
	title := root.Get("title")
	if title.Type != ir.StringType || title.Str != "Demo Deck" {
		t.Errorf("title: %+v", title)
	}
	if title.Raw != "Demo Deck" {
		t.Errorf("title raw: %q", title.Raw)
	}
	if title.Comment == nil || title.Comment.Inline != "  # the deck" {
		t.Errorf("title inline comment: %+v", title.Comment)
	}
	slides := root.Get("slides")
	if slides.Type != ir.ArrayType || len(slides.Values) != 2 {
		t.Fatalf("slides: %+v", slides)
	}
	first := slides.At(0)
	if !first.InlineFirst {
		t.Errorf("first slide should share the dash line")
	}
	if num := first.Get("number"); num.Int64 == nil || *num.Int64 != 1 {
		t.Errorf("slide 1 number: %+v", num)
	}
	if desc := slides.At(1).Get("description"); desc.Str != "Second" {
		t.Errorf("slide 2 description: %+v", desc)
	}
}

func TestParseScalars(t *testing.T) {
	in := `s: hello
q: "a b"
sq: 'it''s'
i: -42
f: 2.5
b: true
n: null
tilde: ~
empty:
eo: {}
ea: []
`
	res, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := res.Root
	tests := []struct {
		key  string
		typ  ir.Type
		text string
	}{
		{key: "s", typ: ir.StringType, text: "hello"},
		{key: "q", typ: ir.StringType, text: "a b"},
		{key: "sq", typ: ir.StringType, text: "it's"},
		{key: "i", typ: ir.NumberType, text: "-42"},
		{key: "f", typ: ir.NumberType, text: "2.5"},
		{key: "b", typ: ir.BoolType, text: "true"},
		{key: "n", typ: ir.NullType, text: "null"},
		{key: "tilde", typ: ir.NullType, text: "null"},
		{key: "empty", typ: ir.NullType, text: "null"},
		{key: "eo", typ: ir.ObjectType},
		{key: "ea", typ: ir.ArrayType},
	}
	for _, tt := range tests {
		n := root.Get(tt.key)
		if n == nil {
			t.Errorf("%s: missing", tt.key)
			continue
		}
		if n.Type != tt.typ {
			t.Errorf("%s: type %s, want %s", tt.key, n.Type, tt.typ)
			continue
		}
		if tt.text != "" && n.ScalarString() != tt.text {
			t.Errorf("%s: %q, want %q", tt.key, n.ScalarString(), tt.text)
		}
	}
}

func TestParseBlockScalars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "v: |\n  one\n  two\n", want: "one\ntwo\n"},
		{in: "v: |-\n  one\n  two\n", want: "one\ntwo"},
		{in: "v: |+\n  one\n\n", want: "one\n\n"},
		{in: "v: |\n  one\n\n  two\n", want: "one\n\ntwo\n"},
		{in: "v: |\n", want: ""},
	}
	for _, tt := range tests {
		res, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", tt.in, err)
			continue
		}
		v := res.Root.Get("v")
		if v.Type != ir.StringType || v.Str != tt.want {
			t.Errorf("# doc\n%s\n# got %q, want %q", tt.in, v.Str, tt.want)
		}
	}
}

func TestParseZeroIndentSeq(t *testing.T) {
	in := `slides:
- a: 1
- b: 2
after: x
`
	res, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	slides := res.Root.Get("slides")
	if slides.Type != ir.ArrayType || len(slides.Values) != 2 {
		t.Fatalf("slides: %+v", slides)
	}
	if res.Root.Get("after").Str != "x" {
		t.Errorf("entry after the sequence was lost")
	}
}

func TestParseNestedElements(t *testing.T) {
	in := `- - a
  - b
- plain
-
- # note
`
	res, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := res.Root
	if root.Type != ir.ArrayType || len(root.Values) != 4 {
		t.Fatalf("root: %+v", root)
	}
	nested := root.At(0)
	if nested.Type != ir.ArrayType || len(nested.Values) != 2 || !nested.InlineFirst {
		t.Errorf("nested: %+v", nested)
	}
	if root.At(1).Str != "plain" {
		t.Errorf("plain element: %+v", root.At(1))
	}
	if root.At(2).Type != ir.NullType {
		t.Errorf("bare dash should be null")
	}
	if c := root.At(3).Comment; root.At(3).Type != ir.NullType || c == nil || c.Inline != "# note" {
		t.Errorf("commented bare dash: %+v", root.At(3))
	}
}

func TestParseComments(t *testing.T) {
	in := `# leading
# more

title: x

# about slides
slides:
  - 1
`
	res, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	title := res.Root.Get("title")
	if title.Comment == nil || len(title.Comment.Lines) != 3 {
		t.Errorf("title trivia: %+v", title.Comment)
	}
	slides := res.Root.Get("slides")
	if slides.Comment == nil || len(slides.Comment.Lines) != 2 {
		t.Errorf("slides trivia: %+v", slides.Comment)
	}
}

func TestParseTrailingTrivia(t *testing.T) {
	res, err := Parse([]byte("a: 1\n\n# done\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Trailing) != 2 {
		t.Errorf("trailing: %q", res.Trailing)
	}
	res, err = Parse([]byte("# only comments\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Root != nil || len(res.Trailing) != 1 {
		t.Errorf("comments-only doc: root %v trailing %q", res.Root, res.Trailing)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"a: 1\na: 2\n",       // duplicate key
		"a:\n\tb: 1\n",       // tab indent
		"a: 1\n   b: 2\n",    // unexpected indent
		"a: 1\n- x\n",        // dash after map at top level
		"  a: 1\n",           // indented top level
		"a: \"open\n",        // unterminated quote
		"a: \"x\" rest\n",    // trailing content after quote
		"a: |x\n",            // bad block header
		"hello\nworld\n",     // content after scalar document
		"'k: v\n",            // unterminated quoted key
	}
	for _, in := range bad {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("# doc\n%s\n# expected error", in)
		} else if !errors.Is(err, ErrParse) {
			t.Errorf("# doc\n%s\n# error %v does not wrap ErrParse", in, err)
		}
	}
}

func TestParseDuplicateKey(t *testing.T) {
	_, err := Parse([]byte("a: 1\na: 2\n"), Filename("deck.plan"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestParseQuotedKeys(t *testing.T) {
	res, err := Parse([]byte("\"a: b\": 1\n'c d': 2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Root.Get("a: b") == nil || res.Root.Get("c d") == nil {
		t.Errorf("quoted keys not decoded: %+v", res.Root.Values)
	}
}
