package encode

import (
	"bytes"
	"testing"

	"github.com/slidecraft/deckplan/ir"
	"github.com/slidecraft/deckplan/parse"
)

// Untouched documents must serialize byte for byte, whatever their
// layout quirks.
func TestRoundTripIdentity(t *testing.T) {
	docs := []string{
		"",
		"a: 1",
		"a: 1\n",
		"# only comments\n",
		"# no newline at end",
		"42\n",
		"hello\n",
		"\"quoted doc\"\n",
		"title: Demo Deck  # the deck\nslides:\n  - number: 1\n    description: First\n  - number: 2\n    description: Second\n",
		"# leading\n# more\n\ntitle: x\n\n# about slides\nslides:\n  - 1\n  - 2\n\n# trailing\n",
		"slides:\n- a: 1\n- b: 2\nafter: x\n",
		"notes: |\n  line one\n\n  line two\nafter: 1\n",
		"notes: |-\n  chomped\n",
		"keep: |+\n  kept\n\n",
		"q: \"a b\"\nsq: 'it''s'\n",
		"weird:   spaced value   # comment\n",
		"- 1\n- 2\n",
		"- - a\n  - b\n- plain\n",
		"a:\n  b:\n    c: deep\n",
		"empty:\nafter: 1\n",
		"eo: {}\nea: []\n",
		"n: null\nt: ~\n",
		"deep:\n    over: indented\n    by: four\n",
		"\"a: b\": quoted key\n",
		"-\n- # note\n",
		"mixed: 1\nlist:\n  - x\n  -\n    y: 2\n",
	}
	for _, in := range docs {
		res, err := parse.Parse([]byte(in))
		if err != nil {
			t.Errorf("# doc\n%s\n# parse error %v", in, err)
			continue
		}
		out := Encode(res.Root, Source(res.Source), Trailing(res.Trailing))
		if !bytes.Equal(out, []byte(in)) {
			t.Errorf("# doc\n%q\n# round trip\n%q", in, out)
		}
	}
}

// Touching one entry regenerates only that entry's lines.
func TestTouchedEntryRegenerates(t *testing.T) {
	in := "a: 1   # one\nb: 2   # two\n"
	res, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b := res.Root.Get("b")
	v := int64(3)
	b.Int64 = &v
	b.Raw = ""
	b.Touch()
	out := Encode(res.Root, Source(res.Source), Trailing(res.Trailing))
	want := "a: 1   # one\nb: 3   # two\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCanonicalRender(t *testing.T) {
	root := ir.NewObject()
	title := ir.FromString("Demo")
	title.Key = "title"
	root.Append(title)
	slides := ir.NewArray()
	slides.Key = "slides"
	root.Append(slides)
	s1 := ir.NewObject()
	s1.InlineFirst = true
	num := ir.FromInt(1)
	num.Key = "number"
	s1.Append(num)
	desc := ir.FromString("First")
	desc.Key = "description"
	s1.Append(desc)
	slides.Append(s1)

	out := Encode(root)
	want := "title: Demo\nslides:\n  - number: 1\n    description: First\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCanonicalQuoting(t *testing.T) {
	root := ir.NewObject()
	add := func(key, val string) {
		n := ir.FromString(val)
		n.Key = key
		root.Append(n)
	}
	add("plain", "hello")
	add("spacey", "trailing ")
	add("numeric", "3")
	add("multi", "one\ntwo")
	out := Encode(root)
	want := "plain: hello\nspacey: \"trailing \"\nnumeric: \"3\"\nmulti: |-\n  one\n  two\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestNullAndEmptyRender(t *testing.T) {
	root := ir.NewObject()
	n := ir.Null()
	n.Key = "nothing"
	root.Append(n)
	eo := ir.NewObject()
	eo.Key = "eo"
	root.Append(eo)
	ea := ir.NewArray()
	ea.Key = "ea"
	root.Append(ea)
	out := Encode(root)
	want := "nothing:\neo: {}\nea: []\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
