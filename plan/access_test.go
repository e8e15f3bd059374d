package plan

import (
	"errors"
	"testing"

	"github.com/slidecraft/deckplan/ir"
)

func mustParse(t *testing.T, in string) *Document {
	t.Helper()
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func mustPath(t *testing.T, s string) ir.Path {
	t.Helper()
	p, err := ir.ParsePath(s)
	if err != nil {
		t.Fatalf("ParsePath(%q): %v", s, err)
	}
	return p
}

func TestGetAbsent(t *testing.T) {
	doc := mustParse(t, "slides:\n  - number: 1\n")
	for _, p := range []string{
		"missing", "slides[999]", "slides[0].nope", "slides[0].number.deeper", "title.x",
	} {
		if doc.Get(mustPath(t, p)) != nil {
			t.Errorf("Get(%s) should be absent", p)
		}
		if doc.Has(mustPath(t, p)) {
			t.Errorf("Has(%s) should be false", p)
		}
	}
	if n := doc.Get(mustPath(t, "slides[0].number")); n == nil || *n.Int64 != 1 {
		t.Errorf("present path: %+v", n)
	}
}

func TestSetKeepsNeighborBytes(t *testing.T) {
	in := "title: Demo   # keep\nslides:\n  - number: 1\n    description: First\n"
	doc := mustParse(t, in)
	if err := doc.Set(mustPath(t, "title"), ir.FromString("New")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := "title: New   # keep\nslides:\n  - number: 1\n    description: First\n"
	if got := string(doc.Serialize()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetEqualValueIsNoop(t *testing.T) {
	in := "title:    Demo    # odd spacing\n"
	doc := mustParse(t, in)
	if err := doc.Set(mustPath(t, "title"), ir.FromString("Demo")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := string(doc.Serialize()); got != in {
		t.Errorf("equal write changed bytes: %q", got)
	}
}

func TestSetCreatesIntermediates(t *testing.T) {
	doc := mustParse(t, "a: 1\n")
	if err := doc.Set(mustPath(t, "b.c"), ir.FromInt(2)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := "a: 1\nb:\n  c: 2\n"
	if got := string(doc.Serialize()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetMorphsScalar(t *testing.T) {
	doc := mustParse(t, "a: 1\n")
	if err := doc.Set(mustPath(t, "a.b"), ir.FromString("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := "a:\n  b: x\n"
	if got := string(doc.Serialize()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetEmptyDocument(t *testing.T) {
	doc := New()
	if err := doc.Set(mustPath(t, "title"), ir.FromString("Demo")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := string(doc.Serialize()); got != "title: Demo\n" {
		t.Errorf("got %q", got)
	}
}

func TestSetSequenceElement(t *testing.T) {
	doc := mustParse(t, "slides:\n  - number: 1\n  - number: 2\n")
	if err := doc.Set(mustPath(t, "slides[1].number"), ir.FromInt(7)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := "slides:\n  - number: 1\n  - number: 7\n"
	if got := string(doc.Serialize()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetNeverCreatesSequences(t *testing.T) {
	in := "a: 1\n"
	doc := mustParse(t, in)
	tests := []struct {
		path string
		e    error
	}{
		{path: "xs[0]", e: ErrNotASequence},
		{path: "a[0]", e: ErrNotASequence},
	}
	for _, tt := range tests {
		err := doc.Set(mustPath(t, tt.path), ir.FromInt(1))
		if !errors.Is(err, tt.e) {
			t.Errorf("Set(%s) err = %v, want %v", tt.path, err, tt.e)
		}
	}
	if got := string(doc.Serialize()); got != in {
		t.Errorf("failed set mutated the document: %q", got)
	}
}

func TestSetIndexOutOfRange(t *testing.T) {
	in := "xs:\n  - 1\n"
	doc := mustParse(t, in)
	err := doc.Set(mustPath(t, "xs[1]"), ir.FromInt(2))
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
	if got := string(doc.Serialize()); got != in {
		t.Errorf("failed set mutated the document: %q", got)
	}
}

func TestDelete(t *testing.T) {
	in := "a: 1\n# about b\nb: 2\nc: 3\n"
	doc := mustParse(t, in)
	if !doc.Delete(mustPath(t, "b")) {
		t.Fatalf("Delete(b) = false")
	}
	want := "a: 1\nc: 3\n"
	if got := string(doc.Serialize()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if doc.Delete(mustPath(t, "b")) {
		t.Errorf("second delete should be a no-op")
	}
	if got := string(doc.Serialize()); got != want {
		t.Errorf("no-op delete changed bytes: %q", got)
	}
}

func TestDeleteSequenceElement(t *testing.T) {
	doc := mustParse(t, "xs:\n  - 1\n  - 2\n  - 3\n")
	if !doc.Delete(mustPath(t, "xs[1]")) {
		t.Fatalf("Delete(xs[1]) = false")
	}
	want := "xs:\n  - 1\n  - 3\n"
	if got := string(doc.Serialize()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if doc.Delete(mustPath(t, "xs[5]")) {
		t.Errorf("out of range delete should report false")
	}
}

func TestSerializeIdentity(t *testing.T) {
	in := "# header\ntitle: Demo\nslides:\n  - number: 1   # one\n\n# footer\n"
	doc := mustParse(t, in)
	if got := string(doc.Serialize()); got != in {
		t.Errorf("round trip changed bytes: %q", got)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("a: 1\n   b: 2\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("err = %v, want ErrSyntax", err)
	}
}
