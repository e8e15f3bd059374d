package plan

import (
	"strings"
	"testing"
)

func TestExportJSON(t *testing.T) {
	doc := mustParse(t, "title: Demo   # note\nslides:\n  - number: 1\n")
	out, err := doc.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	want := `{"title":"Demo","slides":[{"number":1}]}`
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestExportJSONScalars(t *testing.T) {
	doc := mustParse(t, "s: \"a b\"\ni: -3\nf: 2.5\nb: false\nn: null\nxs: []\n")
	out, err := doc.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	want := `{"s":"a b","i":-3,"f":2.5,"b":false,"n":null,"xs":[]}`
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestExportJSONEmpty(t *testing.T) {
	out, err := New().ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("got %q", out)
	}
}

func TestExportYAML(t *testing.T) {
	doc := mustParse(t, "title: Demo   # note\nslides:\n  - number: 1\n    description: First\n")
	out, err := doc.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}
	s := string(out)
	if strings.Contains(s, "#") {
		t.Errorf("comments should not survive export: %q", s)
	}
	// order preserved: title first, number before description
	ti, ni, di := strings.Index(s, "title"), strings.Index(s, "number"), strings.Index(s, "description")
	if ti < 0 || ni < 0 || di < 0 || ti > ni || ni > di {
		t.Errorf("entry order lost: %q", s)
	}
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("exported YAML does not reparse: %v\n%s", err, s)
	}
	if got := back.Get(mustPath(t, "slides[0].number")); got == nil || *got.Int64 != 1 {
		t.Errorf("exported YAML lost values: %q", s)
	}
}
