package encode

import (
	"strings"

	"github.com/slidecraft/deckplan/ir"
	"github.com/slidecraft/deckplan/token"
)

// Encode renders root to document text. A nil root renders only the
// trailing trivia, which covers empty and comments-only documents.
func Encode(root *ir.Node, opts ...EncodeOption) []byte {
	eOpts := &encOpts{}
	for _, f := range opts {
		f(eOpts)
	}
	p := &printer{src: eOpts.src}
	if root != nil {
		p.emitRoot(root)
	}
	p.lines = append(p.lines, eOpts.trailing...)
	if len(p.lines) == 0 {
		return nil
	}
	out := strings.Join(p.lines, "\n")
	trailingNL := eOpts.src == nil || eOpts.src.TrailingNL
	if trailingNL {
		out += "\n"
	}
	return []byte(out)
}

type printer struct {
	src   *ir.Source
	lines []string
}

// emitSpan emits a pristine node verbatim from the retained source.
func (p *printer) emitSpan(n *ir.Node) bool {
	if n.Span == nil || p.src == nil {
		return false
	}
	p.lines = append(p.lines, p.src.Slice(n.Span)...)
	return true
}

func (p *printer) emitRoot(n *ir.Node) {
	if p.emitSpan(n) {
		return
	}
	p.lines = append(p.lines, commentLines(n)...)
	switch {
	case n.Type == ir.ObjectType && len(n.Values) > 0:
		ci := childIndent(n.Values, 0)
		for _, v := range n.Values {
			p.emitEntry(v, ci)
		}
	case n.Type == ir.ArrayType && len(n.Values) > 0:
		ci := childIndent(n.Values, 0)
		for _, v := range n.Values {
			p.emitElement(v, ci)
		}
	case n.Type == ir.StringType && n.Raw == "" && blockEligible(n.Str):
		p.emitBlockLit(n.Str, "", 0, inlineComment(n))
	default:
		p.lines = append(p.lines, scalarText(n)+inlineComment(n))
	}
}

// emitEntry renders one "key: value" entry of an object at indent.
func (p *printer) emitEntry(n *ir.Node, indent int) {
	if p.emitSpan(n) {
		return
	}
	p.lines = append(p.lines, commentLines(n)...)
	keyText := n.KeyRaw
	if keyText == "" {
		keyText = canonicalKey(n.Key)
	}
	p.emitValue(n, strings.Repeat(" ", indent)+keyText+":", indent)
}

// emitValue renders a node's value after head, which is the key (with
// colon) of an entry or the dash of a sequence element. Leading trivia
// is the caller's concern.
func (p *printer) emitValue(n *ir.Node, head string, indent int) {
	inline := inlineComment(n)
	switch {
	case n.Type == ir.ObjectType && len(n.Values) > 0:
		p.lines = append(p.lines, head+inline)
		ci := childIndent(n.Values, indent+2)
		for _, v := range n.Values {
			p.emitEntry(v, ci)
		}
	case n.Type == ir.ArrayType && len(n.Values) > 0:
		p.lines = append(p.lines, head+inline)
		ci := childIndent(n.Values, indent+2)
		for _, v := range n.Values {
			p.emitElement(v, ci)
		}
	case n.Type == ir.ObjectType:
		p.lines = append(p.lines, head+" {}"+inline)
	case n.Type == ir.ArrayType:
		p.lines = append(p.lines, head+" []"+inline)
	case n.Type == ir.NullType && n.Raw == "":
		// an empty value renders as a bare key or dash
		p.lines = append(p.lines, head+inline)
	case n.Type == ir.StringType && n.Raw == "" && blockEligible(n.Str):
		p.emitBlockLit(n.Str, head, indent, inline)
	default:
		p.lines = append(p.lines, head+" "+scalarText(n)+inline)
	}
}

// emitElement renders one "- ..." element of a sequence at indent.
func (p *printer) emitElement(n *ir.Node, indent int) {
	if p.emitSpan(n) {
		return
	}
	p.lines = append(p.lines, commentLines(n)...)
	lead := strings.Repeat(" ", indent)
	if n.InlineFirst && len(n.Values) > 0 {
		p.emitInlineFirst(n, indent)
		return
	}
	p.emitValue(n, lead+"-", indent)
}

// emitInlineFirst renders an element whose first child shares the dash
// line. The first child is rendered at the child indent and the dash is
// then grafted onto its first line; a pristine first child already
// carries the original dash line in its span.
func (p *printer) emitInlineFirst(n *ir.Node, indent int) {
	ci := childIndent(n.Values, indent+2)
	if ci < indent+2 {
		ci = indent + 2
	}
	emitChild := p.emitEntry
	if n.Type == ir.ArrayType {
		emitChild = p.emitElement
	}
	first := n.Values[0]
	graftAt := -1
	if first.Span == nil || p.src == nil {
		graftAt = len(p.lines) + len(commentLines(first))
	}
	emitChild(first, ci)
	if graftAt >= 0 && graftAt < len(p.lines) {
		ln := p.lines[graftAt]
		p.lines[graftAt] = ln[:indent] + "-" + ln[indent+1:]
	}
	for _, v := range n.Values[1:] {
		emitChild(v, ci)
	}
}

func (p *printer) emitBlockLit(s, head string, indent int, inline string) {
	header := "|"
	body := s
	switch {
	case !strings.HasSuffix(s, "\n"):
		header = "|-"
	case strings.HasSuffix(s, "\n\n") || strings.Trim(s, "\n") == "":
		header = "|+"
		body = strings.TrimSuffix(s, "\n")
	default:
		body = strings.TrimSuffix(s, "\n")
	}
	if head != "" {
		header = head + " " + header
	}
	p.lines = append(p.lines, header+inline)
	lead := strings.Repeat(" ", indent+2)
	for _, ln := range strings.Split(body, "\n") {
		if ln == "" {
			p.lines = append(p.lines, "")
			continue
		}
		p.lines = append(p.lines, lead+ln)
	}
}

// blockEligible reports whether s round-trips through a literal block
// scalar: multi-line, with no line that is blank-but-nonempty or starts
// with whitespace of its own.
func blockEligible(s string) bool {
	if !strings.Contains(s, "\n") {
		return false
	}
	for _, ln := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if ln == "" {
			continue
		}
		if ln[0] == ' ' || ln[0] == '\t' {
			return false
		}
		if strings.TrimSpace(ln) == "" {
			return false
		}
	}
	return true
}

// scalarText returns a scalar's single-line value text, preferring the
// spelling it was parsed with.
func scalarText(n *ir.Node) string {
	if n.Raw != "" {
		return n.Raw
	}
	switch n.Type {
	case ir.StringType:
		if token.NeedsQuote(n.Str) {
			return token.Quote(n.Str)
		}
		return n.Str
	case ir.ObjectType:
		return "{}"
	case ir.ArrayType:
		return "[]"
	}
	return n.ScalarString()
}

func canonicalKey(key string) string {
	if token.NeedsQuote(key) {
		return token.Quote(key)
	}
	return key
}

// childIndent picks the indent for a composite's children: the first
// child that remembers its parsed column wins, def otherwise.
func childIndent(vals []*ir.Node, def int) int {
	for _, v := range vals {
		if v.Indent >= 0 {
			return v.Indent
		}
	}
	return def
}

func commentLines(n *ir.Node) []string {
	if n.Comment == nil {
		return nil
	}
	return n.Comment.Lines
}

func inlineComment(n *ir.Node) string {
	if n.Comment == nil {
		return ""
	}
	return n.Comment.Inline
}
