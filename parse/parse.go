package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/slidecraft/deckplan/ir"
	"github.com/slidecraft/deckplan/token"
)

var (
	ErrParse        = errors.New("parse error")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Result is a parsed document: the tree, the retained source, and any
// trivia lines after the last content line. Root is nil when the input
// holds no content lines at all (empty or comments-only input).
type Result struct {
	Root     *ir.Node
	Source   *ir.Source
	Trailing []string
}

// Parse builds a document tree from d. The parse is all or nothing: a
// malformed line fails the whole call with a positioned error.
func Parse(d []byte, opts ...ParseOption) (*Result, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	lines, trailingNL, err := token.Scan(d)
	if err != nil {
		return nil, wrapParseErr(err, pOpts)
	}
	src := &ir.Source{TrailingNL: trailingNL || len(lines) == 0}
	src.Lines = make([]string, len(lines))
	for i := range lines {
		src.Lines[i] = lines[i].Raw
	}
	p := &parser{lines: lines}
	root, trailing, err := p.parseDoc()
	if err != nil {
		return nil, wrapParseErr(err, pOpts)
	}
	return &Result{Root: root, Source: src, Trailing: trailing}, nil
}

func wrapParseErr(err error, opts *parseOpts) error {
	if opts.filename != "" {
		return fmt.Errorf("%w: %s: %w", ErrParse, opts.filename, err)
	}
	return fmt.Errorf("%w: %w", ErrParse, err)
}

type parser struct {
	lines []token.Line
	i     int
}

func (p *parser) parseDoc() (*ir.Node, []string, error) {
	ci := p.peekContent()
	if ci >= len(p.lines) {
		return nil, p.rawRange(0, len(p.lines)), nil
	}
	first := &p.lines[ci]
	if first.Indent != 0 {
		return nil, nil, token.UnexpectedErr("indentation at top level", first.Pos())
	}
	root, err := p.parseBlock(0)
	if err != nil {
		return nil, nil, err
	}
	if ci := p.peekContent(); ci < len(p.lines) {
		return nil, nil, token.UnexpectedErr("content after document", p.lines[ci].Pos())
	}
	root.Span = &ir.Span{Start: 0, End: p.i}
	trailing := p.rawRange(p.i, len(p.lines))
	return root, trailing, nil
}

// peekContent returns the index of the next content line without
// consuming the trivia before it.
func (p *parser) peekContent() int {
	for j := p.i; j < len(p.lines); j++ {
		ln := &p.lines[j]
		if !ln.Blank() && !ln.IsComment() {
			return j
		}
	}
	return len(p.lines)
}

// consumeTrivia advances over blank and comment lines, returning their
// verbatim text.
func (p *parser) consumeTrivia() []string {
	start := p.i
	for p.i < len(p.lines) {
		ln := &p.lines[p.i]
		if !ln.Blank() && !ln.IsComment() {
			break
		}
		p.i++
	}
	return p.rawRange(start, p.i)
}

func (p *parser) rawRange(from, to int) []string {
	if from >= to {
		return nil
	}
	res := make([]string, to-from)
	for j := from; j < to; j++ {
		res[j-from] = p.lines[j].Raw
	}
	return res
}

// parseBlock parses a map or sequence whose entries sit at exactly
// indent. p.i may point at trivia belonging to the first entry.
func (p *parser) parseBlock(indent int) (*ir.Node, error) {
	ci := p.peekContent()
	ln := &p.lines[ci]
	if isDash(ln.Content()) {
		return p.parseSeq(indent)
	}
	if _, _, _, ok := scanKey(ln.Content()); ok {
		return p.parseMap(indent)
	}
	// scalar document
	trivia := p.consumeTrivia()
	var (
		node *ir.Node
		err  error
	)
	if ln.Content()[0] == '|' {
		p.i++
		node, err = p.parseBlockLit(ln.Content(), ln, indent)
	} else {
		node, err = p.parseInlineValue(ln.Content(), ln, indent)
		p.i++
	}
	if err != nil {
		return nil, err
	}
	attachTrivia(node, trivia)
	node.Span = &ir.Span{Start: ci - len(trivia), End: p.i}
	node.Indent = indent
	return node, nil
}

func (p *parser) parseMap(indent int) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType, Indent: indent}
	seen := map[string]bool{}
	for {
		ci := p.peekContent()
		if ci >= len(p.lines) {
			break
		}
		ln := &p.lines[ci]
		if ln.Indent < indent {
			break
		}
		if ln.Indent > indent {
			return nil, token.UnexpectedErr("indent", ln.Pos())
		}
		if isDash(ln.Content()) {
			break
		}
		entry, err := p.parseEntry(indent)
		if err != nil {
			return nil, err
		}
		if seen[entry.Key] {
			return nil, token.NewScanErr(
				fmt.Errorf("%w %q", ErrDuplicateKey, entry.Key), ln.Pos())
		}
		seen[entry.Key] = true
		obj.Append(entry)
	}
	return obj, nil
}

// parseEntry parses one "key: value" entry, leading trivia included.
func (p *parser) parseEntry(indent int) (*ir.Node, error) {
	triviaStart := p.i
	trivia := p.consumeTrivia()
	ln := &p.lines[p.i]
	key, keyRaw, rest, ok := scanKey(ln.Content())
	if !ok {
		return nil, token.ExpectedErr("'key:' entry", ln.Pos())
	}
	val, err := p.parseEntryValue(rest, ln, indent)
	if err != nil {
		return nil, err
	}
	val.Key = key
	val.KeyRaw = keyRaw
	attachTrivia(val, trivia)
	val.Span = &ir.Span{Start: triviaStart, End: p.i}
	val.Indent = indent
	return val, nil
}

// parseEntryValue parses what follows a key's colon: an inline scalar,
// a block literal, or a nested block on the following lines.
func (p *parser) parseEntryValue(rest string, ln *token.Line, indent int) (*ir.Node, error) {
	restTrim := strings.TrimLeft(rest, " ")
	switch {
	case restTrim == "" || restTrim[0] == '#':
		inline := ""
		if restTrim != "" {
			inline = rest
		}
		node, err := p.parseNestedBlock(indent)
		if err != nil {
			return nil, err
		}
		if inline != "" {
			ensureComment(node).Inline = inline
		}
		return node, nil
	case restTrim[0] == '|':
		p.i++
		return p.parseBlockLit(restTrim, ln, indent)
	default:
		node, err := p.parseInlineValue(restTrim, ln, indent)
		if err != nil {
			return nil, err
		}
		p.i++
		return node, nil
	}
}

// parseNestedBlock parses the block value of a "key:" entry whose rest
// of line is empty: a deeper block, a sequence at the same indent, or
// null when neither follows. The caller has not consumed the key line;
// p.i still points at it.
func (p *parser) parseNestedBlock(indent int) (*ir.Node, error) {
	p.i++
	ci := p.peekContent()
	if ci < len(p.lines) {
		ln := &p.lines[ci]
		if ln.Indent > indent {
			return p.parseBlock(ln.Indent)
		}
		if ln.Indent == indent && isDash(ln.Content()) {
			// zero-indented sequence under its key
			return p.parseSeq(indent)
		}
	}
	return &ir.Node{Type: ir.NullType, Indent: -1}, nil
}

func (p *parser) parseSeq(indent int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType, Indent: indent}
	for {
		ci := p.peekContent()
		if ci >= len(p.lines) {
			break
		}
		ln := &p.lines[ci]
		if ln.Indent < indent {
			break
		}
		if ln.Indent > indent {
			return nil, token.UnexpectedErr("indent", ln.Pos())
		}
		if !isDash(ln.Content()) {
			break
		}
		elt, err := p.parseElement(indent)
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
	}
	return arr, nil
}

// parseElement parses one "- ..." sequence element. Content sharing
// the dash line is handled by rewriting the dash to a space and
// re-entering block parsing at the deeper virtual indent; the original
// line text is already captured in the Source.
func (p *parser) parseElement(indent int) (*ir.Node, error) {
	triviaStart := p.i
	trivia := p.consumeTrivia()
	ln := &p.lines[p.i]
	content := ln.Content()
	var (
		elt *ir.Node
		err error
	)
	switch {
	case content == "-":
		p.i++
		elt, err = p.parseNestedElementBlock(indent)
	default:
		valOffset := 1
		for valOffset < len(content) && content[valOffset] == ' ' {
			valOffset++
		}
		valContent := content[valOffset:]
		virtual := indent + valOffset
		switch {
		case valContent == "" || valContent[0] == '#':
			// bare "- " element, possibly commented
			p.i++
			elt, err = p.parseNestedElementBlock(indent)
			if err == nil && valContent != "" {
				ensureComment(elt).Inline = content[valOffset:]
			}
		case isDash(valContent):
			p.rewriteDash(indent)
			elt, err = p.parseSeq(virtual)
			markInlineFirst(elt)
		case isKeyLine(valContent):
			p.rewriteDash(indent)
			elt, err = p.parseMap(virtual)
			markInlineFirst(elt)
		case valContent[0] == '|':
			p.i++
			elt, err = p.parseBlockLit(valContent, ln, indent)
		default:
			elt, err = p.parseInlineValue(valContent, ln, indent)
			p.i++
		}
	}
	if err != nil {
		return nil, err
	}
	attachTrivia(elt, trivia)
	elt.Span = &ir.Span{Start: triviaStart, End: p.i}
	elt.Indent = indent
	return elt, nil
}

// parseNestedElementBlock handles a dash on its own line: the element
// body is the deeper block that follows, or null.
func (p *parser) parseNestedElementBlock(indent int) (*ir.Node, error) {
	ci := p.peekContent()
	if ci < len(p.lines) && p.lines[ci].Indent > indent {
		return p.parseBlock(p.lines[ci].Indent)
	}
	return &ir.Node{Type: ir.NullType, Indent: -1}, nil
}

// rewriteDash blanks out the dash of the current line so the rest of
// the line parses as the first line of a nested block.
func (p *parser) rewriteDash(indent int) {
	ln := &p.lines[p.i]
	raw := []byte(ln.Raw)
	raw[indent] = ' '
	ln.Raw = string(raw)
	ln.Indent = indent + 1
	for ln.Indent < len(ln.Raw) && ln.Raw[ln.Indent] == ' ' {
		ln.Indent++
	}
}

func markInlineFirst(n *ir.Node) {
	if len(n.Values) > 0 {
		n.InlineFirst = true
	}
}

// parseInlineValue parses a scalar (or empty flow container) from line
// content, capturing its raw spelling and trailing comment.
func (p *parser) parseInlineValue(content string, ln *token.Line, indent int) (*ir.Node, error) {
	node := &ir.Node{Indent: -1}
	switch content[0] {
	case '\'', '"':
		n, err := token.ScanQuoted(content, ln.Pos())
		if err != nil {
			return nil, err
		}
		str, err := token.Unquote(content[:n])
		if err != nil {
			return nil, token.NewScanErr(err, ln.Pos())
		}
		after := content[n:]
		if strings.TrimSpace(after) != "" && !strings.HasPrefix(strings.TrimLeft(after, " "), "#") {
			return nil, token.UnexpectedErr(
				fmt.Sprintf("trailing content %q after quoted scalar", strings.TrimSpace(after)), ln.Pos())
		}
		node.Type = ir.StringType
		node.Str = str
		node.Raw = content[:n]
		if strings.TrimSpace(after) != "" {
			ensureComment(node).Inline = after
		}
		return node, nil
	default:
		val, inline := token.SplitInline(content)
		typeScalar(node, val)
		node.Raw = val
		if inline != "" {
			ensureComment(node).Inline = inline
		}
		return node, nil
	}
}

// typeScalar infers the type of an unquoted scalar value.
func typeScalar(node *ir.Node, v string) {
	switch v {
	case "null", "~", "":
		node.Type = ir.NullType
		return
	case "true":
		node.Type = ir.BoolType
		node.Bool = true
		return
	case "false":
		node.Type = ir.BoolType
		node.Bool = false
		return
	case "{}":
		node.Type = ir.ObjectType
		return
	case "[]":
		node.Type = ir.ArrayType
		return
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		node.Type = ir.NumberType
		node.Int64 = &i
		return
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		node.Type = ir.NumberType
		node.Float64 = &f
		return
	}
	node.Type = ir.StringType
	node.Str = v
}

// parseBlockLit parses a literal block scalar. head is the header text
// starting at '|'; p.i points at the first body line.
func (p *parser) parseBlockLit(head string, ln *token.Line, indent int) (*ir.Node, error) {
	headVal, inline := token.SplitInline(head)
	chomp := byte(0)
	switch headVal {
	case "|":
	case "|-", "|+":
		chomp = headVal[1]
	default:
		return nil, token.UnexpectedErr(fmt.Sprintf("block scalar header %q", headVal), ln.Pos())
	}
	// collect the block body: deeper lines and interleaved blanks
	start := p.i
	end := start
	contentIndent := -1
	for j := start; j < len(p.lines); j++ {
		bl := &p.lines[j]
		if bl.Blank() {
			continue
		}
		if bl.Indent <= indent {
			break
		}
		if contentIndent < 0 {
			contentIndent = bl.Indent
		}
		if bl.Indent < contentIndent {
			break
		}
		end = j + 1
	}
	if chomp == '+' {
		// keep-chomping owns trailing blank lines too
		for end < len(p.lines) && p.lines[end].Blank() {
			end++
		}
	}
	var body []string
	for j := start; j < end; j++ {
		bl := &p.lines[j]
		if bl.Blank() {
			body = append(body, "")
			continue
		}
		body = append(body, bl.Raw[contentIndent:])
	}
	p.i = end
	str := strings.Join(body, "\n")
	switch chomp {
	case '-':
		str = strings.TrimRight(str, "\n")
	case '+':
		str += "\n"
	default:
		str = strings.TrimRight(str, "\n")
		if str != "" || len(body) > 0 {
			str += "\n"
		}
	}
	node := &ir.Node{Type: ir.StringType, Str: str, Indent: -1}
	if inline != "" {
		ensureComment(node).Inline = inline
	}
	return node, nil
}

func attachTrivia(n *ir.Node, trivia []string) {
	if len(trivia) == 0 {
		return
	}
	ensureComment(n).Lines = trivia
}

func ensureComment(n *ir.Node) *ir.Comment {
	if n.Comment == nil {
		n.Comment = &ir.Comment{}
	}
	return n.Comment
}

func isDash(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ")
}

// isKeyLine reports whether content begins with a map key and colon.
func isKeyLine(content string) bool {
	_, _, _, ok := scanKey(content)
	return ok
}

// scanKey splits "key: rest" content. keyRaw is the key exactly as
// written, quotes included; rest is everything after the colon.
func scanKey(content string) (key, keyRaw, rest string, ok bool) {
	if content == "" {
		return "", "", "", false
	}
	if content[0] == '\'' || content[0] == '"' {
		n, err := token.ScanQuoted(content, token.Pos{Line: 1, Col: 1})
		if err != nil {
			return "", "", "", false
		}
		if n >= len(content) || content[n] != ':' {
			return "", "", "", false
		}
		if n+1 < len(content) && content[n+1] != ' ' {
			return "", "", "", false
		}
		k, err := token.Unquote(content[:n])
		if err != nil {
			return "", "", "", false
		}
		return k, content[:n], content[n+1:], true
	}
	for j := 0; j < len(content); j++ {
		c := content[j]
		if c == '#' && j > 0 && content[j-1] == ' ' {
			// comment starts before any key colon
			return "", "", "", false
		}
		if c != ':' {
			continue
		}
		if j+1 < len(content) && content[j+1] != ' ' {
			continue
		}
		keyRaw = content[:j]
		key = strings.TrimRight(keyRaw, " ")
		if key == "" {
			return "", "", "", false
		}
		return key, keyRaw, content[j+1:], true
	}
	return "", "", "", false
}
