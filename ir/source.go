package ir

// Span is a half-open range of line indices into a Source.
type Span struct {
	Start, End int
}

// Source retains the scanned lines a document was parsed from, so the
// printer can reproduce unedited regions verbatim.
type Source struct {
	Lines      []string
	TrailingNL bool
}

// Slice returns the verbatim lines covered by sp.
func (s *Source) Slice(sp *Span) []string {
	if s == nil || sp == nil {
		return nil
	}
	return s.Lines[sp.Start:sp.End]
}
