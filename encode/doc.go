// Package encode renders deck plan document trees back to text.
//
// Rendering prefers the retained source: any node whose span survived
// editing is emitted verbatim from the lines it was parsed from, so an
// untouched document serializes byte for byte and an edited one changes
// only the lines of the entries that were actually touched. Nodes
// without a span are rendered canonically in two-space indentation.
package encode
