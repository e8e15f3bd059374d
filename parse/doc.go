// Package parse builds deck plan document trees from text.
//
// Parsing is line-oriented recursive descent over scanned lines. Every
// node records the span of source lines its entry occupied, its leading
// trivia (comment and blank lines) verbatim, and its scalar text as
// written, so the printer can reproduce unedited regions byte for byte.
// The whole parse either succeeds or fails; there is no line-level
// recovery.
package parse
