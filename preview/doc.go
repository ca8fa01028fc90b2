// Package preview computes the selection-aware de-emphasis of styled text.
//
// Renderer mutes every position that is not inside an excluded span (the
// user's selections). Session is the glue that feeds a renderer the current
// text and selections, keeps pinned selections aligned across edits, and
// hands each result to a display sink.
package preview
