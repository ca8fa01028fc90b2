// Package buffer is the editable document behind the spotlight editor.
//
// Positions are 0-based (Row, Col) pairs counted in runes, the same unit the
// span package uses, so a selection converts to a span.Span by plain offset
// arithmetic. Ranges are half-open: [Start, End).
//
// Every mutation that changes observable state bumps Version. Mutations that
// change the text also bump TextVersion and record a Change payload.
package buffer
