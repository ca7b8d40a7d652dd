// Package text turns content stream operations into positioned text
// fragments. It keeps a small cursor state machine across a single forward
// pass: text positioning operators move the cursor, text showing operators
// emit a fragment at the cursor's current location.
//
// Fragment positions are draw origins, not post-advance positions. The row
// grouping and column assignment downstream only need the origin.
package text
