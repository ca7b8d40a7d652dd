// Package contentstream parses decoded PDF content stream data into an
// ordered sequence of operations. Each operation pairs an operator (Tj, Tm,
// m, l, ...) with the operands that preceded it in the stream.
//
// The parser deals only in syntax. Interpreting the operations (tracking
// the text cursor, collecting ruling lines) is left to the text and tables
// packages.
package contentstream
