// Package records reconstructs BIC directory records from column-assigned
// table rows. A record opens when a row's first column carries a
// YYYY-MM-DD creation date; rows without one are wrapped continuations of
// the record above and merge into it field by field. Repeated per-page
// column headers are recognized and skipped. Builder state spans the whole
// document, so a record that wraps across a page break is reassembled
// intact.
package records
