// Package tables groups positioned text fragments into table rows and maps
// them onto columns delimited by vertical ruling lines.
//
// The pipeline runs in three steps: GroupRows clusters fragments that share a
// baseline, DetectRulings recovers the x positions of the vertical lines drawn
// on a page, and AssignColumns distributes each row's cells into the intervals
// between consecutive rulings.
package tables
