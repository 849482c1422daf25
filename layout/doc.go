// Package layout computes adaptive table geometry for the explorer's
// bordered views: per-column widths balanced between minimum and maximum
// terminal widths, the per-row-length width vectors required by the
// rowspan convention, and character-exact cell truncation and padding.
//
// The package is pure text geometry. It measures cells in characters
// (runes), knows nothing about ANSI styling, and performs no IO; callers
// paint the computed cells themselves.
package layout
