// Package cmd provides the command-line interface implementation for fq.
//
// It uses the Cobra library for command structure and Fang for styling.
// The root command starts the interactive explorer session directly; the
// line-oriented command language it reads from stdin is implemented in
// explore.go, split into a directory mode (path navigation, listing
// offsets) and a file mode (scrolling, search, highlight cycling).
//
// The package owns no rendering logic. It wires the entry store to the
// render views and translates typed commands into view configuration
// changes.
package cmd
