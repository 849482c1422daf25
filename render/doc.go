// Package render paints the explorer's bordered views: directory
// listings with nested child inlining, syntax-highlighted text files,
// hex dumps, symlink targets, and inline error panels.
//
// Key Components:
//
// Views:
//   - PrintDir: sorted, windowed directory table with tree-connector
//     nesting, truncation markers, and alternating row shading
//   - PrintFile: text viewer (chroma-highlighted, line-numbered) when
//     the loaded prefix is UTF-8, otherwise a tiered hex dump
//   - PrintLink: link path and target panel
//   - ErrorPanel: the display path for every recoverable failure
//
// Geometry comes from the layout package; cells carry lipgloss styles
// and are truncated and padded span by span so coloring never breaks
// column alignment. View configs clamp themselves to the live terminal
// via AdjustToTerminal and carry one-shot alert messages for the REPL.
//
// All output goes to the io.Writer the caller supplies; nothing in the
// package writes to the terminal directly.
package render
