package render

// ViewerKind identifies which file viewer produced the output.
type ViewerKind uint8

const (
	ViewerText ViewerKind = iota
	ViewerHex
)

// DirResult reports the outcome of a directory rendering.
type DirResult struct {
	IsError bool
	// Shown is the number of top-level rows actually rendered.
	Shown int
}

// FileResult reports the outcome of a file rendering. For hex output,
// Width is the number of bytes per row so scroll commands can step by
// whole rows; for text it is the content-column width.
type FileResult struct {
	IsError  bool
	Viewer   ViewerKind
	Width    int
	LastLine int // last rendered line number, 0 when unknown
}

// LinkResult reports the outcome of a symlink rendering.
type LinkResult struct {
	IsError bool
	Target  string
}
