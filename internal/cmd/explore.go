package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/filequery/fq/entry"
	"github.com/filequery/fq/render"
)

// minUsableWidth is the narrowest terminal the views can render into.
const minUsableWidth = 40

// explorer is one interactive session: the entry store, the current
// position, and the three view configurations the commands mutate.
type explorer struct {
	store *entry.Store
	cur   entry.ID

	dirCfg  *render.DirConfig
	fileCfg *render.FileConfig
	linkCfg *render.LinkConfig

	// fixedRows/fixedWidth override terminal sizing when non-zero.
	fixedRows  int
	fixedWidth int

	interactive bool

	lastFile render.FileResult

	in  *bufio.Scanner
	out io.Writer
}

func newExplorer(in io.Reader, out io.Writer) *explorer {
	return &explorer{
		store:       entry.NewStore(),
		dirCfg:      render.NewDirConfig(),
		fileCfg:     render.NewFileConfig(),
		linkCfg:     render.NewLinkConfig(),
		interactive: true,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Run starts the session at dir and reads commands until quit, EOF or
// context cancellation.
func (ex *explorer) Run(ctx context.Context, dir string) error {
	ex.adjustDimensions()
	if err := ex.waitForUsableTerminal(ctx); err != nil {
		return err
	}

	ex.cur = ex.store.FromPath(dir, entry.Base)
	ex.redraw()

	if !ex.interactive {
		return nil
	}

	for ex.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSuffix(ex.in.Text(), "\n")
		quit := false

		e, ok := ex.store.Get(ex.cur)
		if ok && e.IsDir() {
			quit = ex.dirCommand(line)
		} else {
			ex.fileCommand(line)
		}
		if quit {
			return nil
		}

		ex.adjustDimensions()
		if err := ex.waitForUsableTerminal(ctx); err != nil {
			return err
		}
		ex.redraw()
	}
	return ex.in.Err()
}

// redraw renders the current entry with the view matching its kind.
func (ex *explorer) redraw() {
	e, ok := ex.store.Get(ex.cur)
	if !ok {
		render.ErrorPanel(ex.out, nil, "", fmt.Sprintf("lost track of %s: %v", ex.cur.DebugString(), entry.ErrEntryNotFound), ex.dirCfg.MinWidth, ex.dirCfg.MaxWidth)
		return
	}
	switch {
	case e.IsDir():
		ex.store.InitChildren(ex.cur)
		render.PrintDir(ex.out, ex.store, ex.cur, ex.dirCfg)
	case e.IsSymlink():
		render.PrintLink(ex.out, ex.store, ex.cur, ex.linkCfg)
	default:
		ex.lastFile = render.PrintFile(ex.out, ex.store, ex.cur, ex.fileCfg)
	}
}

func (ex *explorer) adjustDimensions() {
	ex.dirCfg.AdjustToTerminal()
	ex.fileCfg.AdjustToTerminal()
	ex.linkCfg.AdjustToTerminal()

	if ex.fixedRows > 0 {
		ex.dirCfg.MaxRow = ex.fixedRows
		ex.fileCfg.MaxRow = ex.fixedRows
	}
	if ex.fixedWidth > 0 {
		ex.dirCfg.MaxWidth = ex.fixedWidth
		ex.fileCfg.MaxWidth = ex.fixedWidth
		ex.linkCfg.MaxWidth = ex.fixedWidth
	}
}

// waitForUsableTerminal blocks until the terminal is wide enough,
// polling so the user can resize without restarting.
func (ex *explorer) waitForUsableTerminal(ctx context.Context) error {
	for ex.dirCfg.MaxWidth < minUsableWidth && ex.fixedWidth == 0 {
		fmt.Fprintln(ex.out, "Your terminal is too small to run fq. Please resize your terminal and try again.")
		if !ex.interactive {
			return fmt.Errorf("terminal too narrow: %d columns, need %d", ex.dirCfg.MaxWidth+1, minUsableWidth)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(300 * time.Millisecond):
		}
		ex.adjustDimensions()
		fmt.Fprint(ex.out, "\x1b[2J\x1b[H")
	}
	return nil
}

// dirCommand handles one directory-mode line. It returns true on quit.
func (ex *explorer) dirCommand(line string) bool {
	ex.dirCfg.ResetAlert()

	switch {
	case line == "q":
		return true
	case line == "~":
		ex.cur = entry.Base
		ex.dirCfg.Offset = 0
	case strings.HasPrefix(line, ";"):
		ex.offsetCommand(line[1:])
	case line != "":
		if id, ok := ex.navigate(line); ok {
			ex.cur = id
			ex.dirCfg.Offset = 0
			ex.fileCfg.Offset = 0
			ex.fileCfg.Highlights = nil
		} else {
			ex.dirCfg.Alert = fmt.Sprintf("%q file not found", line)
		}
	}
	return false
}

// offsetCommand handles the ';'-prefixed listing offset moves.
func (ex *explorer) offsetCommand(s string) {
	switch {
	case strings.HasPrefix(s, "jjj"):
		ex.dirCfg.Offset += 100
	case strings.HasPrefix(s, "jj"):
		ex.dirCfg.Offset += 10
	case strings.HasPrefix(s, "j"):
		if n, ok := parseInt(s[1:]); ok {
			ex.dirCfg.Offset += n
		} else {
			ex.dirCfg.Offset++
		}
	case strings.HasPrefix(s, "kkk"):
		ex.dirCfg.Offset = max(ex.dirCfg.Offset, 100) - 100
	case strings.HasPrefix(s, "kk"):
		ex.dirCfg.Offset = max(ex.dirCfg.Offset, 10) - 10
	case strings.HasPrefix(s, "k"):
		if n, ok := parseInt(s[1:]); ok {
			ex.dirCfg.Offset = max(ex.dirCfg.Offset, n) - n
		} else {
			ex.dirCfg.Offset = max(ex.dirCfg.Offset, 1) - 1
		}
	default:
		if n, ok := parseInt(s); ok {
			ex.dirCfg.Offset = n
		}
	}
}

// navigate resolves a '/'-separated relative path typed in directory
// mode. Each segment matches a child by exact name first, then by unique
// case-insensitive prefix. ".." climbs to the parent.
func (ex *explorer) navigate(line string) (entry.ID, bool) {
	segments := strings.Split(strings.TrimSuffix(line, "/"), "/")
	cur := ex.cur

	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			parent, err := ex.store.ParentID(cur)
			if err != nil {
				return entry.Base, false
			}
			cur = parent
			continue
		}

		e, ok := ex.store.Get(cur)
		if !ok || !e.IsDir() {
			return entry.Base, false
		}

		children := ex.store.Children(cur, true)
		next, ok := matchChild(children, seg)
		if !ok {
			return entry.Base, false
		}
		cur = next
	}
	return cur, true
}

func matchChild(children []*entry.Entry, seg string) (entry.ID, bool) {
	for _, c := range children {
		if c.Name == seg {
			return c.ID, true
		}
	}

	lower := strings.ToLower(seg)
	matches := make([]*entry.Entry, 0, 1)
	for _, c := range children {
		if strings.HasPrefix(strings.ToLower(c.Name), lower) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return entry.Base, false
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches[0].ID, true
}

// fileCommand handles one file-mode (or symlink-mode) line.
func (ex *explorer) fileCommand(line string) {
	ex.fileCfg.ResetAlert()
	ex.linkCfg.ResetAlert()

	// in the hex viewer one scroll step is one row of bytes
	jumpBy := 1
	if ex.lastFile.Viewer == render.ViewerHex && ex.lastFile.Width > 0 {
		jumpBy = ex.lastFile.Width
	}

	changedPath := false

	switch {
	case strings.HasPrefix(line, "jjj"):
		ex.fileCfg.Offset += 100 * jumpBy
	case strings.HasPrefix(line, "jj"):
		ex.fileCfg.Offset += 10 * jumpBy
	case strings.HasPrefix(line, "j"):
		if n, ok := parseInt(line[1:]); ok {
			ex.fileCfg.Offset += n * jumpBy
		} else {
			ex.fileCfg.Offset += jumpBy
		}
	case strings.HasPrefix(line, "kkk"):
		ex.fileCfg.Offset = max(ex.fileCfg.Offset, 100*jumpBy) - 100*jumpBy
	case strings.HasPrefix(line, "kk"):
		ex.fileCfg.Offset = max(ex.fileCfg.Offset, 10*jumpBy) - 10*jumpBy
	case strings.HasPrefix(line, "k"):
		if n, ok := parseInt(line[1:]); ok {
			ex.fileCfg.Offset = max(ex.fileCfg.Offset, n*jumpBy) - n*jumpBy
		} else {
			ex.fileCfg.Offset = max(ex.fileCfg.Offset, jumpBy) - jumpBy
		}
	case line == "noh":
		ex.fileCfg.Highlights = nil
	case line == "n":
		ex.cycleHighlight(1)
	case line == "N":
		ex.cycleHighlight(-1)
	case line == "G":
		if ex.lastFile.Viewer == render.ViewerHex {
			if e, ok := ex.store.Get(ex.cur); ok && e.Size > 0 {
				ex.fileCfg.Offset = int(e.Size) - 1
			}
		} else {
			ex.fileCfg.Offset = max(ex.lastFile.LastLine, 1) - 1
		}
	case line == "gg":
		ex.fileCfg.Offset = 0
	case strings.HasPrefix(line, "0x") || strings.HasPrefix(line, "0X"):
		if n, ok := parseHex(line[2:]); ok {
			ex.fileCfg.Offset = n
		}
	case line != "" && line[0] >= '0' && line[0] <= '9':
		if n, ok := parseInt(line); ok {
			ex.fileCfg.Offset = n
		}
	case strings.HasPrefix(line, "/"):
		ex.searchFile(line[1:])
	case line == "q" || strings.HasPrefix(line, ".."):
		changedPath = ex.climb(line)
	}

	if changedPath {
		ex.fileCfg.Offset = 0
		ex.fileCfg.Highlights = nil
	} else if ex.lastFile.Viewer == render.ViewerText && ex.lastFile.LastLine > 0 {
		// don't scroll past the end
		if ex.fileCfg.Offset >= ex.lastFile.LastLine {
			ex.fileCfg.Offset = max(ex.lastFile.LastLine, 1) - 1
		}
	}
}

// climb moves to the parent; "..", "...." etc climb one level per pair.
func (ex *explorer) climb(line string) bool {
	levels := 1
	if strings.HasPrefix(line, "..") {
		levels = strings.Count(line, ".") - 1
	}
	changed := false
	for i := 0; i < levels && ex.cur != entry.Root; i++ {
		parent, err := ex.store.ParentID(ex.cur)
		if err != nil {
			break
		}
		ex.cur = parent
		changed = true
	}
	return changed
}

// searchFile greps the current file and loads the matching line numbers
// as highlights.
func (ex *explorer) searchFile(pattern string) {
	if len(pattern) < 2 {
		ex.fileCfg.Alert = "search failed"
		return
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		ex.fileCfg.Alert = "search failed"
		return
	}
	path, err := ex.store.Path(ex.cur)
	if err != nil {
		ex.fileCfg.Alert = "search failed"
		return
	}
	f, err := os.Open(path)
	if err != nil {
		ex.fileCfg.Alert = "search failed"
		return
	}
	defer f.Close()

	var matched []int
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if re.MatchString(scanner.Text()) {
			matched = append(matched, lineNo)
		}
	}

	ex.fileCfg.Highlights = matched
	ex.fileCfg.Alert = fmt.Sprintf("found %d results", len(matched))
}

// cycleHighlight jumps the offset to the next (dir > 0) or previous
// search match relative to the current offset.
func (ex *explorer) cycleHighlight(dir int) {
	hs := ex.fileCfg.Highlights
	if len(hs) == 0 {
		return
	}

	idx := sort.SearchInts(hs, ex.fileCfg.Offset)
	if dir > 0 {
		if idx < len(hs) && hs[idx] == ex.fileCfg.Offset {
			idx++
		}
		idx %= len(hs)
	} else {
		idx = (idx + len(hs) - 1) % len(hs)
	}

	ex.fileCfg.Offset = hs[idx]
	ex.fileCfg.Alert = fmt.Sprintf("search result %d/%d", idx+1, len(hs))
}

// parseInt reads a leading decimal number; anything after the digits is
// ignored. It reports false when s has no leading digit.
func parseInt(s string) (int, bool) {
	n := 0
	seen := false
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		seen = true
		n = n*10 + int(c-'0')
		if n > 0xffff_ffff {
			break
		}
	}
	return n, seen
}

// parseHex reads a leading hexadecimal number.
func parseHex(s string) (int, bool) {
	n := 0
	seen := false
	for _, c := range s {
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return n, seen
		}
		seen = true
		n = n<<4 + d
		if n > 0xffff_ffff {
			break
		}
	}
	return n, seen
}
