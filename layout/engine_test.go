package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func totalOf(widths []int, margin int) int {
	sum := margin * (len(widths) + 1)
	for _, w := range widths {
		sum += w
	}
	return sum
}

func TestColumnWidthsNatural(t *testing.T) {
	rows := [][]string{
		{"aaaa", "bb", "c"},
		{"aa", "bbbbbb", "cc"},
	}
	got := ColumnWidths(rows, 0, 0, 2)
	want := []int{4, 6, 2}
	v, ok := got[3]
	if !ok {
		t.Fatal("missing width vector for row length 3")
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("widths = %v, want %v", v, want)
			break
		}
	}
}

func TestColumnWidthsShrinkStopsAtBoundOrFloor(t *testing.T) {
	wide := strings.Repeat("x", 30)
	rows := [][]string{
		{wide, wide, strings.Repeat("x", 20)},
	}
	// natural: 30+30+20 + 2*4 = 88
	got := ColumnWidths(rows, 40, 0, 2)[3]

	total := totalOf(got, 2)
	floorBound := totalOf([]int{16, 16, 16}, 2)
	if total > floorBound {
		t.Errorf("total = %d, want shrink down to the floor bound %d", total, floorBound)
	}
	for i, w := range got {
		if w < 16 {
			t.Errorf("column %d shrunk below floor: %d", i, w)
		}
	}
}

func TestColumnWidthsShrinkTerminatesWhenNothingCanShrink(t *testing.T) {
	rows := [][]string{{"aaaa", "bb"}}
	// both columns already below the floor; bound is impossible
	got := ColumnWidths(rows, 5, 0, 1)[2]
	if got[0] != 4 || got[1] != 2 {
		t.Errorf("widths = %v, want unchanged {4 2}", got)
	}
}

func TestColumnWidthsExpandToMinWidth(t *testing.T) {
	rows := [][]string{{"ab", "cd", "ef"}}
	got := ColumnWidths(rows, 0, 60, 2)[3]
	total := totalOf(got, 2)
	if total < 60 {
		t.Errorf("total = %d, want >= 60", total)
	}
	// deficit spread evenly with ceiling division
	if got[0] != got[1] || got[1] != got[2] {
		t.Errorf("uneven expansion: %v", got)
	}
}

func TestColumnWidthsBoundsProperty(t *testing.T) {
	rows := [][]string{
		{strings.Repeat("a", 25), strings.Repeat("b", 40), "c", "dd"},
		{"x", "y"},
		{strings.Repeat("z", 50)},
	}
	const minW, maxW, margin = 30, 90, 2
	vectors := ColumnWidths(rows, maxW, minW, margin)

	for n, v := range vectors {
		if len(v) != n {
			t.Errorf("vector for row length %d has %d entries", n, len(v))
		}
		if got := totalOf(v, margin); got != totalOf(vectors[4], margin) {
			t.Errorf("row length %d total %d differs from full-row total", n, got)
		}
	}
	if total := totalOf(vectors[4], margin); total < minW || total > maxW {
		t.Errorf("total %d outside [%d, %d]", total, minW, maxW)
	}
}

func TestColumnWidthsRowspanAbsorption(t *testing.T) {
	rows := [][]string{
		{"aaaa", "bbbb", "cccc"},
		{"", strings.Repeat("m", 200)}, // spanned message row
	}
	vectors := ColumnWidths(rows, 0, 0, 2)

	// the giant spanned cell must not inflate column 1
	if v := vectors[3]; v[1] != 4 {
		t.Errorf("column 1 width = %d, want 4 (spanned cell ignored)", v[1])
	}
	// the short row's last cell absorbs the remaining columns
	full := vectors[3]
	short := vectors[2]
	wantLast := full[1] + full[2] + 2 // one inter-column margin folded in
	if short[1] != wantLast {
		t.Errorf("absorbed width = %d, want %d", short[1], wantLast)
	}
}

func TestRenderCellPadding(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		align Alignment
		want  string
	}{
		{"left", "ab", 5, Left, "ab   "},
		{"right", "ab", 5, Right, "   ab"},
		{"center even", "ab", 6, Center, "  ab  "},
		{"center odd puts extra right", "ab", 5, Center, " ab  "},
		{"exact fit", "abcde", 5, Left, "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderCell(tt.s, tt.width, tt.align); got != tt.want {
				t.Errorf("RenderCell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCellTruncation(t *testing.T) {
	got := RenderCell("abcdefghijklmnop", 9, Left)
	if got != "abc...nop" {
		t.Errorf("RenderCell() = %q, want abc...nop", got)
	}
	if utf8.RuneCountInString(got) != 9 {
		t.Errorf("truncated width = %d, want 9", utf8.RuneCountInString(got))
	}
}

func TestRenderCellTruncationNeverSplitsRunes(t *testing.T) {
	s := strings.Repeat("가나다", 10)
	got := RenderCell(s, 11, Left)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a multi-byte character: %q", got)
	}
	if utf8.RuneCountInString(got) != 11 {
		t.Errorf("truncated rune count = %d, want 11", utf8.RuneCountInString(got))
	}
	if !strings.Contains(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
}

func TestRenderCellTinyWidthStillFitsEllipsis(t *testing.T) {
	got := RenderCell("abcdefgh", 2, Left)
	if got != "..." {
		t.Errorf("RenderCell() = %q, want bare ellipsis at minimum width", got)
	}
}
