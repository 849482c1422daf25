package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filequery/fq/entry"
)

func writeTestFile(t *testing.T, name string, content []byte) (*entry.Store, entry.ID) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	s := entry.NewStore()
	return s, s.FromPath(path, entry.NewNormal())
}

func TestPrintFileText(t *testing.T) {
	s, id := writeTestFile(t, "hello.go", []byte("package main\n\nfunc main() {}\n"))

	var buf bytes.Buffer
	res := PrintFile(&buf, s, id, NewFileConfig())
	if res.IsError {
		t.Fatalf("unexpected error result:\n%s", buf.String())
	}
	if res.Viewer != ViewerText {
		t.Fatalf("Viewer = %v, want ViewerText", res.Viewer)
	}
	if res.LastLine != 3 {
		t.Errorf("LastLine = %d, want 3", res.LastLine)
	}

	out := buf.String()
	for _, want := range []string{"package main", "func main", "line", "content", "│", "hello.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintFileTextHighlight(t *testing.T) {
	s, id := writeTestFile(t, "notes.txt", []byte("one\ntwo\nthree\n"))

	cfg := NewFileConfig()
	cfg.Highlights = []int{2}

	var buf bytes.Buffer
	if res := PrintFile(&buf, s, id, cfg); res.IsError {
		t.Fatalf("unexpected error result:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), ">>> 2") {
		t.Errorf("output missing highlight marker:\n%s", buf.String())
	}
}

func TestPrintFileTextWindow(t *testing.T) {
	var content strings.Builder
	for i := 1; i <= 100; i++ {
		content.WriteString(strings.Repeat("x", 10))
		content.WriteByte('\n')
	}
	s, id := writeTestFile(t, "long.txt", []byte(content.String()))

	cfg := NewFileConfig()
	cfg.MaxRow = 10
	cfg.Offset = 20

	var buf bytes.Buffer
	res := PrintFile(&buf, s, id, cfg)
	if res.IsError {
		t.Fatalf("unexpected error result:\n%s", buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "21") {
		t.Errorf("window start line missing:\n%s", out)
	}
	if !strings.Contains(out, "... (truncated") {
		t.Errorf("truncation footer missing:\n%s", out)
	}
	if res.LastLine >= 100 {
		t.Errorf("LastLine = %d, window should stop well before the end", res.LastLine)
	}
}

func TestPrintFileHex(t *testing.T) {
	content := make([]byte, 300)
	content[0] = 0x7f
	copy(content[1:], "ELF")
	content[200] = 0xff
	s, id := writeTestFile(t, "blob.bin", content)

	var buf bytes.Buffer
	res := PrintFile(&buf, s, id, NewFileConfig())
	if res.IsError {
		t.Fatalf("unexpected error result:\n%s", buf.String())
	}
	if res.Viewer != ViewerHex {
		t.Fatalf("Viewer = %v, want ViewerHex", res.Viewer)
	}
	// the default width of 96 lands in the 16-bytes-per-row tier
	if res.Width != 16 {
		t.Errorf("Width = %d, want 16", res.Width)
	}

	out := buf.String()
	for _, want := range []string{"offset", "hex", "ascii", "00000000", "7f", "ELF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintFileHexTiers(t *testing.T) {
	tests := []struct {
		maxWidth int
		want     int
	}{
		{40, 4},
		{60, 8},
		{100, 16},
		{200, 32},
	}
	for _, tt := range tests {
		bpr, _, _, _, _ := hexViewerRowWidth(tt.maxWidth)
		if bpr != tt.want {
			t.Errorf("hexViewerRowWidth(%d) bytes per row = %d, want %d", tt.maxWidth, bpr, tt.want)
		}
	}
}

func TestPrintFileHexOffsetAligned(t *testing.T) {
	content := make([]byte, 4096)
	for i := range content {
		content[i] = byte(i)
	}
	s, id := writeTestFile(t, "big.bin", content)

	cfg := NewFileConfig()
	cfg.Offset = 1001 // rounds down to 1000, a multiple of 8

	var buf bytes.Buffer
	if res := PrintFile(&buf, s, id, cfg); res.IsError {
		t.Fatalf("unexpected error result:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "000003e8") {
		t.Errorf("aligned offset row missing:\n%s", buf.String())
	}
}

func TestPrintFileUnknownID(t *testing.T) {
	var buf bytes.Buffer
	res := PrintFile(&buf, entry.NewStore(), entry.NewNormal(), NewFileConfig())
	if !res.IsError {
		t.Fatal("expected error result for unknown id")
	}
}
