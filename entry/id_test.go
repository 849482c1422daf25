package entry

import (
	"strings"
	"testing"
)

func TestIDSubspaces(t *testing.T) {
	tests := []struct {
		name    string
		id      ID
		tag     uint8
		special bool
	}{
		{"normal", NewNormal(), tagNormal, false},
		{"error", NewError(), tagError, true},
		{"message", NewMessage(), tagMessage, true},
		{"truncated", TruncatedMarker(7), tagTruncated, true},
		{"base sentinel", Base, tagNormal, false},
		{"root sentinel", Root, tagNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Tag(); got != tt.tag {
				t.Errorf("Tag() = %#x, want %#x", got, tt.tag)
			}
			if got := tt.id.IsSpecial(); got != tt.special {
				t.Errorf("IsSpecial() = %v, want %v", got, tt.special)
			}
		})
	}
}

func TestTruncatedMarkerDeterministic(t *testing.T) {
	if TruncatedMarker(7) != TruncatedMarker(7) {
		t.Error("TruncatedMarker(7) should always yield the same id")
	}
	if TruncatedMarker(7) == TruncatedMarker(8) {
		t.Error("different counts should yield different ids")
	}
}

func TestRandomIDsDiffer(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := NewNormal()
		if seen[id] {
			t.Fatalf("duplicate random id after %d draws", i)
		}
		seen[id] = true
	}
}

func TestSentinelsDistinct(t *testing.T) {
	if Base == Root {
		t.Error("Base and Root must be distinct ids")
	}
}

func TestDebugString(t *testing.T) {
	if got := TruncatedMarker(12).DebugString(); !strings.Contains(got, "truncated_rows(12)") {
		t.Errorf("DebugString() = %q, want truncated_rows(12)", got)
	}
	if got := NewError().DebugString(); !strings.Contains(got, "error") {
		t.Errorf("DebugString() = %q, want error subspace", got)
	}
}
