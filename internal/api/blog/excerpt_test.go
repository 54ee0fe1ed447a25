package blogapi

import (
	"strings"
	"testing"
)

func TestDefaultExcerptShortContent(t *testing.T) {
	got := defaultExcerpt("Kısa not.")
	if got != "Kısa not...." {
		t.Fatalf("expected full content plus ellipsis, got %q", got)
	}
}

func TestDefaultExcerptCountsRunes(t *testing.T) {
	// 120 runes of multi-byte text; a byte-based cut would split a rune.
	content := strings.Repeat("ğüşöçı", 20)
	got := defaultExcerpt(content)

	runes := []rune(got)
	if len(runes) != 103 {
		t.Fatalf("expected 100 runes plus ellipsis, got %d runes", len(runes))
	}
	if string(runes[:100]) != string([]rune(content)[:100]) {
		t.Fatal("expected the first 100 runes of the content")
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
