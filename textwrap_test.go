package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrapTextPreservesSpaces(t *testing.T) {
	initFont()
	lines := wrapText("foo  bar", mainFont, 1000)
	if len(lines) != 1 {
		t.Fatalf("lines = %d want 1", len(lines))
	}
	if lines[0] != "foo  bar" {
		t.Fatalf("line = %q want %q", lines[0], "foo  bar")
	}
}

func TestWrapTextBreaksWords(t *testing.T) {
	initFont()
	limit := measureWidth("drop ", mainFont) + measureWidth("the ", mainFont)
	got := wrapText("drop the sack", mainFont, limit)
	want := []string{"drop the ", "sack"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q want %q", got, want)
	}
}

func TestWrapTextSplitsLongWord(t *testing.T) {
	initFont()
	limit := 5 * measureWidth("m", mainFont)
	got := wrapText(strings.Repeat("m", 10), mainFont, limit)
	want := []string{"mmmmm", "mmmmm"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q want %q", got, want)
	}
}

func TestWrapTextKeepsNewlines(t *testing.T) {
	initFont()
	if got := wrapText("a\n\nb", mainFont, 100); !reflect.DeepEqual(got, []string{"a", "", "b"}) {
		t.Fatalf("lines = %q", got)
	}
}
