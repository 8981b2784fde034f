package content

import (
	"reflect"
	"testing"
)

func TestSplitBoldAlternates(t *testing.T) {
	got := SplitBold("a **b** c **d**")
	want := []Segment{
		{Text: "a ", Bold: false},
		{Text: "b", Bold: true},
		{Text: " c ", Bold: false},
		{Text: "d", Bold: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitBold = %#v, want %#v", got, want)
	}
}

func TestSplitBoldNoDelimiters(t *testing.T) {
	got := SplitBold("texto plano")
	if len(got) != 1 || got[0].Bold || got[0].Text != "texto plano" {
		t.Fatalf("SplitBold = %#v", got)
	}
}

func TestSplitBoldUnmatchedTrailingDelimiter(t *testing.T) {
	// Un número impar de ** deja el último tramo sin pareja: queda normal.
	got := SplitBold("a **b** sin cerrar **c")
	want := []Segment{
		{Text: "a ", Bold: false},
		{Text: "b", Bold: true},
		{Text: " sin cerrar ", Bold: false},
		{Text: "c", Bold: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitBold = %#v, want %#v", got, want)
	}
}

func TestSplitBoldEmpty(t *testing.T) {
	if got := SplitBold(""); len(got) != 0 {
		t.Fatalf("SplitBold(\"\") = %#v, want empty", got)
	}
}
