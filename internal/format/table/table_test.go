package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	got := Format([][]string{
		{"AL", "Alice", "alice@example.com"},
		{"B", "Bob"},
	}, []Alignment{AlignRight})
	want := []string{
		"AL  Alice  alice@example.com",
		" B  Bob    ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\n%q", got, want)
	}
}

func TestFormatMeasuresCells(t *testing.T) {
	got := Format([][]string{
		{"\x1b[1mAB\x1b[0m", "x"},
		{"漢", "y"},
	}, nil)
	want := []string{
		"\x1b[1mAB\x1b[0m  x",
		"漢  y",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\n%q", got, want)
	}
	if Format(nil, nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}
