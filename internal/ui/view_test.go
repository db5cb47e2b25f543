package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/linkup-social/linkup-header/internal/directory"
	"github.com/linkup-social/linkup-header/internal/state"
)

func TestCanvasWideRunes(t *testing.T) {
	c := newCanvas(5, 1)
	c.put(0, 0, "你好吗", nil)
	if got := c.render(); got != "你好" {
		t.Fatalf("expected clipped wide runes, got %q", got)
	}
	c.put(1, 0, "x", nil)
	if got := c.render(); got != " x好" {
		t.Fatalf("expected overwritten half to blank its partner, got %q", got)
	}
}

func TestCanvasSanitisesAndCombines(t *testing.T) {
	c := newCanvas(10, 1)
	c.put(0, 0, "a\tb", nil)
	c.put(4, 0, "é", nil)
	if got := c.render(); got != "a b é" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestCanvasGrowsAndClips(t *testing.T) {
	c := newCanvas(4, 0)
	c.put(2, 1, "abcdef", nil)
	c.put(-2, 2, "xyz", nil)
	if c.height() != 3 {
		t.Fatalf("expected canvas to grow to 3 rows, got %d", c.height())
	}
	want := "\n  ab\nz"
	if got := c.render(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestViewShowsPlaceholderAndTabs(t *testing.T) {
	f := mountedFixture(t, nil)
	view := f.view()
	for _, want := range []string{brandLabel, searchPlaceholder, "home", "video", "friends", indicatorsLabel, "[AL]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got %q", want, view)
		}
	}
	if !strings.Contains(view, "Signed in as Ada Lovelace <ada@example.com>") {
		t.Fatalf("expected signed-in body line, got %q", view)
	}
}

func TestViewSignedOut(t *testing.T) {
	f := mountedFixture(t, func(_ *Options, f *fixture) {
		f.session.ClearUser()
	})
	view := f.view()
	if !strings.Contains(view, signedOutLabel) || !strings.Contains(view, "[?]") {
		t.Fatalf("expected signed-out header, got %q", view)
	}
}

func TestViewFocusedSearchHidesPlaceholder(t *testing.T) {
	f := mountedFixture(t, nil)
	f.search().typeText("al")
	first := strings.Split(f.view(), "\n")[0]
	if strings.Contains(first, searchPlaceholder) {
		t.Fatalf("expected placeholder hidden once typing, got %q", first)
	}
	if !strings.Contains(first, searchPrompt+"al") {
		t.Fatalf("expected query in the search box, got %q", first)
	}
}

func TestViewLongQueryKeepsCaretVisible(t *testing.T) {
	f := mountedFixture(t, nil)
	long := strings.Repeat("x", 60) + "END"
	f.search().typeText(long)
	first := strings.Split(f.view(), "\n")[0]
	if !strings.Contains(first, "END") {
		t.Fatalf("expected the tail of the query to stay visible, got %q", first)
	}
}

func TestViewWideQueryStaysInsideSearchBox(t *testing.T) {
	f := mountedFixture(t, nil)
	f.search().typeText(strings.Repeat("漢", 40))
	lay := f.h.Model().layout()
	first := strings.Split(f.view(), "\n")[0]
	for _, tab := range []string{"home", "video", "friends"} {
		if !strings.Contains(first, tab) {
			t.Fatalf("expected tab %q to survive a wide query, got %q", tab, first)
		}
	}
	home := strings.Index(first, "home")
	if got := ansi.StringWidth(first[:home]); got != lay.tabs[0].rect.X {
		t.Fatalf("expected home tab at column %d, got %d", lay.tabs[0].rect.X, got)
	}
	last := strings.LastIndex(first, "漢")
	if end := ansi.StringWidth(first[:last]) + 2; end > lay.search.X+lay.search.W {
		t.Fatalf("expected query to end inside the box at %d, ends at %d", lay.search.X+lay.search.W, end)
	}
}

func TestViewPanelScrollsWithHighlight(t *testing.T) {
	records := make([]directory.UserRecord, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, directory.UserRecord{ID: fmt.Sprint(i), Username: fmt.Sprintf("user%02d", i)})
	}
	f := mountedFixture(t, func(opts *Options, f *fixture) {
		opts.MaxResults = 4
		f.dir.Records = records
	})
	f.search().typeText("user")
	if rows := f.h.Model().layout().rows; len(rows) != 4 {
		t.Fatalf("expected 4 visible rows, got %d", len(rows))
	}
	for i := 0; i < 7; i++ {
		f.h.Send(key(tea.KeyDown))
	}
	s := f.h.Model().Search()
	if s.Cursor != 6 {
		t.Fatalf("expected highlight on row 6, got %d", s.Cursor)
	}
	view := f.view()
	if !strings.Contains(view, "user06") || strings.Contains(view, "user00") {
		t.Fatalf("expected panel scrolled to the highlight, got %q", view)
	}
}

func TestViewPanelRespectsHeight(t *testing.T) {
	f := mountedFixture(t, func(opts *Options, _ *fixture) {
		opts.Height = 3
	})
	f.search().typeText("ali")
	if rows := f.h.Model().layout().rows; len(rows) != 2 {
		t.Fatalf("expected 2 rows to fit, got %d", len(rows))
	}
	f.h.Model().showFooter = true
	if rows := f.h.Model().layout().rows; len(rows) != 1 {
		t.Fatalf("expected footer to take a row, got %d", len(rows))
	}
}

func TestViewFooterFollowsWidth(t *testing.T) {
	f := mountedFixture(t, func(opts *Options, _ *fixture) {
		opts.ShowFooter = true
		opts.Width = 60
	})
	lines := strings.Split(f.view(), "\n")
	if last := lines[len(lines)-1]; last != compactFooter {
		t.Fatalf("expected compact footer on the last row, got %q", last)
	}
}

func TestViewDropdownListsSignedOutState(t *testing.T) {
	f := mountedFixture(t, func(_ *Options, f *fixture) {
		f.session.ClearUser()
	})
	f.h.Send(keyRunes("m"))
	view := f.view()
	if !strings.Contains(view, "Not signed in") || !strings.Contains(view, "Logout") {
		t.Fatalf("expected signed-out dropdown, got %q", view)
	}
}

func TestViewWithoutSizeRendersDefaultWidth(t *testing.T) {
	m := NewModel(Options{Session: state.NewSessionStore()})
	t.Cleanup(m.Unmount)
	first := strings.Split(ansi.Strip(m.View()), "\n")[0]
	if ansi.StringWidth(first) > defaultWidth {
		t.Fatalf("expected at most %d columns, got %d", defaultWidth, ansi.StringWidth(first))
	}
	if !strings.Contains(first, brandLabel) {
		t.Fatalf("expected brand on the first row, got %q", first)
	}
}
