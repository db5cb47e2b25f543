package state

import (
	"errors"
	"reflect"
	"testing"

	"github.com/linkup-social/linkup-header/internal/directory"
)

func TestDirectoryLoadLifecycle(t *testing.T) {
	s := NewSearch()
	s.BeginDirectoryLoad()
	if !s.IsLoadingDirectory || !s.Loading() {
		t.Fatal("expected directory load pending")
	}

	// a query typed before the fetch lands filters the empty cache
	s.SetQuery("ali", 3)
	if s.ResultCount() != 0 || !s.IsOpen {
		t.Fatalf("expected open panel with no results, got %v open=%v", resultIDs(s), s.IsOpen)
	}

	s.FinishDirectoryLoad(sampleDirectory(), nil)
	if s.IsLoadingDirectory || s.Loading() {
		t.Fatal("expected directory load finished")
	}
	if ids := resultIDs(s); !reflect.DeepEqual(ids, []string{"1", "2"}) {
		t.Fatalf("expected results recomputed, got %v", ids)
	}
	if len(s.Directory()) != 3 {
		t.Fatalf("expected 3 cached records, got %d", len(s.Directory()))
	}
}

func TestDirectoryLoadFailureLeavesCacheEmpty(t *testing.T) {
	s := NewSearch()
	s.BeginDirectoryLoad()
	boom := &directory.FetchError{Source: "test", Err: errors.New("boom")}
	err := s.FinishDirectoryLoad(sampleDirectory(), boom)
	if !errors.Is(err, boom) {
		t.Fatalf("expected error handed back, got %v", err)
	}
	if s.IsLoadingDirectory {
		t.Fatal("expected loading flag cleared on failure")
	}
	if len(s.Directory()) != 0 {
		t.Fatal("expected empty cache after failure")
	}
	for _, q := range []string{"a", "Alice", "b"} {
		s.SetQuery(q, len(q))
		if s.ResultCount() != 0 {
			t.Fatalf("expected no results for %q", q)
		}
	}
}

func TestFocusOpensEmptyPanel(t *testing.T) {
	s := loadedSearch(t)
	if !s.Focus() {
		t.Fatal("expected focus to report a change")
	}
	if !s.IsOpen || s.ResultCount() != 0 {
		t.Fatalf("expected open empty panel, got open=%v results=%v", s.IsOpen, resultIDs(s))
	}
	if s.Focus() {
		t.Fatal("expected second focus to be a no-op")
	}
	if !s.Blur() || s.Focused {
		t.Fatal("expected blur to drop focus")
	}
	if !s.IsOpen {
		t.Fatal("expected blur to leave the panel alone")
	}
}

func TestOutsideClickKeepsQuery(t *testing.T) {
	s := loadedSearch(t)
	s.Focus()
	s.InsertQueryText("ali")
	if !s.OutsideClick() {
		t.Fatal("expected outside click to close the open panel")
	}
	if s.IsOpen || s.Focused {
		t.Fatalf("expected closed and blurred, got open=%v focused=%v", s.IsOpen, s.Focused)
	}
	if s.Query != "ali" {
		t.Fatalf("expected query kept, got %q", s.Query)
	}
	if s.OutsideClick() {
		t.Fatal("expected second outside click to have no effect")
	}
	if s.Query != "ali" || s.IsOpen {
		t.Fatal("expected state unchanged after second outside click")
	}
}

func TestSubmitClosesWithoutClearing(t *testing.T) {
	s := loadedSearch(t)
	s.InsertQueryText("bob")
	s.MoveCursor(1)
	if !s.Submit() {
		t.Fatal("expected submit to close the panel")
	}
	if s.IsOpen || s.Query != "bob" || s.IsNavigating {
		t.Fatalf("unexpected state after submit: %+v", s.SearchState)
	}
	if s.Cursor != -1 {
		t.Fatalf("expected highlight cleared, got %d", s.Cursor)
	}
}

func TestSelectClearsQueryAndBuildsRoute(t *testing.T) {
	s := loadedSearch(t)
	s.Focus()
	s.InsertQueryText("ali")
	rec, target, ok := s.SelectID("2")
	if !ok {
		t.Fatal("expected selection")
	}
	if rec.Username != "alice2" {
		t.Fatalf("expected alice2, got %q", rec.Username)
	}
	if target != "user-profile/2" {
		t.Fatalf("expected user-profile/2, got %q", target)
	}
	want := SearchState{Query: "", IsOpen: false, IsNavigating: true}
	if s.SearchState != want {
		t.Fatalf("expected %+v, got %+v", want, s.SearchState)
	}
	if s.Focused {
		t.Fatal("expected input blurred after selection")
	}
	if !s.Loading() {
		t.Fatal("expected loader raised while navigating")
	}
	s.FinishNavigation()
	if s.IsNavigating || s.Loading() {
		t.Fatal("expected loader lowered")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	s := loadedSearch(t)
	s.InsertQueryText("bob")
	if _, _, ok := s.Select(5); ok {
		t.Fatal("expected out of range selection to fail")
	}
	if _, _, ok := s.SelectID("missing"); ok {
		t.Fatal("expected unknown id to fail")
	}
	if s.Query != "bob" || !s.IsOpen || s.IsNavigating {
		t.Fatalf("expected state untouched, got %+v", s.SearchState)
	}
}
