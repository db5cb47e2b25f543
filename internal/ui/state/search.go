package state

import (
	"github.com/linkup-social/linkup-header/internal/directory"
	"github.com/linkup-social/linkup-header/internal/route"
)

// SearchState is the observable state of the header search widget.
// IsLoadingDirectory and IsNavigating share one loader on screen but are
// tracked separately.
type SearchState struct {
	Query              string
	IsOpen             bool
	IsLoadingDirectory bool
	IsNavigating       bool
}

// Search owns the directory cache, the query, the results panel and the
// selection flow for one mounted header.
type Search struct {
	SearchState
	QueryCursor    int
	Focused        bool
	Cursor         int
	ViewportOffset int

	directory []directory.UserRecord
	results   []directory.UserRecord
}

// NewSearch returns a closed, empty search with no highlighted result.
func NewSearch() *Search {
	return &Search{Cursor: -1}
}

// Loading reports whether the header should be replaced by the loader.
func (s *Search) Loading() bool {
	return s.IsLoadingDirectory || s.IsNavigating
}

// BeginDirectoryLoad marks the one-shot directory fetch as pending.
func (s *Search) BeginDirectoryLoad() {
	s.IsLoadingDirectory = true
}

// FinishDirectoryLoad stores the fetched records verbatim. On error the
// cache is left empty and the error is handed back for logging.
func (s *Search) FinishDirectoryLoad(records []directory.UserRecord, err error) error {
	s.IsLoadingDirectory = false
	if err != nil {
		s.directory = nil
	} else {
		s.directory = directory.Clone(records)
	}
	s.refreshResults()
	return err
}

// Directory returns a copy of the cached records.
func (s *Search) Directory() []directory.UserRecord {
	return directory.Clone(s.directory)
}

// Results returns the records matching the current query.
func (s *Search) Results() []directory.UserRecord {
	return directory.Clone(s.results)
}

// ResultCount is len(Results()) without the copy.
func (s *Search) ResultCount() int {
	return len(s.results)
}

// ResultAt returns the i-th result.
func (s *Search) ResultAt(i int) (directory.UserRecord, bool) {
	if i < 0 || i >= len(s.results) {
		return directory.UserRecord{}, false
	}
	return s.results[i], true
}

// Highlighted returns the result under the highlight, if any.
func (s *Search) Highlighted() (directory.UserRecord, bool) {
	return s.ResultAt(s.Cursor)
}

// Focus gives the input focus, which always opens the panel.
func (s *Search) Focus() bool {
	changed := !s.Focused || !s.IsOpen
	s.Focused = true
	s.IsOpen = true
	return changed
}

// Blur drops input focus without touching the panel.
func (s *Search) Blur() bool {
	changed := s.Focused
	s.Focused = false
	return changed
}

// OutsideClick closes the panel and blurs the input. The query is kept.
// It reports whether the panel was open.
func (s *Search) OutsideClick() bool {
	wasOpen := s.IsOpen
	s.IsOpen = false
	s.Focused = false
	s.Cursor = -1
	return wasOpen
}

// Submit closes the panel without clearing the query or selecting.
func (s *Search) Submit() bool {
	wasOpen := s.IsOpen
	s.IsOpen = false
	s.Cursor = -1
	return wasOpen
}

// Select starts navigation to the i-th result: the loader is raised, the
// panel closed and the query cleared, in that order. It returns the
// relative profile route to push.
func (s *Search) Select(i int) (directory.UserRecord, string, bool) {
	rec, ok := s.ResultAt(i)
	if !ok {
		return directory.UserRecord{}, "", false
	}
	s.IsNavigating = true
	s.IsOpen = false
	s.SetQuery("", 0)
	s.Focused = false
	return rec, route.ProfileRoute(rec.ID), true
}

// SelectID selects the result carrying id.
func (s *Search) SelectID(id string) (directory.UserRecord, string, bool) {
	return s.Select(s.IndexOf(id))
}

// IndexOf returns the result index for id, or -1.
func (s *Search) IndexOf(id string) int {
	for i, rec := range s.results {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// FinishNavigation lowers the navigation loader.
func (s *Search) FinishNavigation() {
	s.IsNavigating = false
}

func (s *Search) refreshResults() {
	s.results = FilterRecords(s.directory, s.Query)
	if s.Cursor >= len(s.results) {
		s.Cursor = -1
	}
	if len(s.results) == 0 || s.ViewportOffset > len(s.results)-1 {
		s.ViewportOffset = 0
	}
}
