package state

// HighlightBestMatch moves the highlight to the best match for the query.
func (s *Search) HighlightBestMatch() bool {
	idx := BestMatchIndex(s.results, s.Query)
	if idx < 0 || idx == s.Cursor {
		return false
	}
	s.Cursor = idx
	return true
}

// MoveCursor moves the highlight by delta. With nothing highlighted a
// downward move lands on the best match and an upward move on the last row.
func (s *Search) MoveCursor(delta int) bool {
	if len(s.results) == 0 {
		s.Cursor = -1
		return false
	}
	if s.Cursor < 0 {
		if delta > 0 {
			return s.HighlightBestMatch()
		}
		s.Cursor = len(s.results) - 1
		return true
	}
	return s.moveCursorBy(delta)
}

// MoveCursorHome highlights the first result.
func (s *Search) MoveCursorHome() bool {
	if len(s.results) == 0 {
		s.Cursor = -1
		return false
	}
	old := s.Cursor
	s.Cursor = 0
	return old != s.Cursor
}

// MoveCursorEnd highlights the last result.
func (s *Search) MoveCursorEnd() bool {
	n := len(s.results)
	if n == 0 {
		s.Cursor = -1
		return false
	}
	old := s.Cursor
	s.Cursor = n - 1
	return old != s.Cursor
}

func (s *Search) moveCursorBy(delta int) bool {
	old := s.Cursor
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.results) {
		s.Cursor = len(s.results) - 1
	}
	return s.Cursor != old
}

// EnsureCursorVisible scrolls the panel so the highlight stays in view.
func (s *Search) EnsureCursorVisible(maxVisible int) {
	if len(s.results) == 0 || maxVisible <= 0 {
		s.ViewportOffset = 0
		return
	}
	maxOffset := len(s.results) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
	if s.Cursor < 0 {
		return
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if upper := s.ViewportOffset + maxVisible - 1; s.Cursor > upper {
		s.ViewportOffset = s.Cursor - maxVisible + 1
		if s.ViewportOffset > maxOffset {
			s.ViewportOffset = maxOffset
		}
	}
}

// Visible returns the [start, end) window of results shown in a panel of
// maxVisible rows.
func (s *Search) Visible(maxVisible int) (int, int) {
	n := len(s.results)
	if maxVisible <= 0 || maxVisible > n {
		maxVisible = n
	}
	start := s.ViewportOffset
	if start < 0 || start > n-maxVisible {
		start = 0
	}
	return start, start + maxVisible
}
