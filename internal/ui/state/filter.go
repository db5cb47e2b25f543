package state

import (
	"strings"
	"unicode"

	"github.com/linkup-social/linkup-header/internal/directory"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetQuery replaces the query and places the caret. A changed query
// recomputes the results and reopens or closes the panel: any text opens
// it, an empty query closes it even while focused.
func (s *Search) SetQuery(query string, cursor int) bool {
	changed := query != s.Query
	s.Query = query
	runes := []rune(s.Query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	s.QueryCursor = cursor
	if !changed {
		return false
	}
	s.Cursor = -1
	s.ViewportOffset = 0
	s.refreshResults()
	s.IsOpen = s.Query != ""
	return true
}

// QueryCursorPos returns the rune offset of the query caret.
func (s *Search) QueryCursorPos() int {
	runes := []rune(s.Query)
	if s.QueryCursor < 0 {
		return 0
	}
	if s.QueryCursor > len(runes) {
		return len(runes)
	}
	return s.QueryCursor
}

// InsertQueryText inserts text at the caret.
func (s *Search) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the caret.
func (s *Search) DeleteQueryRuneBackward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word before the caret.
func (s *Search) DeleteQueryWordBackward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	s.SetQuery(string(updated), i)
	return true
}

// ClearQuery empties the query.
func (s *Search) ClearQuery() bool {
	if s.Query == "" {
		return false
	}
	s.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the caret to the start.
func (s *Search) MoveQueryCursorStart() bool {
	if s.QueryCursorPos() == 0 {
		return false
	}
	s.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the caret to the end.
func (s *Search) MoveQueryCursorEnd() bool {
	end := len([]rune(s.Query))
	if s.QueryCursorPos() == end {
		return false
	}
	s.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the caret one word back.
func (s *Search) MoveQueryCursorWordBackward() bool {
	pos := s.QueryCursorPos()
	i := wordStartBefore([]rune(s.Query), pos)
	if i == pos {
		return false
	}
	s.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the caret one word forward.
func (s *Search) MoveQueryCursorWordForward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	s.QueryCursor = i
	return true
}

// MoveQueryCursorRuneBackward moves the caret one rune back.
func (s *Search) MoveQueryCursorRuneBackward() bool {
	if s.QueryCursorPos() == 0 {
		return false
	}
	s.QueryCursor = s.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the caret one rune forward.
func (s *Search) MoveQueryCursorRuneForward() bool {
	pos := s.QueryCursorPos()
	if pos >= len([]rune(s.Query)) {
		return false
	}
	s.QueryCursor = pos + 1
	return true
}

func wordStartBefore(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// FilterRecords returns, in directory order, the records whose username
// contains query case-insensitively. An empty query matches nothing.
func FilterRecords(records []directory.UserRecord, query string) []directory.UserRecord {
	if query == "" {
		return nil
	}
	lower := strings.ToLower(query)
	filtered := make([]directory.UserRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Username), lower) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// BestMatchIndex picks the record to highlight first for query: an exact
// username, then a prefix, then the closest fuzzy match, else the first.
func BestMatchIndex(records []directory.UserRecord, query string) int {
	if len(records) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, rec := range records {
		if strings.EqualFold(rec.Username, trimmed) {
			return i
		}
	}
	for i, rec := range records {
		if strings.HasPrefix(strings.ToLower(rec.Username), lower) {
			return i
		}
	}
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Username
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(records) {
		return 0
	}
	return best.OriginalIndex
}
