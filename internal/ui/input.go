package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linkup-social/linkup-header/internal/logging/events"
	"github.com/linkup-social/linkup-header/internal/menu"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	// The loader replaces the whole header, so there is nothing to drive.
	if m.search.Loading() {
		return nil
	}
	if m.dropdown != dropdownNone {
		return m.handleDropdownKey(keyMsg)
	}
	if m.search.Focused {
		return m.handleSearchKey(keyMsg)
	}
	return m.handleHeaderKey(keyMsg)
}

func (m *Model) handleHeaderKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "q":
		return tea.Quit
	case "/":
		return m.focusSearch()
	case "esc":
		if m.search.IsOpen {
			m.closeSearch(events.ReasonEscape)
			return nil
		}
		m.forceClearInfo()
		return nil
	case "b":
		m.sidebar.Toggle()
		return nil
	case "m":
		if m.layout().compact {
			m.toggleDropdown(dropdownMobile)
		} else {
			m.toggleDropdown(dropdownProfile)
		}
		return nil
	case "p":
		if user, ok := m.currentUser(); ok {
			return m.pickMenuItem("key", menu.ProfileItems(user.ID)[0])
		}
		return nil
	}
	if item, ok := menu.ByKey(menu.DesktopTabs(), key); ok {
		return m.pickMenuItem("tabs", item)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeSearch(events.ReasonEscape)
		return nil
	case "enter":
		if m.search.Cursor >= 0 {
			return m.selectResult(m.search.Cursor)
		}
		if m.search.Submit() {
			events.Search.Close(m.search.Query, events.ReasonSubmit)
		}
		return nil
	case "up", "ctrl+p":
		m.moveHighlight(-1)
		return nil
	case "down", "ctrl+n":
		m.moveHighlight(1)
		return nil
	case "home":
		if m.search.MoveCursorHome() {
			m.noteHighlight()
		}
		return nil
	case "end":
		if m.search.MoveCursorEnd() {
			m.noteHighlight()
		}
		return nil
	}
	m.handleTextInput(msg)
	return nil
}

func (m *Model) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	items := m.dropdownItems()
	switch msg.String() {
	case "esc", "m":
		m.closeDropdown()
	case "q":
		return tea.Quit
	case "up", "k":
		if m.dropdownCursor > 0 {
			m.dropdownCursor--
		}
	case "down", "j":
		if m.dropdownCursor < len(items)-1 {
			m.dropdownCursor++
		}
	case "enter":
		if m.dropdownCursor >= 0 && m.dropdownCursor < len(items) {
			return m.pickMenuItem(m.dropdown.String(), items[m.dropdownCursor])
		}
	}
	return nil
}

func (m *Model) moveHighlight(delta int) {
	if !m.search.IsOpen {
		return
	}
	if m.search.MoveCursor(delta) {
		m.noteHighlight()
	}
}

func (m *Model) noteHighlight() {
	m.search.EnsureCursorVisible(m.panelCapacity())
	if rec, ok := m.search.Highlighted(); ok {
		events.Search.Highlight(m.search.Cursor, rec.ID)
	}
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.search.QueryCursorPos() {
		m.queryCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	s := m.search
	before := s.QueryCursorPos()
	switch msg.String() {
	case "ctrl+u":
		if !s.ClearQuery() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Search.Cleared()
		return true
	case "ctrl+w":
		if !s.DeleteQueryWordBackward() {
			return false
		}
		m.noteQueryChange(before)
		return true
	case "ctrl+a":
		if !s.MoveQueryCursorStart() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Search.Cursor(s.QueryCursor)
		return true
	case "ctrl+e":
		if !s.MoveQueryCursorEnd() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Search.Cursor(s.QueryCursor)
		return true
	case "alt+b":
		if !s.MoveQueryCursorWordBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Search.CursorWord(s.QueryCursor)
		return true
	case "alt+f":
		if !s.MoveQueryCursorWordForward() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Search.CursorWord(s.QueryCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !s.DeleteQueryRuneBackward() {
			return false
		}
		m.noteQueryChange(before)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes), before)
	case tea.KeySpace:
		return m.appendToQuery(" ", before)
	case tea.KeyLeft:
		if !s.MoveQueryCursorRuneBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Search.Cursor(s.QueryCursor)
		return true
	case tea.KeyRight:
		if !s.MoveQueryCursorRuneForward() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Search.Cursor(s.QueryCursor)
		return true
	}
	return false
}

func (m *Model) appendToQuery(text string, before int) bool {
	if !m.search.InsertQueryText(text) {
		return false
	}
	m.noteQueryChange(before)
	return true
}

func (m *Model) noteQueryChange(before int) {
	m.noteQueryCursorChange(before)
	if m.search.Query == "" {
		events.Search.Close("", events.ReasonEmpty)
	}
	events.Search.Query(m.search.Query, m.search.ResultCount())
}

// focusSearch gives the search input focus, which opens the panel.
func (m *Model) focusSearch() tea.Cmd {
	if m.layout().compact {
		return nil
	}
	m.closeDropdown()
	if m.search.Focus() {
		events.Search.Focus(m.search.Query)
	}
	m.queryCursorDirty = true
	return nil
}

// closeSearch closes the panel and blurs the input, keeping the query.
func (m *Model) closeSearch(reason events.CloseReason) {
	if m.search.OutsideClick() {
		events.Search.Close(m.search.Query, reason)
	}
}

func (m *Model) selectResult(index int) tea.Cmd {
	rec, target, ok := m.search.Select(index)
	if !ok {
		return nil
	}
	events.Selection.Pick(rec.ID, rec.Username, target)
	return m.navigateCmd(target, originSelection)
}

func (m *Model) toggleDropdown(kind dropdownKind) {
	if m.dropdown == kind {
		m.closeDropdown()
		return
	}
	m.dropdown = kind
	m.dropdownCursor = 0
	events.Menu.Open(kind.String())
}

func (m *Model) closeDropdown() {
	if m.dropdown == dropdownNone {
		return
	}
	events.Menu.Close(m.dropdown.String())
	m.dropdown = dropdownNone
	m.dropdownCursor = 0
}

func (m *Model) dropdownItems() []menu.Item {
	user, _ := m.currentUser()
	switch m.dropdown {
	case dropdownProfile:
		return menu.ProfileItems(user.ID)
	case dropdownMobile:
		return menu.MobileItems(user.ID)
	default:
		return nil
	}
}

func (m *Model) pickMenuItem(origin string, item menu.Item) tea.Cmd {
	m.closeDropdown()
	events.Menu.Enter(origin, item.ID, item.Label)
	if item.ID == menu.Logout {
		return m.logoutCmd()
	}
	if !item.Navigates() {
		return nil
	}
	return m.navigateCmd(item.Route, originMenu)
}
