package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linkup-social/linkup-header/internal/logging/events"
	"github.com/linkup-social/linkup-header/internal/menu"
	"github.com/linkup-social/linkup-header/internal/pointer"
)

// handleMouseMsg routes left presses. The document observers see the press
// first, then the element under the pointer reacts, hit-tested against the
// frame that was on screen when the press happened.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Button != tea.MouseButtonLeft || ev.Action != tea.MouseActionPress {
		return nil
	}
	p := pointer.Point{X: ev.X, Y: ev.Y}
	hidden := m.search.Loading()
	var lay layout
	if !hidden {
		lay = m.layout()
	}
	events.Pointer.Click(p.X, p.Y, hitName(lay, p, hidden))
	m.hub.Dispatch(p)
	if hidden {
		return nil
	}
	return m.clickTarget(lay, p)
}

func (m *Model) handleOutsideClick(p pointer.Point) {
	events.Pointer.Outside(p.X, p.Y)
	m.closeSearch(events.ReasonOutside)
}

func (m *Model) clickTarget(lay layout, p pointer.Point) tea.Cmd {
	if m.dropdown != dropdownNone {
		for _, slot := range lay.items {
			if slot.rect.Contains(p) {
				return m.pickMenuItem(m.dropdown.String(), slot.item)
			}
		}
		if lay.dropdown.Contains(p) {
			return nil
		}
		kind := m.dropdown
		m.closeDropdown()
		if (kind == dropdownProfile && lay.avatar.Contains(p)) ||
			(kind == dropdownMobile && lay.hamburger.Contains(p)) {
			return nil
		}
	}
	for _, row := range lay.rows {
		if row.rect.Contains(p) {
			return m.selectResult(row.index)
		}
	}
	switch {
	case lay.search.Contains(p):
		return m.focusSearch()
	case lay.brand.Contains(p):
		tab, _ := menu.Find(menu.DesktopTabs(), menu.Home)
		return m.pickMenuItem("brand", tab)
	case lay.avatar.Contains(p):
		m.toggleDropdown(dropdownProfile)
		return nil
	case lay.hamburger.Contains(p):
		m.toggleDropdown(dropdownMobile)
		return nil
	}
	for _, tab := range lay.tabs {
		if tab.rect.Contains(p) {
			return m.pickMenuItem("tabs", tab.item)
		}
	}
	return nil
}

func hitName(lay layout, p pointer.Point, hidden bool) string {
	if hidden {
		return "loader"
	}
	for _, slot := range lay.items {
		if slot.rect.Contains(p) {
			return "dropdown:" + slot.item.ID
		}
	}
	for _, row := range lay.rows {
		if row.rect.Contains(p) {
			return "result"
		}
	}
	for _, tab := range lay.tabs {
		if tab.rect.Contains(p) {
			return "tab:" + tab.item.ID
		}
	}
	switch {
	case lay.search.Contains(p):
		return "search"
	case lay.panel.Contains(p):
		return "panel"
	case lay.brand.Contains(p):
		return "brand"
	case lay.avatar.Contains(p):
		return "avatar"
	case lay.hamburger.Contains(p):
		return "hamburger"
	}
	return "body"
}
