package ui

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/linkup-social/linkup-header/internal/menu"
	"github.com/linkup-social/linkup-header/internal/pointer"
)

const (
	defaultWidth      = 100
	compactBreakpoint = 72

	brandLabel        = "LinkUp"
	brandX            = 1
	searchX           = 9
	searchMinWidth    = 16
	searchMaxWidth    = 32
	searchPrompt      = "» "
	searchPlaceholder = "Search LinkUp"
	emptyResults      = "No user found"
	indicatorsLabel   = "(!) (✉)"
	hamburgerLabel    = "[≡]"
	tabGap            = 2
	dropdownPadding   = 1
)

type tabSlot struct {
	item menu.Item
	rect pointer.Rect
}

type rowSlot struct {
	index int
	rect  pointer.Rect
}

type dropdownSlot struct {
	item menu.Item
	rect pointer.Rect
}

// layout is the cell geometry of one frame. View draws from it and mouse
// handling hit-tests against it, so both always agree.
type layout struct {
	width   int
	compact bool

	brand      pointer.Rect
	search     pointer.Rect
	tabs       []tabSlot
	indicators pointer.Rect
	avatar     pointer.Rect
	hamburger  pointer.Rect

	panel pointer.Rect
	rows  []rowSlot

	dropdown       pointer.Rect
	dropdownHeader []string
	items          []dropdownSlot
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) layout() layout {
	w := m.viewWidth()
	lay := layout{width: w, compact: w < compactBreakpoint}
	lay.brand = pointer.Rect{X: brandX, Y: 0, W: ansi.StringWidth(brandLabel), H: 1}
	if lay.compact {
		hw := ansi.StringWidth(hamburgerLabel)
		lay.hamburger = pointer.Rect{X: w - 1 - hw, Y: 0, W: hw, H: 1}
	} else {
		sw := clamp(w/3, searchMinWidth, searchMaxWidth)
		lay.search = pointer.Rect{X: searchX, Y: 0, W: sw, H: 1}
		aw := ansi.StringWidth(m.avatarLabel())
		lay.avatar = pointer.Rect{X: w - 1 - aw, Y: 0, W: aw, H: 1}
		iw := ansi.StringWidth(indicatorsLabel)
		lay.indicators = pointer.Rect{X: lay.avatar.X - 2 - iw, Y: 0, W: iw, H: 1}
		lay.tabs = centredTabs(lay.search.X+lay.search.W+2, lay.indicators.X-2)
		m.layoutPanel(&lay)
	}
	m.layoutDropdown(&lay)
	return lay
}

func centredTabs(from, to int) []tabSlot {
	tabs := menu.DesktopTabs()
	total := 0
	for i, tab := range tabs {
		if i > 0 {
			total += tabGap
		}
		total += ansi.StringWidth(tab.Label)
	}
	x := from
	if space := to - from; space > total {
		x += (space - total) / 2
	}
	slots := make([]tabSlot, 0, len(tabs))
	for _, tab := range tabs {
		w := ansi.StringWidth(tab.Label)
		slots = append(slots, tabSlot{item: tab, rect: pointer.Rect{X: x, Y: 0, W: w, H: 1}})
		x += w + tabGap
	}
	return slots
}

// panelCapacity is the number of result rows the panel may show.
func (m *Model) panelCapacity() int {
	capacity := m.maxResults
	if m.height > 0 {
		avail := m.height - 1 - m.statusRows()
		if avail < capacity {
			capacity = avail
		}
	}
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

func (m *Model) layoutPanel(lay *layout) {
	if !m.search.IsOpen {
		return
	}
	capacity := m.panelCapacity()
	start, end := m.search.Visible(capacity)
	rows := end - start
	if rows == 0 {
		rows = 1
	}
	lay.panel = pointer.Rect{X: lay.search.X, Y: 1, W: lay.search.W, H: rows}
	for i := start; i < end; i++ {
		lay.rows = append(lay.rows, rowSlot{
			index: i,
			rect:  pointer.Rect{X: lay.panel.X, Y: 1 + i - start, W: lay.panel.W, H: 1},
		})
	}
}

func (m *Model) layoutDropdown(lay *layout) {
	if m.dropdown == dropdownNone {
		return
	}
	if user, ok := m.currentUser(); ok {
		lay.dropdownHeader = []string{user.Username}
		if user.Email != "" {
			lay.dropdownHeader = append(lay.dropdownHeader, user.Email)
		}
	} else {
		lay.dropdownHeader = []string{"Not signed in"}
	}
	items := m.dropdownItems()
	width := 0
	for _, line := range lay.dropdownHeader {
		width = max(width, ansi.StringWidth(line))
	}
	for _, item := range items {
		width = max(width, ansi.StringWidth(item.Label))
	}
	width += 2 * dropdownPadding
	width = min(width, lay.width-2)
	height := len(lay.dropdownHeader) + len(items)
	lay.dropdown = pointer.Rect{X: lay.width - 1 - width, Y: 1, W: width, H: height}
	y := 1 + len(lay.dropdownHeader)
	for i, item := range items {
		lay.items = append(lay.items, dropdownSlot{
			item: item,
			rect: pointer.Rect{X: lay.dropdown.X, Y: y + i, W: width, H: 1},
		})
	}
}

// searchBounds is the region owned by the search widget: the input box and,
// while open, the results panel. Nothing is on screen while loading.
func (m *Model) searchBounds() []pointer.Rect {
	if m.search.Loading() {
		return nil
	}
	lay := m.layout()
	rects := make([]pointer.Rect, 0, 2)
	if !lay.search.Empty() {
		rects = append(rects, lay.search)
	}
	if !lay.panel.Empty() {
		rects = append(rects, lay.panel)
	}
	return rects
}

func (m *Model) avatarLabel() string {
	user, ok := m.currentUser()
	if !ok {
		return "[?]"
	}
	initials := user.Initials()
	if initials == "" {
		initials = "?"
	}
	return "[" + initials + "]"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
