package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/linkup-social/linkup-header/internal/format/table"
	"github.com/muesli/reflow/truncate"
)

const (
	loadingLabel   = "Loading…"
	desktopFooter  = "/ search  ↑/↓ move  enter select  esc close  1-3 tabs  p profile  m menu  b sidebar  q quit"
	compactFooter  = "m menu  b sidebar  q quit"
	bodyFirstRow   = 2
	sidebarOpen    = "Sidebar: open"
	sidebarClosed  = "Sidebar: closed"
	signedOutLabel = "Not signed in"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.search.Loading() {
		return m.loaderView()
	}
	lay := m.layout()
	c := newCanvas(lay.width, m.height)
	m.drawBar(c, lay)
	m.drawBody(c)
	m.drawPanel(c, lay)
	m.drawDropdown(c, lay)
	m.drawStatus(c)
	return c.render()
}

// loaderView replaces the whole header while the directory loads or a
// selection navigates.
func (m *Model) loaderView() string {
	text := loadingLabel
	if m.animate {
		text = m.spinner.View() + " " + text
	} else if styles.Loading != nil {
		text = styles.Loading.Render(text)
	}
	if m.width <= 0 || m.height <= 0 {
		return text
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}

func (m *Model) drawBar(c *canvas, lay layout) {
	c.fill(0, 0, lay.width, styles.Bar)
	c.put(lay.brand.X, 0, brandLabel, styles.Brand)
	if lay.compact {
		c.put(lay.hamburger.X, 0, hamburgerLabel, styles.Bar)
		return
	}
	m.drawSearchBox(c, lay)
	for _, tab := range lay.tabs {
		style := styles.Tab
		if tab.item.ID == m.activeTab {
			style = styles.ActiveTab
		}
		c.put(tab.rect.X, 0, tab.item.Label, style)
	}
	c.put(lay.indicators.X, 0, indicatorsLabel, styles.Indicator)
	c.put(lay.avatar.X, 0, m.avatarLabel(), styles.Avatar)
}

func (m *Model) drawSearchBox(c *canvas, lay layout) {
	box := lay.search
	c.fill(box.X, 0, box.W, styles.SearchBox)
	c.put(box.X, 0, searchPrompt, styles.SearchPrompt)
	fieldX := box.X + lipgloss.Width(searchPrompt)
	fieldW := box.X + box.W - fieldX
	if fieldW <= 0 {
		return
	}
	s := m.search
	if s.Query == "" && !s.Focused {
		c.put(fieldX, 0, truncate.StringWithTail(searchPlaceholder, uint(fieldW), "…"), styles.Placeholder)
		return
	}
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	caret := " "
	if pos < len(runes) {
		caret = string(runes[pos])
	}
	caretW := max(ansi.StringWidth(caret), 1)
	// Slide the window right until the caret cell fits inside the field.
	start, before := 0, 0
	for i := 0; i < pos; i++ {
		before += runeCells(runes[i])
	}
	for start < pos && before+caretW > fieldW {
		before -= runeCells(runes[start])
		start++
	}
	var visible []rune
	used := 0
	for _, r := range runes[start:] {
		w := runeCells(r)
		if used+w > fieldW {
			break
		}
		visible = append(visible, r)
		used += w
	}
	c.put(fieldX, 0, string(visible), styles.Query)
	if !s.Focused || m.queryCursor.Blink || before+caretW > fieldW {
		return
	}
	c.put(fieldX+before, 0, caret, styles.Cursor)
}

func runeCells(r rune) int {
	return ansi.StringWidth(string(r))
}

func (m *Model) drawBody(c *canvas) {
	lines := []string{fmt.Sprintf("Screen: %s", m.location)}
	if user, ok := m.currentUser(); ok {
		line := "Signed in as " + user.Username
		if user.Email != "" {
			line += " <" + user.Email + ">"
		}
		lines = append(lines, line)
	} else {
		lines = append(lines, signedOutLabel)
	}
	if m.sidebar.Open() {
		lines = append(lines, sidebarOpen)
	} else {
		lines = append(lines, sidebarClosed)
	}
	limit := len(lines)
	if m.height > 0 {
		limit = min(limit, m.height-bodyFirstRow-m.statusRows())
	}
	for i := 0; i < limit; i++ {
		c.put(brandX, bodyFirstRow+i, lines[i], styles.Body)
	}
}

func (m *Model) drawPanel(c *canvas, lay layout) {
	if lay.panel.Empty() {
		return
	}
	panel := lay.panel
	if len(lay.rows) == 0 {
		c.fill(panel.X, panel.Y, panel.W, styles.Empty)
		c.put(panel.X+1, panel.Y, truncate.StringWithTail(emptyResults, uint(max(panel.W-2, 1)), "…"), styles.Empty)
		return
	}
	cells := make([][]string, len(lay.rows))
	for i, row := range lay.rows {
		rec, _ := m.search.ResultAt(row.index)
		cells[i] = []string{rec.Initials(), rec.Username}
	}
	formatted := table.Format(cells, []table.Alignment{table.AlignRight})
	avatarW := 0
	for _, cl := range cells {
		avatarW = max(avatarW, lipgloss.Width(cl[0]))
	}
	textW := uint(max(panel.W-2, 1))
	for i, row := range lay.rows {
		style, avatarStyle := styles.Result, styles.ResultAvatar
		if row.index == m.search.Cursor {
			style, avatarStyle = styles.SelectedResult, styles.SelectedResult
		}
		c.fill(panel.X, row.rect.Y, panel.W, style)
		c.put(panel.X+1, row.rect.Y, truncate.StringWithTail(formatted[i], textW, "…"), style)
		initials := cells[i][0]
		pad := avatarW - lipgloss.Width(initials)
		if int(textW) > pad {
			c.put(panel.X+1+pad, row.rect.Y, truncate.String(initials, textW-uint(pad)), avatarStyle)
		}
	}
}

func (m *Model) drawDropdown(c *canvas, lay layout) {
	if lay.dropdown.Empty() {
		return
	}
	box := lay.dropdown
	textW := uint(max(box.W-2*dropdownPadding, 1))
	for i, line := range lay.dropdownHeader {
		y := box.Y + i
		c.fill(box.X, y, box.W, styles.DropdownHeader)
		c.put(box.X+dropdownPadding, y, truncate.StringWithTail(line, textW, "…"), styles.DropdownHeader)
	}
	for i, slot := range lay.items {
		style := styles.Dropdown
		if i == m.dropdownCursor {
			style = styles.SelectedDropdownItem
		}
		c.fill(box.X, slot.rect.Y, box.W, style)
		c.put(box.X+dropdownPadding, slot.rect.Y, truncate.StringWithTail(slot.item.Label, textW, "…"), style)
	}
}

// statusRows is the number of rows reserved at the bottom of the screen.
func (m *Model) statusRows() int {
	rows := 0
	if m.showFooter {
		rows++
	}
	if toast, _ := m.currentToast(); toast != "" {
		rows++
	}
	return rows
}

func (m *Model) drawStatus(c *canvas) {
	toast, isErr := m.currentToast()
	lines := make([]styledLine, 0, 2)
	if toast != "" {
		style := styles.Info
		if isErr {
			style = styles.Error
		}
		lines = append(lines, styledLine{text: toast, style: style})
	}
	if m.showFooter {
		footer := desktopFooter
		if m.viewWidth() < compactBreakpoint {
			footer = compactFooter
		}
		lines = append(lines, styledLine{text: footer, style: styles.Footer})
	}
	if len(lines) == 0 {
		return
	}
	y := c.height() + 1
	if m.height > 0 {
		y = m.height - len(lines)
	}
	for i, line := range lines {
		c.put(0, y+i, truncateText(line.text, c.width), line.style)
	}
}

type styledLine struct {
	text  string
	style *lipgloss.Style
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
