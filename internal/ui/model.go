package ui

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linkup-social/linkup-header/internal/auth"
	"github.com/linkup-social/linkup-header/internal/directory"
	"github.com/linkup-social/linkup-header/internal/logging/events"
	"github.com/linkup-social/linkup-header/internal/menu"
	"github.com/linkup-social/linkup-header/internal/pointer"
	"github.com/linkup-social/linkup-header/internal/route"
	"github.com/linkup-social/linkup-header/internal/state"
	"github.com/linkup-social/linkup-header/internal/theme"
	"github.com/linkup-social/linkup-header/internal/ui/command"
	uistate "github.com/linkup-social/linkup-header/internal/ui/state"
)

const (
	defaultMaxResults        = 8
	defaultNavigationTimeout = 5 * time.Second
	defaultFetchTimeout      = 15 * time.Second
	toastTTL                 = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Session is the part of the session store the header needs: the current
// user snapshot and the ability to clear it on logout.
type Session interface {
	User() (state.User, bool)
	ClearUser()
}

// Sidebar is the part of the sidebar store the header needs.
type Sidebar interface {
	Open() bool
	Toggle()
}

// Options wires the header to its collaborators. Nil collaborators fall back
// to inert in-memory versions.
type Options struct {
	Directory directory.Source
	Auth      auth.Service
	Navigator route.Navigator
	Session   Session
	Sidebar   Sidebar
	Pointer   *pointer.Hub

	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	MaxResults int

	NavigationTimeout time.Duration
	FetchTimeout      time.Duration

	// Animate enables the loader spinner and a blinking caret.
	Animate bool
	// Context bounds every collaborator call the header makes.
	Context context.Context
}

type dropdownKind int

const (
	dropdownNone dropdownKind = iota
	dropdownProfile
	dropdownMobile
)

func (k dropdownKind) String() string {
	switch k {
	case dropdownProfile:
		return "profile"
	case dropdownMobile:
		return "mobile"
	default:
		return "none"
	}
}

// Model implements the Bubble Tea model for the LinkUp header.
type Model struct {
	search *uistate.Search

	directory directory.Source
	auth      auth.Service
	navigator route.Navigator
	session   Session
	sidebar   Sidebar
	hub       *pointer.Hub
	sub       *pointer.Subscription
	bus       *command.Bus

	mounted    bool
	unmounted  bool
	loggingOut bool

	spinner            spinner.Model
	spinning           bool
	queryCursor        cursor.Model
	queryCursorFocused bool
	queryCursorDirty   bool
	animate            bool

	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	verbose      bool
	maxResults   int
	navTimeout   time.Duration
	fetchTimeout time.Duration

	dropdown       dropdownKind
	dropdownCursor int
	location       string
	activeTab      string

	infoMsg    string
	infoExpire time.Time
	errMsg     string
	errExpire  time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the header with its collaborators.
func NewModel(opts Options) *Model {
	m := &Model{
		search:       uistate.NewSearch(),
		directory:    opts.Directory,
		auth:         opts.Auth,
		navigator:    opts.Navigator,
		session:      opts.Session,
		sidebar:      opts.Sidebar,
		hub:          opts.Pointer,
		bus:          command.New(opts.Context),
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		animate:      opts.Animate,
		maxResults:   opts.MaxResults,
		navTimeout:   opts.NavigationTimeout,
		fetchTimeout: opts.FetchTimeout,
		location:     route.Home,
	}
	if m.directory == nil {
		m.directory = directory.SourceFunc(func(context.Context) ([]directory.UserRecord, error) {
			return nil, nil
		})
	}
	if m.navigator == nil {
		m.navigator = route.NewRouter()
	}
	if m.session == nil {
		m.session = state.NewSessionStore()
	}
	if m.sidebar == nil {
		m.sidebar = state.NewSidebarStore()
	}
	if m.hub == nil {
		m.hub = pointer.NewHub()
	}
	if m.maxResults <= 0 {
		m.maxResults = defaultMaxResults
	}
	if m.navTimeout <= 0 {
		m.navTimeout = defaultNavigationTimeout
	}
	if m.fetchTimeout <= 0 {
		m.fetchTimeout = defaultFetchTimeout
	}
	if current, ok := m.navigator.(interface{ Current() route.Location }); ok {
		m.location = current.Current().Path
	}
	m.activeTab = menu.ActiveTab(m.location)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	m.spinner = spinner.New(spinner.WithSpinner(spinner.MiniDot))
	if styles.Loading != nil {
		m.spinner.Style = *styles.Loading
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Query != nil {
		c.TextStyle = *styles.Query
	}
	if !m.animate {
		c.SetMode(cursor.CursorStatic)
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.registerHandlers()
	return m
}

// Search exposes the search widget state.
func (m *Model) Search() *uistate.Search {
	return m.search
}

// Init mounts the header: it acquires the outside-click subscription and
// starts the one-shot directory fetch. Later calls are no-ops.
func (m *Model) Init() tea.Cmd {
	if m.mounted {
		return nil
	}
	m.mounted = true
	m.sub = m.hub.Subscribe(m.searchBounds, m.handleOutsideClick)
	events.App.Mount(m.sub.ID())
	m.search.BeginDirectoryLoad()
	return tea.Batch(m.loadDirectoryCmd(), m.startSpinner())
}

// Unmount releases the outside-click subscription and abandons in-flight
// collaborator calls. Messages delivered afterwards are dropped.
func (m *Model) Unmount() {
	if !m.mounted || m.unmounted {
		return
	}
	m.unmounted = true
	m.sub.Release()
	m.bus.Close()
	events.App.Unmount(m.sub.ID())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.unmounted {
		if msg != nil {
			events.App.Dropped(fmt.Sprintf("%T", msg))
		}
		return m, nil
	}
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):    m.handleSpinnerTickMsg,
		reflect.TypeOf(directoryLoadedMsg{}): m.handleDirectoryLoadedMsg,
		reflect.TypeOf(navigationDoneMsg{}):  m.handleNavigationDoneMsg,
		reflect.TypeOf(logoutDoneMsg{}):      m.handleLogoutDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.syncQueryCursorFocus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		if m.queryCursorFocused {
			m.queryCursor.Blink = false
			if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) syncQueryCursorFocus() tea.Cmd {
	switch {
	case m.search.Focused && !m.queryCursorFocused:
		m.queryCursorFocused = true
		return m.queryCursor.Focus()
	case !m.search.Focused && m.queryCursorFocused:
		m.queryCursorFocused = false
		m.queryCursor.Blur()
	}
	return nil
}

func (m *Model) startSpinner() tea.Cmd {
	if !m.animate || m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if !m.search.Loading() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	compact := m.viewWidth() < compactBreakpoint
	if compact && m.search.Focused {
		m.search.OutsideClick()
	}
	if !compact && m.dropdown == dropdownMobile {
		m.closeDropdown()
	}
	if compact && m.dropdown == dropdownProfile {
		m.closeDropdown()
	}
	m.search.EnsureCursorVisible(m.panelCapacity())
	events.App.Resize(m.width, m.height, compact)
	return nil
}

func (m *Model) currentUser() (state.User, bool) {
	if m.session == nil {
		return state.User{}, false
	}
	return m.session.User()
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(toastTTL)
}

func (m *Model) setError(message string) {
	m.errMsg = message
	m.errExpire = time.Now().Add(toastTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
	m.errMsg = ""
	m.errExpire = time.Time{}
}

// currentToast returns the visible toast and whether it is an error.
func (m *Model) currentToast() (string, bool) {
	now := time.Now()
	if m.errMsg != "" && !m.errExpire.IsZero() && now.After(m.errExpire) {
		m.errMsg = ""
		m.errExpire = time.Time{}
	}
	if m.infoMsg != "" && !m.infoExpire.IsZero() && now.After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	if m.errMsg != "" {
		return m.errMsg, true
	}
	return m.infoMsg, false
}
