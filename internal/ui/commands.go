package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linkup-social/linkup-header/internal/auth"
	"github.com/linkup-social/linkup-header/internal/directory"
	"github.com/linkup-social/linkup-header/internal/logging"
	"github.com/linkup-social/linkup-header/internal/logging/events"
	"github.com/linkup-social/linkup-header/internal/menu"
	"github.com/linkup-social/linkup-header/internal/route"
	"github.com/linkup-social/linkup-header/internal/ui/command"
)

const (
	logoutSuccessMessage = "User logged out successfully"
	logoutFailedMessage  = "Failed to log out"
)

var errAuthUnavailable = errors.New("auth service not configured")

type navOrigin string

const (
	originSelection navOrigin = "selection"
	originMenu      navOrigin = "menu"
	originLogout    navOrigin = "logout"
)

// directoryLoadedMsg carries the outcome of the one-shot directory fetch.
type directoryLoadedMsg struct {
	records []directory.UserRecord
	err     error
}

// navigationDoneMsg reports a finished, failed or abandoned navigation.
type navigationDoneMsg struct {
	route  string
	origin navOrigin
	err    error
}

type logoutDoneMsg struct {
	result auth.Result
	err    error
}

func (m *Model) loadDirectoryCmd() tea.Cmd {
	src := m.directory
	source := fmt.Sprintf("%T", src)
	if endpoint, ok := src.(interface{ Endpoint() string }); ok {
		source = endpoint.Endpoint()
	}
	events.Directory.Fetch(source)
	return m.bus.Execute(command.Request{
		Label:   "directory.fetch",
		Timeout: m.fetchTimeout,
		Run: func(ctx context.Context) tea.Msg {
			records, err := src.FetchAllUsers(ctx)
			return directoryLoadedMsg{records: records, err: err}
		},
		OnTimeout: func(err error) tea.Msg {
			if errors.Is(err, command.ErrClosed) {
				return nil
			}
			return directoryLoadedMsg{err: &directory.FetchError{Source: source, Err: err}}
		},
	})
}

func (m *Model) handleDirectoryLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(directoryLoadedMsg)
	if !ok {
		return nil
	}
	if err := m.search.FinishDirectoryLoad(loaded.records, loaded.err); err != nil {
		var fetchErr *directory.FetchError
		if !errors.As(err, &fetchErr) {
			err = &directory.FetchError{Source: fmt.Sprintf("%T", m.directory), Err: err}
		}
		logging.Error(err)
		events.Directory.Failed(err)
		if m.verbose {
			m.setError(err.Error())
		}
	} else {
		events.Directory.Loaded(len(loaded.records))
	}
	m.search.EnsureCursorVisible(m.panelCapacity())
	return nil
}

// navigateCmd pushes target and waits at most navTimeout for the navigator.
func (m *Model) navigateCmd(target string, origin navOrigin) tea.Cmd {
	nav := m.navigator
	events.Nav.Push(target, string(origin))
	return tea.Batch(m.bus.Execute(command.Request{
		Label:   "nav.push " + target,
		Timeout: m.navTimeout,
		Run: func(ctx context.Context) tea.Msg {
			return navigationDoneMsg{route: target, origin: origin, err: nav.NavigateTo(ctx, target)}
		},
		OnTimeout: func(err error) tea.Msg {
			if errors.Is(err, command.ErrClosed) {
				return nil
			}
			return navigationDoneMsg{
				route:  target,
				origin: origin,
				err:    &route.NavigationError{Route: target, Err: route.ErrNavigationTimeout},
			}
		},
	}), m.startSpinner())
}

func (m *Model) handleNavigationDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(navigationDoneMsg)
	if !ok {
		return nil
	}
	if done.origin == originSelection {
		m.search.FinishNavigation()
		events.Selection.Settled(done.route, done.err != nil)
	}
	if done.err != nil {
		err := done.err
		var navErr *route.NavigationError
		if !errors.As(err, &navErr) {
			err = &route.NavigationError{Route: done.route, Err: err}
		}
		logging.Error(err)
		events.Nav.Failed(done.route, err)
		if m.verbose {
			m.setError(err.Error())
		}
		return nil
	}
	events.Nav.Done(done.route)
	m.location = route.Resolve(done.route)
	m.activeTab = menu.ActiveTab(m.location)
	return nil
}

func (m *Model) logoutCmd() tea.Cmd {
	if m.loggingOut {
		return nil
	}
	if m.auth == nil {
		err := fmt.Errorf("%w: %v", auth.ErrLogout, errAuthUnavailable)
		logging.Error(err)
		events.Action.Error(err)
		m.setError(logoutFailedMessage)
		return nil
	}
	m.loggingOut = true
	svc := m.auth
	events.Auth.Logout()
	return m.bus.Execute(command.Request{
		Label:   "auth.logout",
		Timeout: m.fetchTimeout,
		Run: func(ctx context.Context) tea.Msg {
			result, err := svc.Logout(ctx)
			return logoutDoneMsg{result: result, err: err}
		},
		OnTimeout: func(err error) tea.Msg {
			if errors.Is(err, command.ErrClosed) {
				return nil
			}
			return logoutDoneMsg{err: fmt.Errorf("%w: %v", auth.ErrLogout, err)}
		},
	})
}

func (m *Model) handleLogoutDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(logoutDoneMsg)
	if !ok {
		return nil
	}
	m.loggingOut = false
	if done.err != nil {
		logging.Error(done.err)
		events.Auth.Failed(done.err)
		m.setError(logoutFailedMessage)
		return nil
	}
	events.Auth.Result(done.result.Status)
	if !done.result.OK() {
		return nil
	}
	cmd := m.navigateCmd(route.Login, originLogout)
	m.session.ClearUser()
	m.setInfo(logoutSuccessMessage)
	events.Action.Success(logoutSuccessMessage)
	return cmd
}
