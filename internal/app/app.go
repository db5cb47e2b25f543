package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linkup-social/linkup-header/internal/auth"
	"github.com/linkup-social/linkup-header/internal/directory"
	"github.com/linkup-social/linkup-header/internal/logging"
	"github.com/linkup-social/linkup-header/internal/logging/events"
	"github.com/linkup-social/linkup-header/internal/pointer"
	"github.com/linkup-social/linkup-header/internal/route"
	"github.com/linkup-social/linkup-header/internal/state"
	"github.com/linkup-social/linkup-header/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	APIBaseURL    string
	Token         string
	DirectoryDB   string
	DirectorySeed string

	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	MaxResults int

	NavigationTimeout time.Duration
	FetchTimeout      time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource, err := openDirectory(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	var authSvc auth.Service
	if cfg.APIBaseURL != "" {
		authSvc = auth.NewHTTPService(cfg.APIBaseURL, cfg.Token, nil)
	}

	model := ui.NewModel(ui.Options{
		Directory:         source,
		Auth:              authSvc,
		Navigator:         newRouter(),
		Session:           sessionFromToken(cfg.Token),
		Sidebar:           state.NewSidebarStore(),
		Pointer:           pointer.NewHub(),
		Width:             cfg.Width,
		Height:            cfg.Height,
		ShowFooter:        cfg.ShowFooter,
		Verbose:           cfg.Verbose,
		MaxResults:        cfg.MaxResults,
		NavigationTimeout: cfg.NavigationTimeout,
		FetchTimeout:      cfg.FetchTimeout,
		Animate:           true,
		Context:           ctx,
	})
	defer model.Unmount()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newRouter returns the screen router with location changes traced.
func newRouter() *route.Router {
	router := route.NewRouter()
	router.OnChange(func(loc route.Location) {
		events.Nav.Location(loc.Path, loc.Pattern, len(router.History()))
	})
	return router
}

// openDirectory picks the directory backend: a local SQLite store when a
// database path is configured, the HTTP API otherwise.
func openDirectory(ctx context.Context, cfg Config) (directory.Source, func(), error) {
	if cfg.DirectoryDB == "" {
		if cfg.APIBaseURL == "" {
			return nil, nil, errors.New("no directory configured: set an API base URL or a directory database")
		}
		return directory.NewHTTPSource(cfg.APIBaseURL, cfg.Token, nil), func() {}, nil
	}
	store, err := directory.OpenSQLite(cfg.DirectoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("open directory database: %w", err)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			logging.Error(fmt.Errorf("close directory database: %w", err))
		}
	}
	if cfg.DirectorySeed != "" {
		n, err := store.ImportFile(ctx, cfg.DirectorySeed)
		if err != nil {
			closeStore()
			return nil, nil, fmt.Errorf("import directory seed: %w", err)
		}
		events.Directory.Imported(cfg.DirectorySeed, n)
	}
	return store, closeStore, nil
}

// sessionFromToken seeds the session store from the session token. A token
// that cannot be read leaves the header signed out.
func sessionFromToken(token string) state.SessionStore {
	session := state.NewSessionStore()
	if token == "" {
		return session
	}
	user, err := state.UserFromToken(token)
	if err != nil {
		logging.Error(err)
		return session
	}
	session.SetUser(user)
	return session
}
