package route

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Screens known to the header.
const (
	Home        = "/"
	VideoFeed   = "/video-feed"
	FriendsList = "/friends-list"
	Login       = "/user-login"
)

const profilePrefix = "user-profile/"

var (
	// ErrUnknownRoute is returned for routes that match no screen.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrNavigationTimeout marks a navigation abandoned after the bounded wait.
	ErrNavigationTimeout = errors.New("navigation timed out")
)

// ProfileRoute is the relative route the search panel pushes for a user.
func ProfileRoute(id string) string {
	return profilePrefix + id
}

// UserProfile is the absolute profile route used by the menus.
func UserProfile(id string) string {
	return "/" + profilePrefix + id
}

// Navigator changes the visible screen.
type Navigator interface {
	NavigateTo(ctx context.Context, route string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context, route string) error

// NavigateTo calls f(ctx, route).
func (f NavigatorFunc) NavigateTo(ctx context.Context, route string) error {
	return f(ctx, route)
}

// NavigationError reports a navigation that failed or never completed.
type NavigationError struct {
	Route string
	Err   error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate to %q: %v", e.Route, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Resolve turns a route into an absolute, cleaned path. Relative routes are
// resolved against the site root.
func Resolve(route string) string {
	trimmed := strings.TrimSpace(route)
	if trimmed == "" {
		return Home
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return path.Clean(trimmed)
}

// Location is a resolved screen.
type Location struct {
	Path    string
	Pattern string
	Params  map[string]string
}

// Param returns a named route parameter.
func (l Location) Param(key string) string {
	if l.Params == nil {
		return ""
	}
	return l.Params[key]
}

// Router is the in-process Navigator. Screens are registered in a chi mux
// and matched on every push.
type Router struct {
	mux *chi.Mux

	mu       sync.Mutex
	current  Location
	history  []Location
	listener func(Location)
}

// NewRouter creates a router positioned at Home.
func NewRouter() *Router {
	mux := chi.NewRouter()
	screen := func(http.ResponseWriter, *http.Request) {}
	for _, p := range []string{Home, VideoFeed, FriendsList, Login, "/user-profile/{id}"} {
		mux.Get(p, screen)
	}
	r := &Router{mux: mux}
	r.current = Location{Path: Home, Pattern: Home}
	return r
}

// Match resolves route against the registered screens.
func (r *Router) Match(route string) (Location, bool) {
	resolved := Resolve(route)
	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, resolved) {
		return Location{}, false
	}
	loc := Location{Path: resolved, Pattern: rctx.RoutePattern()}
	if n := len(rctx.URLParams.Keys); n > 0 {
		loc.Params = make(map[string]string, n)
		for i, key := range rctx.URLParams.Keys {
			loc.Params[key] = rctx.URLParams.Values[i]
		}
	}
	return loc, true
}

// NavigateTo implements Navigator.
func (r *Router) NavigateTo(ctx context.Context, route string) error {
	if err := ctx.Err(); err != nil {
		return &NavigationError{Route: route, Err: err}
	}
	loc, ok := r.Match(route)
	if !ok {
		return &NavigationError{Route: route, Err: ErrUnknownRoute}
	}
	r.mu.Lock()
	r.history = append(r.history, r.current)
	r.current = loc
	listener := r.listener
	r.mu.Unlock()
	if listener != nil {
		listener(loc)
	}
	return nil
}

// Current returns the active location.
func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns previously visited locations, oldest first.
func (r *Router) History() []Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	dup := make([]Location, len(r.history))
	copy(dup, r.history)
	return dup
}

// OnChange registers fn to be called after every successful navigation.
func (r *Router) OnChange(fn func(Location)) {
	r.mu.Lock()
	r.listener = fn
	r.mu.Unlock()
}
