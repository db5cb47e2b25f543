// Package testutil provides in-memory collaborators for driving the header
// in tests.
package testutil

import (
	"context"
	"sync"

	"github.com/linkup-social/linkup-header/internal/auth"
	"github.com/linkup-social/linkup-header/internal/directory"
)

// FakeDirectory serves a fixed record list.
type FakeDirectory struct {
	Records []directory.UserRecord
	Err     error
	// Gate, when set, holds every fetch until it is closed or the
	// context ends.
	Gate chan struct{}

	mu    sync.Mutex
	calls int
}

// FetchAllUsers implements directory.Source.
func (f *FakeDirectory) FetchAllUsers(ctx context.Context) ([]directory.UserRecord, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.Gate != nil {
		select {
		case <-f.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return directory.Clone(f.Records), nil
}

// Calls returns how many fetches were made.
func (f *FakeDirectory) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeNavigator records every pushed route.
type FakeNavigator struct {
	// Err is returned from every navigation.
	Err error
	// Hang makes navigations wait for the context to end.
	Hang bool

	mu     sync.Mutex
	routes []string
}

// NavigateTo implements route.Navigator.
func (f *FakeNavigator) NavigateTo(ctx context.Context, target string) error {
	f.mu.Lock()
	f.routes = append(f.routes, target)
	hang := f.Hang
	f.mu.Unlock()
	if hang {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.Err
}

// Routes returns the pushed routes in order.
func (f *FakeNavigator) Routes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := make([]string, len(f.routes))
	copy(dup, f.routes)
	return dup
}

// FakeAuth answers logout calls with a canned result.
type FakeAuth struct {
	Result auth.Result
	Err    error

	mu    sync.Mutex
	calls int
}

// Logout implements auth.Service.
func (f *FakeAuth) Logout(ctx context.Context) (auth.Result, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return auth.Result{}, err
	}
	return f.Result, f.Err
}

// Calls returns how many logouts were requested.
func (f *FakeAuth) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
