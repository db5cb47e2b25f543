package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/linkup-social/linkup-header/internal/auth"
	"github.com/linkup-social/linkup-header/internal/directory"
)

func TestFakeDirectoryGate(t *testing.T) {
	dir := &FakeDirectory{
		Records: []directory.UserRecord{{ID: "1", Username: "Alice"}},
		Gate:    make(chan struct{}),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := dir.FetchAllUsers(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected gate to hold until deadline, got %v", err)
	}
	close(dir.Gate)
	records, err := dir.FetchAllUsers(context.Background())
	if err != nil || len(records) != 1 {
		t.Fatalf("unexpected fetch result %v %v", records, err)
	}
	if dir.Calls() != 2 {
		t.Fatalf("expected 2 calls, got %d", dir.Calls())
	}
}

func TestFakeNavigatorRecordsRoutes(t *testing.T) {
	nav := &FakeNavigator{}
	_ = nav.NavigateTo(context.Background(), "user-profile/1")
	nav.Err = errors.New("nope")
	if err := nav.NavigateTo(context.Background(), "/"); err == nil {
		t.Fatal("expected configured error")
	}
	routes := nav.Routes()
	if len(routes) != 2 || routes[0] != "user-profile/1" || routes[1] != "/" {
		t.Fatalf("unexpected routes %v", routes)
	}
}

func TestFakeAuth(t *testing.T) {
	a := &FakeAuth{Result: auth.Result{Status: auth.StatusSuccess}}
	res, err := a.Logout(context.Background())
	if err != nil || !res.OK() {
		t.Fatalf("unexpected logout %v %v", res, err)
	}
	if a.Calls() != 1 {
		t.Fatalf("expected 1 call, got %d", a.Calls())
	}
}
