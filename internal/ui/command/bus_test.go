package command

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ err error }

func TestExecuteReturnsRunResult(t *testing.T) {
	bus := New(context.Background())
	defer bus.Close()
	cmd := bus.Execute(Request{
		Label: "ok",
		Run: func(ctx context.Context) tea.Msg {
			return doneMsg{}
		},
	})
	msg, ok := cmd().(doneMsg)
	if !ok || msg.err != nil {
		t.Fatalf("expected doneMsg, got %#v", msg)
	}
}

func TestExecuteWithoutRunIsNoOp(t *testing.T) {
	bus := New(context.Background())
	if msg := bus.Execute(Request{Label: "empty"})(); msg != nil {
		t.Fatalf("expected nil msg, got %#v", msg)
	}
}

func TestExecuteTimesOut(t *testing.T) {
	bus := New(context.Background())
	defer bus.Close()
	release := make(chan struct{})
	defer close(release)
	cmd := bus.Execute(Request{
		Label:   "slow",
		Timeout: 20 * time.Millisecond,
		Run: func(ctx context.Context) tea.Msg {
			<-release
			return doneMsg{}
		},
		OnTimeout: func(err error) tea.Msg {
			return doneMsg{err: err}
		},
	})
	msg, ok := cmd().(doneMsg)
	if !ok {
		t.Fatalf("expected doneMsg, got %#v", msg)
	}
	if !errors.Is(msg.err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", msg.err)
	}
}

func TestCloseAbandonsInFlight(t *testing.T) {
	bus := New(context.Background())
	started := make(chan struct{})
	cmd := bus.Execute(Request{
		Label: "pending",
		Run: func(ctx context.Context) tea.Msg {
			close(started)
			<-ctx.Done()
			return doneMsg{err: ctx.Err()}
		},
		OnTimeout: func(err error) tea.Msg {
			return doneMsg{err: err}
		},
	})
	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()
	<-started
	bus.Close()
	bus.Close()
	if !bus.Closed() {
		t.Fatal("expected bus closed")
	}
	select {
	case msg := <-result:
		got, ok := msg.(doneMsg)
		if !ok || got.err == nil {
			t.Fatalf("expected cancellation error, got %#v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("command did not return after close")
	}
}
