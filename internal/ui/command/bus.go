package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/linkup-social/linkup-header/internal/logging/events"
)

// ErrClosed is passed to OnTimeout when the bus shut down mid-flight.
var ErrClosed = errors.New("command bus closed")

// Request encapsulates a collaborator call made on behalf of the UI.
type Request struct {
	ID      string
	Label   string
	Timeout time.Duration
	// Run performs the call and converts its outcome into a message.
	Run func(ctx context.Context) tea.Msg
	// OnTimeout builds the message delivered when Run does not return in
	// time. Returning nil drops the request silently.
	OnTimeout func(err error) tea.Msg
}

// Bus runs collaborator calls as Bubble Tea commands under a shared
// lifetime. Closing the bus abandons everything still in flight.
type Bus struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// New initialises a command bus bound to parent.
func New(parent context.Context) *Bus {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Bus{ctx: ctx, cancel: cancel}
}

// Close cancels every in-flight request. It is safe to call repeatedly.
func (b *Bus) Close() {
	b.once.Do(b.cancel)
}

// Closed reports whether Close has been called.
func (b *Bus) Closed() bool {
	return b.ctx.Err() != nil
}

// Execute wraps req into a command, emitting trace logs. The command waits
// for Run or for the request deadline, whichever comes first.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		ctx := b.ctx
		cancel := context.CancelFunc(func() {})
		if req.Timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		}
		defer cancel()

		done := make(chan tea.Msg, 1)
		go func() {
			done <- req.Run(ctx)
		}()

		select {
		case msg := <-done:
			events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
			return msg
		case <-ctx.Done():
			events.Command.Timeout(req.ID, req.Label)
			if req.OnTimeout == nil {
				return nil
			}
			err := ctx.Err()
			if b.Closed() {
				err = ErrClosed
			}
			return req.OnTimeout(err)
		}
	}
}
