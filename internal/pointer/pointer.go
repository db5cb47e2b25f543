// Package pointer models document-level click observation for the terminal
// surface. A Hub receives every left click; subscribers describe the region
// they own and are told when a click lands outside it.
package pointer

import (
	"sort"
	"sync"
)

// Point is a terminal cell coordinate.
type Point struct {
	X int
	Y int
}

// Rect is a rectangular cell region. Zero-sized rects contain nothing.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// BoundsFunc returns the region currently owned by a subscriber. It is
// evaluated on every dispatch so the region can follow the layout.
type BoundsFunc func() []Rect

// Hub fans clicks out to outside-click subscribers.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]*Subscription
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]*Subscription)}
}

// Subscription is a live outside-click registration.
type Subscription struct {
	hub       *Hub
	id        int
	bounds    BoundsFunc
	onOutside func(Point)
	once      sync.Once
}

// ID identifies the subscription for tracing.
func (s *Subscription) ID() int {
	if s == nil {
		return 0
	}
	return s.id
}

// Release removes the subscription. Calling it more than once is a no-op.
func (s *Subscription) Release() {
	if s == nil || s.hub == nil {
		return
	}
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
	})
}

// Subscribe registers onOutside to run for every click outside bounds.
func (h *Hub) Subscribe(bounds BoundsFunc, onOutside func(Point)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	sub := &Subscription{hub: h, id: h.next, bounds: bounds, onOutside: onOutside}
	h.subs[sub.id] = sub
	return sub
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Dispatch delivers a click. Subscribers run in registration order, outside
// the hub lock, and it returns how many of them saw the click as outside.
func (h *Hub) Dispatch(p Point) int {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()
	sort.Slice(subs, func(i, j int) bool { return subs[i].id < subs[j].id })

	fired := 0
	for _, sub := range subs {
		if sub.onOutside == nil || inside(sub.bounds, p) {
			continue
		}
		sub.onOutside(p)
		fired++
	}
	return fired
}

func inside(bounds BoundsFunc, p Point) bool {
	if bounds == nil {
		return false
	}
	for _, r := range bounds() {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
