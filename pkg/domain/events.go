package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventParsed EventType = "parsed"
	EventSolved EventType = "solved"
	EventFailed EventType = "failed"
	EventCached EventType = "cached"
)

// SolveEvent is emitted at each stage of solving one equation.
type SolveEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Equation  string        `json:"equation"`
	Reduced   *Polynomial   `json:"reduced,omitempty"`
	Report    *Report       `json:"report,omitempty"`
	Err       error         `json:"-"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnParsed func(context.Context, *SolveEvent)
	OnSolved func(context.Context, *SolveEvent)
	OnFailed func(context.Context, *SolveEvent)
	OnCached func(context.Context, *SolveEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnParsed: chain(h.OnParsed, other.OnParsed),
		OnSolved: chain(h.OnSolved, other.OnSolved),
		OnFailed: chain(h.OnFailed, other.OnFailed),
		OnCached: chain(h.OnCached, other.OnCached),
	}
}

func chain(a, b func(context.Context, *SolveEvent)) func(context.Context, *SolveEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *SolveEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
