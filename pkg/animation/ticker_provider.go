package animation

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// TickerProvider supplies tickers to animation controllers.
//
// Hosts that already own a frame loop (a widget tree, a render surface)
// implement TickerProvider so controllers tick in lockstep with it. Code
// without a host loop uses [FallbackTickerProvider] instead.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// FallbackTickerProvider supplies a single owned ticker for callers that
// did not bring their own frame ticking.
//
// The first CreateTicker call creates the ticker; later calls return the
// same one. The provider exposes mute as a flag honored by [StepTickers]:
// a muted ticker stays registered but stops receiving ticks, freezing the
// animation it drives in place.
//
// Dispose stops the owned ticker and must be called exactly once when the
// owning animation is torn down.
type FallbackTickerProvider struct {
	mu       sync.Mutex
	ticker   *Ticker
	disposed atomic.Bool
}

// NewFallbackTickerProvider creates an empty provider. The ticker itself
// is created lazily on the first CreateTicker call.
func NewFallbackTickerProvider() *FallbackTickerProvider {
	return &FallbackTickerProvider{}
}

// CreateTicker returns the provider's single ticker, creating it with the
// given callback on first request. The callback of an already-created
// ticker is not replaced.
func (p *FallbackTickerProvider) CreateTicker(callback func(time.Duration)) *Ticker {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker == nil {
		p.ticker = NewTicker(callback)
	}
	return p.ticker
}

// Mute stops tick delivery without deactivating the ticker. The driven
// animation freezes at its current progress.
func (p *FallbackTickerProvider) Mute() {
	if t := p.owned(); t != nil {
		t.SetMuted(true)
	}
}

// Unmute resumes tick delivery. Progress continues from where it froze;
// the muted span is not counted as elapsed time.
func (p *FallbackTickerProvider) Unmute() {
	if t := p.owned(); t != nil {
		t.SetMuted(false)
	}
}

// IsMuted returns whether the owned ticker is currently muted.
func (p *FallbackTickerProvider) IsMuted() bool {
	t := p.owned()
	return t != nil && t.IsMuted()
}

// Owned reports whether the provider has created its ticker yet.
func (p *FallbackTickerProvider) Owned() bool {
	return p.owned() != nil
}

// Dispose stops the owned ticker and releases it. Safe to call when no
// ticker was ever created; later calls are no-ops.
func (p *FallbackTickerProvider) Dispose() {
	if !p.disposed.CompareAndSwap(false, true) {
		return
	}
	p.mu.Lock()
	t := p.ticker
	p.ticker = nil
	p.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

func (p *FallbackTickerProvider) owned() *Ticker {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticker
}
