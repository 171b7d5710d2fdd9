package breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpen = errors.New("circuit breaker is open")

type Config struct {
	// Window is how many recent calls are tracked.
	Window int `envconfig:"BREAKER_WINDOW" default:"20"`
	// FailureRatio of the window that opens the breaker.
	FailureRatio float64 `envconfig:"BREAKER_FAILURE_RATIO" default:"0.5"`
	// Cooldown before an open breaker lets a probe through.
	Cooldown time.Duration `envconfig:"BREAKER_COOLDOWN" default:"30s"`
	// Recovery is how many consecutive half-open successes close the breaker.
	Recovery int `envconfig:"BREAKER_RECOVERY" default:"3"`
}

type Breaker struct {
	mu  sync.Mutex
	cfg Config
	now func() time.Time

	state    State
	openedAt time.Time
	failures []bool
	pos      int
	okStreak int
	probing  bool
}

func New(cfg Config) *Breaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	return &Breaker{
		cfg:      cfg,
		now:      time.Now,
		state:    Closed,
		failures: make([]bool, cfg.Window),
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Call runs fn unless the breaker is open; fn's error is returned unchanged.
// While half-open only one call at a time reaches fn, the others get ErrOpen.
func (b *Breaker) Call(fn func() error) error {
	b.mu.Lock()
	switch b.state {
	case Open:
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = HalfOpen
		b.okStreak = 0
	case HalfOpen:
		if b.probing {
			b.mu.Unlock()
			return ErrOpen
		}
	}
	probe := b.state == HalfOpen
	if probe {
		b.probing = true
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if probe {
		b.probing = false
	}

	b.failures[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.failures)

	if b.state == HalfOpen {
		if err != nil {
			b.trip()
			return err
		}
		b.okStreak++
		if b.okStreak >= b.cfg.Recovery {
			b.reset()
		}
		return err
	}

	fails := 0
	for _, failed := range b.failures {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.failures)) >= b.cfg.FailureRatio {
		b.trip()
	}
	return err
}

func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *Breaker) trip() {
	b.state = Open
	b.okStreak = 0
	b.openedAt = b.now()
}

func (b *Breaker) reset() {
	for i := range b.failures {
		b.failures[i] = false
	}
	b.okStreak = 0
	b.pos = 0
	b.probing = false
	b.state = Closed
}
