package circuit

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State status breaker
type State int

const (
	StateClosed   State = iota // normal, request diteruskan
	StateOpen                  // gagal cepat tanpa menyentuh backend
	StateHalfOpen              // uji coba setelah Timeout
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrCircuitOpen     = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)

// Config ambang breaker
type Config struct {
	Threshold        int           // gagal berturut-turut sebelum open
	Timeout          time.Duration // lama open sebelum half-open
	SuccessThreshold int           // sukses half-open untuk kembali closed
	MaxHalfOpen      int           // request paralel saat half-open
}

func DefaultConfig() Config {
	return Config{
		Threshold:        5,
		Timeout:          30 * time.Second,
		SuccessThreshold: 2,
		MaxHalfOpen:      1,
	}
}

// Breaker melindungi dependency eksternal (object storage) dari request
// beruntun saat dependency sedang down.
type Breaker struct {
	mu               sync.Mutex
	state            State
	failures         int
	successes        int
	halfOpenRequests int
	openedAt         time.Time
	config           Config
	logger           *zap.Logger
	name             string
	now              func() time.Time
}

func NewBreaker(name string, config Config, logger *zap.Logger) *Breaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Breaker{
		state:  StateClosed,
		config: config,
		logger: logger,
		name:   name,
		now:    time.Now,
	}
}

// Execute menjalankan fn bila breaker mengizinkan. Error dari fn yang
// memenuhi ignore tidak dihitung sebagai kegagalan backend.
func (b *Breaker) Execute(fn func() error, ignore ...func(error) bool) error {
	if err := b.allow(); err != nil {
		return err
	}
	err := fn()
	for _, skip := range ignore {
		if err != nil && skip(err) {
			b.record(nil)
			return err
		}
	}
	b.record(err)
	return err
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.config.Timeout {
			return ErrCircuitOpen
		}
		b.transitionTo(StateHalfOpen)
		b.halfOpenRequests = 1
		return nil
	case StateHalfOpen:
		if b.halfOpenRequests >= b.config.MaxHalfOpen {
			return ErrTooManyRequests
		}
		b.halfOpenRequests++
		return nil
	default:
		return nil
	}
}

func (b *Breaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.failures++
		b.successes = 0
		// satu gagal saat half-open langsung open lagi
		if b.state == StateHalfOpen || b.failures >= b.config.Threshold {
			b.openedAt = b.now()
			b.transitionTo(StateOpen)
		}
		return
	}

	b.failures = 0
	if b.state == StateHalfOpen {
		b.halfOpenRequests--
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.transitionTo(StateClosed)
		}
	}
}

// harus memegang lock
func (b *Breaker) transitionTo(next State) {
	prev := b.state
	b.state = next
	b.halfOpenRequests = 0
	if next == StateClosed {
		b.failures = 0
		b.successes = 0
	}

	b.logger.Warn("Circuit breaker state changed",
		zap.String("name", b.name),
		zap.String("from", prev.String()),
		zap.String("to", next.String()),
		zap.Int("failures", b.failures),
	)
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Stats dipakai health check.
func (b *Breaker) Stats() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return map[string]any{
		"name":      b.name,
		"state":     b.state.String(),
		"failures":  b.failures,
		"threshold": b.config.Threshold,
		"timeout":   b.config.Timeout.String(),
	}
}
