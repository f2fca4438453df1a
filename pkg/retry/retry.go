package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config controls the backoff schedule. Delays grow by Backoff between
// attempts, capped at MaxDelay, with a random jitter added to each wait.
type Config struct {
	MaxAttempts  int
	Backoff      float64
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Jitter       time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:  4,
		Backoff:      2.0,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     15 * time.Second,
		Jitter:       100 * time.Millisecond,
	}
}

type Retrier struct {
	cfg Config
}

func New(cfg Config) *Retrier {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Retrier{cfg: cfg}
}

func NewDefault() *Retrier {
	return New(DefaultConfig())
}

// Do runs op until it succeeds, the attempt budget is spent, or ctx is done.
// The last operation error is returned when all attempts fail.
func (r *Retrier) Do(ctx context.Context, op func() error) error {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	delay := r.cfg.InitialDelay

	var err error
	for attempt := 1; ; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if attempt >= r.cfg.MaxAttempts {
			return err
		}

		wait := delay + time.Duration(rnd.Float64()*float64(r.cfg.Jitter))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * r.cfg.Backoff)
		if delay > r.cfg.MaxDelay {
			delay = r.cfg.MaxDelay
		}
	}
}
