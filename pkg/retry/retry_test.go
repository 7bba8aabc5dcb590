package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
	}
}

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	counter := 0
	err := NewDefaultRetrier().Do(context.Background(), func() error {
		counter++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, counter)
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	counter := 0
	err := NewRetrier(fastConfig()).Do(context.Background(), func() error {
		counter++
		if counter < 3 {
			return errors.New("temporary error")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, counter)
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 2
	expectedErr := errors.New("permanent error")

	counter := 0
	err := NewRetrier(cfg).Do(context.Background(), func() error {
		counter++
		return expectedErr
	})

	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 3, counter, "initial try + 2 retries")
}

func TestRetry_NonRetryableStopsEarly(t *testing.T) {
	fatal := errors.New("constraint failed")
	cfg := fastConfig()
	cfg.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	counter := 0
	err := NewRetrier(cfg).Do(context.Background(), func() error {
		counter++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, counter)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := NewRetrier(fastConfig()).Do(ctx, func() error {
		cancel()
		return errors.New("operation error after cancel")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_Backoff(t *testing.T) {
	cfg := &Config{
		MaxRetries:    2,
		BackoffFactor: 2,
		InitialDelay:  20 * time.Millisecond,
		MaxDelay:      time.Second,
	}

	start := time.Now()
	_ = NewRetrier(cfg).Do(context.Background(), func() error { return errors.New("error") })

	// 20ms before the first retry, 40ms before the second
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}
