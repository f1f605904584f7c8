package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	successfulService := func() error {
		return nil
	}
	errService := errors.New("service error")
	failingService := func() error {
		return errService
	}

	type fields struct {
		recordLength     int
		timeout          time.Duration
		percentile       float64
		recoveryRequests int
	}

	tests := []struct {
		name   string
		fields fields
		run    func(t *testing.T, cb circuit_breaker.CircuitBreaker)
	}{
		{
			name: "stays closed on success",
			fields: fields{
				recordLength:     10,
				timeout:          time.Second,
				percentile:       0.3,
				recoveryRequests: 2,
			},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 50; i++ {
					require.NoError(t, cb.Call(successfulService))
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "opens after failure ratio and fails fast",
			fields: fields{
				recordLength:     10,
				timeout:          time.Minute,
				percentile:       0.3,
				recoveryRequests: 2,
			},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					require.ErrorIs(t, cb.Call(failingService), errService)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())

				called := false
				err := cb.Call(func() error {
					called = true
					return nil
				})
				require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
				require.False(t, called)
			},
		},
		{
			name: "recovers through half-open",
			fields: fields{
				recordLength:     4,
				timeout:          20 * time.Millisecond,
				percentile:       0.5,
				recoveryRequests: 2,
			},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 2; i++ {
					_ = cb.Call(failingService)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())

				time.Sleep(40 * time.Millisecond)
				require.NoError(t, cb.Call(successfulService))
				require.Equal(t, circuit_breaker.HalfOpen, cb.State())
				require.NoError(t, cb.Call(successfulService))
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "half-open failure opens again",
			fields: fields{
				recordLength:     4,
				timeout:          50 * time.Millisecond,
				percentile:       0.5,
				recoveryRequests: 3,
			},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 2; i++ {
					_ = cb.Call(failingService)
				}
				time.Sleep(80 * time.Millisecond)
				require.ErrorIs(t, cb.Call(failingService), errService)
				require.Equal(t, circuit_breaker.Open, cb.State())
				require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(tt.fields.recordLength, tt.fields.timeout, tt.fields.percentile, tt.fields.recoveryRequests)
			tt.run(t, cb)
		})
	}
}
