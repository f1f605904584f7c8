package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsumer_handle(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := at.Add(5 * 24 * time.Hour)

	tests := []struct {
		name    string
		message *sarama.ConsumerMessage
		wantNow time.Time
		called  bool
	}{
		{
			name:    "explicit now",
			message: &sarama.ConsumerMessage{Value: []byte(`{"now":"2024-03-01T12:00:00Z"}`), Timestamp: at.Add(time.Hour)},
			wantNow: at,
			called:  true,
		},
		{
			name:    "message timestamp ignored",
			message: &sarama.ConsumerMessage{Timestamp: at},
			wantNow: clock,
			called:  true,
		},
		{
			name:    "empty trigger",
			message: &sarama.ConsumerMessage{Value: []byte(`{}`), Timestamp: at.Add(-time.Hour)},
			wantNow: clock,
			called:  true,
		},
		{
			name:    "malformed",
			message: &sarama.ConsumerMessage{Value: []byte(`{`)},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got *time.Time
			c := NewConsumer(func(_ context.Context, now time.Time) (int, error) {
				got = &now
				return 1, nil
			}, func() time.Time { return clock }, zap.NewNop())

			c.handle(context.Background(), tt.message)
			if !tt.called {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.True(t, tt.wantNow.Equal(*got), "got %s", got)
		})
	}
}

func TestConsumer_handleDefaultsToWallClock(t *testing.T) {
	t.Parallel()
	var got time.Time
	c := NewConsumer(func(_ context.Context, now time.Time) (int, error) {
		got = now
		return 0, errors.New("storage down")
	}, nil, zap.NewNop())

	before := time.Now()
	c.handle(context.Background(), &sarama.ConsumerMessage{Timestamp: before.Add(-time.Hour)})
	require.False(t, got.Before(before.Add(-time.Second)))
}

func TestConsumer_Ready(t *testing.T) {
	t.Parallel()
	c := NewConsumer(nil, nil, zap.NewNop())
	require.NoError(t, c.Setup(nil))
	require.NoError(t, c.Setup(nil))

	select {
	case <-c.Ready():
	default:
		t.Fatal("ready not closed")
	}
}
