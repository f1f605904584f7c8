package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

type expireStale func(ctx context.Context, now time.Time) (int, error)

// Consumer runs an expiry sweep for every trigger message.
type Consumer struct {
	expireHandler expireStale
	now           func() time.Time
	log           *zap.Logger
	ready         chan bool
}

// NewConsumer sweeps at the trigger's own time when it names one and at
// clock() otherwise. A nil clock means the wall clock.
func NewConsumer(expire expireStale, clock func() time.Time, log *zap.Logger) *Consumer {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Consumer{
		expireHandler: expire,
		now:           clock,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var trigger model.ExpireTrigger
	if len(message.Value) > 0 {
		if err := json.Unmarshal(message.Value, &trigger); err != nil {
			consumer.log.Error("bad expire trigger", zap.ByteString("value", message.Value), zap.Error(err))
			return
		}
	}
	// the broker timestamp is ignored
	now := consumer.now()
	if trigger.Now != nil {
		now = *trigger.Now
	}
	n, err := consumer.expireHandler(ctx, now)
	if err != nil {
		consumer.log.Error("consumer.expireHandler", zap.Error(err))
		return
	}
	consumer.log.Debug("expire trigger claimed",
		zap.Int("expired", n), zap.Time("now", now), zap.String("topic", message.Topic))
}
