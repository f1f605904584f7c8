package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
)

const (
	cbRecordLength     = 10
	cbTimeout          = 10 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

// Publisher sends circulation events to kafka keyed by article, so events of
// one article stay ordered.
type Publisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	topic    string
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		cb:       circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		topic:    topic,
		log:      log.Named("publisher"),
	}
}

func (p *Publisher) Publish(_ context.Context, events ...model.Event) error {
	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			return errors.Wrap(err, "json.Marshal")
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(ev.ArticleID),
			Value: sarama.ByteEncoder(data),
			Headers: []sarama.RecordHeader{
				{Key: []byte("type"), Value: []byte(ev.Type)},
			},
		})
	}
	if len(msgs) == 0 {
		return nil
	}
	err := p.cb.Call(func() error {
		return p.producer.SendMessages(msgs)
	})
	if err != nil {
		return errors.Wrapf(err, "publish %d events (breaker %s)", len(msgs), p.cb.State())
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Log writes events to the service log when no broker is configured.
type Log struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{log: log.Named("events")}
}

func (l *Log) Publish(_ context.Context, events ...model.Event) error {
	for _, ev := range events {
		l.log.Info(string(ev.Type),
			zap.String("article", ev.ArticleID),
			zap.String("book", ev.BookID),
			zap.String("member", ev.MemberID),
			zap.String("reservation", ev.ReservationID),
			zap.String("transaction", ev.TransactionID),
			zap.Time("ts", ev.Timestamp),
		)
	}
	return nil
}
