//go:generate mockgen -source ./consumer.go -destination=./mocks/consumer.go -package=mock_consumer
package consumer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes one decoded job message. A nil return acknowledges the
// message; an error leaves it uncommitted so the broker redelivers it.
// Business failures are recorded on the job ledger and return nil, so only
// infrastructure errors should surface here.
type Handler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// MessageReader is the part of kafka.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer runs one fetch-handle-commit loop over a job topic. The offset is
// committed only after the handler returns, so a crash mid-handler causes
// redelivery rather than silent loss.
type Consumer struct {
	name    string
	reader  MessageReader
	handler Handler
	logger  *zap.Logger
}

func New(name string, reader MessageReader, handler Handler, logger *zap.Logger) *Consumer {
	return &Consumer{
		name:    name,
		reader:  reader,
		handler: handler,
		logger:  logger.With(zap.String("consumer", name)),
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("consumer started")
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Error("failed to close reader", zap.Error(err))
		}
		c.logger.Info("consumer stopped")
	}()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("failed to fetch message", zap.Error(err))
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		if err := c.handler.Handle(ctx, msg); err != nil {
			// Leave the offset uncommitted; the message comes back.
			c.logger.Error("handler failed, message will be redelivered",
				zap.ByteString("key", msg.Key),
				zap.Error(err))
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("failed to commit offset", zap.Error(err))
		}
	}
}
