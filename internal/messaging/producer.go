package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"employee-service/internal/employee"
	"employee-service/internal/metrics"

	"github.com/nats-io/nats.go"
)

// Producer publishes employee change events to one NATS subject. The event
// type is carried in the payload and in the Event-Type header.
type Producer struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewProducer(url string, subject string, logger *slog.Logger, m *metrics.Metrics) (*Producer, error) {
	nc, err := nats.Connect(url,
		nats.Name("employee-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS producer initialized", "url", url, "subject", subject)

	return &Producer{
		conn:    nc,
		subject: subject,
		logger:  logger,
		metrics: m,
	}, nil
}

func (p *Producer) Publish(ctx context.Context, event employee.Event) error {
	start := time.Now()
	err := p.publish(event)
	p.metrics.Messaging.RecordPublish(ctx, p.subject, event.Type, time.Since(start), err)

	if err != nil {
		p.logger.ErrorContext(ctx, "failed to send message to NATS", "type", event.Type, "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "message sent to NATS", "subject", p.subject, "type", event.Type)
	return nil
}

func (p *Producer) publish(event employee.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Header.Set("Event-Type", event.Type)
	msg.Data = data

	return p.conn.PublishMsg(msg)
}

func (p *Producer) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return err
	}
	return nil
}

// PingContext round-trips to the server, so a dropped connection surfaces
// in dependency checks.
func (p *Producer) PingContext(ctx context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats connection is %s", p.conn.Status())
	}
	return p.conn.FlushWithContext(ctx)
}
