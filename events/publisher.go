package events

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"
)

const (
	TodoCreated    = "todo.created"
	TodoDeleted    = "todo.deleted"
	TodoToggled    = "todo.toggled"
	CatalogCreated = "catalog.created"
	CatalogDeleted = "catalog.deleted"
)

// Publisher announces changes to the stored collections.
type Publisher interface {
	Publish(subject string, payload interface{}) error
	Close()
}

type NATSPublisher struct {
	conn   *nats.Conn
	logger *log.Logger
}

func NewNATSPublisher(url string, logger *log.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("portfolio-api"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}
	logger.Println("Connected to NATS at", nc.ConnectedUrl())
	return &NATSPublisher{conn: nc, logger: logger}, nil
}

func (p *NATSPublisher) Publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Println("Error draining NATS connection:", err)
	}
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(string, interface{}) error { return nil }

func (Noop) Close() {}
