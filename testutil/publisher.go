package testutil

import (
	"io"
	"log"
	"sync"
)

type Published struct {
	Subject string
	Payload interface{}
}

// RecordingPublisher remembers every event instead of sending it.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Published
	Err    error
}

func (p *RecordingPublisher) Publish(subject string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, Published{Subject: subject, Payload: payload})
	return nil
}

func (p *RecordingPublisher) Close() {}

func (p *RecordingPublisher) Subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	subjects := make([]string, 0, len(p.events))
	for _, e := range p.events {
		subjects = append(subjects, e.Subject)
	}
	return subjects
}

func DiscardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
