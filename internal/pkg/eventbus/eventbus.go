// Package eventbus carries fire-and-forget user notices (toasts) from
// anywhere in the client to whichever surface is currently able to show
// them. One subscriber is active at a time; subscribing replaces the
// previous handler, so a newly mounted screen takes over delivery.
package eventbus

import (
	"sync"
)

const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelError   = "error"
)

type Notice struct {
	Level string
	Text  string
}

type Bus struct {
	mu      sync.Mutex
	seq     uint64
	handler func(Notice)
}

func New() *Bus {
	return &Bus{}
}

// Subscribe installs the active handler and returns an unsubscribe
// function. Unsubscribing is a no-op once another handler has taken
// over.
func (b *Bus) Subscribe(handler func(Notice)) func() {
	b.mu.Lock()
	b.seq++
	id := b.seq
	b.handler = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.seq == id {
			b.handler = nil
		}
	}
}

// Publish hands the notice to the active subscriber, if any. Notices
// published while no subscriber is mounted are dropped.
func (b *Bus) Publish(notice Notice) {
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()

	if handler != nil {
		handler(notice)
	}
}

func (b *Bus) Info(text string)    { b.Publish(Notice{Level: LevelInfo, Text: text}) }
func (b *Bus) Success(text string) { b.Publish(Notice{Level: LevelSuccess, Text: text}) }
func (b *Bus) Error(text string)   { b.Publish(Notice{Level: LevelError, Text: text}) }
