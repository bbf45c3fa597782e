// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

const defaultSubscriberBuffer = 16

// progressBroker fans progress events out to subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses the event.
type progressBroker struct {
	mu     sync.Mutex
	subs   map[int]chan models.ProgressEvent
	nextID int
	now    func() time.Time
}

func newProgressBroker() *progressBroker {
	return &progressBroker{
		subs: make(map[int]chan models.ProgressEvent),
		now:  time.Now,
	}
}

// Subscribe registers a listener. The returned function unsubscribes and
// closes the channel; it is safe to call more than once.
func (b *progressBroker) Subscribe(buffer int) (<-chan models.ProgressEvent, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	ch := make(chan models.ProgressEvent, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

func (b *progressBroker) Publish(event models.ProgressEvent) {
	if event.At.IsZero() {
		event.At = b.now().UTC()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

func (b *progressBroker) subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
