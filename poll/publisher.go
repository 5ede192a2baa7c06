package poll

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Publisher notifies subscribers synchronously, in subscription order.
// The zero value is ready to use.
type Publisher[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

// Subscribe registers fn and returns a function that removes it again.
func (p *Publisher[T]) Subscribe(fn func(T)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every subscriber with v. Subscribers run outside the lock so
// they may subscribe or unsubscribe themselves.
func (p *Publisher[T]) Publish(v T) {
	p.mu.Lock()
	subs := make([]subscriber[T], len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of subscribers.
func (p *Publisher[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
