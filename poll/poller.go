// Package poll runs recurring refresh tasks and fans out change notifications.
package poll

import (
	"sync"
	"time"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("icsterm.poll")

// Poller runs a task immediately on Activate and then again every interval
// until Passivate. The interval is re-read before every reschedule so a
// changed preference applies on the next tick.
type Poller struct {
	name     string
	interval func() time.Duration
	task     func()

	mu     sync.Mutex
	active bool
	closed bool
	gen    int
	timer  *time.Timer
}

// NewPoller creates an inactive poller.
func NewPoller(name string, interval func() time.Duration, task func()) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Activate starts polling. It is a no-op when already active or closed.
func (p *Poller) Activate() {
	p.mu.Lock()
	if p.active || p.closed {
		p.mu.Unlock()
		return
	}
	p.active = true
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	log.Debugf("%s: activated", p.name)
	p.task()
	p.schedule(gen)
}

// Passivate stops polling after any task already running returns.
func (p *Poller) Passivate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}
	p.active = false
	p.stopTimer()
	log.Debugf("%s: passivated", p.name)
}

// Close stops polling for good.
func (p *Poller) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.active = false
	p.stopTimer()
}

// Active reports whether the poller is running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Poller) schedule(gen int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active || p.gen != gen {
		return
	}
	interval := p.interval()
	if interval <= 0 {
		interval = time.Second
	}
	p.timer = time.AfterFunc(interval, func() { p.fire(gen) })
}

func (p *Poller) fire(gen int) {
	p.mu.Lock()
	run := p.active && p.gen == gen
	p.mu.Unlock()
	if !run {
		return
	}

	log.Debugf("%s: tick", p.name)
	p.task()
	p.schedule(gen)
}

// Must be called while holding the lock.
func (p *Poller) stopTimer() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
