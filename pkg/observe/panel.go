package observe

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPanelSize is how many entries a Panel keeps by default.
const DefaultPanelSize = 50

// Entry is one line of the debug panel.
type Entry struct {
	Seq     uint64    `json:"seq"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// Panel is a bounded, newest-first mutation log. It can also carry free
// form messages such as "render complete". Subscribers receive every new
// entry; slow subscribers drop entries rather than block rendering.
type Panel struct {
	mu      sync.Mutex
	max     int
	seq     uint64
	entries []Entry // oldest first
	subs    map[string]chan Entry
	now     func() time.Time
}

// NewPanel creates a Panel keeping at most max entries. max <= 0 uses
// DefaultPanelSize.
func NewPanel(max int) *Panel {
	if max <= 0 {
		max = DefaultPanelSize
	}
	return &Panel{
		max:  max,
		subs: make(map[string]chan Entry),
		now:  time.Now,
	}
}

// Observe implements Sink.
func (p *Panel) Observe(m Mutation) {
	p.Log(m.String())
}

// Log appends a message.
func (p *Panel) Log(message string) {
	p.mu.Lock()
	p.seq++
	e := Entry{Seq: p.seq, Time: p.now(), Message: message}
	p.entries = append(p.entries, e)
	if over := len(p.entries) - p.max; over > 0 {
		p.entries = append(p.entries[:0], p.entries[over:]...)
	}
	// Sends happen under the lock so cancel cannot close a channel mid-send.
	for _, ch := range p.subs {
		select {
		case ch <- e:
		default:
		}
	}
	p.mu.Unlock()
}

// Entries returns the retained entries, newest first.
func (p *Panel) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Entry, len(p.entries))
	for i, e := range p.entries {
		out[len(p.entries)-1-i] = e
	}
	return out
}

// Len returns the number of retained entries.
func (p *Panel) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Clear drops all retained entries.
func (p *Panel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = nil
}

// Subscribe registers a subscriber with a buffer of size entries. The
// returned cancel func unregisters it and closes the channel.
func (p *Panel) Subscribe(buffer int) (id string, entries <-chan Entry, cancel func()) {
	if buffer <= 0 {
		buffer = p.max
	}
	ch := make(chan Entry, buffer)
	id = uuid.NewString()

	p.mu.Lock()
	p.subs[id] = ch
	p.mu.Unlock()

	var once sync.Once
	cancel = func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
			close(ch)
		})
	}
	return id, ch, cancel
}

// Subscribers returns the number of active subscribers.
func (p *Panel) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
