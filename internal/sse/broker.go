// Package sse streams notices and live updates to browsers as Server-Sent Events.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/starford/tubetrack/internal/clock"
	"github.com/starford/tubetrack/internal/models"
)

// Event types sent to clients.
const (
	EventNotice       = "notice"
	EventStatsUpdated = "stats.updated"
	EventDataReloaded = "fixtures.reloaded"
)

// clientBuffer is how many frames a slow client may lag before frames are dropped.
const clientBuffer = 64

// retryMillis is the reconnect delay suggested to browsers.
const retryMillis = 3000

// Event is a named payload broadcast to every client.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// hub is the broker state. Only the broker loop touches it.
type hub struct {
	clients   map[chan []byte]struct{}
	seq       uint64
	lastStats time.Time
}

func (h *hub) broadcast(kind string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	h.seq++
	frame := fmt.Appendf(nil, "id: %d\nevent: %s\ndata: %s\n\n", h.seq, kind, payload)
	for ch := range h.clients {
		select {
		case ch <- frame:
		default:
		}
	}
}

// Broker fans events out to SSE clients. Every operation runs as a closure
// on the broker loop, which owns the hub.
type Broker struct {
	clock    clock.Clock
	throttle time.Duration

	ops     chan func(*hub)
	stop    chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewBroker starts a broker that follows successful notices with at most one
// stats.updated event per statsThrottle. A nil clk uses the system clock.
func NewBroker(statsThrottle time.Duration, clk clock.Clock) *Broker {
	if statsThrottle <= 0 {
		statsThrottle = 2 * time.Second
	}
	if clk == nil {
		clk = clock.System{}
	}
	b := &Broker{
		clock:    clk,
		throttle: statsThrottle,
		ops:      make(chan func(*hub)),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go b.loop()
	return b
}

func (b *Broker) loop() {
	defer close(b.stopped)
	h := &hub{clients: make(map[chan []byte]struct{})}
	for {
		select {
		case <-b.stop:
			for ch := range h.clients {
				close(ch)
			}
			return
		case op := <-b.ops:
			op(h)
		}
	}
}

// do hands op to the loop. It reports false once the broker is closed.
func (b *Broker) do(op func(*hub)) bool {
	if b.closed.Load() {
		return false
	}
	select {
	case b.ops <- op:
		return true
	case <-b.stopped:
		return false
	}
}

// Close stops the loop and closes every client channel.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stop)
	}
	<-b.stopped
}

// Subscribe registers a client. The channel is closed when the client
// unsubscribes or the broker closes.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, clientBuffer)
	if !b.do(func(h *hub) { h.clients[ch] = struct{}{} }) {
		close(ch)
	}
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.do(func(h *hub) {
		if _, ok := h.clients[ch]; ok {
			delete(h.clients, ch)
			close(ch)
		}
	})
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	n := make(chan int, 1)
	if !b.do(func(h *hub) { n <- len(h.clients) }) {
		return 0
	}
	return <-n
}

// Publish broadcasts event to every client.
func (b *Broker) Publish(event Event) {
	b.do(func(h *hub) { h.broadcast(event.Type, event.Data) })
}

// Notify broadcasts a notice. A successful notice means data changed, so it
// is followed by stats.updated unless one went out within the throttle.
// Error notices abort their action and change nothing.
func (b *Broker) Notify(n models.Notice) {
	b.do(func(h *hub) {
		h.broadcast(EventNotice, n)
		if n.Severity == models.SeverityError {
			return
		}
		if now := b.clock.Now(); h.lastStats.IsZero() || now.Sub(h.lastStats) >= b.throttle {
			h.lastStats = now
			h.broadcast(EventStatsUpdated, struct{}{})
		}
	})
}

// ServeHTTP streams events to one client until it disconnects (GET /api/events).
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "retry: %d\n\n", retryMillis)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case frame, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(frame)
			flusher.Flush()
		}
	}
}
