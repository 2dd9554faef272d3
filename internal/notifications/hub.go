package notifications

import (
	"sync"
	"time"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
)

const defaultTTL = 2 * time.Second

// Toast is a transient user-facing notification.
type Toast struct {
	Kind    enums.ToastKind `json:"kind"`
	Message string          `json:"message"`
}

// Hub holds at most one live toast. Pushing a new toast replaces the
// current one and supersedes its pending clear (last-write-wins, no queue).
type Hub struct {
	mu         sync.Mutex
	ttl        time.Duration
	current    *Toast
	generation uint64
	timer      *time.Timer
}

// NewHub builds a hub whose toasts auto-clear after ttl.
func NewHub(ttl time.Duration) *Hub {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Hub{ttl: ttl}
}

// Push publishes a toast that clears after the hub's default TTL.
func (h *Hub) Push(kind enums.ToastKind, message string) {
	h.PushTTL(kind, message, h.ttl)
}

// PushTTL publishes a toast with an explicit TTL.
func (h *Hub) PushTTL(kind enums.ToastKind, message string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = h.ttl
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}

	h.generation++
	gen := h.generation
	h.current = &Toast{Kind: kind, Message: message}
	h.timer = time.AfterFunc(ttl, func() {
		h.clear(gen)
	})
}

// clear removes the toast only if no newer toast replaced it.
func (h *Hub) clear(generation uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.generation != generation {
		return
	}
	h.current = nil
	h.timer = nil
}

// Current returns the live toast, if any.
func (h *Hub) Current() (Toast, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return Toast{}, false
	}
	return *h.current, true
}
