package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultClientIdle is how long a client's limiter is kept after its last
// request.
const DefaultClientIdle = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key gets its own limiter. Limiters idle for longer than
// DefaultClientIdle are evicted.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       float64
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a new ClientLimiter allowing rps requests per
// second per client with the given burst.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		clients: make(map[string]*client),
		rps:     rps,
		burst:   burst,
		idle:    DefaultClientIdle,
		now:     time.Now,
	}
}

// Allow reports whether the client may make a request now.
func (c *ClientLimiter) Allow(key string) bool {
	c.mu.Lock()
	now := c.now()
	if now.Sub(c.lastSweep) >= c.idle {
		c.sweep(now)
	}
	cl, ok := c.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rate.Limit(c.rps), c.burst)}
		c.clients[key] = cl
	}
	cl.lastSeen = now
	c.mu.Unlock()

	return cl.limiter.AllowN(now, 1)
}

// sweep drops clients not seen within the idle window. Callers hold mu.
func (c *ClientLimiter) sweep(now time.Time) {
	for key, cl := range c.clients {
		if now.Sub(cl.lastSeen) >= c.idle {
			delete(c.clients, key)
		}
	}
	c.lastSweep = now
}

// rateLimit rejects requests over the client's limit with 429.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientKey(r)) {
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, &ErrorResponse{Error: "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by remote IP.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
