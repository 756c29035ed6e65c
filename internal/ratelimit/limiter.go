// Package ratelimit provides per-client rate limiting for the HTTP API.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds rate limit configuration.
type Config struct {
	MaxRequests int           // Requests allowed per client per window; 0 disables limiting
	Window      time.Duration // Length of the fixed window (default: 1m)

	// Clock for testing (nil uses real time)
	Clock Clock
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxRequests: 120,
		Window:      time.Minute,
	}
}

// LimitResult contains the result of a rate limit check.
type LimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
	Reason     string // For logging
}

// entry tracks request counts within the current window.
type entry struct {
	count   int
	firstAt time.Time // First request in window
	lastAt  time.Time
}

// Limiter counts requests per client in fixed windows.
type Limiter struct {
	config *Config
	clock  Clock
	mu     sync.Mutex
	// Keyed by hash of the client address
	clients map[string]*entry

	// Cleanup goroutine management
	cleanupCtx    context.Context
	cleanupCancel context.CancelFunc
	cleanupOnce   sync.Once
	cleanupWg     sync.WaitGroup
}

// New creates a new rate limiter with the given config.
func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Limiter{
		config:        cfg,
		clock:         clock,
		clients:       make(map[string]*entry),
		cleanupCtx:    ctx,
		cleanupCancel: cancel,
	}
}

// Close stops the cleanup goroutine and releases resources.
func (l *Limiter) Close() {
	l.cleanupCancel()
	l.cleanupWg.Wait()
}

// Allow checks and records one request from client.
func (l *Limiter) Allow(client string) LimitResult {
	if l.config.MaxRequests <= 0 {
		return LimitResult{Allowed: true, Remaining: -1}
	}
	l.startCleanup()
	now := l.clock.Now()
	key := l.hashKey("client:", client)

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.clients[key]
	if e == nil || now.Sub(e.firstAt) >= l.config.Window {
		l.clients[key] = &entry{count: 1, firstAt: now, lastAt: now}
		return LimitResult{Allowed: true, Remaining: l.config.MaxRequests - 1}
	}

	if e.count >= l.config.MaxRequests {
		return LimitResult{
			Allowed:    false,
			RetryAfter: l.config.Window - now.Sub(e.firstAt),
			Reason:     "window_limit",
		}
	}

	e.count++
	e.lastAt = now
	return LimitResult{Allowed: true, Remaining: l.config.MaxRequests - e.count}
}

// Reset forgets all requests recorded for client.
func (l *Limiter) Reset(client string) {
	key := l.hashKey("client:", client)
	l.mu.Lock()
	delete(l.clients, key)
	l.mu.Unlock()
}

func (l *Limiter) hashKey(prefix, value string) string {
	hash := sha256.Sum256([]byte(value))
	return prefix + hex.EncodeToString(hash[:8])
}

func (l *Limiter) startCleanup() {
	l.cleanupOnce.Do(func() {
		l.cleanupWg.Add(1)
		go func() {
			defer l.cleanupWg.Done()
			ticker := time.NewTicker(5 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-l.cleanupCtx.Done():
					return
				case <-ticker.C:
					l.cleanup()
				}
			}
		}()
	})
}

func (l *Limiter) cleanup() {
	now := l.clock.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, e := range l.clients {
		if now.Sub(e.firstAt) >= l.config.Window {
			delete(l.clients, k)
		}
	}
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// GetClientIP extracts the client IP from a request.
// When trustProxy is true, uses the rightmost public IP from X-Forwarded-For.
// When trustProxy is false, ignores X-Forwarded-For entirely (prevents spoofing).
func GetClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			for i := len(parts) - 1; i >= 0; i-- {
				ip := strings.TrimSpace(parts[i])
				if ip != "" && !isPrivateIP(ip) {
					return ip
				}
			}
			// All IPs are private, use the last one
			return strings.TrimSpace(parts[len(parts)-1])
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// privateNetworks holds parsed CIDR ranges for private/reserved IPs.
var privateNetworks []*net.IPNet

func init() {
	privateRanges := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"::1/128",
		"fc00::/7",
		"fe80::/10",
	}
	for _, cidr := range privateRanges {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic("invalid private CIDR: " + cidr)
		}
		privateNetworks = append(privateNetworks, network)
	}
}

func isPrivateIP(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return false
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		ip = ipv4
	}
	for _, network := range privateNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// LogRateLimitExceeded logs a rejected request.
func LogRateLimitExceeded(ctx context.Context, ip, path string, result LimitResult) {
	log.Ctx(ctx).Warn().
		Str("event", "rate_limit_exceeded").
		Str("ip", ip).
		Str("path", path).
		Str("reason", result.Reason).
		Dur("retry_after", result.RetryAfter).
		Msg("Request rate limit exceeded")
}
