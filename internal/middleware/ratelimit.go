package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

type rateWindow struct {
	count int
	until time.Time
}

// RateLimit caps requests per client IP inside a fixed window. The studio
// wires it around quote submission and image upload so a single visitor
// cannot flood the order pipeline.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*rateWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			now := time.Now()

			mu.Lock()
			win, ok := windows[ip]
			if !ok || now.After(win.until) {
				win = &rateWindow{until: now.Add(per)}
				windows[ip] = win
				if len(windows) > 1024 {
					for key, other := range windows {
						if now.After(other.until) {
							delete(windows, key)
						}
					}
				}
			}
			if win.count >= limit {
				retry := win.until
				mu.Unlock()
				w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(retry).Seconds())+1))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"too many requests, slow down"}}`))
				return
			}
			win.count++
			mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}
