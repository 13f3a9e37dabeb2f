package pubdocs

import "time"

// ServerConfig holds the settings of the theme HTTP server.
type ServerConfig struct {
	Addr string // Listen address (default ":3000")

	CardCacheTTL  time.Duration // Social card cache TTL (default 1h)
	CardCacheSize int           // Max cached social cards (default 256)

	CardRenderLimit  int           // Card renders per IP per window (default 30)
	CardRenderWindow time.Duration // Render limit window (default 1min)

	AllowOrigins []string // CORS origins allowed to read the API (default "*")
}

// setDefaults fills unset fields. Non-positive sizes, limits and durations
// count as unset.
func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CardCacheTTL <= 0 {
		c.CardCacheTTL = time.Hour
	}
	if c.CardCacheSize <= 0 {
		c.CardCacheSize = 256
	}
	if c.CardRenderLimit <= 0 {
		c.CardRenderLimit = 30
	}
	if c.CardRenderWindow <= 0 {
		c.CardRenderWindow = time.Minute
	}
	if len(c.AllowOrigins) == 0 {
		c.AllowOrigins = []string{"*"}
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithClock replaces the clock used to pick the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
