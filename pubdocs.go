// Package pubdocs serves a documentation site's theme configuration to the
// documentation framework that renders the site.
//
// The theme itself lives in package theme and is built once at start-up.
// App exposes it over HTTP: the static settings, and the values derived per
// page (head metadata, title, edit and feedback links) or per render
// (footer year), plus a generated social-card image.
package pubdocs

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/eringen/pubdocs/theme"
)

// App is the theme server. It wires the theme configuration, the social
// card cache, the render limiter, middleware and routes.
type App struct {
	Theme  *theme.Config
	Config ServerConfig
	Echo   *echo.Echo
	Cards  *CardCache

	limiter      *RenderLimiter
	now          func() time.Time
	customRoutes []func(*App)
}

// New creates an App serving t. The theme must already be validated;
// theme.New is the only way to obtain one.
func New(t *theme.Config, cfg ServerConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Theme:  t,
		Config: cfg,
		Echo:   echo.New(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.Cards = NewCardCache(cfg.CardCacheTTL, cfg.CardCacheSize)
	a.limiter = NewRenderLimiter(cfg.CardRenderLimit, cfg.CardRenderWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// Handler returns the HTTP handler, for embedding or tests.
func (a *App) Handler() http.Handler {
	return a.Echo
}

// Start listens on Config.Addr and blocks until the server stops.
func (a *App) Start() error {
	log.Info().Str("addr", a.Config.Addr).Msg("theme server listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	defer a.limiter.Stop()
	return a.Echo.Shutdown(ctx)
}

// Close stops the server immediately and releases background resources.
func (a *App) Close() error {
	a.limiter.Stop()
	return a.Echo.Close()
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/healthz", handleHealth)
	e.GET("/og.png", a.handleCard)

	api := e.Group("/api")
	api.GET("/theme", a.handleTheme)
	api.GET("/head", a.handleHead)
	api.GET("/head.html", a.handleHeadHTML)
	api.GET("/footer", a.handleFooter)
	api.GET("/footer.html", a.handleFooterHTML)
	api.GET("/logo.html", a.handleLogoHTML)
	api.GET("/title", a.handleTitle)
	api.GET("/edit-link", a.handleEditLink)
	api.GET("/feedback", a.handleFeedback)
}
