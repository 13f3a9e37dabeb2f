package pubdocs

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/eringen/pubdocs/socialcard"
	"github.com/eringen/pubdocs/views"
)

const maxCardTitle = 200

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) handleTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, themeResponse{
		Settings:   a.Theme.Settings(),
		ThemeColor: a.Theme.ThemeColor(),
	})
}

func (a *App) handleHead(c echo.Context) error {
	h := a.Theme.HeadMetadata(c.QueryParam("path"))
	return c.JSON(http.StatusOK, headResponse{
		Canonical: h.CanonicalURL,
		Title:     a.Theme.Title(c.QueryParam("page")),
		Tags:      h.Tags(),
	})
}

func (a *App) handleHeadHTML(c echo.Context) error {
	h := a.Theme.HeadMetadata(c.QueryParam("path"))
	return renderFragment(c, views.Head(h, a.Theme.Title(c.QueryParam("page"))))
}

// handleFooter reads the clock on every request so the year rolls over
// without a restart.
func (a *App) handleFooter(c echo.Context) error {
	f := a.Theme.FooterText(a.now().Year())
	return c.JSON(http.StatusOK, footerResponse{Footer: f, Text: f.Text()})
}

func (a *App) handleFooterHTML(c echo.Context) error {
	return renderFragment(c, views.Footer(a.Theme.FooterText(a.now().Year())))
}

func (a *App) handleLogoHTML(c echo.Context) error {
	return renderFragment(c, views.Logo(a.Theme.Logo()))
}

func (a *App) handleTitle(c echo.Context) error {
	return c.JSON(http.StatusOK, titleResponse{Title: a.Theme.Title(c.QueryParam("page"))})
}

func (a *App) handleEditLink(c echo.Context) error {
	file := c.QueryParam("file")
	if file == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	return c.JSON(http.StatusOK, linkResponse{
		URL:  a.Theme.EditURL(file),
		Text: a.Theme.EditLinkText(),
	})
}

func (a *App) handleFeedback(c echo.Context) error {
	return c.JSON(http.StatusOK, linkResponse{
		URL:    a.Theme.FeedbackURL(c.QueryParam("page")),
		Text:   a.Theme.FeedbackText(),
		Labels: a.Theme.FeedbackLabels(),
	})
}

// handleCard serves the social card for ?page=, defaulting to the site
// title. Cache misses count against the caller's render budget.
func (a *App) handleCard(c echo.Context) error {
	title := c.QueryParam("page")
	if title == "" {
		title = a.Theme.HeadMetadata("").Title
	}
	if len(title) > maxCardTitle {
		return echo.NewHTTPError(http.StatusBadRequest, "title is too long")
	}
	data, ok := a.Cards.Get(title)
	if !ok {
		if !a.limiter.Allow(c.RealIP()) {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many card renders, try again later")
		}
		var err error
		data, err = socialcard.Bytes(socialcard.Card{
			Title:      title,
			SiteName:   a.Theme.Logo().Text,
			Background: a.Theme.AccentColor(),
		})
		if err != nil {
			return err
		}
		a.Cards.Put(title, data)
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}
	if code >= 500 {
		log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, errorResponse{Error: msg})
}
