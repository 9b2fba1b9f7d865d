package bottega

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivoiuliano/bottega/llms"
	"github.com/ivoiuliano/bottega/sitemap"
)

func (a *App) handleSitemap(c echo.Context) error {
	entries, err := sitemap.Project(a.Site, a.Catalog, a.now())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return sitemap.Encode(c.Response(), entries)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, sitemap.Robots(a.Site.Meta.URL))
}

func (a *App) handleLLMs(c echo.Context) error {
	return c.String(http.StatusOK, llms.Build(a.Site, a.now()))
}

func (a *App) handleLLMsJSON(c echo.Context) error {
	return c.JSON(http.StatusOK, llms.BuildJSON(a.Site, a.now()))
}
