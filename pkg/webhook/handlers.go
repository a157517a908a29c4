package webhook

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v5"
)

// maxBodyBytes caps callback body size. Platforms send small JSON payloads;
// anything larger is not a webhook.
const maxBodyBytes = 1 << 20

// RegisterRoutes mounts the webhook ingress endpoint on an echo group.
func (i *Ingress) RegisterRoutes(g *echo.Group) {
	g.POST("/webhooks/:provider", i.handleCallback)
}

// handleCallback answers 200 with an empty body no matter what: signature
// failures, unknown providers, and duplicates all look identical from
// outside. Only a read failure earns a non-200.
func (i *Ingress) handleCallback(c *echo.Context) error {
	providerName := c.Param("provider")

	providerCfg, err := i.cfg.Provider(providerName)
	if err != nil {
		// Same response as success; do not leak which providers exist.
		return c.NoContent(http.StatusOK)
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read body")
	}

	d := Delivery{
		Provider:  providerName,
		Body:      body,
		Signature: c.Request().Header.Get(providerCfg.SignatureHeader),
	}
	if providerCfg.Timestamped() {
		d.Timestamp = c.Request().Header.Get(providerCfg.TimestampHeader)
	}

	i.Handle(c.Request().Context(), d)
	return c.NoContent(http.StatusOK)
}
