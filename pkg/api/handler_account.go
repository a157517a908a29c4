package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/pkg/models"
)

// createAccountHandler handles POST /api/v1/accounts.
func (s *Server) createAccountHandler(c *echo.Context) error {
	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	snapshot, err := s.accounts.CreateAccount(c.Request().Context(), principalFrom(c), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, snapshot)
}

// listAccountsHandler handles GET /api/v1/accounts.
func (s *Server) listAccountsHandler(c *echo.Context) error {
	snapshots, err := s.accounts.ListAccounts(c.Request().Context(), principalFrom(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snapshots)
}

// getAccountHandler handles GET /api/v1/accounts/:id.
func (s *Server) getAccountHandler(c *echo.Context) error {
	accountID := c.Param("id")
	if accountID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "account id is required")
	}

	snapshot, err := s.accounts.GetAccount(c.Request().Context(), principalFrom(c), accountID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// updateTokensHandler handles PUT /api/v1/accounts/:id/tokens.
// Rotating tokens also clears a revoked status; the next dispatch retries
// with the fresh credentials.
func (s *Server) updateTokensHandler(c *echo.Context) error {
	accountID := c.Param("id")
	if accountID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "account id is required")
	}

	var req UpdateTokensRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.AccessToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "access_token is required")
	}

	err := s.accounts.UpdateTokens(c.Request().Context(), principalFrom(c),
		accountID, req.AccessToken, req.RefreshToken, req.TokenExpiresAt)
	if err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
