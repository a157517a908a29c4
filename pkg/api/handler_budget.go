package api

import (
	"net/http"
	"regexp"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/pkg/services"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// budgetStatusHandler handles GET /api/v1/budget.
// Optional ?month=YYYY-MM selects a past period; defaults to the current one.
func (s *Server) budgetStatusHandler(c *echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = services.CurrentMonth(time.Now())
	} else if !monthPattern.MatchString(month) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid month: must be YYYY-MM")
	}

	status, err := s.budgets.Status(c.Request().Context(), principalFrom(c), month)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// setBudgetLimitHandler handles PUT /api/v1/budget/limit.
func (s *Server) setBudgetLimitHandler(c *echo.Context) error {
	var req SetBudgetLimitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.LimitUSD <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "limit_usd must be positive")
	}
	month := req.Month
	if month == "" {
		month = services.CurrentMonth(time.Now())
	} else if !monthPattern.MatchString(month) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid month: must be YYYY-MM")
	}

	err := s.budgets.SetLimit(c.Request().Context(), principalFrom(c), month, req.LimitUSD, req.HardStop)
	if err != nil {
		return mapServiceError(err)
	}

	status, err := s.budgets.Status(c.Request().Context(), principalFrom(c), month)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}
