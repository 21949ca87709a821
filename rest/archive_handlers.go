package rest

import (
	"net/http"

	"github.com/heyybhargav/personal-newsletter-sub000/di"

	"github.com/labstack/echo/v4"
)

func registerArchiveRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/archive/dates", handleArchiveDates(container))
	v1.GET("/archive/:date", handleArchiveByDate(container))
	v1.GET("/briefings/latest", handleLatestBriefing(container))
}

func handleArchiveDates(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return handleValidationError(c, "email is required", "email")
		}

		dates, err := container.ArchiveUsecase.ListDates(c.Request().Context(), email)
		if err != nil {
			return handleError(c, err, "archive_dates")
		}
		return c.JSON(http.StatusOK, ArchiveDatesResponse{Dates: dates})
	}
}

func handleArchiveByDate(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return handleValidationError(c, "email is required", "email")
		}

		briefing, err := container.ArchiveUsecase.GetByDate(c.Request().Context(), email, c.Param("date"))
		if err != nil {
			return handleError(c, err, "archive_by_date")
		}
		return c.JSON(http.StatusOK, briefing)
	}
}

func handleLatestBriefing(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return handleValidationError(c, "email is required", "email")
		}

		briefing, err := container.ArchiveUsecase.GetLatest(c.Request().Context(), email)
		if err != nil {
			return handleError(c, err, "latest_briefing")
		}
		return c.JSON(http.StatusOK, briefing)
	}
}
