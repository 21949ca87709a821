package rest

import (
	"net/http"

	"github.com/heyybhargav/personal-newsletter-sub000/di"
	"github.com/heyybhargav/personal-newsletter-sub000/usecase/dispatch_usecase"

	"github.com/labstack/echo/v4"
)

func registerDispatchRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/dispatch", handleDispatch(container))
}

func handleDispatch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req DispatchRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body")
		}
		if req.Email == "" {
			return handleValidationError(c, "email is required", "email")
		}

		opts := dispatch_usecase.Options{
			Force:  c.QueryParam("force") == "true",
			DryRun: c.QueryParam("dry_run") == "true",
		}

		ack, err := container.DispatchUsecase.Dispatch(c.Request().Context(), req.Email, opts)
		if err != nil {
			return handleError(c, err, "dispatch")
		}

		// Acceptance is not a result: the run itself happens on the
		// worker pool after this response is written.
		if ack.Status == "accepted" {
			return c.JSON(http.StatusAccepted, ack)
		}
		return c.JSON(http.StatusOK, ack)
	}
}
