package rest

import (
	"net/http"

	"github.com/heyybhargav/personal-newsletter-sub000/di"

	"github.com/labstack/echo/v4"
)

func registerSourceRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	sources := v1.Group("/sources")
	sources.POST("/resolve", handleResolveSource(container))
	sources.POST("/register", handleRegisterSource(container))
	sources.GET("", handleListSources(container))
	sources.DELETE("/:id", handleRemoveSource(container))
	sources.PATCH("/:id", handleSetSourceEnabled(container))
}

func handleResolveSource(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ResolveSourceRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body")
		}
		if req.URL == "" {
			return handleValidationError(c, "url is required", "url")
		}

		detected, err := container.ResolveSourceUsecase.Resolve(c.Request().Context(), req.URL)
		if err != nil {
			return handleError(c, err, "resolve_source")
		}
		return c.JSON(http.StatusOK, detected)
	}
}

func handleRegisterSource(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterSourceRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body")
		}
		if req.Email == "" {
			return handleValidationError(c, "email is required", "email")
		}
		if req.URL == "" {
			return handleValidationError(c, "url is required", "url")
		}

		source, err := container.RegisterSourceUsecase.Register(c.Request().Context(), req.Email, req.URL)
		if err != nil {
			return handleError(c, err, "register_source")
		}
		return c.JSON(http.StatusCreated, source)
	}
}

func handleListSources(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return handleValidationError(c, "email is required", "email")
		}

		sources, err := container.RegisterSourceUsecase.List(c.Request().Context(), email)
		if err != nil {
			return handleError(c, err, "list_sources")
		}
		return c.JSON(http.StatusOK, SourcesResponse{Sources: sources})
	}
}

func handleRemoveSource(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return handleValidationError(c, "email is required", "email")
		}
		sourceID := c.Param("id")

		if err := container.RegisterSourceUsecase.Remove(c.Request().Context(), email, sourceID); err != nil {
			return handleError(c, err, "remove_source")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleSetSourceEnabled(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.QueryParam("email")
		if email == "" {
			return handleValidationError(c, "email is required", "email")
		}
		sourceID := c.Param("id")

		var req SetSourceEnabledRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body")
		}
		if req.Enabled == nil {
			return handleValidationError(c, "enabled is required", "enabled")
		}

		if err := container.RegisterSourceUsecase.SetEnabled(c.Request().Context(), email, sourceID, *req.Enabled); err != nil {
			return handleError(c, err, "set_source_enabled")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "source updated"})
	}
}
