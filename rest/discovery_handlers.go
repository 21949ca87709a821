package rest

import (
	"net/http"
	"strings"

	"github.com/heyybhargav/personal-newsletter-sub000/di"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"

	"github.com/labstack/echo/v4"
)

func registerDiscoveryRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/discovery/search", handleDiscoverySearch(container))
}

func handleDiscoverySearch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("q")
		if strings.TrimSpace(query) == "" {
			return handleValidationError(c, "q is required", "q")
		}

		var kinds []domain.SourceType
		if raw := c.QueryParam("kinds"); raw != "" {
			for _, k := range strings.Split(raw, ",") {
				k = strings.TrimSpace(k)
				if k != "" {
					kinds = append(kinds, domain.SourceType(k))
				}
			}
		}

		results, err := container.DiscoveryUsecase.Search(c.Request().Context(), query, kinds)
		if err != nil {
			return handleError(c, err, "discovery_search")
		}
		return c.JSON(http.StatusOK, SearchResponse{Results: results})
	}
}
