package suggestions

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the suggestion advisor over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the suggestions route on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/suggestions", h.GetSuggestions)
}

// GetSuggestions returns recommendations for the current session.
func (h *Handler) GetSuggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Advise())
}
