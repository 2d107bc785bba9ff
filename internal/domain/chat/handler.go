package chat

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rs/zerolog/log"
)

// Handler exposes the assistant chat over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the chat route on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/chat", h.Chat)
}

type chatRequest struct {
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Message Message `json:"message"`
}

// Chat answers a conversation with an assistant reply.
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reply, err := h.service.Reply(c.Request().Context(), req.Messages)
	if err != nil {
		log.Debug().Err(err).Msg("rejected chat request")
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, chatResponse{Message: reply})
}
