package consult

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinidoc/clinidoc/internal/domain/records"
)

// Handler exposes the consultation pipeline over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the consultation routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/consultations/transcribe", h.Transcribe)
	api.POST("/consultations/notes", h.GenerateNote)
}

// Transcribe accepts a multipart upload under the "audio" field and runs
// the transcription pipeline on it.
func (h *Handler) Transcribe(c echo.Context) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no audio file provided")
	}

	res, err := h.service.Transcribe(c.Request().Context(), file.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to transcribe audio")
	}
	return c.JSON(http.StatusOK, res)
}

type generateNoteRequest struct {
	Transcript string `json:"transcript"`
}

type generateNoteResponse struct {
	Note records.SOAPNote `json:"soapNotes"`
}

// GenerateNote builds a structured note from a transcript supplied in the
// request body.
func (h *Handler) GenerateNote(c echo.Context) error {
	var req generateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	note, err := h.service.GenerateNote(c.Request().Context(), req.Transcript)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate notes")
	}
	return c.JSON(http.StatusOK, generateNoteResponse{Note: note})
}
