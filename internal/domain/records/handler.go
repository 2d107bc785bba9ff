package records

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinidoc/clinidoc/pkg/pagination"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.AddPatient)
	api.GET("/patients/:name", h.GetPatient)

	api.GET("/session/current-patient", h.GetCurrentPatient)
	api.PUT("/session/current-patient", h.SetCurrentPatient)
	api.GET("/session/note", h.GetNote)
	api.PUT("/session/note", h.SetNote)
	api.DELETE("/session/note", h.ClearNote)
	api.GET("/session/transcript", h.GetTranscript)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	all := h.store.ListPatients()
	page := pagination.Slice(all, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(all), pg.Limit, pg.Offset))
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, ok := h.store.GetPatientByName(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) AddPatient(c echo.Context) error {
	var in PatientInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := in.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p := h.store.AddPatient(in)
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetCurrentPatient(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.CurrentPatient())
}

type setCurrentRequest struct {
	Name string `json:"name"`
}

// SetCurrentPatient repoints the session selection. An unknown name leaves
// the selection unchanged and reports the miss to the caller instead of
// silently succeeding.
func (h *Handler) SetCurrentPatient(c echo.Context) error {
	var req setCurrentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !h.store.SetCurrentPatient(req.Name) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"current_patient": req.Name})
}

func (h *Handler) GetNote(c echo.Context) error {
	note := h.store.Note()
	if note == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no note in session")
	}
	return c.JSON(http.StatusOK, note)
}

func (h *Handler) SetNote(c echo.Context) error {
	var note SOAPNote
	if err := c.Bind(&note); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.store.SetNote(&note)
	return c.JSON(http.StatusOK, note)
}

func (h *Handler) ClearNote(c echo.Context) error {
	h.store.SetNote(nil)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetTranscript(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"transcript": h.store.Transcript()})
}
