package report

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/clinidoc/clinidoc/internal/domain/records"
)

// PatientSource resolves patients for report generation.
type PatientSource interface {
	GetPatientByName(name string) (*records.Patient, bool)
}

// Handler exposes report export over HTTP.
type Handler struct {
	source     PatientSource
	compositor *Compositor
	renderer   *Renderer
}

// NewHandler wires a report handler over a patient source.
func NewHandler(source PatientSource, orgName string) *Handler {
	return &Handler{
		source:     source,
		compositor: NewCompositor(),
		renderer:   NewRenderer(orgName),
	}
}

// RegisterRoutes mounts the report route on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:name/report", h.ExportReport)
}

// ExportReport renders the full medical record PDF for a patient. The PDF
// is buffered in memory so a rendering failure returns a clean error
// instead of a truncated document.
func (h *Handler) ExportReport(c echo.Context) error {
	name := c.Param("name")
	patient, ok := h.source.GetPatientByName(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}

	doc, err := h.compositor.Build(patient)
	if err != nil {
		log.Error().Err(err).Str("patient", name).Msg("report composition failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate report")
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(doc, &buf); err != nil {
		log.Error().Err(err).Str("patient", name).Msg("report rendering failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+FileName(patient.Name)+`"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
