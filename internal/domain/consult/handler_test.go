package consult

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinidoc/clinidoc/internal/domain/records"
)

func multipartAudio(t *testing.T, size int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("audio", "consultation.webm")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte{0x1}, size)); err != nil {
		t.Fatalf("writing audio payload: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestTranscribeHandler(t *testing.T) {
	e := echo.New()
	store := records.New()
	svc := newTestService(store, 0)
	h := NewHandler(svc)

	body, contentType := multipartAudio(t, 2<<20)
	req := httptest.NewRequest(http.MethodPost, "/consultations/transcribe", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.Transcribe(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Transcript != sampleTranscripts[0] {
		t.Error("response transcript does not match the selected sample")
	}
	if res.Note != sampleNotes[0] {
		t.Error("response note does not match the selected sample")
	}
}

func TestTranscribeHandler_MissingAudio(t *testing.T) {
	e := echo.New()
	h := NewHandler(newTestService(records.New(), 0))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/consultations/transcribe", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()

	err := h.Transcribe(e.NewContext(req, rec))
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400, got %v", err)
	}
}

func TestGenerateNoteHandler(t *testing.T) {
	e := echo.New()
	store := records.New()
	h := NewHandler(newTestService(store, 1))

	payload := `{"transcript":"Doctor: any fever or chills?"}`
	req := httptest.NewRequest(http.MethodPost, "/consultations/notes", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.GenerateNote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("GenerateNote: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res generateNoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Note != sampleNotes[1] {
		t.Error("response note does not match the selected sample")
	}
	if store.Note() == nil {
		t.Error("generated note was not stored")
	}
}
