package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Clamping(t *testing.T) {
	p := paramsFor(t, "limit=5000&offset=-3")
	if p.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected negative offset clamped to 0, got %d", p.Offset)
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Slice(items, Params{Limit: 2, Offset: 0})
	if len(page) != 2 || page[0] != 1 || page[1] != 2 {
		t.Errorf("unexpected first page: %v", page)
	}

	page = Slice(items, Params{Limit: 2, Offset: 4})
	if len(page) != 1 || page[0] != 5 {
		t.Errorf("unexpected last page: %v", page)
	}

	page = Slice(items, Params{Limit: 2, Offset: 10})
	if page == nil || len(page) != 0 {
		t.Errorf("expected empty non-nil page, got %v", page)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	resp := NewResponse([]int{1, 2}, 5, 2, 0)
	if !resp.HasMore {
		t.Error("expected HasMore true")
	}
	resp = NewResponse([]int{5}, 5, 2, 4)
	if resp.HasMore {
		t.Error("expected HasMore false on last page")
	}
}
