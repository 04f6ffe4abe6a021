package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/raster"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	r, err := raster.New(raster.Options{Width: 200, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	return NewHandler(r)
}

func TestExportPNG(t *testing.T) {
	body, err := json.Marshal(Request{
		Name: "my sketch!",
		Elements: []document.Element{
			{ID: "a", Type: document.ElementRectangle, Color: "#000000", StrokeWidth: 2,
				Points: []document.Point{{X: 10, Y: 10}, {X: 90, Y: 60}}},
			{ID: "bad", Type: "hexagon", Points: []document.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		},
		Selection: []string{"a"},
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	newHandler(t).ExportPNG(rec, httptest.NewRequest(http.MethodPost, "/export/png", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="my-sketch-.png"`) {
		t.Errorf("Content-Disposition = %q", got)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("size = %v", b)
	}
}

func TestExportPNGBadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).ExportPNG(rec, httptest.NewRequest(http.MethodPost, "/export/png", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "sketch"},
		{"plan_v2", "plan_v2"},
		{"../etc/passwd", "---etc-passwd"},
	}
	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
