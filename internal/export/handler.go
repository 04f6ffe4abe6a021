package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/raster"
)

const maxUploadSize = 10 << 20 // 10MB

// Request is the body of a PNG export.
type Request struct {
	Name     string             `json:"name"`
	Elements []document.Element `json:"elements"`
	// Selection draws selection decorations for these ids, as on screen.
	Selection []string `json:"selection,omitempty"`
}

type Handler struct {
	renderer *raster.Renderer
}

func NewHandler(renderer *raster.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// ExportPNG renders the posted elements and returns them as a PNG download.
func (h *Handler) ExportPNG(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc := document.New()
	skipped := 0
	for _, el := range req.Elements {
		if !el.Type.Valid() || doc.Add(el) == nil {
			skipped++
		}
	}
	doc.Select(req.Selection...)
	if skipped > 0 {
		slog.Warn("export skipped invalid elements", "skipped", skipped, "total", len(req.Elements))
	}

	var buf bytes.Buffer
	if err := h.renderer.EncodePNG(&buf, engine.CompileDrawCommands(doc, "", nil)); err != nil {
		slog.Error("render export", "error", err)
		http.Error(w, fmt.Sprintf("rendering failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.png"`, sanitizeName(req.Name)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	buf.WriteTo(w)

	slog.Info("export complete", "elements", doc.Len(), "size", buf.Len())
}

func sanitizeName(name string) string {
	if name == "" {
		return "sketch"
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}
