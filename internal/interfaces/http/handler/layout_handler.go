package handler

import (
	"net/http"

	"github.com/furqanmax/simplepos-printing/internal/application/printing"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LayoutHandler exposes the layout planning and rendering operations
type LayoutHandler struct {
	service *printing.LayoutService
	logger  *zap.Logger
}

// NewLayoutHandler creates a new layout handler
func NewLayoutHandler(service *printing.LayoutService, logger *zap.Logger) *LayoutHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LayoutHandler{service: service, logger: logger}
}

// PlanLayout handles POST /api/v1/layout/plan
func (h *LayoutHandler) PlanLayout(c *gin.Context) {
	var req printing.PlanLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.PlanLayout(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, resp)
}

// RenderDocument handles POST /api/v1/layout/render. The response body is
// the artifact itself: a PDF for paper formats, plain text for thermal.
func (h *LayoutHandler) RenderDocument(c *gin.Context) {
	var req printing.PlanLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	doc, err := h.service.RenderDocument(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("X-Layout-Fingerprint", doc.Fingerprint)
	if doc.FromCache {
		c.Header("X-Cache", "HIT")
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// ThermalPreview handles POST /api/v1/layout/thermal-preview
func (h *LayoutHandler) ThermalPreview(c *gin.Context) {
	var req printing.PlanLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	text, plan, err := h.service.RenderThermalPreview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{
		"text": text,
		"plan": plan,
	})
}

// ResolveFormat handles POST /api/v1/layout/resolve
func (h *LayoutHandler) ResolveFormat(c *gin.Context) {
	var req printing.ResolveFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.service.ResolveFormat(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, resp)
}

// ListFormats handles GET /api/v1/formats?classification=paper|thermal
func (h *LayoutHandler) ListFormats(c *gin.Context) {
	formats, err := h.service.ListFormats(c.Query("classification"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, formats)
}

// ListStyles handles GET /api/v1/styles
func (h *LayoutHandler) ListStyles(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.service.ListStyles())
}

// Health handles GET /healthz
func (h *LayoutHandler) Health(c *gin.Context) {
	hits, misses, count := h.service.CacheStats()
	respondSuccess(c, http.StatusOK, gin.H{
		"status": "ok",
		"cache": gin.H{
			"hits":   hits,
			"misses": misses,
			"plans":  count,
		},
	})
}
