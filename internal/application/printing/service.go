package printing

import (
	"context"
	"time"

	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/furqanmax/simplepos-printing/internal/domain/shared"
	"github.com/furqanmax/simplepos-printing/internal/infrastructure/cache"
	"github.com/furqanmax/simplepos-printing/internal/infrastructure/rendering"
	"go.uber.org/zap"
)

// Defaults are the format and style applied when a request omits them
type Defaults struct {
	FormatID layout.FormatID
	StyleID  layout.StyleID
}

// RenderedDocument is a finished artifact ready to hand to a client
type RenderedDocument struct {
	Fingerprint string
	ContentType string
	Data        []byte
	PageCount   int
	FromCache   bool
	Advisories  []AdvisoryDTO
}

// LayoutService orchestrates the format and style registries, the layout
// engine, the plan cache, and the renderers behind the HTTP surface.
type LayoutService struct {
	formats     *layout.FormatRegistry
	styles      *layout.StyleRegistry
	engine      *layout.Engine
	resolver    *layout.CapabilityResolver
	plans       *cache.PlanCache
	artifacts   cache.ArtifactCache
	pdf         rendering.PDFRenderer
	defaults    Defaults
	artifactTTL time.Duration
	logger      *zap.Logger
}

// LayoutServiceOption is a functional option for the service
type LayoutServiceOption func(*LayoutService)

// WithArtifactCache attaches a shared artifact cache for rendered output
func WithArtifactCache(artifacts cache.ArtifactCache, ttl time.Duration) LayoutServiceOption {
	return func(s *LayoutService) {
		s.artifacts = artifacts
		s.artifactTTL = ttl
	}
}

// WithPDFRenderer attaches the renderer used for paper documents
func WithPDFRenderer(renderer rendering.PDFRenderer) LayoutServiceOption {
	return func(s *LayoutService) {
		s.pdf = renderer
	}
}

// WithDefaults overrides the built-in A4/classic defaults
func WithDefaults(d Defaults) LayoutServiceOption {
	return func(s *LayoutService) {
		if d.FormatID != "" {
			s.defaults.FormatID = d.FormatID
		}
		if d.StyleID != "" {
			s.defaults.StyleID = d.StyleID
		}
	}
}

// NewLayoutService creates the layout application service
func NewLayoutService(
	formats *layout.FormatRegistry,
	styles *layout.StyleRegistry,
	plans *cache.PlanCache,
	logger *zap.Logger,
	opts ...LayoutServiceOption,
) *LayoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &LayoutService{
		formats:     formats,
		styles:      styles,
		engine:      layout.NewEngine(formats),
		resolver:    layout.NewCapabilityResolver(formats),
		plans:       plans,
		defaults:    Defaults{FormatID: layout.FormatA4, StyleID: layout.StyleClassic},
		artifactTTL: time.Hour,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlanLayout resolves the request against the catalogs and produces a
// layout plan, serving repeat requests for identical content from cache.
func (s *LayoutService) PlanLayout(ctx context.Context, req *PlanLayoutRequest) (*PlanLayoutResponse, error) {
	plan, advisories, fromCache, err := s.plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan, advisories, fromCache), nil
}

// plan runs the shared planning path used by PlanLayout and the render
// operations. It returns the advisories for this request alongside the
// plan and reports whether the plan came from cache.
func (s *LayoutService) plan(ctx context.Context, req *PlanLayoutRequest) (*layout.LayoutPlan, []layout.Advisory, bool, error) {
	formatID := s.defaults.FormatID
	if req.FormatID != "" {
		formatID = layout.FormatID(req.FormatID)
	}
	styleID := s.defaults.StyleID
	if req.StyleID != "" {
		styleID = layout.StyleID(req.StyleID)
	}

	format, err := s.formats.Lookup(formatID)
	if err != nil {
		return nil, nil, false, err
	}
	style, err := s.styles.Lookup(styleID)
	if err != nil {
		return nil, nil, false, err
	}

	content := toDomainContent(req.Content)
	opts := layout.PlanOptions{Printer: toDomainPrinter(req.Printer)}
	if req.Margins != nil {
		m := toDomainMargins(*req.Margins)
		opts.Margins = &m
	}

	// The cache key must name the effective format and margins, so printer
	// fallback and margin clamping are resolved before the lookup.
	effectiveFormat := format
	fellBack := false
	if opts.Printer != nil {
		resolved, fb, err := s.resolver.Resolve(format, *opts.Printer)
		if err != nil {
			return nil, nil, false, err
		}
		effectiveFormat = resolved
		fellBack = fb
	}
	margins, raised := layout.EffectiveMargins(effectiveFormat, opts.Printer, opts.Margins)

	fingerprint := content.Fingerprint(effectiveFormat.ID, style.ID, margins)
	plan, cached, err := s.plans.GetOrCompute(ctx, fingerprint, func() (*layout.LayoutPlan, error) {
		return s.engine.Plan(content, format, style, opts)
	})
	if err != nil {
		return nil, nil, false, err
	}

	advisories := s.requestAdvisories(plan, fellBack, format, effectiveFormat, raised, opts.Margins, margins)

	if !cached {
		s.logger.Info("layout planned",
			zap.String("invoice", req.Content.Number),
			zap.String("format", effectiveFormat.ID.String()),
			zap.String("style", style.ID.String()),
			zap.Int("segments", len(plan.Segments)),
			zap.Int("advisories", len(advisories)))
	}
	return plan, advisories, cached, nil
}

// requestAdvisories assembles the advisory list for one request. Format
// fallback and margin clamping depend on the caller's printer and margins,
// not on the cached plan, so they are rebuilt here; content-determined
// advisories such as QR drops carry over from the plan.
func (s *LayoutService) requestAdvisories(
	plan *layout.LayoutPlan,
	fellBack bool,
	requested, effective layout.FormatDescriptor,
	raised bool,
	requestedMargins *layout.Margins,
	margins layout.Margins,
) []layout.Advisory {
	var advisories []layout.Advisory
	if fellBack {
		advisories = append(advisories, layout.NewFormatFallbackAdvisory(requested.ID, effective.ID))
	}
	if raised {
		req := effective.DefaultMargins
		if requestedMargins != nil {
			req = *requestedMargins
		}
		advisories = append(advisories, layout.NewMarginClampedAdvisory(req, margins))
	}
	for _, adv := range plan.Advisories {
		if adv.Code == layout.AdvisoryFormatFallback || adv.Code == layout.AdvisoryMarginClamped {
			continue
		}
		advisories = append(advisories, adv)
	}
	return advisories
}

// RenderDocument produces the final artifact for the request: a PDF for
// paper formats, monospace text for thermal formats. Rendered artifacts
// are reused across identical reprints via the artifact cache.
func (s *LayoutService) RenderDocument(ctx context.Context, req *PlanLayoutRequest) (*RenderedDocument, error) {
	plan, advisories, _, err := s.plan(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := toPlanResponse(plan, advisories, false)
	doc := &RenderedDocument{
		Fingerprint: plan.Fingerprint,
		Advisories:  resp.Advisories,
	}

	if plan.Config.Format.IsThermal() {
		doc.ContentType = "text/plain; charset=utf-8"
		doc.PageCount = 1
	} else {
		doc.ContentType = "application/pdf"
	}

	if s.artifacts != nil {
		if data, ok, err := s.artifacts.Get(ctx, plan.Fingerprint); err == nil && ok {
			doc.Data = data
			doc.FromCache = true
			if !plan.Config.Format.IsThermal() {
				doc.PageCount = len(plan.Segments)
			}
			return doc, nil
		} else if err != nil {
			s.logger.Warn("artifact cache read failed", zap.Error(err))
		}
	}

	content := toDomainContent(req.Content)

	if plan.Config.Format.IsThermal() {
		doc.Data = []byte(rendering.RenderThermalText(plan, content))
	} else {
		if s.pdf == nil {
			return nil, shared.NewDomainError("RENDERER_UNAVAILABLE", "no PDF renderer is configured")
		}
		html, err := rendering.BuildInvoiceHTML(plan, content)
		if err != nil {
			return nil, err
		}
		result, err := s.pdf.Render(ctx, &rendering.RenderRequest{
			HTML:     html,
			WidthMM:  plan.Config.Format.WidthMM,
			HeightMM: plan.Config.Format.HeightMM,
			Margins:  plan.Config.Margins,
			Title:    "Invoice " + content.Meta.Number,
		})
		if err != nil {
			return nil, err
		}
		doc.Data = result.PDFData
		doc.PageCount = result.PageCount
	}

	if s.artifacts != nil {
		if err := s.artifacts.Set(ctx, plan.Fingerprint, doc.Data, s.artifactTTL); err != nil {
			s.logger.Warn("artifact cache write failed", zap.Error(err))
		}
	}
	return doc, nil
}

// RenderThermalPreview returns the monospace receipt text for a thermal
// format without touching the artifact cache. Paper formats are rejected.
func (s *LayoutService) RenderThermalPreview(ctx context.Context, req *PlanLayoutRequest) (string, *PlanLayoutResponse, error) {
	plan, advisories, fromCache, err := s.plan(ctx, req)
	if err != nil {
		return "", nil, err
	}
	if !plan.Config.Format.IsThermal() {
		return "", nil, shared.NewDomainError("NOT_THERMAL", "thermal preview requires a thermal format")
	}
	content := toDomainContent(req.Content)
	return rendering.RenderThermalText(plan, content), toPlanResponse(plan, advisories, fromCache), nil
}

// ResolveFormat reports the format a printer will actually produce for a
// requested format, without planning a document.
func (s *LayoutService) ResolveFormat(req *ResolveFormatRequest) (*ResolveFormatResponse, error) {
	format, err := s.formats.Lookup(layout.FormatID(req.FormatID))
	if err != nil {
		return nil, err
	}
	printer := toDomainPrinter(&req.Printer)
	effective, fellBack, err := s.resolver.Resolve(format, *printer)
	if err != nil {
		return nil, err
	}
	return &ResolveFormatResponse{
		RequestedID: format.ID.String(),
		EffectiveID: effective.ID.String(),
		FellBack:    fellBack,
	}, nil
}

// ListFormats returns the catalog, optionally filtered by classification
func (s *LayoutService) ListFormats(class string) ([]FormatResponse, error) {
	var descriptors []layout.FormatDescriptor
	switch class {
	case "":
		descriptors = s.formats.All()
	case string(layout.ClassPaper), string(layout.ClassThermal):
		for f := range s.formats.List(layout.Classification(class)) {
			descriptors = append(descriptors, f)
		}
	default:
		return nil, shared.NewDomainError("INVALID_CLASSIFICATION", "classification must be paper or thermal")
	}

	out := make([]FormatResponse, 0, len(descriptors))
	for _, f := range descriptors {
		out = append(out, FormatResponse{
			ID:             f.ID.String(),
			DisplayName:    f.DisplayName,
			Classification: string(f.Classification),
			WidthMM:        f.WidthMM,
			HeightMM:       f.HeightMM,
			MaxQRCodes:     f.MaxQRCodes,
			Paginates:      f.Paginates,
		})
	}
	return out, nil
}

// ListStyles returns the style catalog
func (s *LayoutService) ListStyles() []StyleResponse {
	styles := s.styles.All()
	out := make([]StyleResponse, 0, len(styles))
	for _, st := range styles {
		out = append(out, StyleResponse{
			ID:              st.ID.String(),
			DisplayName:     st.DisplayName,
			ShowBorders:     st.ShowBorders,
			ShowDescription: st.ShowDescription,
		})
	}
	return out
}

// CacheStats exposes plan cache counters for the health endpoint
func (s *LayoutService) CacheStats() (hits, misses int64, count int) {
	hits, misses = s.plans.Stats()
	return hits, misses, s.plans.Count()
}
