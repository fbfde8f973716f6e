package layout

// PlanOptions carries the optional inputs to a plan request
type PlanOptions struct {
	// Printer, when set, is matched against the requested format and may
	// substitute it with the nearest supported one.
	Printer *PrinterProfile
	// Margins, when set, override the format's default margins. Values
	// below the format minimum are silently raised with an advisory.
	Margins *Margins
}

// Engine is the auto-layout engine. A single engine instance serves any
// number of concurrent Plan calls; planning holds no shared mutable state.
type Engine struct {
	resolver *CapabilityResolver
}

// NewEngine creates an engine resolving printer capability against the
// given format registry.
func NewEngine(formats *FormatRegistry) *Engine {
	return &Engine{resolver: NewCapabilityResolver(formats)}
}

// Plan produces a fully resolved layout plan for the invoice content on
// the given format and style. The paper branch wraps and paginates; the
// thermal branch truncates into a single continuous segment. Non-fatal
// adjustments (margin clamping, format fallback, QR drops) are attached
// as advisories; the only errors are ErrNoCompatibleFormat for a printer
// classification mismatch and ErrInsufficientFormat for degenerate custom
// descriptors.
func (e *Engine) Plan(content *InvoiceContent, format FormatDescriptor, style StyleDescriptor, opts PlanOptions) (*LayoutPlan, error) {
	var advisories []Advisory

	if opts.Printer != nil {
		effective, fellBack, err := e.resolver.Resolve(format, *opts.Printer)
		if err != nil {
			return nil, err
		}
		if fellBack {
			advisories = append(advisories, NewFormatFallbackAdvisory(format.ID, effective.ID))
		}
		format = effective
	}

	// Thermal stock cannot render box drawing reliably.
	if format.IsThermal() {
		style.ShowBorders = false
	}

	var (
		plan *LayoutPlan
		err  error
	)
	if format.IsThermal() {
		plan, err = e.planThermal(content, format, style, opts, &advisories)
	} else {
		plan, err = e.planPaper(content, format, style, opts, &advisories)
	}
	if err != nil {
		return nil, err
	}

	plan.Fingerprint = content.Fingerprint(format.ID, style.ID, plan.Config.Margins)
	plan.Advisories = advisories
	return plan, nil
}

// planPaper implements the cut-sheet branch: margin resolution, greedy
// word wrap, threshold pagination, QR grid and logo placement.
func (e *Engine) planPaper(content *InvoiceContent, format FormatDescriptor, style StyleDescriptor, opts PlanOptions, advisories *[]Advisory) (*LayoutPlan, error) {
	requested := format.DefaultMargins
	if opts.Margins != nil {
		requested = *opts.Margins
	}
	margins, raised := EffectiveMargins(format, opts.Printer, opts.Margins)
	if raised {
		*advisories = append(*advisories, NewMarginClampedAdvisory(requested, margins))
	}

	cfg := LayoutConfig{
		Format:             format,
		Style:              style,
		Margins:            margins,
		Fonts:              FontPlanFor(format),
		MaxQRCodes:         format.MaxQRCodes,
		QRSizeMM:           format.QRSizeMM,
		LogoMaxMM:          format.LogoMaxMM,
		WrapItemNames:      true,
		MaxLinesPerItem:    defaultMaxLinesPerItem,
		PageBreakThreshold: pageBreakThreshold,
	}

	if cfg.PrintableWidthMM() <= 0 || cfg.PrintableHeightMM() <= 0 {
		return nil, ErrInsufficientFormat
	}
	capacity := cfg.ItemColumnChars()
	if capacity < 1 {
		return nil, ErrInsufficientFormat
	}

	rows := buildPaperRows(content, cfg, capacity)
	logo := resolveLogo(content.Logo, cfg)
	qr, dropped := resolveQRGrid(content.QRCodes, cfg)
	if dropped > 0 {
		*advisories = append(*advisories, NewQrDroppedAdvisory(dropped))
	}

	segments, err := paginate(rows, cfg, logo, qr)
	if err != nil {
		return nil, err
	}

	return &LayoutPlan{Config: cfg, Segments: segments}, nil
}

// planThermal implements the continuous-feed branch: the thermal optimizer
// resolves the character budget and forced margins, item names truncate to
// exactly the budget, and the whole invoice forms one segment.
func (e *Engine) planThermal(content *InvoiceContent, format FormatDescriptor, style StyleDescriptor, opts PlanOptions, advisories *[]Advisory) (*LayoutPlan, error) {
	tl, err := OptimizeThermal(content, format)
	if err != nil {
		return nil, err
	}

	cfg := LayoutConfig{
		Format:             format,
		Style:              style,
		Margins:            tl.Margins,
		Fonts:              tl.Fonts,
		CharsPerLine:       tl.CharsPerLine,
		MaxQRCodes:         format.MaxQRCodes,
		QRSizeMM:           format.QRSizeMM,
		LogoMaxMM:          format.LogoMaxMM,
		WrapItemNames:      false,
		MaxLinesPerItem:    1,
		PageBreakThreshold: pageBreakThreshold,
	}

	rows := make([]ItemRow, 0, len(content.Items))
	for i, item := range content.Items {
		name := TruncateToWidth(item.Name, tl.CharsPerLine)
		rows = append(rows, ItemRow{
			Index:     i,
			Lines:     []string{name},
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
			Truncated: name != item.Name,
			// Name line plus the right-aligned numeric line.
			HeightMM: 2 * thermalLineHeightMM,
		})
	}

	qr, dropped := resolveQRStack(content.QRCodes, cfg)
	if dropped > 0 {
		*advisories = append(*advisories, NewQrDroppedAdvisory(dropped))
	}
	logo := resolveLogo(content.Logo, cfg)

	height := cfg.Margins.VerticalTotal()
	height += float64(thermalFixedLines(content)) * thermalLineHeightMM
	for _, row := range rows {
		height += row.HeightMM
	}
	if logo != nil {
		height += logo.HeightMM + logoSpacingMM
	}
	if qr != nil {
		height += float64(qr.Count)*(qr.SizeMM+qr.SpacingMM) + qr.SpacingMM
	}

	segment := Segment{
		Number:            1,
		Rows:              rows,
		QRCodes:           qr,
		Logo:              logo,
		EstimatedHeightMM: height,
	}

	return &LayoutPlan{
		Config:        cfg,
		Segments:      []Segment{segment},
		TotalHeightMM: height,
	}, nil
}

// buildPaperRows wraps every item name into the item column capacity
func buildPaperRows(content *InvoiceContent, cfg LayoutConfig, capacity int) []ItemRow {
	lineH := cfg.LineHeightMM()
	rows := make([]ItemRow, 0, len(content.Items))
	for i, item := range content.Items {
		lines, truncated := wrapText(item.Name, capacity, cfg.MaxLinesPerItem)
		desc := ""
		if cfg.Style.ShowDescription {
			desc = item.Description
		}
		rows = append(rows, ItemRow{
			Index:       i,
			Lines:       lines,
			Description: desc,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
			Truncated:   truncated,
			HeightMM:    float64(len(lines)) * lineH,
		})
	}
	return rows
}

// resolveQRGrid places up to MaxQRCodes codes in a row-major grid, as many
// per row as fit at the configured size. A code below the minimum scannable
// size does not fit: the grid retries at the minimum size and drops the
// lowest-priority payloads rather than shrinking further.
func resolveQRGrid(payloads []QRPayload, cfg LayoutConfig) (*QRPlacement, int) {
	if len(payloads) == 0 {
		return nil, 0
	}

	kept := len(payloads)
	if kept > cfg.MaxQRCodes {
		kept = cfg.MaxQRCodes
	}

	size := cfg.QRSizeMM
	if size < minScannableQRMM {
		size = minScannableQRMM
	}
	perRow := qrPerRow(cfg.PrintableWidthMM(), size)
	if perRow < 1 {
		size = minScannableQRMM
		perRow = qrPerRow(cfg.PrintableWidthMM(), size)
	}
	if perRow < 1 {
		// Not even one scannable code fits the printable width.
		return nil, len(payloads)
	}

	dropped := len(payloads) - kept
	if kept == 0 {
		return nil, dropped
	}
	return &QRPlacement{
		Count:     kept,
		PerRow:    perRow,
		SizeMM:    size,
		SpacingMM: qrSpacingMM,
		Payloads:  append([]QRPayload(nil), payloads[:kept]...),
	}, dropped
}

// resolveQRStack stacks codes vertically for continuous thermal feed
func resolveQRStack(payloads []QRPayload, cfg LayoutConfig) (*QRPlacement, int) {
	if len(payloads) == 0 {
		return nil, 0
	}

	if cfg.PrintableWidthMM() < minScannableQRMM {
		return nil, len(payloads)
	}

	kept := len(payloads)
	if kept > cfg.MaxQRCodes {
		kept = cfg.MaxQRCodes
	}
	dropped := len(payloads) - kept
	if kept == 0 {
		return nil, dropped
	}
	return &QRPlacement{
		Count:     kept,
		PerRow:    1,
		SizeMM:    cfg.QRSizeMM,
		SpacingMM: thermalQRSpacingMM,
		Payloads:  append([]QRPayload(nil), payloads[:kept]...),
	}, dropped
}

// qrPerRow returns how many codes of the given size fit one grid row
func qrPerRow(printableWidth, size float64) int {
	if size <= 0 {
		return 0
	}
	return int((printableWidth + qrSpacingMM) / (size + qrSpacingMM))
}

// resolveLogo scales the logo proportionally to the printable width,
// capping the larger edge at the format's logo maximum.
func resolveLogo(ref *LogoRef, cfg LayoutConfig) *LogoPlacement {
	if ref == nil {
		return nil
	}

	width := cfg.PrintableWidthMM() * 0.4
	height := cfg.LogoMaxMM
	if ref.WidthMM > 0 && ref.HeightMM > 0 {
		scale := width / ref.WidthMM
		if ref.HeightMM*scale > cfg.LogoMaxMM {
			scale = cfg.LogoMaxMM / ref.HeightMM
		}
		width = ref.WidthMM * scale
		height = ref.HeightMM * scale
	}
	if width > cfg.LogoMaxMM {
		width = cfg.LogoMaxMM
	}
	return &LogoPlacement{WidthMM: width, HeightMM: height, URI: ref.URI}
}

// thermalFixedLines counts the non-item monospace lines of a thermal
// receipt: header, invoice info, separators, totals block, and footer.
func thermalFixedLines(content *InvoiceContent) int {
	lines := 1 // business name
	lines += len(content.BusinessInfo)
	lines += 1 // separator
	lines += 3 // invoice number, date, operator
	lines += 1 // separator
	lines += 1 // table header
	lines += 1 // separator
	lines += 3 // subtotal, tax, grand total
	lines += 2 // double rule
	lines += 2 // thank-you footer + timestamp
	if content.FooterText != "" {
		lines++
	}
	return lines
}
