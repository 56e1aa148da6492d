package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kapu/pedigree-chart-go/internal/canvas"
	"github.com/kapu/pedigree-chart-go/internal/config"
	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/service"
	"github.com/kapu/pedigree-chart-go/internal/service/cache"
	"github.com/kapu/pedigree-chart-go/internal/service/database"
	apperrors "github.com/kapu/pedigree-chart-go/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	provider  *database.PostgresService
	cache     *cache.CacheService
	builder   *service.RecordBuilder
	renderer  *service.ChartRenderer
	localizer *service.Localizer
	formatter RecordFormatter
	chart     config.ChartConfig
	logger    *zap.Logger
}

// RecordFormatter is the slice of the adapter the record endpoint needs.
type RecordFormatter interface {
	TooltipLines(record *domain.DisplayRecord) []string
}

func NewHandler(
	provider *database.PostgresService,
	cacheService *cache.CacheService,
	builder *service.RecordBuilder,
	renderer *service.ChartRenderer,
	localizer *service.Localizer,
	formatter RecordFormatter,
	chart config.ChartConfig,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		provider:  provider,
		cache:     cacheService,
		builder:   builder,
		renderer:  renderer,
		localizer: localizer,
		formatter: formatter,
		chart:     chart,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(engine *gin.Engine, events *EventChannel) {
	engine.GET("/healthz", h.healthz)

	api := engine.Group("/api")
	api.GET("/chart/:identifier", h.renderChart)
	api.GET("/chart/:identifier/events", events.Handle)
	api.GET("/individuals/:identifier/record", h.record)
}

func (h *Handler) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.provider.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "not_ready",
			"database": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
		"cache":    h.cache.IsConnected(ctx),
	})
}

// chartParams are the per-request chart settings, query parameters over
// configured defaults.
type chartParams struct {
	Identifier  string
	Generations int
	Orientation domain.Orientation
	Direction   canvas.TextDirection
}

func (h *Handler) chartParamsFrom(c *gin.Context) (chartParams, error) {
	params := chartParams{
		Identifier:  c.Param("identifier"),
		Generations: parseInt(c.Query("generations"), h.chart.Generations),
		Orientation: domain.Orientation(c.DefaultQuery("orientation", h.chart.Orientation)),
		Direction:   canvas.TextDirection(c.DefaultQuery("direction", h.chart.Direction)),
	}

	if params.Identifier == "" {
		return params, fmt.Errorf("identifier is required")
	}
	if params.Generations < 1 {
		return params, fmt.Errorf("generations must be at least 1")
	}
	if !params.Orientation.IsValid() {
		return params, fmt.Errorf("orientation must be vertical or horizontal")
	}
	if !params.Direction.IsValid() {
		return params, fmt.Errorf("direction must be ltr or rtl")
	}
	return params, nil
}

func (h *Handler) renderChart(c *gin.Context) {
	params, err := h.chartParamsFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", canvas.FormatSVG)))

	ctx := c.Request.Context()
	cacheKey := renderCacheKey(params, format)
	if data, ok := h.cache.GetRenderedChart(ctx, cacheKey); ok {
		c.Data(http.StatusOK, contentTypeFor(format), data)
		return
	}

	ctrl, err := h.buildCanvas(ctx, params, canvas.NopOverlay{})
	if err != nil {
		h.logger.Error("Chart build failed",
			zap.String("identifier", params.Identifier),
			zap.Error(err),
		)
		c.JSON(statusFor(err), gin.H{"error": "chart build failed"})
		return
	}
	if ctrl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "individual not found"})
		return
	}

	exporter, err := ctrl.Export(format)
	if err != nil {
		if errors.Is(err, canvas.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf); err != nil {
		h.logger.Error("Chart export failed",
			zap.String("identifier", params.Identifier),
			zap.String("format", format),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	data := buf.Bytes()
	h.cache.SetRenderedChart(ctx, cacheKey, data)
	c.Data(http.StatusOK, contentTypeFor(format), data)
}

func (h *Handler) record(c *gin.Context) {
	identifier := c.Param("identifier")
	ctx := c.Request.Context()

	key := constants.CacheKey.RecordPrefix + identifier
	if record, ok := h.cache.GetDisplayRecord(ctx, key); ok {
		c.JSON(http.StatusOK, gin.H{"record": record, "tooltip": h.formatter.TooltipLines(record)})
		return
	}

	ind, err := h.provider.GetIndividual(ctx, identifier)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "individual lookup failed"})
		return
	}
	if ind == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "individual not found"})
		return
	}

	record := h.builder.Build(ind, 0, h.renderer.ColorFor(0))
	record.ID = 1
	h.cache.SetDisplayRecord(ctx, key, record)

	c.JSON(http.StatusOK, gin.H{"record": record, "tooltip": h.formatter.TooltipLines(record)})
}

// buildCanvas runs the whole pipeline for one chart request: ancestors,
// records, layout, canvas, drawing. An unknown subject yields (nil, nil).
func (h *Handler) buildCanvas(ctx context.Context, params chartParams, overlay canvas.Overlay) (*canvas.Controller, error) {
	entries, err := h.provider.GetAncestors(ctx, params.Identifier, params.Generations)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	records := h.builder.BuildAll(ctx, entries, h.renderer.ColorFor)
	for i, record := range records {
		record.ID = i + 1
	}

	nodes := service.BuildNodes(entries, records)
	layout := service.NewLayoutEngine(params.Orientation, h.logger).Arrange(nodes)

	ctrl, err := canvas.NewController(
		canvas.Container{Width: float64(h.chart.Width), Height: float64(h.chart.Height)},
		canvas.Config{
			TextDirection:     params.Direction,
			Labels:            h.localizer.HintLabels(),
			LayoutOrientation: params.Orientation,
			GenerationCount:   params.Generations,
		},
		h.logger,
	)
	if err != nil {
		return nil, err
	}

	ctrl.Initialize()
	if err := ctrl.InitializeInteraction(overlay); err != nil {
		return nil, err
	}
	if err := h.renderer.Render(ctrl, layout); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func renderCacheKey(params chartParams, format string) string {
	return fmt.Sprintf("%s%s:%d:%s:%s:%s",
		constants.CacheKey.RenderPrefix,
		params.Identifier, params.Generations, params.Orientation, params.Direction, format)
}

func contentTypeFor(format string) string {
	switch format {
	case canvas.FormatPNG:
		return "image/png"
	case canvas.FormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

func statusFor(err error) int {
	var providerErr *apperrors.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.StatusCode
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.StatusCode
	}
	return http.StatusInternalServerError
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
