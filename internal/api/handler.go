package api

import (
	"context"
	"errors"
	"time"

	"weather-briefing/internal/report"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	validate  = validator.New()
	startTime = time.Now()
)

type ReportService interface {
	Generate(ctx context.Context, now time.Time) (string, error)
	GenerateFor(ctx context.Context, today string) (string, error)
	Latest() (string, time.Time, bool)
}

type Trigger interface {
	ForceRun()
}

type Handler struct {
	briefing ReportService
	trigger  Trigger
	logger   *zap.Logger
}

func NewHandler(briefing ReportService, trigger Trigger, logger *zap.Logger) *Handler {
	return &Handler{
		briefing: briefing,
		trigger:  trigger,
		logger:   logger,
	}
}

type reportQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

// GetReport handles GET /api/v1/report. Without a date it serves the last
// delivered report, falling back to generating one for today; with
// ?date=YYYY-MM-DD it regenerates as of that reference date, never sending.
func (h *Handler) GetReport(c *fiber.Ctx) error {
	q := reportQuery{Date: c.Query("date")}
	if err := validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date parameter must be YYYY-MM-DD",
		})
	}

	if q.Date == "" {
		if text, generatedAt, ok := h.briefing.Latest(); ok {
			return c.JSON(fiber.Map{
				"report":       text,
				"generated_at": generatedAt,
			})
		}
	}

	var (
		text string
		err  error
	)
	if q.Date != "" {
		text, err = h.briefing.GenerateFor(c.Context(), q.Date)
	} else {
		text, err = h.briefing.Generate(c.Context(), time.Now())
	}
	if err != nil {
		return h.reportError(c, err)
	}

	return c.JSON(fiber.Map{
		"report":       text,
		"generated_at": time.Now(),
	})
}

// SendReport handles POST /api/v1/report/send, kicking off a full run
// (generate + deliver) in the background.
func (h *Handler) SendReport(c *fiber.Ctx) error {
	h.logger.Info("Manual briefing send requested")
	h.trigger.ForceRun()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "briefing triggered",
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	_, generatedAt, ok := h.briefing.Latest()

	resp := fiber.Map{
		"status": "healthy",
		"uptime": time.Since(startTime).String(),
	}
	if ok {
		resp["last_generated"] = generatedAt
	}
	return c.JSON(resp)
}

func (h *Handler) reportError(c *fiber.Ctx, err error) error {
	var formatErr *report.FormatError
	if errors.As(err, &formatErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Shape violations mean the upstream payload was malformed, not that the
	// caller did anything wrong.
	var shapeErr *report.ShapeError
	if errors.As(err, &shapeErr) {
		h.logger.Error("Upstream payload malformed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Upstream weather data malformed",
		})
	}

	h.logger.Error("Failed to generate report", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to generate report",
	})
}
