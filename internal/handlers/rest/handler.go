package rest

import (
	"errors"
	"strconv"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/common/uuid"
	"github.com/KirkDiggler/mentorcast/internal/repositories/session"
	"github.com/KirkDiggler/mentorcast/internal/services/announcer"
	"github.com/KirkDiggler/mentorcast/internal/services/schedule"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Config holds the configuration for the HTTP handlers
type Config struct {
	Schedule schedule.Service

	// Announcer enables POST /announce when set
	Announcer announcer.Announcer

	UUID           uuid.UUID
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

// Handler exposes the schedule service over HTTP
type Handler struct {
	schedule       schedule.Service
	announcer      announcer.Announcer
	uuid           uuid.UUID
	validate       *validator.Validate
	requestTimeout time.Duration
	log            *zap.Logger
}

// New creates the HTTP handlers
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Schedule == nil {
		return nil, errors.New("schedule service cannot be nil")
	}

	id := cfg.UUID
	if id == nil {
		id = uuid.New()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Handler{
		schedule:       cfg.Schedule,
		announcer:      cfg.Announcer,
		uuid:           id,
		validate:       validator.New(),
		requestTimeout: timeout,
		log:            log.Named("http"),
	}, nil
}

// NewApp builds a fiber app with every route registered
func (h *Handler) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          h.errorHandler,
	})
	h.Register(app)
	return app
}

// Register mounts the routes on app
func (h *Handler) Register(app *fiber.App) {
	app.Use(h.requestContext)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	sessions := app.Group("/sessions/:table")
	sessions.Patch("/", h.applyChange)
	sessions.Post("/reschedule", h.reschedule)
	sessions.Post("/reassign", h.reassign)
	sessions.Post("/swap", h.swap)
	sessions.Post("/details", h.updateDetails)
	sessions.Post("/provision", h.provision)
	sessions.Get("/:id/materials", h.materials)

	if h.announcer != nil {
		app.Post("/announce", h.announce)
	}
}

// bind parses and validates a JSON body
func (h *Handler) bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return h.validate.Struct(req)
}

func (h *Handler) applyChange(c *fiber.Ctx) error {
	var req ChangeRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	out, err := h.schedule.ApplyChange(c.UserContext(), &schedule.ApplyChangeInput{
		Table:           c.Params("table"),
		Selector:        req.Selector.toSelector(),
		Date:            req.Date,
		Time:            req.Time,
		MentorID:        req.MentorID,
		SwappedMentorID: req.SwappedMentorID,
		ClearSwap:       req.ClearSwap,
		SubjectName:     req.SubjectName,
		SubjectTopic:    req.SubjectTopic,
		SessionType:     toSessionType(req.SessionType),
		SuppressMeeting: req.SuppressMeeting,
	})
	if err != nil {
		return err
	}
	return c.JSON(toChangeResponse(out))
}

func (h *Handler) reschedule(c *fiber.Ctx) error {
	var req RescheduleRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	out, err := h.schedule.Reschedule(c.UserContext(), &schedule.RescheduleInput{
		Table:    c.Params("table"),
		Selector: req.Selector.toSelector(),
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		return err
	}
	return c.JSON(toChangeResponse(out))
}

func (h *Handler) reassign(c *fiber.Ctx) error {
	var req ReassignRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	out, err := h.schedule.ReassignMentor(c.UserContext(), &schedule.ReassignMentorInput{
		Table:    c.Params("table"),
		Selector: req.Selector.toSelector(),
		MentorID: req.MentorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(toChangeResponse(out))
}

func (h *Handler) swap(c *fiber.Ctx) error {
	var req SwapRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	out, err := h.schedule.SwapMentor(c.UserContext(), &schedule.SwapMentorInput{
		Table:           c.Params("table"),
		Selector:        req.Selector.toSelector(),
		SwappedMentorID: req.SwappedMentorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(toChangeResponse(out))
}

func (h *Handler) updateDetails(c *fiber.Ctx) error {
	var req DetailsRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	out, err := h.schedule.UpdateDetails(c.UserContext(), &schedule.UpdateDetailsInput{
		Table:        c.Params("table"),
		Selector:     req.Selector.toSelector(),
		SubjectName:  req.SubjectName,
		SubjectTopic: req.SubjectTopic,
		SessionType:  toSessionType(req.SessionType),
	})
	if err != nil {
		return err
	}
	return c.JSON(toChangeResponse(out))
}

func (h *Handler) provision(c *fiber.Ctx) error {
	var req ProvisionRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	out, err := h.schedule.ProvisionSession(c.UserContext(), &schedule.ProvisionSessionInput{
		Table:    c.Params("table"),
		Selector: req.Selector.toSelector(),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(&ProvisionResponse{
		SessionID: out.SessionID,
		Meeting:   MeetingResponse{Action: string(out.Meeting.Action), JoinURL: out.Meeting.JoinURL},
		Degraded:  out.Degraded,
	})
}

func (h *Handler) materials(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "session id must be a positive integer")
	}

	out, err := h.schedule.GetMaterials(c.UserContext(), &schedule.GetMaterialsInput{
		Table:    c.Params("table"),
		Selector: session.Selector{ID: id},
	})
	if err != nil {
		return err
	}
	return c.JSON(&MaterialsResponse{
		Initial: out.Initial,
		Session: out.Session,
		Merged:  out.Merged,
	})
}

func (h *Handler) announce(c *fiber.Ctx) error {
	out, err := h.announcer.Announce(c.UserContext(), &announcer.AnnounceInput{})
	if err != nil {
		return err
	}
	return c.JSON(toAnnounceResponse(out))
}
