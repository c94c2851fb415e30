package notice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notice-pusher/internal/api/respond"
	"github.com/aliskhannn/notice-pusher/internal/config"
	"github.com/aliskhannn/notice-pusher/internal/model"
	"github.com/aliskhannn/notice-pusher/internal/repository/notice"
)

// noticeService defines the interface that the Handler depends on.
//
// It abstracts the administration of notices: creating and editing them,
// raising or withdrawing push requests and reading the push status.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notice/mock.go -package=mocks
type noticeService interface {
	CreateNotice(context.Context, retry.Strategy, model.Notice) (string, error)
	GetNotice(context.Context, string) (model.Notice, error)
	GetAllNotices(context.Context) ([]model.Notice, error)
	UpdateNotice(ctx context.Context, strategy retry.Strategy, id string, patch model.NoticePatch) (model.Notice, error)
	RequestPush(ctx context.Context, strategy retry.Strategy, id string) (model.Notice, error)
	CancelPush(ctx context.Context, strategy retry.Strategy, id, requestID string) (model.Notice, error)
	GetPushStatus(ctx context.Context, strategy retry.Strategy, id string) (model.PushStatus, error)
}

// Handler handles HTTP requests of the notice administration API.
type Handler struct {
	service   noticeService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	s noticeService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body of a notice creation request.
// Both fields are optional; defaults are applied when the push is composed.
type CreateRequest struct {
	Title    string `json:"title" validate:"max=200"`
	Category string `json:"category" validate:"max=50"`
}

// UpdateRequest represents the JSON body of a notice edit. Omitted fields are kept.
type UpdateRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Category *string `json:"category" validate:"omitempty,max=50"`
}

// PushStatusResponse is returned by GetPushStatus.
type PushStatusResponse struct {
	ID     string           `json:"id"`
	Status model.PushStatus `json:"push_status"`
}

func (h *Handler) decode(c *ginext.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) noticeID(c *ginext.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return "", false
	}

	return id, true
}

// fail maps service errors onto HTTP responses.
func (h *Handler) fail(c *ginext.Context, id string, err error, msg string) {
	switch {
	case errors.Is(err, notice.ErrNoticeNotFound):
		zlog.Logger.Warn().Str("id", id).Err(err).Msg("notice not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notice not found"))
	case errors.Is(err, notice.ErrPushAlreadyRequested):
		zlog.Logger.Warn().Str("id", id).Err(err).Msg("push already requested")
		respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("push already requested"))
	case errors.Is(err, notice.ErrNoPushRequested):
		zlog.Logger.Warn().Str("id", id).Err(err).Msg("no push requested")
		respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("no pending push request"))
	case errors.Is(err, notice.ErrPushRequestMismatch):
		zlog.Logger.Warn().Str("id", id).Err(err).Msg("push request changed")
		respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("pending push request does not match"))
	default:
		zlog.Logger.Error().Err(err).Str("id", id).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

// Create handles POST requests creating a new notice.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest
	if !h.decode(c, &req) {
		return
	}

	n := model.Notice{Title: req.Title, Category: req.Category}

	id, err := h.service.CreateNotice(c.Request.Context(), h.cfg.Retry, n)
	if err != nil {
		h.fail(c, "", err, "failed to create notice")
		return
	}

	respond.Created(c.Writer, id)
}

// Get handles GET requests for a single notice.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.noticeID(c)
	if !ok {
		return
	}

	n, err := h.service.GetNotice(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to get notice")
		return
	}

	respond.OK(c.Writer, n)
}

// GetAll handles GET requests listing every notice.
func (h *Handler) GetAll(c *ginext.Context) {
	notices, err := h.service.GetAllNotices(c.Request.Context())
	if err != nil {
		if errors.Is(err, notice.ErrNoNoticesFound) {
			respond.OK(c.Writer, []model.Notice{})
			return
		}

		h.fail(c, "", err, "failed to get notices")
		return
	}

	respond.OK(c.Writer, notices)
}

// Update handles PATCH requests editing title and category.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.noticeID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if !h.decode(c, &req) {
		return
	}

	if req.Title == nil && req.Category == nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("nothing to update"))
		return
	}

	n, err := h.service.UpdateNotice(c.Request.Context(), h.cfg.Retry, id, model.NoticePatch{
		Title:    req.Title,
		Category: req.Category,
	})
	if err != nil {
		h.fail(c, id, err, "failed to update notice")
		return
	}

	respond.OK(c.Writer, n)
}

// RequestPush handles POST requests asking for the notice to be broadcast.
// The push itself happens asynchronously; the response only confirms the request.
func (h *Handler) RequestPush(c *ginext.Context) {
	id, ok := h.noticeID(c)
	if !ok {
		return
	}

	n, err := h.service.RequestPush(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		h.fail(c, id, err, "failed to request push")
		return
	}

	respond.Accepted(c.Writer, n)
}

// CancelPush handles DELETE requests withdrawing a pending push request.
// The optional request_id query parameter pins the request to cancel.
func (h *Handler) CancelPush(c *ginext.Context) {
	id, ok := h.noticeID(c)
	if !ok {
		return
	}

	requestID := strings.TrimSpace(c.Query("request_id"))

	n, err := h.service.CancelPush(c.Request.Context(), h.cfg.Retry, id, requestID)
	if err != nil {
		h.fail(c, id, err, "failed to cancel push")
		return
	}

	respond.OK(c.Writer, n)
}

// GetPushStatus handles GET requests for the push status of a notice.
func (h *Handler) GetPushStatus(c *ginext.Context) {
	id, ok := h.noticeID(c)
	if !ok {
		return
	}

	status, err := h.service.GetPushStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		h.fail(c, id, err, "failed to get push status")
		return
	}

	respond.OK(c.Writer, PushStatusResponse{ID: id, Status: status})
}
