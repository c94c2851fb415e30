package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notice-pusher/internal/api/respond"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Handler reports whether the dependencies the push workers need are reachable.
type Handler struct {
	db pinger
}

func NewHandler(db pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Check(c *ginext.Context) {
	// Use a timeout to prevent the health check from hanging.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"db": "ok"}
	if err := h.db.Ping(ctx); err != nil {
		status["db"] = fmt.Sprintf("error: %s", err.Error())
		respond.JSON(c.Writer, http.StatusServiceUnavailable, status)
		return
	}

	respond.JSON(c.Writer, http.StatusOK, status)
}
